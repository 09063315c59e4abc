package enums

import "fmt"

// PromoType represents the canonical promotion types.
type PromoType string

const (
	// PromoTypeBOGO is buy X get one free.
	PromoTypeBOGO PromoType = "BOGO"
	// PromoTypeDiscount is X percent off.
	PromoTypeDiscount PromoType = "DISCOUNT"
	// PromoTypeFixed is X dollars off.
	PromoTypeFixed PromoType = "FIXED"
)

var validPromoTypes = []PromoType{
	PromoTypeBOGO,
	PromoTypeDiscount,
	PromoTypeFixed,
}

// String implements fmt.Stringer.
func (p PromoType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PromoType.
func (p PromoType) IsValid() bool {
	for _, candidate := range validPromoTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePromoType converts raw input into a PromoType.
func ParsePromoType(value string) (PromoType, error) {
	for _, candidate := range validPromoTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid promo type %q", value)
}
