package promotions

import (
	"time"

	"github.com/angelmondragon/promotions-backend/pkg/db/models"
)

// PromotionDTO is the wire representation returned to clients.
type PromotionDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PromoCode  string `json:"promo_code"`
	PromoType  string `json:"promo_type"`
	Amount     int    `json:"amount"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsSiteWide bool   `json:"is_site_wide"`
	ProductID  int64  `json:"product_id"`
}

// ToDTO serializes a promotion. The promo type is emitted as its member name
// and dates as RFC 3339 strings.
func ToDTO(promotion *models.Promotion) PromotionDTO {
	return PromotionDTO{
		ID:         promotion.ID,
		Title:      promotion.Title,
		PromoCode:  promotion.PromoCode,
		PromoType:  promotion.PromoType.String(),
		Amount:     promotion.Amount,
		StartDate:  promotion.StartDate.UTC().Format(time.RFC3339),
		EndDate:    promotion.EndDate.UTC().Format(time.RFC3339),
		IsSiteWide: promotion.IsSiteWide,
		ProductID:  promotion.ProductID,
	}
}

// ToDTOs serializes a slice of promotions, never returning nil so empty lists
// encode as [] rather than null.
func ToDTOs(rows []models.Promotion) []PromotionDTO {
	dtos := make([]PromotionDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, ToDTO(&rows[i]))
	}
	return dtos
}
