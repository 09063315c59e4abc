package models

import (
	"time"

	"github.com/angelmondragon/promotions-backend/pkg/enums"
)

// Promotion represents a sales promotion running against a product, or
// site-wide when IsSiteWide is set. IsSiteWide doubles as the active flag.
type Promotion struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Title      string          `gorm:"column:title;size:63;not null"`
	PromoCode  string          `gorm:"column:promo_code;size:63"`
	PromoType  enums.PromoType `gorm:"column:promo_type;size:16;not null"`
	Amount     int             `gorm:"column:amount;not null"`
	StartDate  time.Time       `gorm:"column:start_date;not null"`
	EndDate    time.Time       `gorm:"column:end_date;not null"`
	IsSiteWide bool            `gorm:"column:is_site_wide;not null;default:false"`
	ProductID  int64           `gorm:"column:product_id;not null"`
}

// TableName pins the table name regardless of GORM's pluralization rules.
func (Promotion) TableName() string {
	return "promotions"
}
