package promotions

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/angelmondragon/promotions-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/promotions-backend/pkg/errors"
)

// Repository owns promotion persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new promotion row. The id is always store-generated; any
// caller-supplied value is discarded.
func (r *Repository) Create(ctx context.Context, promotion *models.Promotion) (*models.Promotion, error) {
	promotion.ID = 0
	if err := r.db.WithContext(ctx).Create(promotion).Error; err != nil {
		return nil, err
	}
	return promotion, nil
}

// Update persists the promotion's fields to its existing row. A zero id means
// the caller never loaded or created the record, which is a usage error rather
// than a not-found condition.
func (r *Repository) Update(ctx context.Context, promotion *models.Promotion) (*models.Promotion, error) {
	if promotion.ID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "promotion id not provided")
	}
	if err := r.db.WithContext(ctx).Save(promotion).Error; err != nil {
		return nil, err
	}
	return promotion, nil
}

// Delete removes a promotion by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Promotion{}).Error
}

// FindByID loads a promotion, returning (nil, nil) when it does not exist.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

// All returns every persisted promotion.
func (r *Repository) All(ctx context.Context) ([]models.Promotion, error) {
	var rows []models.Promotion
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByTitle returns promotions whose title matches exactly.
func (r *Repository) FindByTitle(ctx context.Context, title string) ([]models.Promotion, error) {
	var rows []models.Promotion
	if err := r.db.WithContext(ctx).Where("title = ?", title).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByCode returns promotions whose promo code matches exactly.
func (r *Repository) FindByCode(ctx context.Context, code string) ([]models.Promotion, error) {
	var rows []models.Promotion
	if err := r.db.WithContext(ctx).Where("promo_code = ?", code).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindBySiteWide returns promotions filtered by the site-wide flag.
func (r *Repository) FindBySiteWide(ctx context.Context, siteWide bool) ([]models.Promotion, error) {
	var rows []models.Promotion
	if err := r.db.WithContext(ctx).Where("is_site_wide = ?", siteWide).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetSiteWide flips only the is_site_wide column for the given promotion.
func (r *Repository) SetSiteWide(ctx context.Context, id int64, siteWide bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Promotion{}).
		Where("id = ?", id).
		Update("is_site_wide", siteWide).
		Error
}
