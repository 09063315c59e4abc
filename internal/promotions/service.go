package promotions

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/promotions-backend/pkg/db/models"
	"github.com/angelmondragon/promotions-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/promotions-backend/pkg/errors"
)

// Service exposes promotion management operations.
type Service interface {
	Create(ctx context.Context, input WriteInput) (*models.Promotion, error)
	Get(ctx context.Context, id int64) (*models.Promotion, error)
	List(ctx context.Context, filters ListFilters) ([]models.Promotion, error)
	Update(ctx context.Context, id int64, input WriteInput) (*models.Promotion, error)
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) (*models.Promotion, error)
	Deactivate(ctx context.Context, id int64) (*models.Promotion, error)
}

// WriteInput holds the validated payload for create and update. Update
// overwrites every field except the id.
type WriteInput struct {
	Title      string
	PromoCode  string
	PromoType  enums.PromoType
	Amount     int
	StartDate  time.Time
	EndDate    time.Time
	IsSiteWide bool
	ProductID  int64
}

type service struct {
	repo *Repository
}

// NewService wires the promotion service to its repository.
func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input WriteInput) (*models.Promotion, error) {
	promotion := input.toModel()
	return s.repo.Create(ctx, promotion)
}

func (s *service) Get(ctx context.Context, id int64) (*models.Promotion, error) {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, notFound(id)
	}
	return promotion, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Promotion, error) {
	switch {
	case filters.Title != nil:
		return s.repo.FindByTitle(ctx, *filters.Title)
	case filters.PromoCode != nil:
		return s.repo.FindByCode(ctx, *filters.PromoCode)
	case filters.IsSiteWide != nil:
		return s.repo.FindBySiteWide(ctx, *filters.IsSiteWide)
	default:
		return s.repo.All(ctx)
	}
}

func (s *service) Update(ctx context.Context, id int64, input WriteInput) (*models.Promotion, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(id)
	}

	promotion := input.toModel()
	promotion.ID = existing.ID
	return s.repo.Update(ctx, promotion)
}

// Delete is idempotent from the caller's perspective: a missing record is
// skipped rather than surfaced as an error.
func (s *service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Activate(ctx context.Context, id int64) (*models.Promotion, error) {
	return s.setSiteWide(ctx, id, true)
}

func (s *service) Deactivate(ctx context.Context, id int64) (*models.Promotion, error) {
	return s.setSiteWide(ctx, id, false)
}

func (s *service) setSiteWide(ctx context.Context, id int64, siteWide bool) (*models.Promotion, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(id)
	}
	if err := s.repo.SetSiteWide(ctx, id, siteWide); err != nil {
		return nil, err
	}
	existing.IsSiteWide = siteWide
	return existing, nil
}

func (i WriteInput) toModel() *models.Promotion {
	return &models.Promotion{
		Title:      i.Title,
		PromoCode:  i.PromoCode,
		PromoType:  i.PromoType,
		Amount:     i.Amount,
		StartDate:  i.StartDate,
		EndDate:    i.EndDate,
		IsSiteWide: i.IsSiteWide,
		ProductID:  i.ProductID,
	}
}

func notFound(id int64) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("promotion with id %d was not found", id))
}
