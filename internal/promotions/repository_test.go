package promotions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/promotions-backend/pkg/db/models"
	"github.com/angelmondragon/promotions-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/promotions-backend/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Promotion{}))
	return db
}

func newPromotion(title, code string) *models.Promotion {
	return &models.Promotion{
		Title:      title,
		PromoCode:  code,
		PromoType:  enums.PromoTypeDiscount,
		Amount:     20,
		StartDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		IsSiteWide: false,
		ProductID:  7,
	}
}

func TestCreateAssignsFreshID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	promo := newPromotion("summer sale", "SUMMER")
	promo.ID = 999 // caller-supplied ids are discarded

	created, err := repo.Create(ctx, promo)
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), created.ID)
	assert.NotZero(t, created.ID)

	second, err := repo.Create(ctx, newPromotion("winter sale", "WINTER"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, created.ID)
}

func TestUpdateRequiresID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.Update(context.Background(), newPromotion("no id", "X"))
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateOverwritesFields(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newPromotion("before", "OLD"))
	require.NoError(t, err)

	created.Title = "after"
	created.Amount = 9999
	created.StartDate = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)

	loaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "after", loaded.Title)
	assert.Equal(t, 9999, loaded.Amount)
	assert.True(t, loaded.StartDate.Equal(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFindByIDReturnsNilWhenAbsent(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	promo, err := repo.FindByID(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, promo)
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newPromotion("doomed", "GONE"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	loaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting an already-missing row is not an error at this layer either.
	require.NoError(t, repo.Delete(ctx, created.ID))
}

func TestFiltersMatchExactly(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	a, err := repo.Create(ctx, newPromotion("spring", "SPR10"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newPromotion("spring sale", "SPR20"))
	require.NoError(t, err)
	wide := newPromotion("everything", "ALL")
	wide.IsSiteWide = true
	_, err = repo.Create(ctx, wide)
	require.NoError(t, err)

	byTitle, err := repo.FindByTitle(ctx, "spring")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, a.ID, byTitle[0].ID)

	// Substrings must not match.
	none, err := repo.FindByTitle(ctx, "spri")
	require.NoError(t, err)
	assert.Empty(t, none)

	byCode, err := repo.FindByCode(ctx, "SPR20")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "spring sale", byCode[0].Title)

	siteWide, err := repo.FindBySiteWide(ctx, true)
	require.NoError(t, err)
	require.Len(t, siteWide, 1)
	assert.Equal(t, "everything", siteWide[0].Title)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSetSiteWideFlipsOnlyFlag(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newPromotion("toggle", "TGL"))
	require.NoError(t, err)
	require.False(t, created.IsSiteWide)

	require.NoError(t, repo.SetSiteWide(ctx, created.ID, true))

	loaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.IsSiteWide)
	assert.Equal(t, "toggle", loaded.Title)

	require.NoError(t, repo.SetSiteWide(ctx, created.ID, false))
	loaded, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, loaded.IsSiteWide)
}
