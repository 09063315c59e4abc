package promotions

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/promotions-backend/pkg/db/models"
	"github.com/angelmondragon/promotions-backend/pkg/enums"
)

func TestToDTOWireKeys(t *testing.T) {
	promo := &models.Promotion{
		ID:         5,
		Title:      "holiday",
		PromoCode:  "HOL15",
		PromoType:  enums.PromoTypeFixed,
		Amount:     15,
		StartDate:  time.Date(2023, 12, 1, 9, 30, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		IsSiteWide: true,
		ProductID:  3,
	}

	raw, err := json.Marshal(ToDTO(promo))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"id", "title", "promo_code", "promo_type", "amount",
		"start_date", "end_date", "is_site_wide", "product_id",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.Len(t, decoded, 9)

	assert.Equal(t, "FIXED", decoded["promo_type"])
	assert.Equal(t, "2023-12-01T09:30:00Z", decoded["start_date"])
	assert.Equal(t, true, decoded["is_site_wide"])
}

func TestToDTOsEncodesEmptyAsArray(t *testing.T) {
	raw, err := json.Marshal(ToDTOs(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
