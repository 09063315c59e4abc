package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/promotions-backend/api/responses"
	"github.com/angelmondragon/promotions-backend/api/validators"
	promosvc "github.com/angelmondragon/promotions-backend/internal/promotions"
	"github.com/angelmondragon/promotions-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/promotions-backend/pkg/errors"
	"github.com/angelmondragon/promotions-backend/pkg/logger"
)

// CreatePromotion handles POST /promotions.
func CreatePromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload promotionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithPromotionID(r.Context(), created.ID), "promotion created")
		}

		w.Header().Set("Location", fmt.Sprintf("/promotions/%d", created.ID))
		responses.WriteSuccessStatus(w, http.StatusCreated, promosvc.ToDTO(created))
	}
}

// ListPromotions handles GET /promotions with optional exact-match filters.
func ListPromotions(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		siteWide, err := validators.QueryBool(r, "is_site_wide")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := promosvc.ListFilters{
			Title:      validators.QueryString(r, "title"),
			PromoCode:  validators.QueryString(r, "promo_code"),
			IsSiteWide: siteWide,
		}

		rows, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, promosvc.ToDTOs(rows))
	}
}

// GetPromotion handles GET /promotions/{promotionId}.
func GetPromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := promotionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		promotion, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, promosvc.ToDTO(promotion))
	}
}

// UpdatePromotion handles PUT /promotions/{promotionId}. Every field except
// the id is overwritten.
func UpdatePromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := promotionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload promotionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithPromotionID(r.Context(), id), "promotion updated")
		}

		responses.WriteSuccess(w, promosvc.ToDTO(updated))
	}
}

// DeletePromotion handles DELETE /promotions/{promotionId}. Deletes are
// idempotent: an unknown id still yields 204.
func DeletePromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := promotionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithPromotionID(r.Context(), id), "promotion deleted")
		}

		responses.WriteNoContent(w)
	}
}

// ActivatePromotion handles PUT /promotions/{promotionId}/activate.
func ActivatePromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return setSiteWideHandler(svc, logg, true)
}

// DeactivatePromotion handles DELETE /promotions/{promotionId}/activate.
func DeactivatePromotion(svc promosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return setSiteWideHandler(svc, logg, false)
}

func setSiteWideHandler(svc promosvc.Service, logg *logger.Logger, activate bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := promotionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		toggle := svc.Deactivate
		if activate {
			toggle = svc.Activate
		}

		promotion, err := toggle(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithPromotionID(r.Context(), id)
			if activate {
				logg.Info(ctx, "promotion activated")
			} else {
				logg.Info(ctx, "promotion deactivated")
			}
		}

		responses.WriteSuccess(w, promosvc.ToDTO(promotion))
	}
}

// promotionIDParam parses the numeric id path segment. The route shape
// requires an integer, so anything else is a 404 rather than a 400.
func promotionIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "promotionId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("promotion with id %q was not found", raw))
	}
	return id, nil
}

// promotionRequest mirrors the wire representation. Pointer fields make
// required-key checks distinguish an absent key from a zero value. The id key
// is accepted (serialized promotions carry it) but never read.
type promotionRequest struct {
	ID         *int64  `json:"id"`
	Title      *string `json:"title" validate:"required,max=63"`
	PromoCode  *string `json:"promo_code" validate:"omitempty,max=63"`
	PromoType  *string `json:"promo_type" validate:"required"`
	Amount     *int    `json:"amount" validate:"required"`
	StartDate  *string `json:"start_date" validate:"required"`
	EndDate    *string `json:"end_date" validate:"required"`
	IsSiteWide *bool   `json:"is_site_wide" validate:"required"`
	ProductID  *int64  `json:"product_id" validate:"required"`
}

func (r promotionRequest) toInput() (promosvc.WriteInput, error) {
	promoType, err := enums.ParsePromoType(strings.TrimSpace(*r.PromoType))
	if err != nil {
		return promosvc.WriteInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid promo_type")
	}

	start, err := parseDateTime(*r.StartDate)
	if err != nil {
		return promosvc.WriteInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid start_date")
	}

	end, err := parseDateTime(*r.EndDate)
	if err != nil {
		return promosvc.WriteInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid end_date")
	}

	promoCode := ""
	if r.PromoCode != nil {
		promoCode = strings.TrimSpace(*r.PromoCode)
	}

	return promosvc.WriteInput{
		Title:      strings.TrimSpace(*r.Title),
		PromoCode:  promoCode,
		PromoType:  promoType,
		Amount:     *r.Amount,
		StartDate:  start,
		EndDate:    end,
		IsSiteWide: *r.IsSiteWide,
		ProductID:  *r.ProductID,
	}, nil
}

// dateTimeLayouts accepts full RFC 3339 stamps plus the zone-less and
// date-only forms older clients send.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDateTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", value)
}
