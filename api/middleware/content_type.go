package middleware

import (
	"mime"
	"net/http"

	"github.com/angelmondragon/promotions-backend/api/responses"
	pkgerrors "github.com/angelmondragon/promotions-backend/pkg/errors"
	"github.com/angelmondragon/promotions-backend/pkg/logger"
)

const jsonContentType = "application/json"

// RequireJSON rejects body-carrying requests whose Content-Type is not
// application/json with a 415 before the body is read.
func RequireJSON(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Content-Type")
			if header == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "Content-Type must be "+jsonContentType))
				return
			}

			mediaType, _, err := mime.ParseMediaType(header)
			if err != nil || mediaType != jsonContentType {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "Content-Type must be "+jsonContentType).
						WithDetails(map[string]any{"content_type": header}))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
