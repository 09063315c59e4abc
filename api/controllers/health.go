package controllers

import (
	"net/http"

	"github.com/angelmondragon/promotions-backend/api/responses"
)

// Health serves the liveness probe. The body is fixed and independent of the
// backing store so orchestrators can probe the process itself.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "OK"})
	}
}
