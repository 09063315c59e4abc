package controllers

import (
	"net/http"

	"github.com/angelmondragon/promotions-backend/api/responses"
	"github.com/angelmondragon/promotions-backend/pkg/types"
)

const (
	serviceName    = "Promotion REST API Service"
	serviceVersion = "1.0"
)

// Index serves the service metadata document at the API root.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, types.ServiceInfo{
			Name:    serviceName,
			Version: serviceVersion,
			ListURL: "/promotions",
		})
	}
}
