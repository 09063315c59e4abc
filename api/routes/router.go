package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/promotions-backend/api/controllers"
	"github.com/angelmondragon/promotions-backend/api/middleware"
	promosvc "github.com/angelmondragon/promotions-backend/internal/promotions"
	"github.com/angelmondragon/promotions-backend/pkg/logger"
	"github.com/angelmondragon/promotions-backend/pkg/metrics"
)

func NewRouter(
	logg *logger.Logger,
	promotionService promosvc.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Get("/", controllers.Index())
	r.Get("/health", controllers.Health())
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/promotions", func(r chi.Router) {
		r.With(middleware.RequireJSON(logg)).Post("/", controllers.CreatePromotion(promotionService, logg))
		r.Get("/", controllers.ListPromotions(promotionService, logg))

		r.Route("/{promotionId}", func(r chi.Router) {
			r.Get("/", controllers.GetPromotion(promotionService, logg))
			r.With(middleware.RequireJSON(logg)).Put("/", controllers.UpdatePromotion(promotionService, logg))
			r.Delete("/", controllers.DeletePromotion(promotionService, logg))

			r.Put("/activate", controllers.ActivatePromotion(promotionService, logg))
			r.Delete("/activate", controllers.DeactivatePromotion(promotionService, logg))
		})
	})

	return r
}
