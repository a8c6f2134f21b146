package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cyberraf/giftyy-backend/api/controllers"
	"github.com/cyberraf/giftyy-backend/api/middleware"
	"github.com/cyberraf/giftyy-backend/internal/shipping"
	"github.com/cyberraf/giftyy-backend/internal/shippingconfig"
	"github.com/cyberraf/giftyy-backend/internal/vendors"
	"github.com/cyberraf/giftyy-backend/pkg/config"
	"github.com/cyberraf/giftyy-backend/pkg/db"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
	"github.com/cyberraf/giftyy-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	shippingService shipping.Service,
	catalogService shippingconfig.Service,
	vendorService vendors.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/shipping", func(r chi.Router) {
			r.Post("/estimate", controllers.ShippingEstimate(shippingService, logg))
			r.Post("/quote", controllers.ShippingQuote(shippingService, logg))
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", controllers.VendorsList(vendorService, logg))
			r.Get("/{vendorId}", controllers.VendorsGet(vendorService, logg))

			r.Route("/{vendorId}/shipping/zones", func(r chi.Router) {
				r.Get("/", controllers.VendorListShippingZones(catalogService, logg))
				r.Post("/", controllers.VendorCreateShippingZone(catalogService, logg))
				r.Route("/{zoneId}", func(r chi.Router) {
					r.Patch("/", controllers.VendorUpdateShippingZone(catalogService, logg))
					r.Delete("/", controllers.VendorDeleteShippingZone(catalogService, logg))
					r.Post("/rates", controllers.VendorCreateShippingRate(catalogService, logg))
					r.Delete("/rates/{rateId}", controllers.VendorDeleteShippingRate(catalogService, logg))
				})
			})
		})
	})

	return r
}
