package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calabarlabs/storefront-backend/api/controllers"
	"github.com/calabarlabs/storefront-backend/api/middleware"
	cartsvc "github.com/calabarlabs/storefront-backend/internal/cart"
	catalogsvc "github.com/calabarlabs/storefront-backend/internal/catalog"
	checkoutsvc "github.com/calabarlabs/storefront-backend/internal/checkout"
	sessionsvc "github.com/calabarlabs/storefront-backend/internal/session"
	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
)

// Pinger is a dependency readiness probe; nil means the backend is not part
// of this deployment.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	storageP Pinger,
	redisP Pinger,
	pubsubP Pinger,
	sessionManager *sessionsvc.Manager,
	catalogService catalogsvc.Service,
	cartService cartsvc.Service,
	checkoutService *checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, storageP, redisP, pubsubP))
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())

		r.Route("/v1/catalog", func(r chi.Router) {
			r.Get("/signature", controllers.CatalogSignature(catalogService, logg))
			r.Get("/products", controllers.CatalogProducts(catalogService, logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(catalogService, logg))
			r.Get("/hot-deals", controllers.CatalogHotDeals(catalogService, logg))
			r.Get("/social", controllers.CatalogSocial(catalogService, logg))
		})

		r.Route("/v1/locations", func(r chi.Router) {
			r.Get("/countries", controllers.LocationCountries())
			r.Get("/states", controllers.LocationStates())
			r.Get("/cities", controllers.LocationCities())
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(sessionManager, logg))

		r.Get("/ping", controllers.SessionPing())
		r.Post("/session", controllers.SessionStart(sessionManager, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/items", controllers.CartAdd(cartService, catalogService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateQuantity(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemove(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutState(checkoutService, logg))
			r.Put("/shipping", controllers.CheckoutShipping(checkoutService, logg))
			r.Put("/billing", controllers.CheckoutBilling(checkoutService, logg))
			r.Put("/payment", controllers.CheckoutPayment(checkoutService, logg))
			r.Post("/next", controllers.CheckoutNext(checkoutService, logg))
			r.Post("/back", controllers.CheckoutBack(checkoutService, logg))
			r.Get("/totals", controllers.CheckoutTotals(checkoutService, cartService, logg))
			r.Get("/expiry-options", controllers.CheckoutExpiryOptions())
			r.Post("/submit", controllers.CheckoutSubmit(checkoutService, cartService, logg))
		})
	})

	return r
}
