package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/delacruzjs/wishlists-backend/api/controllers"
	"github.com/delacruzjs/wishlists-backend/api/middleware"
	"github.com/delacruzjs/wishlists-backend/api/responses"
	"github.com/delacruzjs/wishlists-backend/internal/wishlists"
	"github.com/delacruzjs/wishlists-backend/pkg/config"
	"github.com/delacruzjs/wishlists-backend/pkg/db"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"github.com/delacruzjs/wishlists-backend/pkg/logger"
)

// NewRouter wires the HTTP surface. Passing a nil registry disables the
// metrics middleware and the /metrics endpoint.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	wishlistService wishlists.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if registry != nil {
		metrics := middleware.NewHTTPMetrics(registry)
		r.Use(metrics.Middleware())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeNotFound, "resource not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	r.Get("/", controllers.Index())
	r.Get("/health", controllers.Health(dbP, logg))
	if registry != nil {
		r.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	guard := middleware.APIKey(cfg.API, logg)
	jsonBody := middleware.RequireJSON(logg)

	r.Route("/wishlists", func(r chi.Router) {
		r.Get("/", controllers.WishlistList(wishlistService, logg))
		r.With(guard, jsonBody).Post("/", controllers.WishlistCreate(wishlistService, logg))

		r.Route("/{wishlistId:[0-9]+}", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(wishlistService, logg))
			r.With(guard, jsonBody).Put("/", controllers.WishlistUpdate(wishlistService, logg))
			r.With(guard).Delete("/", controllers.WishlistDelete(wishlistService, logg))
			r.With(guard).Post("/copy", controllers.WishlistCopy(wishlistService, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.ProductList(wishlistService, logg))
				r.With(guard, jsonBody).Post("/", controllers.ProductCreate(wishlistService, logg))

				r.Route("/{productId:[0-9]+}", func(r chi.Router) {
					r.Get("/", controllers.ProductGet(wishlistService, logg))
					r.With(guard, jsonBody).Put("/", controllers.ProductUpdate(wishlistService, logg))
					r.With(guard).Delete("/", controllers.ProductDelete(wishlistService, logg))
				})
			})
		})
	})

	return r
}
