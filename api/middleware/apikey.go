package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/delacruzjs/wishlists-backend/api/responses"
	"github.com/delacruzjs/wishlists-backend/pkg/config"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"github.com/delacruzjs/wishlists-backend/pkg/logger"
)

const apiKeyHeader = "X-Api-Key"

// APIKey gates the wrapped handlers behind a shared-secret header. When the
// key is not enforced by config the middleware is a pass-through, so routes
// can mount it unconditionally.
func APIKey(cfg config.APIConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enforced() {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(apiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.Key)) != 1 {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "missing or invalid api key"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
