package middleware

import (
	"mime"
	"net/http"

	"github.com/delacruzjs/wishlists-backend/api/responses"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"github.com/delacruzjs/wishlists-backend/pkg/logger"
)

// RequireJSON rejects body-carrying requests whose Content-Type is not
// application/json. GET and DELETE pass through untouched.
func RequireJSON(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
				if err != nil || mediaType != "application/json" {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.New(pkgerrors.CodeUnsupportedMedia,
							"Content-Type must be application/json"))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
