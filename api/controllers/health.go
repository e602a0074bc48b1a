package controllers

import (
	"net/http"

	"github.com/delacruzjs/wishlists-backend/api/responses"
	"github.com/delacruzjs/wishlists-backend/pkg/db"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"github.com/delacruzjs/wishlists-backend/pkg/logger"
)

// Health reports OK once the datasource answers a ping. A nil pinger skips
// the check so the handler stays usable in isolation.
func Health(dbP db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "OK"})
	}
}

// Index describes the service for callers probing the root URL.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"name":    "Wishlists REST API Service",
			"version": "1.0",
			"path":    "/wishlists",
		})
	}
}
