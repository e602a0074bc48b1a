package validators

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// ParseQueryDate reads an optional ISO date (YYYY-MM-DD) query parameter.
// A missing or blank parameter yields nil without error.
func ParseQueryDate(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation,
			"query parameter '%s' must be an ISO date (YYYY-MM-DD)", key)
	}
	return &value, nil
}

// ParsePathID reads a numeric chi URL parameter as an entity id. Zero is
// allowed through so the service layer decides how a never-assigned id
// behaves per operation (404 on reads, idempotent 204 on deletes).
func ParsePathID(r *http.Request, key string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.Newf(pkgerrors.CodeNotFound,
			"Resource with id '%s' was not found.", raw)
	}
	return uint(value), nil
}
