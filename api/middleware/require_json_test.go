package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireJSONRejectsWrongContentType(t *testing.T) {
	handler := RequireJSON(nil)(okHandler())

	r := httptest.NewRequest(http.MethodPost, "/wishlists", strings.NewReader("name=socks"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestRequireJSONAcceptsJSONWithCharset(t *testing.T) {
	handler := RequireJSON(nil)(okHandler())

	r := httptest.NewRequest(http.MethodPut, "/wishlists/1", strings.NewReader("{}"))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireJSONIgnoresReads(t *testing.T) {
	handler := RequireJSON(nil)(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlists", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
