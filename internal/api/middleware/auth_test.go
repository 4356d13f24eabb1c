package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newProtectedRouter(token string) *mux.Router {
	r := mux.NewRouter()
	r.Use(Auth(token))
	r.HandleFunc("/admin/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	r := newProtectedRouter("secret-token")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("X-Admin-Token", "secret-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := newProtectedRouter("secret-token")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	r := newProtectedRouter("secret-token")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_EmptyConfiguredTokenRejectsAll(t *testing.T) {
	// Пустой токен в конфигурации не открывает доступ всем подряд
	r := newProtectedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("X-Admin-Token", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
