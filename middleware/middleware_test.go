package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"scrapquote/internal/metrics"
)

func TestJsonMiddleware(t *testing.T) {
	h := JsonMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestObserve_CountsByRoute(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Observe)
	r.HandleFunc("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	counter := metrics.RequestsTotal.WithLabelValues("/things/{id}", http.MethodGet, "404")
	before := testutil.ToFloat64(counter)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/things/42", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}
