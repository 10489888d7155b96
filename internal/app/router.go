package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"scrapquote/internal/handler"
	"scrapquote/internal/ivr"
	"scrapquote/middleware"
)

// NewRouter registers every endpoint of the service
func NewRouter(h *handler.Handler, ivrRouter *ivr.Router) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Observe)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.Handle("/get_vehicle_weight", middleware.JsonMiddleware(http.HandlerFunc(h.GetVehicleWeight))).
		Methods(http.MethodGet)
	r.Handle("/save_data", middleware.JsonMiddleware(http.HandlerFunc(h.SaveData))).
		Methods(http.MethodPost)

	r.HandleFunc(ivr.MenuPath, ivrRouter.Menu).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc(ivr.InputPath, ivrRouter.HandleInput).Methods(http.MethodGet, http.MethodPost)

	return r
}
