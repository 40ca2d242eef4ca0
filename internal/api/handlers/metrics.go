package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsHandler struct {
	handler http.Handler
}

func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{handler: promhttp.Handler()}
}

func (h *MetricsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
