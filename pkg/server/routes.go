package server

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("POST /api/analyze", handler.HandleAnalyze)
	mux.HandleFunc("GET /api/chart", handler.HandleChart)
}
