package http

import (
	"log/slog"
	"net/http"
)

// NewServer создает роутер с эндпоинтами страницы и API и оборачивает его в middleware.
func NewServer(log *slog.Logger, h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/podcasts", h.podcastsPage)
	mux.HandleFunc("/api/podcasts", h.listEpisodes)
	mux.HandleFunc("/api/health", h.healthCheck)
	mux.HandleFunc("/", h.index)
	var handler http.Handler = mux
	handler = loggingMiddleware(log)(handler)
	handler = requestIDMiddleware()(handler)
	handler = corsMiddleware()(handler)
	return handler
}
