package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"podcasts/internal/domain"
	"podcasts/internal/render"
)

type episodeLoader interface {
	LoadEpisodes(ctx context.Context) domain.LoadResult
}

type Handler struct {
	log    *slog.Logger
	loader episodeLoader
}

func NewHandler(log *slog.Logger, loader episodeLoader) *Handler {
	return &Handler{
		log:    log,
		loader: loader,
	}
}

// podcastsPage - хендлер для страницы GET /podcasts.
// Лента загружается на каждый запрос; при ошибке страница все равно
// отдается со статусом 200 и сообщением об ошибке внутри.
func (h *Handler) podcastsPage(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/podcastsPage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", getRequestID(r.Context())),
	)
	if r.Method != http.MethodGet {
		log.Warn("method not allowed")
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	page := render.RenderPage(h.loader.LoadEpisodes(r.Context()))

	if r.URL.Query().Get("format") == "markdown" {
		md, err := page.Markdown()
		if err != nil {
			log.Error("Failed to render markdown", slog.Any("error", err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(md))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.WriteHTML(w); err != nil {
		log.Error("Failed to render page", slog.Any("error", err))
	}
}

type episodesResponse struct {
	Episodes []domain.Episode `json:"episodes"`
}

// listEpisodes - хендлер для эндпоинта GET /api/podcasts
func (h *Handler) listEpisodes(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listEpisodes"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", getRequestID(r.Context())),
	)
	if r.Method != http.MethodGet {
		log.Warn("method not allowed")
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	result := h.loader.LoadEpisodes(r.Context())
	if result.Failed() {
		respondWithJSON(w, http.StatusBadGateway, map[string]string{
			"error": "feed unavailable",
			"kind":  result.Err.Kind.String(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, episodesResponse{Episodes: result.Episodes})
}

// healthCheck - хендлер для проверки состояния сервиса
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// index перенаправляет корень сайта на страницу подкастов.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	http.Redirect(w, r, "/podcasts", http.StatusFound)
}

// Вспомогательные функции для ответов
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
