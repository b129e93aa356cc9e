package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"podcasts/internal/domain"
)

const userAgent = "operationcode-podcasts/1.0"

// HTTPFetcher загружает RSS-ленту подкаста по HTTP.
// Таймауты не переопределяются: используется транспорт по умолчанию.
type HTTPFetcher struct {
	client *http.Client
	log    *slog.Logger
}

// NewHTTPFetcher создает загрузчик со стандартным HTTP-клиентом.
func NewHTTPFetcher(log *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: http.DefaultClient,
		log:    log.With(slog.String("component", "fetcher")),
	}
}

// Fetch выполняет один GET-запрос к ленте и возвращает тело ответа.
// Тело должно быть закрыто вызывающей стороной. Ответ вне диапазона 2xx
// возвращается как ошибка, оборачивающая domain.ErrUnexpectedStatus.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	log := f.log.With(slog.String("url", url))
	log.Debug("Fetching feed")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to create HTTP request", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		log.Error("HTTP request failed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch url %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		log.Error("Unexpected status code", slog.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d for url %s", domain.ErrUnexpectedStatus, resp.StatusCode, url)
	}
	log.Debug("Feed fetched", slog.Int("status_code", resp.StatusCode))
	return resp.Body, nil
}
