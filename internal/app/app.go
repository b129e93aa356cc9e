package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"podcasts/internal/adapter/fetcher"
	"podcasts/internal/adapter/parser"
	"podcasts/internal/config"
	"podcasts/internal/logger"
	server "podcasts/internal/transport/http"
	"podcasts/internal/usecase"
	"sync"
	"syscall"
	"time"
)

// App представляет сервис страницы подкастов.
// Владеет HTTP-сервером и обеспечивает graceful startup и shutdown.
type App struct {
	config   *config.Config
	logger   *slog.Logger
	server   *http.Server
	stopChan chan os.Signal
	wg       sync.WaitGroup
}

// NewEpisodeLoader собирает загрузчик выпусков: HTTP-клиент, парсер ленты и URL из конфигурации.
func NewEpisodeLoader(cfg *config.Config, log *slog.Logger) *usecase.EpisodeLoader {
	httpFetcher := fetcher.NewHTTPFetcher(log)
	feedParser := parser.NewFeedParser(log)
	return usecase.NewEpisodeLoader(httpFetcher, feedParser, log, cfg.App.FeedURL)
}

// New создает и инициализирует приложение: логгер, загрузчик ленты,
// обработчики и HTTP-сервер.
func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	slog.SetDefault(appLogger)

	loader := NewEpisodeLoader(cfg, appLogger)

	handler := server.NewHandler(appLogger, loader)

	router := server.NewServer(appLogger, handler)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &App{
		config:   cfg,
		logger:   appLogger,
		server:   srv,
		stopChan: make(chan os.Signal, 1),
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала SIGINT/SIGTERM
// или падения сервера, после чего выполняет Shutdown.
func (a *App) Run() error {
	a.logger.Info("Starting Podcasts service",
		slog.String("component", "app"),
		slog.String("feed_url", a.config.App.FeedURL),
	)
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	defer listener.Close()
	a.logger.Info("HTTP server ready",
		slog.String("component", "server"),
		slog.String("address", listener.Addr().String()),
	)
	serveErr := make(chan error, 1)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed", slog.String("component", "server"), slog.Any("error", err))
			serveErr <- err
		}
	}()
	signal.Notify(a.stopChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(a.stopChan)
	var runErr error
	select {
	case sig := <-a.stopChan:
		a.logger.Info("Shutdown signal received",
			slog.String("component", "app"),
			slog.String("signal", sig.String()),
		)
	case runErr = <-serveErr:
	}
	if err := a.Shutdown(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("http server failed: %w", runErr)
	}
	return nil
}

// Shutdown останавливает HTTP-сервер с таймаутом 10 секунд
// и ожидает завершения горутин.
func (a *App) Shutdown() error {
	a.logger.Info("Starting graceful shutdown", slog.String("component", "app"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := a.server.Shutdown(shutdownCtx)
	if err != nil {
		a.logger.Error("HTTP server shutdown failed", slog.String("component", "server"), slog.Any("error", err))
	}
	a.wg.Wait()
	a.logger.Info("Application stopped gracefully", slog.String("component", "app"))
	if err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Stop посылает приложению сигнал завершения, как если бы пришел SIGTERM.
func (a *App) Stop() {
	a.stopChan <- syscall.SIGTERM
}
