package usecase

import (
	"context"
	"errors"
	"log/slog"
	"podcasts/internal/domain"
	"time"
)

var errNoFeed = errors.New("parser returned no feed")

// EpisodeLoader загружает ленту подкаста и превращает ее в список выпусков.
// Не хранит состояния между вызовами: каждый вызов делает ровно один запрос.
type EpisodeLoader struct {
	fetcher FeedFetcher
	parser  FeedParser
	log     *slog.Logger
	feedURL string
}

func NewEpisodeLoader(fetcher FeedFetcher, parser FeedParser, log *slog.Logger, feedURL string) *EpisodeLoader {
	return &EpisodeLoader{
		fetcher: fetcher,
		parser:  parser,
		log:     log,
		feedURL: feedURL,
	}
}

// LoadEpisodes загружает и разбирает ленту. Никогда не возвращает ошибку:
// сбой любого этапа превращается в LoadResult с заполненным Err.
func (uc *EpisodeLoader) LoadEpisodes(ctx context.Context) domain.LoadResult {
	start := time.Now()
	log := uc.log.With(
		slog.String("component", "episode-loader"),
		slog.String("url", uc.feedURL),
	)

	reader, err := uc.fetcher.Fetch(ctx, uc.feedURL)
	if err != nil {
		kind := domain.ErrorKindFetch
		if errors.Is(err, domain.ErrUnexpectedStatus) {
			kind = domain.ErrorKindStatus
		}
		log.Error("Feed fetch failed",
			slog.String("stage", "fetch"),
			slog.String("kind", kind.String()),
			slog.Any("error", err),
		)
		return domain.LoadResult{Err: &domain.LoadError{Kind: kind, Err: err}}
	}
	defer reader.Close()

	feed, err := uc.parser.Parse(ctx, reader)
	if err == nil && feed == nil {
		err = errNoFeed
	}
	if err != nil {
		log.Error("Feed parsing failed",
			slog.String("stage", "parse"),
			slog.Any("error", err),
		)
		return domain.LoadResult{Err: &domain.LoadError{Kind: domain.ErrorKindParse, Err: err}}
	}

	episodes := make([]domain.Episode, 0, len(feed.Items))
	for _, item := range feed.Items {
		episodes = append(episodes, domain.NewEpisode(item))
	}

	log.Info("Episodes loaded",
		slog.Int("items_found", len(episodes)),
		slog.Duration("duration", time.Since(start)),
	)
	return domain.LoadResult{Episodes: episodes}
}
