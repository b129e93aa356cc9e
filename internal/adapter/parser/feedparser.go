package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"podcasts/internal/domain"

	"github.com/mmcdole/gofeed"
)

// ErrMissingITunes означает, что у выпуска нет блока iTunes
// (обычно лента не объявляет пространство имен itunes).
var ErrMissingITunes = errors.New("item has no itunes block")

// FeedParser разбирает RSS-ленту подкаста с помощью gofeed.
type FeedParser struct {
	log *slog.Logger
}

func NewFeedParser(log *slog.Logger) *FeedParser {
	return &FeedParser{
		log: log.With(slog.String("component", "parser")),
	}
}

// Parse реализует метод интерфейса usecase.FeedParser.
// Для каждого вызова создается новый gofeed.Parser.
func (p *FeedParser) Parse(ctx context.Context, reader io.Reader) (*domain.Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parsed, err := gofeed.NewParser().Parse(reader)
	if err != nil {
		p.log.Error("Error decoding feed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	feed := domain.Feed{
		Title:       parsed.Title,
		Link:        parsed.Link,
		Description: parsed.Description,
		Items:       make([]domain.FeedItem, 0, len(parsed.Items)),
	}
	for i, item := range parsed.Items {
		if item == nil {
			continue
		}
		if item.ITunesExt == nil {
			p.log.Error("Feed item without itunes block",
				slog.Int("item_index", i),
				slog.String("item_title", item.Title),
			)
			return nil, fmt.Errorf("failed to decode feed: item %d %q: %w", i, item.Title, ErrMissingITunes)
		}
		feed.Items = append(feed.Items, domain.FeedItem{
			ITunesImage:    item.ITunesExt.Image,
			Link:           item.Link,
			Title:          item.Title,
			ContentSnippet: Snippet(itemContent(item)),
		})
	}
	p.log.Debug("Feed parsed", slog.Int("items_found", len(feed.Items)))
	return &feed, nil
}

func itemContent(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}
