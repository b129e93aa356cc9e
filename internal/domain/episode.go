package domain

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus возвращается загрузчиком, если лента ответила не 2xx.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Episode представляет выпуск подкаста в виде, готовом для отображения.
type Episode struct {
	Image  string `json:"image"`
	Name   string `json:"name"`
	Source string `json:"source"`
	Story  string `json:"story"`
}

// NewEpisode строит Episode из элемента ленты, поле в поле.
func NewEpisode(item FeedItem) Episode {
	return Episode{
		Image:  item.ITunesImage,
		Name:   item.Title,
		Source: item.Link,
		Story:  item.ContentSnippet,
	}
}

// ErrorKind классифицирует причину, по которой ленту не удалось получить.
type ErrorKind int

const (
	ErrorKindFetch ErrorKind = iota + 1
	ErrorKindStatus
	ErrorKindParse
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindFetch:
		return "fetch"
	case ErrorKindStatus:
		return "status"
	case ErrorKindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// LoadError нормализует ошибку транспорта или парсера в один из ErrorKind.
type LoadError struct {
	Kind ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("feed unavailable (%s): %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadResult содержит либо список выпусков, либо ошибку загрузки.
// Если Err не nil, Episodes не используется.
type LoadResult struct {
	Episodes []Episode
	Err      *LoadError
}

// Failed сообщает, завершилась ли загрузка ошибкой.
func (r LoadResult) Failed() bool { return r.Err != nil }
