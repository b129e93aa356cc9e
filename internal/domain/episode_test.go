package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEpisode(t *testing.T) {
	item := FeedItem{ITunesImage: "http://x/img.png", Link: "http://x/ep1.mp3", Title: "Jane Doe, part 1", ContentSnippet: "A story."}

	assert.Equal(t, Episode{Image: "http://x/img.png", Name: "Jane Doe, part 1", Source: "http://x/ep1.mp3", Story: "A story."}, NewEpisode(item))
	assert.Equal(t, Episode{}, NewEpisode(FeedItem{}))
}

func TestLoadError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &LoadError{Kind: ErrorKindFetch, Err: cause}

	assert.Equal(t, "feed unavailable (fetch): connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "status", ErrorKindStatus.String())
	assert.Equal(t, "parse", ErrorKindParse.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}

func TestLoadResult_Failed(t *testing.T) {
	assert.False(t, LoadResult{}.Failed())
	assert.True(t, LoadResult{Err: &LoadError{Kind: ErrorKindParse}}.Failed())
}
