package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"podcasts/internal/domain"
	"podcasts/internal/render"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePage_Formats(t *testing.T) {
	page := render.RenderPage(domain.LoadResult{Episodes: []domain.Episode{
		{Image: "http://x/img.png", Name: "Jane Doe, part 1", Source: "http://x/ep1.mp3", Story: "A story."},
	}})
	for _, format := range []string{"html", "markdown", "text"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writePage(&buf, page, format))
			assert.Contains(t, buf.String(), "Jane Doe")
		})
	}

	var buf bytes.Buffer
	assert.ErrorContains(t, writePage(&buf, page, "pdf"), "unknown format")
}

func TestRenderCommand(t *testing.T) {
	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"><channel><title>T</title><item><title>John Smith Interview</title><link>http://x/ep2.mp3</link><itunes:image href="http://x/img2.png"/></item></channel></rss>`))
	}))
	defer feedServer.Close()
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	logPath := filepath.Join(t.TempDir(), "podcasts.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"app":{"feed_url":"`+feedServer.URL+`"},"logger":{"level":"info","file":"`+logPath+`"}}`), 0o644))

	cmd := renderCommand(&cfgPath)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "html"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `alt="John Smith"`)
	assert.Contains(t, out.String(), `src="http://x/ep2.mp3"`)
	assert.NotContains(t, out.String(), "Episodes loaded")
	logData, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Episodes loaded")
}
