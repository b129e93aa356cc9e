package render

import (
	"bytes"
	"errors"
	"podcasts/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioPage() Page {
	return RenderPage(domain.LoadResult{Episodes: []domain.Episode{
		{Image: "http://x/img.png", Name: "Jane Doe, part 1", Source: "http://x/ep1.mp3", Story: "A story."},
		{Image: "http://x/img2.png", Name: "John Smith Interview", Source: "http://x/ep2.mp3", Story: "Another."},
	}})
}

func failedPage() Page {
	return RenderPage(domain.LoadResult{Err: &domain.LoadError{Kind: domain.ErrorKindFetch, Err: errors.New("down")}})
}

func TestPage_WriteHTML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, scenarioPage().WriteHTML(&buf))

	out := buf.String()
	assert.Contains(t, out, "<title>Podcasts</title>")
	assert.Contains(t, out, BannerBody)
	assert.Equal(t, 2, strings.Count(out, `data-testid="podcast-card"`))
	assert.Contains(t, out, `<img src="http://x/img.png" alt="Jane Doe">`)
	assert.Contains(t, out, `<audio src="http://x/ep1.mp3" controls`)
	assert.Contains(t, out, "<summary>Jane Doe, part 1</summary>")
	assert.Contains(t, out, "<p>A story.</p>")
	assert.NotContains(t, out, `role="alert"`)
	assert.Less(t, strings.Index(out, "Jane Doe, part 1"), strings.Index(out, "John Smith Interview"))
}

func TestPage_WriteHTML_Failure(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, failedPage().WriteHTML(&buf))

	out := buf.String()
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, FailureMessage)
	assert.NotContains(t, out, "podcast-card")
}

func TestPage_WriteHTML_EscapesFeedContent(t *testing.T) {
	page := RenderPage(domain.LoadResult{Episodes: []domain.Episode{
		{Name: `<script>alert(1)</script>`, Story: "a < b"},
	}})
	var buf bytes.Buffer

	require.NoError(t, page.WriteHTML(&buf))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestPage_Markdown(t *testing.T) {
	md, err := scenarioPage().Markdown()

	require.NoError(t, err)
	assert.Contains(t, md, "# Podcasts")
	assert.Contains(t, md, "![Jane Doe](http://x/img.png)")
	assert.Contains(t, md, "Jane Doe, part 1")
	assert.NotContains(t, md, "<title>")
}

func TestPage_Markdown_Failure(t *testing.T) {
	md, err := failedPage().Markdown()

	require.NoError(t, err)
	assert.Contains(t, md, "Something went wrong on our end")
	assert.NotContains(t, md, "Jane Doe")
}

func TestPage_WriteText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, scenarioPage().WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "Podcasts")
	assert.Contains(t, out, "Jane Doe, part 1")
	assert.Contains(t, out, "guest: John Smith")
	assert.Contains(t, out, "audio: http://x/ep2.mp3")
}

func TestPage_WriteText_Failure(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, failedPage().WriteText(&buf))

	assert.Contains(t, buf.String(), FailureMessage)
	assert.NotContains(t, buf.String(), "audio:")
}
