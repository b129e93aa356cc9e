package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/charmbracelet/lipgloss/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	bannerStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	alertStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	episodeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	spacerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// WriteHTML записывает страницу целиком как HTML-документ.
func (p Page) WriteHTML(w io.Writer) error {
	if err := pageTemplates.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Markdown возвращает содержимое страницы (без head) в формате Markdown.
func (p Page) Markdown() (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "content", p); err != nil {
		return "", fmt.Errorf("failed to render page content: %w", err)
	}
	mdc := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	md, err := mdc.ConvertString(buf.String())
	if err != nil {
		return "", fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	return md, nil
}

// WriteText выводит страницу в терминал.
func (p Page) WriteText(w io.Writer) error {
	lines := []string{
		titleStyle.Render(p.Banner.Title),
		bannerStyle.Render(p.Banner.Body),
		"",
	}
	if p.Alert != nil {
		lines = append(lines, alertStyle.Render(p.Alert.Message))
	}
	for _, c := range p.Cards {
		lines = append(lines,
			episodeStyle.Render(c.Accordion.Title),
			detailStyle.Render("  guest: "+c.Image.Alt),
			detailStyle.Render("  audio: "+c.Player.Source),
			detailStyle.Render("  image: "+c.Image.Src),
		)
		if c.Accordion.Content != "" {
			lines = append(lines, "  "+c.Accordion.Content)
		}
		lines = append(lines, spacerStyle.Render("  ---"))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
