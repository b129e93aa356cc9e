package main

import (
	"fmt"
	"io"
	"podcasts/internal/app"
	"podcasts/internal/logger"
	"podcasts/internal/render"

	"github.com/spf13/cobra"
)

func renderCommand(configPath *string) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the feed once and print the podcasts page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			// stdout занят страницей, поэтому без файлов логи идут в stderr.
			log, err := logger.NewWithOutputs(cfg.Logger, cmd.ErrOrStderr(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("could not setup logger: %w", err)
			}
			result := app.NewEpisodeLoader(cfg, log).LoadEpisodes(cmd.Context())
			return writePage(cmd.OutOrStdout(), render.RenderPage(result), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: html, markdown or text")
	return cmd
}

func writePage(w io.Writer, page render.Page, format string) error {
	switch format {
	case "html":
		return page.WriteHTML(w)
	case "markdown", "md":
		md, err := page.Markdown()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, md)
		return err
	case "text":
		return page.WriteText(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
