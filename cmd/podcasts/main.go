package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "podcasts",
		Short:         "Podcasts serves the Operation Code podcast page built from the show's RSS feed",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json", "path to a JSON, TOML or YAML config file; empty for defaults")

	rootCmd.AddCommand(serveCommand(&configPath))
	rootCmd.AddCommand(renderCommand(&configPath))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
