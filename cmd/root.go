// Package cmd contains the seo-audit CLI commands
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seo-optimizer/audit-api/analyzer"
	"github.com/seo-optimizer/audit-api/audit"
	"github.com/seo-optimizer/audit-api/config"
	"github.com/seo-optimizer/audit-api/logging"
	"github.com/seo-optimizer/audit-api/metrics"
	"github.com/seo-optimizer/audit-api/openai"
	"github.com/seo-optimizer/audit-api/serpapi"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seo-audit",
	Short: "SEO audit API",
	Long: `seo-audit fetches a webpage, looks up competitors for a keyword and asks a
language model for brand voice and visual suggestions.

Example usage:
  seo-audit serve                                        # Start the HTTP API
  seo-audit audit --url https://example.com --keyword widgets`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		return initConfig()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func initConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	logger = logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)
	return nil
}

// newService wires the three collaborators around one shared HTTP client
func newService(recorder *metrics.Recorder) *audit.Service {
	client := analyzer.NewHTTPClient(cfg.HTTPTimeout)

	opts := []audit.Option{audit.WithLogger(logger)}
	if recorder != nil {
		opts = append(opts, audit.WithObserver(recorder))
	}

	return audit.NewService(
		analyzer.New(client),
		serpapi.NewClient(cfg.SearchAPIKey, cfg.SearchBaseURL, client),
		openai.New(cfg.CompletionAPIKey,
			openai.WithBaseURL(cfg.CompletionBaseURL),
			openai.WithModel(cfg.CompletionModel),
			openai.WithHTTPClient(client),
		),
		opts...,
	)
}
