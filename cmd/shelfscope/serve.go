// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shelfscope/internal/catalog"
	"github.com/pdiddy/shelfscope/internal/gateway"
	"github.com/pdiddy/shelfscope/internal/httputil"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the search gateway",
	Long: `Serve runs the HTTP gateway. GET /api/books?q=...&startIndex=...&maxResults=...
forwards the search to Google Books with the server-held API key and returns
the page of volumes with its statistics. /health and /metrics are served
alongside. The gateway shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (default 3300)")
	serveCmd.Flags().Duration("upstream-timeout", 0, "timeout for Google Books requests (default none)")
	serveCmd.Flags().Float64("upstream-rate", 0, "max Google Books requests per second (default unlimited)")
	_ = viper.BindPFlag("gateway.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("upstream.timeout", serveCmd.Flags().Lookup("upstream-timeout"))
	_ = viper.BindPFlag("upstream.rate_limit", serveCmd.Flags().Lookup("upstream-rate"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	if cfg.Upstream.APIKey == "" {
		logrus.Warn("no Google Books API key configured, upstream requests are unauthenticated")
	}

	books := &catalog.Client{
		HTTP:    httputil.NewClient(cfg.Upstream.HTTPConfig),
		APIKey:  cfg.Upstream.APIKey,
		BaseURL: cfg.Upstream.BaseURL,
	}
	handler := gateway.NewHandler(gateway.NewService(books))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return gateway.NewServer(cfg.Gateway, handler).Run(ctx)
}
