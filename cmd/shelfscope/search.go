// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shelfscope/internal/client"
	"github.com/pdiddy/shelfscope/internal/httputil"
	"github.com/pdiddy/shelfscope/internal/render"
	"github.com/pdiddy/shelfscope/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Query the gateway once and print one page of results",
	Long: `Search sends a single query to a running gateway and prints the page of
volumes with its statistics as a table, JSON or YAML.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("gateway", "", "gateway base URL (default http://localhost:3300)")
	searchCmd.Flags().Int("start", types.DefaultStartIndex, "zero-based index of the first result")
	searchCmd.Flags().Int("max-results", types.DefaultMaxResults, "number of results to return")
	searchCmd.Flags().String("format", render.FormatTable, "output format: table, json or yaml")
	_ = viper.BindPFlag("client.gateway_url", searchCmd.Flags().Lookup("gateway"))

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("provide a search term")
	}
	start, _ := cmd.Flags().GetInt("start")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	format, _ := cmd.Flags().GetString("format")

	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	api := client.NewAPI(httputil.NewClient(cfg.Client.HTTPConfig), cfg.Client.GatewayURL)

	var spin *render.Spinner
	if format == render.FormatTable {
		spin = render.StartSpinner(os.Stderr, render.LoadingMessage)
	}
	res, err := api.Search(cmd.Context(), types.SearchRequest{
		Query:      query,
		StartIndex: start,
		MaxResults: maxResults,
	})
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", render.ErrorMessage, err)
	}

	return render.Encode(cmd.OutOrStdout(), res, start, format)
}
