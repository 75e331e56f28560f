// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/shelfscope/pkg/types"
)

// Output formats accepted by Encode.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Encode writes one page of results in the given format. startIndex numbers
// the table rows.
func Encode(w io.Writer, res *types.SearchResult, startIndex int, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return nil
	case FormatTable, "":
		return encodeTable(w, res, startIndex)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatTable, FormatJSON, FormatYAML)
	}
}

func encodeTable(w io.Writer, res *types.SearchResult, startIndex int) error {
	s := newStyles(w)

	rows := make([][]string, 0, len(res.Books))
	for i, v := range res.Books {
		rows = append(rows, []string{
			strconv.Itoa(startIndex + i + 1),
			Authors(v.VolumeInfo),
			v.VolumeInfo.Title,
			v.VolumeInfo.PublishedDate,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.noData).
		Headers("#", "Authors", "Title", "Published").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%s %s\n%s %s\n%s %s - %s\n%s %s\n",
		t.String(),
		s.label.Render("Total Results:"), printer.Sprintf("%d", res.TotalResults),
		s.label.Render("Most Common Author:"), res.Statistics.MostCommonAuthor,
		s.label.Render("Date Range:"), res.Statistics.EarliestDate, res.Statistics.LatestDate,
		s.label.Render("Response Time:"), res.ResponseTime,
	)
	return err
}
