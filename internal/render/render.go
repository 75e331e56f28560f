// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render draws search sessions and results for a terminal.
package render

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/shelfscope/internal/client"
	"github.com/pdiddy/shelfscope/pkg/types"
)

// Fixed messages shown for each session status.
const (
	LoadingMessage       = "Loading..."
	ErrorMessage         = "Error fetching data"
	PromptMessage        = "Enter a search term to get started!"
	UnknownAuthor        = "Unknown Author"
	NoDescriptionMessage = "No description available for this book."
)

// detailWidth is the wrap width for descriptions.
const detailWidth = 76

var (
	stripPolicy = bluemonday.StrictPolicy()
	printer     = message.NewPrinter(language.English)

	// Break tags would otherwise glue adjacent words together once
	// stripped.
	breakTags = strings.NewReplacer("<br>", " ", "<br/>", " ", "<br />", " ", "</p>", " ", "</li>", " ")
)

// Render writes st to w.
func Render(w io.Writer, st client.State) error {
	s := newStyles(w)
	var b strings.Builder

	switch st.Status {
	case client.StatusLoading:
		b.WriteString(s.loading.Render(LoadingMessage))
		b.WriteString("\n")
	case client.StatusFailed:
		b.WriteString(s.errorMsg.Render(ErrorMessage))
		b.WriteString("\n")
	case client.StatusReady:
		if st.Result != nil {
			writeResult(&b, s, st)
			break
		}
		fallthrough
	default:
		b.WriteString(s.noData.Render(PromptMessage))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeResult(b *strings.Builder, s styles, st client.State) {
	res := st.Result
	summary := strings.Join([]string{
		s.label.Render("Total Results:") + " " + printer.Sprintf("%d", res.TotalResults),
		s.label.Render("Most Common Author:") + " " + res.Statistics.MostCommonAuthor,
		s.label.Render("Date Range:") + " " + res.Statistics.EarliestDate + " - " + res.Statistics.LatestDate,
		s.label.Render("Response Time:") + " " + res.ResponseTime,
	}, "\n")
	b.WriteString(s.summary.Render(summary))
	b.WriteString("\n\n")

	for i, v := range res.Books {
		num := printer.Sprintf("%d.", st.StartIndex()+i+1)
		fmt.Fprintf(b, "%s %s - %s\n", num, s.authors.Render(Authors(v.VolumeInfo)), s.title.Render(v.VolumeInfo.Title))
		b.WriteString(s.details.Render(Description(v.VolumeInfo)))
		b.WriteString("\n\n")
	}

	b.WriteString(footer(s, st))
	b.WriteString("\n")
}

// footer shows the pagination controls and the page-size choices.
func footer(s styles, st client.State) string {
	prev := s.disabled.Render("  Previous  ")
	if st.CanPrev() {
		prev = s.enabled.Render("[ Previous ]")
	}
	next := s.disabled.Render("  Next  ")
	if st.CanNext() {
		next = s.enabled.Render("[ Next ]")
	}

	sizes := make([]string, 0, len(st.PageSizes))
	for _, n := range st.PageSizes {
		label := strconv.Itoa(n)
		if n == st.PageSize {
			label = s.selected.Render("[" + label + "]")
		}
		sizes = append(sizes, label)
	}

	return fmt.Sprintf("%s  Page %d  %s    Page size: %s",
		prev, st.Page+1, next, strings.Join(sizes, " "))
}

// Authors joins the volume's authors, or names it as unknown.
func Authors(v types.VolumeInfo) string {
	if len(v.Authors) == 0 {
		return UnknownAuthor
	}
	return strings.Join(v.Authors, ", ")
}

// Description returns the volume description as plain text, or a
// placeholder when it has none.
func Description(v types.VolumeInfo) string {
	text := PlainText(v.Description)
	if text == "" {
		return NoDescriptionMessage
	}
	return text
}

// PlainText strips markup from s and collapses its whitespace.
func PlainText(s string) string {
	s = stripPolicy.Sanitize(breakTags.Replace(s))
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}
