// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats derives summary statistics from one page of Volumes.
package stats

import (
	"time"

	"github.com/pdiddy/shelfscope/pkg/types"
)

// TimestampLayout renders ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// dateLayouts lists the publishedDate shapes the upstream API emits, most
// specific last. Partial dates resolve to the first day of the period.
var dateLayouts = []string{
	"2006",
	"2006-01",
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// epoch is the seed for the latest date.
var epoch = time.Unix(0, 0).UTC()

// Compute returns the most common author and the publication date bounds of
// volumes. now seeds the earliest date, so a page without any parseable
// date reports earliest = now and latest = the Unix epoch.
func Compute(volumes []types.Volume, now time.Time) types.Statistics {
	counts := make(map[string]int)
	var order []string

	earliest := now.UTC()
	latest := epoch

	for _, v := range volumes {
		for _, author := range v.VolumeInfo.Authors {
			if _, seen := counts[author]; !seen {
				order = append(order, author)
			}
			counts[author]++
		}

		published, ok := ParseDate(v.VolumeInfo.PublishedDate)
		if !ok {
			continue
		}
		if published.Before(earliest) {
			earliest = published
		}
		if published.After(latest) {
			latest = published
		}
	}

	return types.Statistics{
		MostCommonAuthor: mostCommon(order, counts),
		EarliestDate:     FormatTimestamp(earliest),
		LatestDate:       FormatTimestamp(latest),
	}
}

// mostCommon scans authors in first-seen order and replaces the leader only
// on a strictly greater count, so ties go to the earliest author.
func mostCommon(order []string, counts map[string]int) string {
	leader, best := "", 0
	for _, author := range order {
		if counts[author] > best {
			leader, best = author, counts[author]
		}
	}
	return leader
}

// ParseDate parses a publishedDate value. It reports false for empty or
// malformed input.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders t in UTC as 2006-01-02T15:04:05.000Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
