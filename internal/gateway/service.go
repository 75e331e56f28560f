// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gateway serves the book search endpoint. It forwards each query to
// the catalog API, annotates the returned page with statistics, and reports
// the upstream latency. The gateway keeps no state between requests.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/shelfscope/internal/catalog"
	"github.com/pdiddy/shelfscope/internal/logger"
	"github.com/pdiddy/shelfscope/internal/metrics"
	"github.com/pdiddy/shelfscope/internal/stats"
	"github.com/pdiddy/shelfscope/pkg/types"
)

// Catalog fetches one page of upstream results. *catalog.Client implements it.
type Catalog interface {
	Search(ctx context.Context, req types.SearchRequest) (*catalog.Page, error)
}

// Service runs a search against the catalog and builds the response envelope.
type Service struct {
	catalog Catalog
	now     func() time.Time
}

// NewService returns a Service backed by c.
func NewService(c Catalog) *Service {
	return &Service{catalog: c, now: time.Now}
}

// Search calls the catalog once. The response time covers the span from
// just before the upstream call to receipt of its decoded response.
func (s *Service) Search(ctx context.Context, req types.SearchRequest) (*types.SearchResult, error) {
	defer logger.Track(ctx, "catalog search")()

	start := s.now()
	page, err := s.catalog.Search(ctx, req)
	elapsed := s.now().Sub(start)
	metrics.UpstreamDuration.Observe(elapsed.Seconds())
	if err != nil {
		metrics.UpstreamFailures.Inc()
		return nil, fmt.Errorf("searching catalog for %q: %w", req.Query, err)
	}

	books := page.Items
	if books == nil {
		books = []types.Volume{}
	}

	return &types.SearchResult{
		Books:        books,
		TotalResults: page.TotalItems,
		Statistics:   stats.Compute(books, s.now()),
		ResponseTime: formatElapsed(elapsed),
	}, nil
}

// formatElapsed renders d as whole milliseconds with a unit suffix.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
