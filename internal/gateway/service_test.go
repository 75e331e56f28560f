// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/shelfscope/internal/catalog"
	"github.com/pdiddy/shelfscope/pkg/types"
)

// --- mock catalog ---

type mockCatalog struct {
	page *catalog.Page
	err  error
	got  types.SearchRequest
}

func (m *mockCatalog) Search(_ context.Context, req types.SearchRequest) (*catalog.Page, error) {
	m.got = req
	return m.page, m.err
}

// steppedClock returns t0, then advances by step on every call.
func steppedClock(t0 time.Time, step time.Duration) func() time.Time {
	next := t0
	return func() time.Time {
		cur := next
		next = next.Add(step)
		return cur
	}
}

func TestServiceSearch(t *testing.T) {
	mc := &mockCatalog{page: &catalog.Page{
		TotalItems: 42,
		Items: []types.Volume{
			{VolumeInfo: types.VolumeInfo{Title: "Book 1", Authors: []string{"Author 1"}, PublishedDate: "2020-01-01"}},
			{VolumeInfo: types.VolumeInfo{Title: "Book 2", Authors: []string{"Author 1", "Author 2"}, PublishedDate: "2018-05-05"}},
		},
	}}
	svc := NewService(mc)
	svc.now = steppedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 250*time.Millisecond)

	req := types.SearchRequest{Query: "test", StartIndex: 10, MaxResults: 5}
	res, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req, mc.got)
	assert.Len(t, res.Books, 2)
	assert.Equal(t, 42, res.TotalResults)
	assert.Equal(t, "250ms", res.ResponseTime)
	assert.Equal(t, types.Statistics{
		MostCommonAuthor: "Author 1",
		EarliestDate:     "2018-05-05T00:00:00.000Z",
		LatestDate:       "2020-01-01T00:00:00.000Z",
	}, res.Statistics)
}

func TestServiceSearch_EmptyPageSeedsDates(t *testing.T) {
	svc := NewService(&mockCatalog{page: &catalog.Page{}})
	svc.now = steppedClock(time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC), 10*time.Millisecond)

	res, err := svc.Search(context.Background(), types.SearchRequest{Query: "none"})
	require.NoError(t, err)

	assert.NotNil(t, res.Books)
	assert.Empty(t, res.Books)
	assert.Equal(t, "", res.Statistics.MostCommonAuthor)
	// Third clock reading: start, end, then statistics.
	assert.Equal(t, "2026-02-03T04:05:06.020Z", res.Statistics.EarliestDate)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", res.Statistics.LatestDate)
	assert.Equal(t, "10ms", res.ResponseTime)
}

func TestServiceSearch_UpstreamError(t *testing.T) {
	upstreamErr := fmt.Errorf("%w: books API returned HTTP 503", catalog.ErrUpstream)
	svc := NewService(&mockCatalog{err: upstreamErr})

	res, err := svc.Search(context.Background(), types.SearchRequest{Query: "x"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, catalog.ErrUpstream))
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{999 * time.Microsecond, "0ms"},
		{183 * time.Millisecond, "183ms"},
		{2*time.Second + 5*time.Millisecond, "2005ms"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatElapsed(tt.d))
	}
}
