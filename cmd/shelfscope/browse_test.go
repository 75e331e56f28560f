// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/shelfscope/internal/client"
	"github.com/pdiddy/shelfscope/pkg/types"
)

// pagedSearcher serves total volumes for any query.
type pagedSearcher struct{ total int }

func (p pagedSearcher) Search(_ context.Context, req types.SearchRequest) (*types.SearchResult, error) {
	books := []types.Volume{}
	for i := req.StartIndex; i < p.total && i < req.StartIndex+req.MaxResults; i++ {
		books = append(books, types.Volume{VolumeInfo: types.VolumeInfo{Title: fmt.Sprintf("Book %d", i)}})
	}
	return &types.SearchResult{Books: books, TotalResults: p.total, ResponseTime: "1ms"}, nil
}

func newBrowseSession(t *testing.T, total int) *client.Session {
	t.Helper()
	sess, err := client.NewSession(context.Background(), pagedSearcher{total: total}, client.Options{Debounce: time.Hour})
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	return sess
}

func waitStatus(t *testing.T, sess *client.Session, want client.Status) client.State {
	t.Helper()
	require.Eventually(t, func() bool { return sess.Snapshot().Status == want }, 2*time.Second, 5*time.Millisecond)
	return sess.Snapshot()
}

func TestHandleLine_Commands(t *testing.T) {
	sess := newBrowseSession(t, 15)

	quit, msg := handleLine(sess, "dune")
	assert.False(t, quit)
	assert.Empty(t, msg)
	assert.Equal(t, "dune", sess.Snapshot().Query)
	assert.Equal(t, client.StatusIdle, sess.Snapshot().Status, "debounce has not elapsed")

	_, msg = handleLine(sess, ":prev")
	assert.Equal(t, "already on the first page", msg)
	_, msg = handleLine(sess, ":next")
	assert.Equal(t, "no next page", msg)

	_, msg = handleLine(sess, ":go")
	assert.Empty(t, msg)
	st := waitStatus(t, sess, client.StatusReady)
	assert.Len(t, st.Result.Books, 10)

	_, msg = handleLine(sess, ":next")
	assert.Empty(t, msg)
	st = waitStatus(t, sess, client.StatusReady)
	assert.Equal(t, 1, st.Page)
	assert.Len(t, st.Result.Books, 5)

	_, msg = handleLine(sess, ":prev")
	assert.Empty(t, msg)
	assert.Equal(t, 0, sess.Snapshot().Page)
	waitStatus(t, sess, client.StatusReady)

	_, msg = handleLine(sess, ":size 20")
	assert.Empty(t, msg)
	st = waitStatus(t, sess, client.StatusReady)
	assert.Equal(t, 20, st.PageSize)
	assert.Len(t, st.Result.Books, 15)

	_, msg = handleLine(sess, ":clear")
	assert.Empty(t, msg)
	assert.Equal(t, client.StatusIdle, sess.Snapshot().Status)

	quit, _ = handleLine(sess, ":quit")
	assert.True(t, quit)
}

func TestHandleLine_Errors(t *testing.T) {
	sess := newBrowseSession(t, 0)

	tests := []struct {
		input string
		want  string
	}{
		{":size", "usage: :size N"},
		{":size big", `invalid page size "big"`},
		{":size 7", "page size 7 is not one of [5 10 20]"},
		{":bogus", "unknown command :bogus (try :help)"},
	}
	for _, tt := range tests {
		quit, msg := handleLine(sess, tt.input)
		assert.False(t, quit, tt.input)
		assert.Equal(t, tt.want, msg, tt.input)
	}

	_, msg := handleLine(sess, ":help")
	assert.Contains(t, msg, ":size N")
}

func TestViewer_RedrawsOnChange(t *testing.T) {
	var out bytes.Buffer
	v := newViewer(&out, nil)

	idle := client.State{Status: client.StatusIdle, PageSize: 10}
	v.update(idle)
	v.update(idle)
	assert.Equal(t, 1, strings.Count(out.String(), "Enter a search term to get started!"))

	v.update(client.State{Status: client.StatusLoading, PageSize: 10})
	assert.NotContains(t, out.String(), "Loading...", "loading is shown by the spinner")

	res := &types.SearchResult{Books: []types.Volume{{VolumeInfo: types.VolumeInfo{Title: "Dune"}}}, TotalResults: 1}
	v.update(client.State{Status: client.StatusReady, Result: res, PageSize: 10, PageSizes: []int{5, 10, 20}})
	assert.Contains(t, out.String(), "1. Unknown Author - Dune")

	v.update(client.State{Status: client.StatusFailed, PageSize: 10})
	assert.Contains(t, out.String(), "Error fetching data")
	v.close()
}
