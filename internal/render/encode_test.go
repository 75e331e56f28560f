// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/shelfscope/pkg/types"
)

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleResult(2), 0, FormatJSON))

	var got types.SearchResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Books, 2)
	assert.Equal(t, 1234, got.TotalResults)
	assert.Equal(t, "Author 1", got.Statistics.MostCommonAuthor)
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleResult(1), 0, FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "totalResults: 1234")
	assert.Contains(t, out, "mostCommonAuthor: Author 1")
	assert.Contains(t, out, "responseTime: 183ms")

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Contains(t, got, "books")
}

func TestEncode_Table(t *testing.T) {
	res := sampleResult(2)
	res.Books = append(res.Books, types.Volume{VolumeInfo: types.VolumeInfo{Title: "Orphan", PublishedDate: "1999"}})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, res, 20, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Authors")
	assert.Contains(t, out, "Published")
	assert.Contains(t, out, "21")
	assert.Contains(t, out, "23")
	assert.Contains(t, out, "Unknown Author")
	assert.Contains(t, out, "Orphan")
	assert.Contains(t, out, "Total Results: 1,234")
	assert.Contains(t, out, "Date Range: 2018-05-05T00:00:00.000Z - 2020-01-01T00:00:00.000Z")
}

func TestEncode_DefaultIsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleResult(1), 0, ""))
	assert.Contains(t, buf.String(), "Total Results:")
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, sampleResult(1), 0, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
	assert.Empty(t, buf.String())
}
