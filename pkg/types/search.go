// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the gateway, the
// catalog client, and the terminal search client.
package types

import "encoding/json"

// Volume is one catalog entry as returned by the upstream books API. The
// gateway only reads it; when a Volume was decoded from upstream JSON it is
// re-encoded from the original bytes so that fields shelfscope does not model
// still reach the client.
type Volume struct {
	// ID is the upstream volume identifier.
	ID string `json:"id" yaml:"id"`

	// VolumeInfo carries the bibliographic fields.
	VolumeInfo VolumeInfo `json:"volumeInfo" yaml:"volumeInfo"`

	raw json.RawMessage
}

// VolumeInfo holds the subset of bibliographic fields shelfscope reads.
type VolumeInfo struct {
	Title         string   `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle      string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Authors       []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Publisher     string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty" yaml:"publishedDate,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	PageCount     int      `json:"pageCount,omitempty" yaml:"pageCount,omitempty"`
	Categories    []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Language      string   `json:"language,omitempty" yaml:"language,omitempty"`
	InfoLink      string   `json:"infoLink,omitempty" yaml:"infoLink,omitempty"`
}

// volumeFields has Volume's fields without its JSON methods.
type volumeFields Volume

// UnmarshalJSON decodes the modelled fields and keeps a copy of the payload.
func (v *Volume) UnmarshalJSON(data []byte) error {
	var f volumeFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Volume(f)
	v.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the original payload when there is one.
func (v Volume) MarshalJSON() ([]byte, error) {
	if len(v.raw) > 0 {
		return v.raw, nil
	}
	return json.Marshal(volumeFields(v))
}

// SearchRequest is one page request: a free-text query plus an offset and a
// page size.
type SearchRequest struct {
	Query      string `json:"q" yaml:"q"`
	StartIndex int    `json:"startIndex" yaml:"startIndex"`
	MaxResults int    `json:"maxResults" yaml:"maxResults"`
}

// Default page parameters used when a request omits them.
const (
	DefaultStartIndex = 0
	DefaultMaxResults = 10
)

// Statistics summarises one page of Volumes. Dates are ISO-8601 UTC strings
// with millisecond precision.
type Statistics struct {
	MostCommonAuthor string `json:"mostCommonAuthor" yaml:"mostCommonAuthor"`
	EarliestDate     string `json:"earliestDate" yaml:"earliestDate"`
	LatestDate       string `json:"latestDate" yaml:"latestDate"`
}

// SearchResult is the gateway response envelope. It is built fresh for every
// request and never stored.
type SearchResult struct {
	// Books is the requested page of Volumes; never nil on the wire.
	Books []Volume `json:"books" yaml:"books"`

	// TotalResults is the total reported by the upstream API.
	TotalResults int `json:"totalResults" yaml:"totalResults"`

	Statistics Statistics `json:"statistics" yaml:"statistics"`

	// ResponseTime is the upstream latency, e.g. "183ms".
	ResponseTime string `json:"responseTime" yaml:"responseTime"`
}

// ErrorResponse is the JSON body of every gateway error.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}
