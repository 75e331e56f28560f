// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog queries the Google Books volumes API, the upstream
// collaborator behind the gateway.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/shelfscope/pkg/types"
)

// volumesBase is the Google Books volumes search endpoint. Declared as a var
// so tests can substitute an httptest server.
var volumesBase = "https://www.googleapis.com/books/v1/volumes"

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 16 << 20

// ErrUpstream wraps every failure of a catalog call: transport errors,
// non-success statuses, and malformed payloads alike.
var ErrUpstream = errors.New("catalog upstream failure")

// Page is one page of upstream results.
type Page struct {
	// TotalItems is the upstream's total match count; 0 when it sent none.
	TotalItems int

	// Items is never nil.
	Items []types.Volume
}

// Client calls the volumes API.
type Client struct {
	HTTP *http.Client

	// APIKey is sent as the key parameter when set.
	APIKey string

	// BaseURL overrides volumesBase when set.
	BaseURL string
}

// Search fetches one page for req. q, startIndex and maxResults are passed
// through unchanged. There are no retries: any failure is returned wrapped
// in ErrUpstream.
func (c *Client) Search(ctx context.Context, req types.SearchRequest) (*Page, error) {
	params := url.Values{
		"q":          {req.Query},
		"startIndex": {strconv.Itoa(req.StartIndex)},
		"maxResults": {strconv.Itoa(req.MaxResults)},
	}
	if c.APIKey != "" {
		params.Set("key", c.APIKey)
	}

	reqURL := c.base() + "?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrUpstream, redact(err))
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: books API request: %w", ErrUpstream, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: books API returned HTTP %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading books API response: %w", ErrUpstream, err)
	}
	if err := validatePayload(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	var vr volumesResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("%w: parsing books API response: %w", ErrUpstream, err)
	}

	page := &Page{TotalItems: vr.TotalItems, Items: vr.Items}
	if page.Items == nil {
		page.Items = []types.Volume{}
	}
	return page, nil
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return volumesBase
}

func (c *Client) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// redact strips the API key from URLs embedded in transport errors so the
// key never reaches logs.
func redact(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		return err
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return &url.Error{Op: uerr.Op, URL: u.String(), Err: uerr.Err}
}

// volumesResponse is the subset of the volumes payload shelfscope reads.
type volumesResponse struct {
	Kind       string         `json:"kind"`
	TotalItems int            `json:"totalItems"`
	Items      []types.Volume `json:"items"`
}
