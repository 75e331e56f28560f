// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package client talks to the gateway and keeps the state of an interactive
// search session: the debounced query, the current page and the page size.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/shelfscope/pkg/types"
)

// ErrGateway wraps every failure of a gateway call.
var ErrGateway = errors.New("gateway request failed")

// API calls the gateway's /api/books endpoint.
type API struct {
	HTTP    *http.Client
	BaseURL string
}

// NewAPI returns an API for the gateway at baseURL.
func NewAPI(httpClient *http.Client, baseURL string) *API {
	return &API{HTTP: httpClient, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Search fetches one page of results. Any non-2xx status, transport failure
// or undecodable body is returned wrapping ErrGateway.
func (a *API) Search(ctx context.Context, req types.SearchRequest) (*types.SearchResult, error) {
	params := url.Values{
		"q":          {req.Query},
		"startIndex": {strconv.Itoa(req.StartIndex)},
		"maxResults": {strconv.Itoa(req.MaxResults)},
	}
	reqURL := a.BaseURL + "/api/books?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrGateway, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	hc := a.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er types.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil && er.Error != "" {
			return nil, fmt.Errorf("%w: HTTP %d: %s", ErrGateway, resp.StatusCode, er.Error)
		}
		return nil, fmt.Errorf("%w: HTTP %d", ErrGateway, resp.StatusCode)
	}

	var result types.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: parsing response: %w", ErrGateway, err)
	}
	if result.Books == nil {
		result.Books = []types.Volume{}
	}
	return &result, nil
}
