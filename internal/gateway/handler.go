// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdiddy/shelfscope/pkg/types"
)

// UpstreamErrorMessage is the only error text clients see when the catalog
// call fails, whatever the cause.
const UpstreamErrorMessage = "Error fetching data from Google Books API"

// NewHandler returns the gateway router wrapped in its middleware chain.
func NewHandler(svc *Service) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /api/books", searchBooksHandler(svc))
	mux.HandleFunc("GET /health", healthCheckHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	chain := Chain(
		Recovery,
		RequestID,
		RequestLogger,
		Metrics,
		CORS,
		Compress,
	)
	return chain(mux)
}

func searchBooksHandler(svc *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, msg := parseSearchRequest(r)
		if msg != "" {
			respondWithValidationError(w, r, msg)
			return
		}

		result, err := svc.Search(r.Context(), req)
		if err != nil {
			respondWithError(w, r, UpstreamErrorMessage, err, http.StatusInternalServerError)
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	})
}

// parseSearchRequest reads q, startIndex and maxResults. It returns a
// non-empty message when a parameter is invalid.
func parseSearchRequest(r *http.Request) (types.SearchRequest, string) {
	params := r.URL.Query()
	req := types.SearchRequest{
		Query:      params.Get("q"),
		StartIndex: types.DefaultStartIndex,
		MaxResults: types.DefaultMaxResults,
	}
	if req.Query == "" {
		return req, "missing 'q' query parameter"
	}

	if s := params.Get("startIndex"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return req, "invalid 'startIndex' parameter"
		}
		if n < 0 {
			return req, "'startIndex' must be >= 0"
		}
		req.StartIndex = n
	}

	if s := params.Get("maxResults"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return req, "invalid 'maxResults' parameter"
		}
		if n < 1 {
			return req, "'maxResults' must be >= 1"
		}
		req.MaxResults = n
	}
	return req, ""
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}
