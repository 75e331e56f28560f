// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the outbound HTTP client shared by the catalog
// client and the gateway client.
package httputil

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pdiddy/shelfscope/pkg/types"
)

// NewClient returns an http.Client configured from cfg. Requests carry
// cfg.UserAgent and, when cfg.RateLimit is positive, are paced by a token
// bucket holding one token. A zero Timeout leaves the client without a
// deadline. Failed requests are never retried.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: NewTransport(http.DefaultTransport, cfg),
	}
}

// Transport decorates a base RoundTripper with a User-Agent header and an
// optional rate limiter.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
	Limiter   *rate.Limiter
}

// NewTransport wraps base. A nil base falls back to http.DefaultTransport.
func NewTransport(base http.RoundTripper, cfg types.HTTPConfig) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	t := &Transport{Base: base, UserAgent: cfg.UserAgent}
	if cfg.RateLimit > 0 {
		t.Limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return t
}

// RoundTrip waits for a limiter token, bounded by the request context, then
// forwards the request.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	if t.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.UserAgent)
	}
	return t.Base.RoundTrip(req)
}
