// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/shelfscope/internal/secrets"
	"github.com/pdiddy/shelfscope/pkg/types"
)

const (
	defaultPort       = 3300
	defaultGatewayURL = "http://localhost:3300"
	defaultDebounce   = 2 * time.Second
	defaultPageSize   = 10
)

var defaultPageSizes = []int{5, 10, 20}

// setDefaults registers every config key so that environment variables
// reach them through Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("gateway.port", defaultPort)
	v.SetDefault("gateway.read_timeout", 0)
	v.SetDefault("gateway.write_timeout", 0)
	v.SetDefault("gateway.idle_timeout", 0)
	v.SetDefault("gateway.shutdown_timeout", 30*time.Second)

	v.SetDefault("upstream.base_url", "")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.timeout", 0)
	v.SetDefault("upstream.user_agent", "")
	v.SetDefault("upstream.rate_limit", 0)

	v.SetDefault("client.gateway_url", defaultGatewayURL)
	v.SetDefault("client.timeout", 0)
	v.SetDefault("client.user_agent", "")
	v.SetDefault("client.rate_limit", 0)
	v.SetDefault("client.debounce", defaultDebounce)
	v.SetDefault("client.page_size", defaultPageSize)
	v.SetDefault("client.page_sizes", defaultPageSizes)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// bindEnv maps SHELFSCOPE_<SECTION>_<KEY> variables onto config keys. The
// upstream key is also read from API_KEY.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("SHELFSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("upstream.api_key", "SHELFSCOPE_UPSTREAM_API_KEY", "API_KEY")
}

// loadConfig decodes v into a Config. The upstream key falls back to the
// secrets file when neither config nor environment set it.
func loadConfig(v *viper.Viper, s secrets.Set) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Upstream.APIKey = s.Get(secrets.GoogleBooksAPIKey, cfg.Upstream.APIKey)

	ua := "shelfscope/" + version
	if cfg.Upstream.UserAgent == "" {
		cfg.Upstream.UserAgent = ua
	}
	if cfg.Client.UserAgent == "" {
		cfg.Client.UserAgent = ua
	}
	return cfg, nil
}
