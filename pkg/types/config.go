package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "shelfscope/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RateLimit caps outbound requests per second. Zero or less disables pacing.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`
}

// UpstreamConfig holds settings for the books catalog API.
type UpstreamConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL overrides the volumes endpoint (empty keeps the default).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is sent with every upstream request and never returned to clients.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// GatewayConfig holds settings for the HTTP gateway.
type GatewayConfig struct {
	// Port is the TCP port the gateway listens on (default 3300).
	Port int `json:"port" yaml:"port" mapstructure:"port"`

	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout" yaml:"idle_timeout" mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// ClientConfig holds settings for the terminal search client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// GatewayURL is the base URL of the gateway (default http://localhost:3300).
	GatewayURL string `json:"gateway_url" yaml:"gateway_url" mapstructure:"gateway_url"`

	// Debounce is the quiet period after the last keystroke before a query is
	// issued (default 2s).
	Debounce time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`

	// PageSize is the initial page size (default 10).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// PageSizes lists the selectable page sizes (default 5, 10, 20).
	PageSizes []int `json:"page_sizes" yaml:"page_sizes" mapstructure:"page_sizes"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	// Level is a logrus level name (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all component configurations.
type Config struct {
	Gateway  GatewayConfig  `json:"gateway" yaml:"gateway" mapstructure:"gateway"`
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream" mapstructure:"upstream"`
	Client   ClientConfig   `json:"client" yaml:"client" mapstructure:"client"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}
