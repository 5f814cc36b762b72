// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "crossref-mcp/0.1"). CrossRef asks clients to identify
	// themselves; the mailto address is appended when configured.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CrossrefConfig holds settings for the CrossRef works client.
type CrossrefConfig struct {
	HTTPConfig `yaml:",inline"`

	// Mailto is the contact address sent with requests for access to the
	// CrossRef polite pool.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// MaxRetries is the number of retries on HTTP 429. The default (0)
	// makes every lookup a single best-effort attempt.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CacheConfig holds settings for the optional lookup cache.
type CacheConfig struct {
	// Path is the SQLite database file. Empty disables caching entirely,
	// keeping every tool call stateless.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoggingConfig holds diagnostic output settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// Format is "json" or "console".
	Format string `json:"format" yaml:"format"`
}

// Config groups all component configurations.
type Config struct {
	Crossref CrossrefConfig `json:"crossref" yaml:"crossref"`
	Cache    CacheConfig    `json:"cache" yaml:"cache"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}
