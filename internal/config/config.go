// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the client
// application. It aggregates all sub-configurations and is populated by
// merging values from built-in defaults, an optional config file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - json/yaml: keys used in the config file.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_" json:"app" yaml:"app"`

	// Adapter holds the settings of the outbound HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter" yaml:"adapter"`

	// Auth selects and tunes the authentication backend.
	Auth Auth `envPrefix:"AUTH_" json:"auth" yaml:"auth"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" yaml:"storage"`

	// Home holds settings of the home feed.
	Home Home `envPrefix:"HOME_" json:"home" yaml:"home"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. The format is chosen by extension (.yaml/.yml or JSON otherwise).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI footer.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version" yaml:"version"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the server address, either "host:port" or a full URL
	// (e.g. "https://api.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address" yaml:"http_address"`

	// RequestTimeout is the default timeout of a single outbound request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout" yaml:"request_timeout"`

	// DefaultHeaders are sent with every request.
	// Env: ADAPTER_DEFAULT_HEADERS in the form "Key1:Value1,Key2:Value2"
	DefaultHeaders map[string]string `env:"DEFAULT_HEADERS" json:"default_headers" yaml:"default_headers"`
}

// Auth selects the authentication backend.
type Auth struct {
	// Mode is "mock" for the built-in offline backend or "http" for the
	// server API.
	// Env: AUTH_MODE
	Mode string `env:"MODE" json:"mode" yaml:"mode"`

	// MockDelay is the simulated latency of every mock backend call.
	// Env: AUTH_MOCK_DELAY
	MockDelay Duration `env:"MOCK_DELAY" json:"mock_delay" yaml:"mock_delay"`

	// MockSignKey signs the tokens minted by the mock backend.
	// Env: AUTH_MOCK_SIGN_KEY
	MockSignKey string `env:"MOCK_SIGN_KEY" json:"mock_sign_key" yaml:"mock_sign_key"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_" json:"db" yaml:"db"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn" yaml:"dsn"`
}

// Home holds settings of the home feed.
type Home struct {
	// RefreshInterval enables periodic reloading of the feed while the
	// authenticated session is open. Zero disables it.
	// Env: HOME_REFRESH_INTERVAL
	RefreshInterval Duration `env:"REFRESH_INTERVAL" json:"refresh_interval" yaml:"refresh_interval"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE" json:"file" yaml:"file"`
}

// Defaults returns the configuration used for fields no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: Duration(30 * time.Second),
		},
		Auth: Auth{
			Mode:        AuthModeMock,
			MockDelay:   Duration(time.Second),
			MockSignKey: "mock-auth-sign-key",
		},
		Storage: Storage{
			DB: DB{DSN: "go-app-template.db"},
		},
	}
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags parsed from args
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
