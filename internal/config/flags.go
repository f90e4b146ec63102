package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client's command-line flags from args (without the
// program name).
//
// Flags:
//
//	-a server address, host:port or URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d SQLite DSN
//	-auth-mode "mock" or "http"
//	-auth-mock-delay simulated mock backend latency
//	-refresh-interval home feed auto-refresh interval, 0 disables
//	-log-file log file path
//	-c/-config JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var address, dsn, authMode, logFile, configPath string
	var requestTimeout, mockDelay, refreshInterval time.Duration

	fs.StringVar(&address, "a", "", "Server address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dsn, "d", "", "SQLite DSN")
	fs.StringVar(&authMode, "auth-mode", "", "Authentication backend: mock or http")
	fs.DurationVar(&mockDelay, "auth-mock-delay", 0, "Mock backend latency")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Home feed auto-refresh interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: Duration(requestTimeout),
		},
		Auth: Auth{
			Mode:      authMode,
			MockDelay: Duration(mockDelay),
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Home: Home{
			RefreshInterval: Duration(refreshInterval),
		},
		Log:            Log{File: logFile},
		ConfigFilePath: configPath,
	}, nil
}
