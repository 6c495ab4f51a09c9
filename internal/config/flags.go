package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client configuration flags from args (typically
// os.Args[1:]).
//
// Flags:
//
//	-a/-api API base URL (e.g. http://localhost:8080)
//	-request-timeout outbound request timeout (e.g. "30s", "1m")
//	-notify-timeout notification display time (e.g. "5s")
//	-poll-interval service status poll interval (e.g. "10s")
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var apiBaseURL string
	var requestTimeout time.Duration
	var notifyTimeout time.Duration
	var pollInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("subfinder-client", flag.ContinueOnError)
	fs.StringVar(&apiBaseURL, "a", "", "API base URL")
	fs.StringVar(&apiBaseURL, "api", "", "API base URL (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&notifyTimeout, "notify-timeout", 0, "Notification display time (e.g., 5s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Service status poll interval (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Notify:       Notify{Timeout: notifyTimeout},
		Workers:      Workers{PollInterval: pollInterval},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}
