package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the API root every endpoint path is appended to.
	BaseURL string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientNotify holds notification settings.
type ClientNotify struct {
	// Timeout is how long an error notification stays visible.
	Timeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the status poller runs.
	PollInterval time.Duration
}

// ClientLog contains logging settings.
type ClientLog struct {
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Notify  ClientNotify
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Notify:  ClientNotify{Timeout: cfg.Notify.Timeout},
		Workers: ClientWorkers{PollInterval: cfg.Workers.PollInterval},
		Log:     ClientLog{Level: cfg.Log.Level},
	}
}
