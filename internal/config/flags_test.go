package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "short api flag",
			args: []string{"-a", "http://localhost:9000"},
			want: &StructuredConfig{API: API{BaseURL: "http://localhost:9000"}},
		},
		{
			name: "long api alias",
			args: []string{"-api=http://10.0.0.1:8080"},
			want: &StructuredConfig{API: API{BaseURL: "http://10.0.0.1:8080"}},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "http://localhost:8081",
				"-request-timeout", "45s",
				"-notify-timeout", "3s",
				"-poll-interval", "2m",
				"-log-level", "warn",
				"-config", "/etc/subfinder-client.json",
			},
			want: &StructuredConfig{
				API:          API{BaseURL: "http://localhost:8081", RequestTimeout: 45 * time.Second},
				Notify:       Notify{Timeout: 3 * time.Second},
				Workers:      Workers{PollInterval: 2 * time.Minute},
				Log:          Log{Level: "warn"},
				JSONFilePath: "/etc/subfinder-client.json",
			},
		},
		{
			name: "short config alias",
			args: []string{"-c", "cfg.json"},
			want: &StructuredConfig{JSONFilePath: "cfg.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "missing value", args: []string{"-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
