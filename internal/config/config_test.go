// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "add_tokens_url": "https://tokens.example.com/add_tokens",
    "request_timeout_ms": 2500,
    "retries": 2,
    "debug_logging": false,
    "wallets_file": "wallets.csv",
    "wallet": "main"
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "Valid config",
			content: validConfigJSON,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://tokens.example.com/add_tokens", cfg.AddTokensURL)
				assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
				assert.Equal(t, 2, cfg.Retries)
				assert.False(t, cfg.DebugLogging)
				assert.Equal(t, "main", cfg.Wallet)
				assert.Equal(t, DefaultLogBufferSize, cfg.LogBufferSize)
			},
		},
		{
			name:    "Empty object uses defaults",
			content: `{}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultAddTokensURL, cfg.AddTokensURL)
				assert.Zero(t, cfg.RequestTimeout)
				assert.Zero(t, cfg.Retries)
				assert.True(t, cfg.DebugLogging)
				assert.Equal(t, DefaultWalletsFile, cfg.WalletsFile)
			},
		},
		{
			name:    "Non-http endpoint",
			content: `{"add_tokens_url": "ws://localhost:8000/add_tokens"}`,
			wantErr: true,
		},
		{
			name:    "Negative retries",
			content: `{"retries": -1}`,
			wantErr: true,
		},
		{
			name:    "Negative timeout",
			content: `{"request_timeout_ms": -5}`,
			wantErr: true,
		},
		{
			name:    "Malformed JSON",
			content: `{"retries": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAddTokensURL, cfg.AddTokensURL)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TOKEN_SETTINGS_ADD_TOKENS_URL", "http://backend:9000/add_tokens")
	t.Setenv("TOKEN_SETTINGS_RETRIES", "4")

	cfg, err := LoadConfig(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000/add_tokens", cfg.AddTokensURL)
	assert.Equal(t, 4, cfg.Retries)
}
