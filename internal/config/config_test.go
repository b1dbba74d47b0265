package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate tests configuration validation and defaulting
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name:   "empty config gets all defaults",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultRepositoriesFile, c.Repositories.File)
				assert.Equal(t, DefaultOutputFile, c.Output.File)
				assert.Equal(t, DefaultHTTPTimeout, c.HTTP.Timeout)
				assert.Equal(t, DefaultUserAgent, c.HTTP.UserAgent)
			},
		},
		{
			name: "timeout below minimum is reset",
			modify: func(c *Config) {
				c.HTTP.Timeout = 10 * time.Millisecond
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultHTTPTimeout, c.HTTP.Timeout)
			},
		},
		{
			name: "negative retries reset",
			modify: func(c *Config) {
				c.HTTP.MaxRetries = -1
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultMaxRetries, c.HTTP.MaxRetries)
			},
		},
		{
			name: "explicit values survive",
			modify: func(c *Config) {
				c.Repositories.File = "custom.yaml"
				c.Output.File = "out/index.json"
				c.HTTP.Timeout = 2 * time.Minute
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "custom.yaml", c.Repositories.File)
				assert.Equal(t, "out/index.json", c.Output.File)
				assert.Equal(t, 2*time.Minute, c.HTTP.Timeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.modify(cfg)
			require.NoError(t, cfg.Validate())
			tt.check(t, cfg)
		})
	}
}

// TestLoadWithViper tests loading through viper with env overrides
func TestLoadWithViper(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadWithViper(viper.New())
		require.NoError(t, err)
		assert.Equal(t, DefaultRepositoriesFile, cfg.Repositories.File)
		assert.Equal(t, DefaultOutputFile, cfg.Output.File)
		assert.False(t, cfg.Repositories.ContinueOnError)
		assert.Empty(t, cfg.GitHub.Token)
	})

	t.Run("token from environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "tok-abc")

		cfg, err := LoadWithViper(viper.New())
		require.NoError(t, err)
		assert.Equal(t, "tok-abc", cfg.GitHub.Token)
	})

	t.Run("prefixed env override", func(t *testing.T) {
		t.Setenv("EXTINDEX_OUTPUT_FILE", "other.json")

		cfg, err := LoadWithViper(viper.New())
		require.NoError(t, err)
		assert.Equal(t, "other.json", cfg.Output.File)
	})
}
