package config

import "time"

// Config represents the application configuration
type Config struct {
	Repositories RepositoriesConfig `mapstructure:"repositories" yaml:"repositories"`
	Output       OutputConfig       `mapstructure:"output" yaml:"output"`
	HTTP         HTTPConfig         `mapstructure:"http" yaml:"http"`
	GitHub       GitHubConfig       `mapstructure:"github" yaml:"github"`
	Logging      LoggingConfig      `mapstructure:"logging" yaml:"logging"`
}

// RepositoriesConfig locates the repository list and controls failure
// handling during traversal.
type RepositoriesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
	// ContinueOnError collects per-repository failures instead of
	// aborting on the first one. The default preserves abort-on-first.
	ContinueOnError bool `mapstructure:"continue_on_error" yaml:"continue_on_error"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// HTTPConfig contains HTTP client settings
type HTTPConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries"`
	UserAgent  string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// GitHubConfig contains GitHub API settings. Token is read once at
// startup (GITHUB_TOKEN) and passed by value from here on.
type GitHubConfig struct {
	Token      string `mapstructure:"token" yaml:"token"`
	APIBaseURL string `mapstructure:"api_base_url" yaml:"api_base_url"`
	RawBaseURL string `mapstructure:"raw_base_url" yaml:"raw_base_url"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for
// invalid values.
func (c *Config) Validate() error {
	if c.Repositories.File == "" {
		c.Repositories.File = DefaultRepositoriesFile
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if c.HTTP.Timeout < time.Second {
		c.HTTP.Timeout = DefaultHTTPTimeout
	}
	if c.HTTP.MaxRetries < 0 {
		c.HTTP.MaxRetries = DefaultMaxRetries
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = DefaultUserAgent
	}
	return nil
}
