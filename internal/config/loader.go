package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults using
// the global viper instance so CLI flag bindings apply.
func Load() (*Config, error) {
	return load(viper.GetViper())
}

// LoadWithViper loads configuration from a dedicated viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings
	v.SetConfigName("extindex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (EXTINDEX_*)
	v.SetEnvPrefix("EXTINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential keeps its conventional variable name.
	_ = v.BindEnv("github.token", "GITHUB_TOKEN")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("repositories.file", DefaultRepositoriesFile)
	v.SetDefault("repositories.continue_on_error", false)
	v.SetDefault("output.file", DefaultOutputFile)
	v.SetDefault("http.timeout", DefaultHTTPTimeout)
	v.SetDefault("http.max_retries", DefaultMaxRetries)
	v.SetDefault("http.user_agent", DefaultUserAgent)
	v.SetDefault("github.token", "")
	v.SetDefault("github.api_base_url", "")
	v.SetDefault("github.raw_base_url", "")
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
