package config

import "time"

// Default configuration values
const (
	DefaultRepositoriesFile = "repositories.json"
	DefaultOutputFile       = "extindex.json"
	DefaultHTTPTimeout      = 30 * time.Second
	DefaultMaxRetries       = 3
	DefaultUserAgent        = "FlashpointExtensionIndex"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "pretty"
)
