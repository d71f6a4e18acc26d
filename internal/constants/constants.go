// Package constants centralizes connection defaults and environment variable
// names used across the client.
package constants

import "time"

// Connection defaults.
const (
	DefaultProtocol   = "https"
	DefaultAPIDomain  = "api.trello.com"
	DefaultAPIVersion = "1"
	DefaultUserAgent  = "boardkit-trello/1.0"
)

// Timeouts and backoff bounds.
const (
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second
)

// Environment variable keys read by the config loader, relative to the
// TRELLO prefix handled by viper's automatic env binding.
const (
	EnvPrefix     = "TRELLO"
	EnvKeyAPIKey  = "api_key"
	EnvKeyToken   = "api_token"
	EnvKeyDomain  = "api_domain"
	EnvKeyVersion = "api_version"
	EnvKeyProto   = "protocol"
)

// Config file lookup. The file is optional; settings resolve from defaults,
// then file, then environment.
const (
	ConfigFileName = "trello"
	ConfigFileType = "yaml"
)
