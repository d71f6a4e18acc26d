package trello

import (
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a trello.Client.
//
// Key and Token are the two opaque credential values issued by Trello; they
// are required and validated before any network call is attempted. All other
// fields have working defaults applied by trelloclient.New.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods; HTTPTimeout is the transport-level ceiling. Retries are
// disabled unless RetryMax is set: a non-200 response is an immediate hard
// failure for the triggering call.
type Config struct {
	// Protocol is the URL scheme, "https" unless overridden.
	Protocol string `validate:"omitempty,oneof=http https"`
	// APIDomain is the API host, "api.trello.com" unless overridden.
	APIDomain string
	// APIVersion is the version path segment, "1" unless overridden.
	APIVersion string

	// Key is the Trello API key.
	Key string `validate:"required"`
	// Token is the Trello API token.
	Token string `validate:"required"`

	// HTTPTimeout is the transport timeout for a single request.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries for
	// transient failures. 0 disables retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging through Logger.
	Debug bool
	// Logger is the structured logger used by the transport. When Debug is
	// set and Logger is nil, a zerolog-backed logger writing to stderr is
	// installed.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
