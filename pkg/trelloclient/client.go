// Package trelloclient provides the main entry point for creating Trello API clients
package trelloclient

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/boardkit-io/trello/internal/client"
	"github.com/boardkit-io/trello/internal/config"
	"github.com/boardkit-io/trello/internal/constants"
	"github.com/boardkit-io/trello/pkg/trello"
)

var validate = validator.New()

// New creates a Trello API client over the default board and list resource
// declarations. The config is defaulted and validated first: absent
// credentials fail here, explicitly, before any network call is attempted.
func New(cfg *trello.Config) (trello.Client, error) {
	return NewWithRegistry(cfg, trello.DefaultRegistry())
}

// NewWithRegistry creates a client over a caller-supplied registry. The
// registry must carry the board and list resource types; extend
// trello.DefaultRegistry() to add custom declarations alongside them.
func NewWithRegistry(cfg *trello.Config, registry *trello.Registry) (trello.Client, error) {
	if cfg == nil {
		return nil, trello.ErrConfigRequired
	}

	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	cli, err := client.New(cfg, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewFromEnv creates a client from the process environment: TRELLO_API_KEY
// and TRELLO_API_TOKEN, an optional .env file, and an optional trello.yaml
// config file.
func NewFromEnv() (trello.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return New(cfg)
}

// NewWithCredentials creates a client from a key/token pair with all other
// settings defaulted.
func NewWithCredentials(key, token string) (trello.Client, error) {
	return New(&trello.Config{
		Key:   key,
		Token: token,
	})
}

// applyDefaults fills the optional connection settings.
func applyDefaults(cfg *trello.Config) {
	if cfg.Protocol == "" {
		cfg.Protocol = constants.DefaultProtocol
	}

	if cfg.APIDomain == "" {
		cfg.APIDomain = constants.DefaultAPIDomain
	}

	if cfg.APIVersion == "" {
		cfg.APIVersion = constants.DefaultAPIVersion
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	if cfg.RetryMax > 0 {
		if cfg.RetryWaitMin == 0 {
			cfg.RetryWaitMin = constants.DefaultRetryWaitMin
		}

		if cfg.RetryWaitMax == 0 {
			cfg.RetryWaitMax = constants.DefaultRetryWaitMax
		}
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = constants.DefaultUserAgent
	}

	if cfg.Debug && cfg.Logger == nil {
		cfg.Logger = trello.NewLogger(os.Stderr, "debug")
	}
}

// validateConfig maps struct validation failures to the configuration error
// kind surfaced to callers.
func validateConfig(cfg *trello.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	missing := make([]string, 0, len(fieldErrs))

	for _, fieldErr := range fieldErrs {
		switch fieldErr.Field() {
		case "Key":
			missing = append(missing, "api key")
		case "Token":
			missing = append(missing, "api token")
		default:
			missing = append(missing, fieldErr.Field())
		}
	}

	return &trello.ConfigurationError{Missing: missing}
}
