// Package config resolves connection settings and credentials from the
// process environment, an optional .env file, and an optional trello.yaml
// config file. Resolution order: defaults, then config file, then
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/boardkit-io/trello/internal/constants"
	"github.com/boardkit-io/trello/pkg/trello"
)

// Load reads connection settings from the environment. Credentials come from
// TRELLO_API_KEY and TRELLO_API_TOKEN; a .env file in the working directory
// is honored when present. The returned config is not yet validated — that
// happens at client construction, before any network call.
func Load() (*trello.Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(constants.EnvKeyProto, constants.DefaultProtocol)
	v.SetDefault(constants.EnvKeyDomain, constants.DefaultAPIDomain)
	v.SetDefault(constants.EnvKeyVersion, constants.DefaultAPIVersion)

	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType(constants.ConfigFileType)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &trello.Config{
		Protocol:   v.GetString(constants.EnvKeyProto),
		APIDomain:  v.GetString(constants.EnvKeyDomain),
		APIVersion: v.GetString(constants.EnvKeyVersion),
		Key:        v.GetString(constants.EnvKeyAPIKey),
		Token:      v.GetString(constants.EnvKeyToken),
	}, nil
}
