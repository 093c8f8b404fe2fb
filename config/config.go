// Package config owns the viper configuration engine: defaults, environment bindings and the TOML file.
package config

import (
	"errors"
	"strings"

	"github.com/cinebox-cli/cinebox/constant"
	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Cinebox)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Cinebox)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Write persists the in-memory configuration, creating the file on first use.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(where.ConfigFile())
	}

	return err
}
