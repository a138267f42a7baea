package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/geo-server/internal/validator"
)

const envPrefix = "GEO_SERVER"

// envOverrides are applied on top of the config file, e.g. GEO_SERVER_PUBLIC_ADDR=:8080.
type envOverrides struct {
	LogLevel   string `envconfig:"LOG_LEVEL"`
	PublicAddr string `envconfig:"PUBLIC_ADDR"`
	StaticRoot string `envconfig:"STATIC_ROOT"`
}

func ParseAndValidate(filename string) (Config, error) {
	var conf Config
	if _, err := toml.DecodeFile(filename, &conf); err != nil {
		return conf, err
	}

	if err := applyEnv(&conf); err != nil {
		return conf, fmt.Errorf("apply env: %v", err)
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func applyEnv(conf *Config) error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return err
	}

	if env.LogLevel != "" {
		conf.Log.Level = env.LogLevel
	}
	if env.PublicAddr != "" {
		conf.Servers.Public.Addr = env.PublicAddr
	}
	if env.StaticRoot != "" {
		conf.Servers.Public.StaticRoot = env.StaticRoot
	}
	return nil
}
