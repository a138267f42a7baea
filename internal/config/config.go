package config

type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Sentry  SentryConfig  `toml:"sentry"`
	Servers ServersConfig `toml:"servers"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Public PublicServerConfig `toml:"public"`
	Debug  DebugServerConfig  `toml:"debug"`
}

type PublicServerConfig struct {
	Addr         string           `toml:"addr" validate:"required,hostname_port"`
	AllowOrigins []string         `toml:"allow_origins" validate:"min=1"`
	StaticRoot   string           `toml:"static_root" validate:"required"`
	Resources    []ResourceConfig `toml:"resources" validate:"dive"`
}

// ResourceConfig maps a request path to a single file.
// Relative files are resolved against the static root.
type ResourceConfig struct {
	Path        string `toml:"path" validate:"required,urlpath"`
	File        string `toml:"file" validate:"required"`
	ContentType string `toml:"content_type"`
}

type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}
