package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the service reads at startup. It is loaded once and
// treated as read-only afterwards.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Debug     bool            `mapstructure:"debug"`
	Log       LogConfig       `mapstructure:"log"`
	Views     ViewsConfig     `mapstructure:"views"`
	Security  SecurityConfig  `mapstructure:"security"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Addr joins host and port into a listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ViewsConfig struct {
	Minify bool `mapstructure:"minify"`
}

type SecurityConfig struct {
	SSL bool `mapstructure:"ssl"`
}

type TelemetryConfig struct {
	ServiceName  string `mapstructure:"service_name"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// Defaults applied before the config file and environment are read.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = "5000"
	DefaultLogLevel    = "debug"
	DefaultServiceName = "greeter"

	envPrefix  = "GREETER"
	configName = "config"
	configPath = "configs"
)

var errEmptyPort = errors.New("server.port must not be empty")

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("debug", true)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("views.minify", true)
	v.SetDefault("security.ssl", false)
	v.SetDefault("telemetry.service_name", DefaultServiceName)
	v.SetDefault("telemetry.otlp_endpoint", "")
}

// Load reads configs/config.yml (or the file set via v.SetConfigFile), then
// GREETER_* environment variables. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() == "" {
		v.AddConfigPath(configPath)
		v.SetConfigName(configName)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Server.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Server.Port), ":")
	if cfg.Server.Port == "" {
		return Config{}, errEmptyPort
	}
	return cfg, nil
}
