package config

import "time"

// Default values for the BULC remote endpoint.
const (
	DefaultHost            = "localhost"
	DefaultPort            = 19840
	DefaultConnectTimeout  = 5 * time.Second
	DefaultResponseTimeout = 30 * time.Second
	DefaultLogLevel        = "info"
)

// PortEnv selects the BULC port; it wins over the config file.
const PortEnv = "BULC_PORT"

// Config is the top-level bulcmcp configuration.
type Config struct {
	Remote RemoteConfig `toml:"remote" json:"remote" yaml:"remote"`
	Log    LogConfig    `toml:"log" json:"log" yaml:"log"`
}

// RemoteConfig describes how to reach the BULC application.
type RemoteConfig struct {
	Host            string `toml:"host" json:"host" yaml:"host" validate:"required,hostname_rfc1123|ip"`
	Port            int    `toml:"port" json:"port" yaml:"port" validate:"min=1,max=65535"`
	ConnectTimeout  string `toml:"connect_timeout" json:"connect_timeout" yaml:"connect_timeout"`
	ResponseTimeout string `toml:"response_timeout" json:"response_timeout" yaml:"response_timeout"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `toml:"level" json:"level" yaml:"level" validate:"omitempty,oneof=debug info warning error"`
}

// ClientConfig is the resolved, immutable transport configuration.
type ClientConfig struct {
	Host            string
	Port            int
	ConnectTimeout  time.Duration
	ResponseTimeout time.Duration
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ConnectTimeout:  DefaultConnectTimeout.String(),
			ResponseTimeout: DefaultResponseTimeout.String(),
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultClientConfig returns the transport defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Host:            DefaultHost,
		Port:            DefaultPort,
		ConnectTimeout:  DefaultConnectTimeout,
		ResponseTimeout: DefaultResponseTimeout,
	}
}
