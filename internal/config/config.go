package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/effective-security/xlog"
	"github.com/lydakis/bulcmcp/internal/paths"
)

var logger = xlog.NewPackageLogger("github.com/lydakis/bulcmcp", "config")

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads the config file and returns the parsed Config.
// If the config file does not exist, it returns the defaults (no error).
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom reads and parses a config file at the given path.
// Keys missing from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	expandConfigEnvVars(cfg)
	return cfg, nil
}

// LoadClientConfig resolves the transport configuration: config file,
// then the BULC_PORT override, then validation. On error the returned
// ClientConfig still holds the defaults with the environment applied, so
// callers can fall back to it.
func LoadClientConfig() (ClientConfig, error) {
	cfg, err := Load()
	if err != nil {
		fallback := Default()
		ApplyEnv(fallback)
		cc, _ := fallback.ClientConfig()
		return cc, err
	}

	ApplyEnv(cfg)
	if err := Validate(cfg); err != nil {
		fallback := Default()
		ApplyEnv(fallback)
		cc, _ := fallback.ClientConfig()
		return cc, fmt.Errorf("invalid config: %w", err)
	}
	return cfg.ClientConfig()
}

// ApplyEnv overrides the remote port from $BULC_PORT. Values that are not
// a valid TCP port are ignored.
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	raw, ok := os.LookupEnv(PortEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		logger.KV(xlog.WARNING,
			"reason", "ignored_env",
			"env", PortEnv,
			"value", raw,
			"port", cfg.Remote.Port)
		return
	}
	cfg.Remote.Port = port
}

// ClientConfig converts the file representation into transport settings.
func (c *Config) ClientConfig() (ClientConfig, error) {
	connect, err := parseTimeout("remote.connect_timeout", c.Remote.ConnectTimeout, DefaultConnectTimeout)
	if err != nil {
		return ClientConfig{}, err
	}
	response, err := parseTimeout("remote.response_timeout", c.Remote.ResponseTimeout, DefaultResponseTimeout)
	if err != nil {
		return ClientConfig{}, err
	}
	return ClientConfig{
		Host:            c.Remote.Host,
		Port:            c.Remote.Port,
		ConnectTimeout:  connect,
		ResponseTimeout: response,
	}, nil
}

func parseTimeout(field, raw string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", field, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be > 0, got %q", field, raw)
	}
	return d, nil
}

// ExampleConfigPath returns the default config file path (for help messages).
func ExampleConfigPath() string {
	return paths.ConfigFile()
}

func expandConfigEnvVars(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Remote.Host = expandEnvVars(cfg.Remote.Host)
	cfg.Remote.ConnectTimeout = expandEnvVars(cfg.Remote.ConnectTimeout)
	cfg.Remote.ResponseTimeout = expandEnvVars(cfg.Remote.ResponseTimeout)
	cfg.Log.Level = expandEnvVars(cfg.Log.Level)
}

// expandEnvVars replaces ${VAR_NAME} with the value of the environment variable.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match // leave unresolved vars as-is
	})
}
