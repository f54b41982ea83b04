package paths

import (
	"os"
	"path/filepath"
)

// ConfigEnv overrides the config file location when set.
const ConfigEnv = "BULC_MCP_CONFIG"

const appDir = "bulcmcp"

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

func xdgDir(envVar, fallbackSuffix string) string {
	if v := os.Getenv(envVar); v != "" {
		return filepath.Join(v, appDir)
	}
	return filepath.Join(homeDir(), fallbackSuffix, appDir)
}

// ConfigDir returns the bulcmcp config directory ($XDG_CONFIG_HOME/bulcmcp).
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// ConfigFile returns the path to config.toml, honoring $BULC_MCP_CONFIG.
func ConfigFile() string {
	if v := os.Getenv(ConfigEnv); v != "" {
		return v
	}
	return filepath.Join(ConfigDir(), "config.toml")
}
