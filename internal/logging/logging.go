// Package logging configures the process-wide xlog output.
//
// Standard output carries MCP frames in serve mode, so every log record
// goes to the writer passed to Setup (stderr in production).
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/effective-security/xlog"
)

var levels = map[string]xlog.LogLevel{
	"debug":   xlog.DEBUG,
	"info":    xlog.INFO,
	"warning": xlog.WARNING,
	"warn":    xlog.WARNING,
	"error":   xlog.ERROR,
}

// ParseLevel maps a config or flag value onto an xlog level.
// An empty value selects info.
func ParseLevel(raw string) (xlog.LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return xlog.INFO, nil
	}
	lvl, ok := levels[name]
	if !ok {
		return xlog.INFO, fmt.Errorf("unknown log level %q (want debug, info, warning or error)", raw)
	}
	return lvl, nil
}

// Setup installs a string formatter on w and sets the global level.
func Setup(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	xlog.SetFormatter(xlog.NewStringFormatter(w))
	xlog.SetGlobalLogLevel(lvl)
	return nil
}
