package logging

import (
	"bytes"
	"testing"

	"github.com/effective-security/xlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]xlog.LogLevel{
		"":        xlog.INFO,
		"debug":   xlog.DEBUG,
		" INFO ":  xlog.INFO,
		"warning": xlog.WARNING,
		"warn":    xlog.WARNING,
		"error":   xlog.ERROR,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verbose"`)
}

func TestSetupWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup("debug", &buf))
	t.Cleanup(func() {
		_ = Setup("info", &bytes.Buffer{})
	})

	logger := xlog.NewPackageLogger("github.com/lydakis/bulcmcp", "logging_test")
	logger.KV(xlog.DEBUG, "reason", "probe")

	assert.Contains(t, buf.String(), "probe")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	err := Setup("loud", &bytes.Buffer{})
	require.Error(t, err)
}
