package bulc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsFixedAfterFirstUse(t *testing.T) {
	t.Setenv("BULC_MCP_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("BULC_PORT", "23001")

	first := Default()
	assert.Equal(t, "localhost:23001", first.Addr())

	t.Setenv("BULC_PORT", "23002")
	second := Default()

	assert.Same(t, first, second)
	assert.Equal(t, "localhost:23001", second.Addr())
}
