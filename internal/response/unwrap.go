// Package response turns tool envelopes into CLI output and exit codes.
package response

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitToolErr  = 1
	ExitUsageErr = 2
	ExitInternal = 3
)

// Unwrap extracts printable output from a CallToolResult.
// Returns the output bytes and an exit code.
func Unwrap(result *mcp.CallToolResult) ([]byte, int) {
	if result == nil {
		return nil, ExitInternal
	}

	exitCode := ExitOK
	if result.IsError {
		exitCode = ExitToolErr
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			return ensureTrailingNewline(data), exitCode
		}
	}

	var parts []string
	for _, content := range result.Content {
		if text, ok := renderText(content); ok {
			parts = append(parts, text)
			continue
		}

		raw, err := json.Marshal(content)
		if err == nil {
			parts = append(parts, string(raw))
		}
	}

	if len(parts) == 0 {
		return nil, exitCode
	}

	out := strings.Join(parts, "\n")
	return ensureTrailingNewline([]byte(out)), exitCode
}

func renderText(content mcp.Content) (string, bool) {
	switch c := content.(type) {
	case mcp.TextContent:
		return c.Text, true
	case *mcp.TextContent:
		return c.Text, true
	default:
		return "", false
	}
}

// Text returns the joined text blocks of result without a trailing newline.
func Text(result *mcp.CallToolResult) string {
	out, _ := Unwrap(result)
	return strings.TrimSuffix(string(out), "\n")
}

func ensureTrailingNewline(out []byte) []byte {
	if len(out) == 0 {
		return out
	}
	if out[len(out)-1] != '\n' {
		return append(out, '\n')
	}
	return out
}
