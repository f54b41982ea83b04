package response

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestUnwrapPrefersStructuredContent(t *testing.T) {
	result := &mcp.CallToolResult{
		StructuredContent: map[string]any{"count": 3},
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: "ignored"},
		},
	}

	out, code := Unwrap(result)
	if code != ExitOK {
		t.Fatalf("Unwrap code = %d, want %d", code, ExitOK)
	}
	if string(out) != "{\"count\":3}\n" {
		t.Fatalf("Unwrap output = %q, want %q", string(out), "{\"count\":3}\\n")
	}
}

func TestUnwrapMultipleTextBlocksAreNewlineSeparated(t *testing.T) {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: "alpha"},
			mcp.TextContent{Type: "text", Text: "beta"},
		},
	}

	out, _ := Unwrap(result)
	if string(out) != "alpha\nbeta\n" {
		t.Fatalf("Unwrap output = %q, want %q", string(out), "alpha\\nbeta\\n")
	}
}

func TestUnwrapErrorResultUsesToolErrorCode(t *testing.T) {
	out, code := Unwrap(mcp.NewToolResultError("Operation failed"))
	if code != ExitToolErr {
		t.Fatalf("Unwrap code = %d, want %d", code, ExitToolErr)
	}
	if string(out) != "Operation failed\n" {
		t.Fatalf("Unwrap output = %q, want %q", string(out), "Operation failed\\n")
	}
}

func TestUnwrapNilResultIsInternal(t *testing.T) {
	out, code := Unwrap(nil)
	if code != ExitInternal || out != nil {
		t.Fatalf("Unwrap(nil) = (%q, %d), want (nil, %d)", out, code, ExitInternal)
	}
}

func TestUnwrapEmptyContent(t *testing.T) {
	out, code := Unwrap(&mcp.CallToolResult{})
	if code != ExitOK || len(out) != 0 {
		t.Fatalf("Unwrap(empty) = (%q, %d), want empty ok", out, code)
	}
}

func TestTextTrimsTrailingNewline(t *testing.T) {
	if got := Text(mcp.NewToolResultText("{\n  \"success\": true\n}\n")); got != "{\n  \"success\": true\n}" {
		t.Fatalf("Text() = %q", got)
	}
}
