// Package dispatch routes a tool call through lookup, validation and the
// BULC transport, and turns every outcome into an MCP result envelope.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
	"github.com/lydakis/bulcmcp/internal/protocol"
	"github.com/lydakis/bulcmcp/internal/schema"
	"github.com/lydakis/bulcmcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

var logger = xlog.NewPackageLogger("github.com/lydakis/bulcmcp", "dispatch")

// FallbackError is reported when BULC fails without an error message.
const FallbackError = "Operation failed"

// Sender performs one request/response exchange with BULC.
type Sender interface {
	SendCommand(cmd protocol.Command) (*protocol.Result, error)
}

// Dispatcher maps tool names to validated BULC commands.
type Dispatcher struct {
	catalog *tools.Catalog
	sender  Sender
}

// New returns a dispatcher over catalog that sends through sender.
func New(catalog *tools.Catalog, sender Sender) *Dispatcher {
	return &Dispatcher{catalog: catalog, sender: sender}
}

// Catalog returns the tool catalog served by the dispatcher.
func (d *Dispatcher) Catalog() *tools.Catalog {
	return d.catalog
}

// Call runs one tool invocation and always returns an envelope; failures
// come back with IsError set. ctx only carries log fields.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	res, err := d.Execute(ctx, name, args)
	if err != nil {
		return mcp.NewToolResultError(ErrorText(err))
	}
	return Normalize(res)
}

// Execute performs lookup, validation and transport, and returns the raw
// result or the classified error. Panics are recovered as ErrInternal.
func (d *Dispatcher) Execute(ctx context.Context, name string, args map[string]any) (res *protocol.Result, err error) {
	callID := uuid.NewString()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = errors.Mark(errors.Newf("%s panicked: %v", name, r), ErrInternal)
		}
		if err != nil {
			logger.ContextKV(ctx, xlog.WARNING,
				"call_id", callID,
				"tool", name,
				"class", Classify(err),
				"elapsed", time.Since(start).String(),
				"err", err.Error())
			return
		}
		logger.ContextKV(ctx, xlog.DEBUG,
			"call_id", callID,
			"tool", name,
			"success", res.Success,
			"elapsed", time.Since(start).String())
	}()

	tool, ok := d.catalog.Lookup(name)
	if !ok {
		return nil, errors.Mark(errors.Newf("unknown tool %q", name), ErrUnknownTool)
	}

	params, err := schema.Validate(tool.Input, args)
	if err != nil {
		return nil, err
	}

	res, err = d.sender.SendCommand(protocol.Command{Action: tool.Action(), Params: params})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.Mark(errors.Newf("%s: sender returned no result", name), ErrInternal)
	}
	return res, nil
}

// Normalize converts a decoded BULC result into an envelope: the full
// result pretty-printed on success, or its error text on failure.
func Normalize(res *protocol.Result) *mcp.CallToolResult {
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = FallbackError
		}
		return mcp.NewToolResultError(msg)
	}
	text, err := prettyResult(res)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: rendering result: %v", ClassInternal, err))
	}
	return mcp.NewToolResultText(text)
}

func prettyResult(res *protocol.Result) (string, error) {
	raw := res.Raw
	if len(raw) == 0 {
		encoded, err := json.Marshal(res)
		if err != nil {
			return "", err
		}
		raw = encoded
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
