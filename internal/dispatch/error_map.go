package dispatch

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lydakis/bulcmcp/internal/bulc"
	"github.com/lydakis/bulcmcp/internal/protocol"
	"github.com/lydakis/bulcmcp/internal/response"
	"github.com/lydakis/bulcmcp/internal/schema"
)

// Class names one terminal failure outcome of a call.
type Class string

// Failure classes.
const (
	ClassUnknownTool       Class = "UnknownTool"
	ClassValidation        Class = "ValidationError"
	ClassConnectTimeout    Class = "ConnectTimeout"
	ClassResponseTimeout   Class = "ResponseTimeout"
	ClassTransport         Class = "TransportError"
	ClassConnectionClosed  Class = "ConnectionClosed"
	ClassMalformedResponse Class = "MalformedResponse"
	ClassInternal          Class = "InternalError"
)

var (
	// ErrUnknownTool marks a call naming a tool that is not in the catalog.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInternal marks failures inside the bridge itself, such as a
	// recovered panic.
	ErrInternal = errors.New("internal error")
)

// Classify maps err onto its failure class.
func Classify(err error) Class {
	switch {
	case errors.Is(err, ErrUnknownTool):
		return ClassUnknownTool
	case errors.Is(err, schema.ErrValidation):
		return ClassValidation
	case errors.Is(err, bulc.ErrConnectTimeout):
		return ClassConnectTimeout
	case errors.Is(err, bulc.ErrResponseTimeout):
		return ClassResponseTimeout
	case errors.Is(err, bulc.ErrConnectionClosed):
		return ClassConnectionClosed
	case errors.Is(err, protocol.ErrMalformedResponse):
		return ClassMalformedResponse
	case errors.Is(err, bulc.ErrTransport):
		return ClassTransport
	default:
		return ClassInternal
	}
}

// ExitCode is the CLI exit status for the class.
func (c Class) ExitCode() int {
	switch c {
	case ClassUnknownTool, ClassValidation:
		return response.ExitUsageErr
	case ClassInternal:
		return response.ExitInternal
	default:
		return response.ExitToolErr
	}
}

// ErrorText renders err as "<Class>: <message>" followed by any hints.
func ErrorText(err error) string {
	text := fmt.Sprintf("%s: %s", Classify(err), err.Error())
	if hints := strings.TrimSpace(errors.FlattenHints(err)); hints != "" {
		text += "\n" + hints
	}
	return text
}
