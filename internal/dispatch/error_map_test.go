package dispatch

import (
	"fmt"
	"net"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/lydakis/bulcmcp/internal/bulc"
	"github.com/lydakis/bulcmcp/internal/protocol"
	"github.com/lydakis/bulcmcp/internal/response"
	"github.com/lydakis/bulcmcp/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want Class
	}{
		{errors.Mark(errors.New("x"), ErrUnknownTool), ClassUnknownTool},
		{errors.Mark(errors.New("x"), schema.ErrValidation), ClassValidation},
		{errors.Mark(errors.New("x"), bulc.ErrConnectTimeout), ClassConnectTimeout},
		{errors.Mark(errors.New("x"), bulc.ErrResponseTimeout), ClassResponseTimeout},
		{errors.Mark(errors.New("x"), bulc.ErrTransport), ClassTransport},
		{errors.Mark(errors.New("x"), bulc.ErrConnectionClosed), ClassConnectionClosed},
		{errors.Mark(errors.New("x"), protocol.ErrMalformedResponse), ClassMalformedResponse},
		{fmt.Errorf("wrapped: %w", errors.Mark(errors.New("x"), bulc.ErrTransport)), ClassTransport},
		{errors.New("something else"), ClassInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.err), "Classify(%v)", tc.err)
	}
}

func TestClassExitCodes(t *testing.T) {
	cases := map[Class]int{
		ClassUnknownTool:       response.ExitUsageErr,
		ClassValidation:        response.ExitUsageErr,
		ClassConnectTimeout:    response.ExitToolErr,
		ClassResponseTimeout:   response.ExitToolErr,
		ClassTransport:         response.ExitToolErr,
		ClassConnectionClosed:  response.ExitToolErr,
		ClassMalformedResponse: response.ExitToolErr,
		ClassInternal:          response.ExitInternal,
	}
	for class, want := range cases {
		assert.Equal(t, want, class.ExitCode(), "%s.ExitCode()", class)
	}
}

func TestErrorTextAppendsHints(t *testing.T) {
	err := errors.WithHintf(errors.Mark(errors.New("no response"), bulc.ErrResponseTimeout), "check that BULC is running")
	want := "ResponseTimeout: no response\ncheck that BULC is running"
	assert.Equal(t, want, ErrorText(err))
}

func TestErrorTextWithoutHints(t *testing.T) {
	err := errors.Mark(errors.New(`unknown tool "bulc_x"`), ErrUnknownTool)
	want := `UnknownTool: unknown tool "bulc_x"`
	assert.Equal(t, want, ErrorText(err))
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}
