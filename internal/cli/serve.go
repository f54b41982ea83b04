package cli

import (
	"github.com/effective-security/xlog"
	"github.com/lydakis/bulcmcp/internal/dispatch"
	"github.com/lydakis/bulcmcp/internal/server"
	"github.com/lydakis/bulcmcp/internal/tools"
	"github.com/spf13/cobra"
)

type addresser interface {
	Addr() string
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the BULC tools over MCP on stdin/stdout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(_ *cobra.Command) error {
	sender := newSender()
	if a, ok := sender.(addresser); ok {
		logger.KV(xlog.INFO, "status", "connecting to BULC", "addr", a.Addr())
	}

	s := server.New(dispatch.New(tools.Default(), sender), buildVersion)
	if err := s.ServeStdio(); err != nil {
		return internalError("serving stdio: %v", err)
	}
	return nil
}
