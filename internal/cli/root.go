// Package cli implements the bulcmcp command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/effective-security/xlog"
	"github.com/lydakis/bulcmcp/internal/bulc"
	"github.com/lydakis/bulcmcp/internal/config"
	"github.com/lydakis/bulcmcp/internal/dispatch"
	"github.com/lydakis/bulcmcp/internal/logging"
	"github.com/lydakis/bulcmcp/internal/paths"
	"github.com/lydakis/bulcmcp/internal/response"
	"github.com/lydakis/bulcmcp/internal/tools"
	"github.com/spf13/cobra"
)

var logger = xlog.NewPackageLogger("github.com/lydakis/bulcmcp", "cli")

// newSender returns the transport used by serve, call and ping.
var newSender = func() dispatch.Sender { return bulc.Default() }

// exitError carries a specific exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: response.ExitUsageErr, err: fmt.Errorf(format, args...)}
}

func internalError(format string, args ...any) error {
	return &exitError{code: response.ExitInternal, err: fmt.Errorf(format, args...)}
}

type rootOptions struct {
	logLevel   string
	configPath string
}

// Run is the main CLI entry point. Returns an exit code.
func Run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(rootStdout)
	cmd.SetErr(rootStderr)
	cmd.SetIn(rootStdin)

	err := cmd.Execute()
	if err == nil {
		return response.ExitOK
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintf(rootStderr, "bulcmcp: %v\n", exit.err)
		}
		return exit.code
	}
	fmt.Fprintf(rootStderr, "bulcmcp: %v\n", err)
	return response.ExitUsageErr
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "bulcmcp",
		Short:         "MCP tool bridge for the BULC building-design application",
		Version:       buildVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
	root.SetVersionTemplate("bulcmcp {{.Version}}\n")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level on stderr: debug, info, warning or error (default from config)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file path (default "+config.ExampleConfigPath()+")")

	root.AddCommand(
		serveCmd(),
		toolsCmd(),
		schemaCmd(),
		callCmd(opts),
		pingCmd(),
		configCmd(),
	)
	return root
}

// setup applies --config and configures logging. The flag level wins over
// the config file; a broken config file is reported later by the client.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.configPath != "" {
		if err := os.Setenv(paths.ConfigEnv, o.configPath); err != nil {
			return internalError("setting %s: %v", paths.ConfigEnv, err)
		}
	}

	level := o.logLevel
	if level == "" {
		if cfg, err := config.Load(); err == nil {
			level = cfg.Log.Level
		}
	}
	if err := logging.Setup(level, cmd.ErrOrStderr()); err != nil {
		return usageError("%v", err)
	}
	return nil
}

func lookupTool(name string) (tools.Tool, error) {
	tool, ok := tools.Default().Lookup(name)
	if !ok {
		return tools.Tool{}, usageError("unknown tool %q (run `bulcmcp tools` to list them)", name)
	}
	return tool, nil
}
