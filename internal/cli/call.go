package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/lydakis/bulcmcp/internal/dispatch"
	"github.com/lydakis/bulcmcp/internal/protocol"
	"github.com/lydakis/bulcmcp/internal/response"
	"github.com/lydakis/bulcmcp/internal/tools"
	"github.com/spf13/cobra"
)

func callCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-args | --name value ...]",
		Short: "Invoke one tool and print its result",
		Long: `Invoke one tool and print its result.

Arguments are a JSON object, GNU-style flags typed from the tool schema
(arrays and objects as JSON), or a JSON object on stdin.

Exit codes: 0 ok, 1 tool error, 2 usage error, 3 internal error.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseCallArgs(args, cmd.InOrStdin(), stdinIsTTY(cmd.InOrStdin()))
			if err != nil {
				return usageError("%v", err)
			}
			if parsed.logLevel != "" || parsed.configPath != "" {
				opts.logLevel = firstNonEmpty(parsed.logLevel, opts.logLevel)
				opts.configPath = firstNonEmpty(parsed.configPath, opts.configPath)
				if err := opts.setup(cmd); err != nil {
					return err
				}
			}
			if parsed.help || parsed.tool == "" {
				return cmd.Help()
			}

			if len(parsed.flags) > 0 {
				tool, err := lookupTool(parsed.tool)
				if err != nil {
					return err
				}
				if parsed.toolArgs, err = typeFlagArgs(tool.Input, parsed.flags); err != nil {
					return usageError("%v", err)
				}
			}

			return runCall(cmd.Context(), parsed, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runCall(ctx context.Context, parsed *callArgs, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	d := dispatch.New(tools.Default(), newSender())

	res, err := d.Execute(ctx, parsed.tool, parsed.toolArgs)
	if err != nil {
		if !parsed.quiet {
			fmt.Fprintln(stderr, dispatch.ErrorText(err))
		}
		return &exitError{code: dispatch.Classify(err).ExitCode()}
	}

	out, code := response.Unwrap(dispatch.Normalize(res))
	writeCallOutput(out, code, parsed.quiet, stdout, stderr)
	if code != response.ExitOK {
		return &exitError{code: code}
	}
	return nil
}

func writeCallOutput(out []byte, code int, quiet bool, stdout, stderr io.Writer) {
	if code == response.ExitOK {
		stdout.Write(out) //nolint:errcheck
		return
	}
	if quiet {
		return
	}
	if len(out) > 0 {
		stderr.Write(out) //nolint:errcheck
	}
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that BULC answers on the configured port",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sender := newSender()
			addr := "BULC"
			if a, ok := sender.(addresser); ok {
				addr = a.Addr()
			}

			res, err := sender.SendCommand(protocol.Command{Action: protocol.PingAction})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), dispatch.ErrorText(err))
				return &exitError{code: response.ExitToolErr}
			}
			if !res.Success {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s answered ping with success=false\n", addr)
				return &exitError{code: response.ExitToolErr}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is reachable\n", addr)
			return nil
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
