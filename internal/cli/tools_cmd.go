package cli

import (
	"strings"

	"github.com/lydakis/bulcmcp/internal/tools"
	"github.com/spf13/cobra"
)

func toolsCmd() *cobra.Command {
	var (
		group   string
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools exposed to MCP clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := parseOutputMode(format, outputModeText, outputModeJSON, outputModeYAML)
			if err != nil {
				return usageError("%v", err)
			}

			catalog := tools.Default()
			list := catalog.All()
			if group != "" {
				list = catalog.Group(group)
				if len(list) == 0 {
					return usageError("unknown group %q (want one of: %s)", group, strings.Join(catalog.Groups(), ", "))
				}
			}

			entries := toolListEntries(list, verbose || mode != outputModeText)
			if mode == outputModeText {
				return writeToolListText(cmd.OutOrStdout(), entries)
			}
			return writeStructured(cmd.OutOrStdout(), mode, entries)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Only list tools of one group")
	cmd.Flags().StringVarP(&format, "format", "f", string(outputModeText), "Output format: text, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full tool descriptions")
	return cmd
}

func schemaCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schema <tool>",
		Short: "Print the input schema of a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseOutputMode(format, outputModeJSON, outputModeYAML)
			if err != nil {
				return usageError("%v", err)
			}
			tool, err := lookupTool(args[0])
			if err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), mode, tool.Input.JSONSchema())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(outputModeJSON), "Output format: json or yaml")
	return cmd
}
