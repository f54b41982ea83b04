package cli

import (
	"fmt"
	"os"

	"github.com/lydakis/bulcmcp/internal/config"
	"github.com/lydakis/bulcmcp/internal/paths"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(configInitCmd(), configShowCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := paths.ConfigFile()
			if _, err := os.Stat(path); err == nil && !overwrite {
				return usageError("config %s already exists; rerun with --overwrite to replace it", path)
			}
			if err := config.SaveTo(path, config.Default()); err != nil {
				return internalError("writing config: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing config file")
	return cmd
}

func configShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := parseOutputMode(format, outputModeJSON, outputModeYAML)
			if err != nil {
				return usageError("%v", err)
			}
			cfg, err := config.Load()
			if err != nil {
				return usageError("%v", err)
			}
			config.ApplyEnv(cfg)
			if err := config.Validate(cfg); err != nil {
				return usageError("invalid config: %v", err)
			}
			return writeStructured(cmd.OutOrStdout(), mode, cfg)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(outputModeYAML), "Output format: json or yaml")
	return cmd
}
