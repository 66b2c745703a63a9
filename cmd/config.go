package cmd

import (
	"fmt"

	"github.com/bnema/shopeasy-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(flags), newConfigShowCmd(flags))

	return cmd
}

func newConfigInitCmd(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configFile
			if path == "" {
				defaultPath, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			cfg, err := config.Defaults()
			if err != nil {
				return err
			}

			if err := config.WriteFile(path, cfg, force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}

			source := cfg.Path
			if source == "" {
				source = "defaults and environment"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
			return err
		},
	}
}
