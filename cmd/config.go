package cmd

import (
	"fmt"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create settings files",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default settings file (--config or ~/.config/minigrep/config.yaml) if it does not exist",
		Args:  cobra.NoArgs,
		// The file may not exist yet, so settings are not loaded first.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetVerbose(verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initSettings()
			if err != nil {
				return err
			}
			logging.Success("settings: " + p)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(config.Get())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate merged settings against the JSON Schema",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
		},
	})

	rootCmd.AddCommand(configCmd)
}

func initSettings() (string, error) {
	if cfgFile != "" {
		if !config.IsYAML(cfgFile) {
			return "", fmt.Errorf("%s: config init writes YAML, want a .yaml or .yml path", cfgFile)
		}
		return cfgFile, assets.WriteDefaultConfigFileIfMissing(cfgFile)
	}
	dir, err := settingsDir()
	if err != nil {
		return "", err
	}
	return assets.WriteDefaultConfigIfMissing(dir)
}
