package commands

import (
	"github.com/spf13/cobra"
)

// Config returns the command that prints the effective settings as YAML.
func Config(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings",
		Long: `Print the settings the wizard would run with, after merging the
settings file (--config) and any logging flags. The output is a valid
settings file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd, f)
			if err != nil {
				return err
			}
			return s.WriteYAML(cmd.OutOrStdout())
		},
	}
}
