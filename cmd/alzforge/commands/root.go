// Package commands defines the CLI command structure and flag bindings.
//
// The root command runs the intake wizard; subcommands describe the field
// catalog, the effective settings and the application itself.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrsinham/alzforge/cmd/alzforge/wizard"
	"github.com/mrsinham/alzforge/internal/intake/session"
	"github.com/mrsinham/alzforge/internal/logging"
	"github.com/mrsinham/alzforge/internal/util"
)

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	configPath string
	seed       int64
	output     string
	logLevel   string
	logFormat  string
	logFile    string
	accessible bool
}

// Root returns the root command for the alzforge CLI.
func Root() *cobra.Command {
	f := &rootFlags{}
	def := wizard.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "alzforge",
		Short: "Collect an Alzheimer's clinical intake record",
		Long: `Walk through the seven intake sections (patient identification,
demographics, lifestyle, medical history, clinical measurements, cognitive
and functional assessments, symptoms) and print the collected feature record.

Patient identification is shown for reference and never written to the record.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIntake(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML settings file")
	pf.StringVar(&f.logLevel, "log-level", def.Log.Level, "Log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", def.Log.Format, "Log format: text or json")
	pf.StringVar(&f.logFile, "log-file", def.Log.File, "Write logs to this file (discarded when empty)")

	cmd.Flags().Int64Var(&f.seed, "seed", def.Seed, "Seed for patient identifiers (0 = random)")
	cmd.Flags().StringVarP(&f.output, "output", "o", def.Output, "Record output format: table or yaml")
	cmd.Flags().BoolVar(&f.accessible, "accessible", def.Accessible, "Use plain prompts instead of the full-screen interface")

	cmd.AddCommand(Fields())
	cmd.AddCommand(Config(f))
	cmd.AddCommand(About())
	cmd.AddCommand(Version())

	return cmd
}

// resolveSettings loads the settings file, if any, and applies every flag
// the user set explicitly on top of it.
func resolveSettings(cmd *cobra.Command, f *rootFlags) (wizard.Settings, error) {
	s := wizard.DefaultSettings()
	if f.configPath != "" {
		loaded, err := wizard.LoadFromYAML(f.configPath)
		if err != nil {
			return wizard.Settings{}, err
		}
		s = loaded
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("seed") {
		s.Seed = f.seed
	}
	if changed("output") {
		s.Output = f.output
	}
	if changed("accessible") {
		s.Accessible = f.accessible
	}
	if changed("log-level") {
		s.Log.Level = f.logLevel
	}
	if changed("log-format") {
		s.Log.Format = f.logFormat
	}
	if changed("log-file") {
		s.Log.File = f.logFile
	}

	if err := s.Validate(); err != nil {
		return wizard.Settings{}, err
	}
	return s, nil
}

// openLogger builds the logger for s. The returned func releases the log file.
func openLogger(s wizard.Settings) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	format, err := logging.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	if s.Log.File == "" {
		return logging.Discard(), func() {}, nil
	}

	file, err := os.OpenFile(s.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := logging.New(logging.Options{Level: level, Format: format, Writer: file})
	return logger, func() { _ = file.Close() }, nil
}

func runIntake(cmd *cobra.Command, f *rootFlags) error {
	s, err := resolveSettings(cmd, f)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(s)
	if err != nil {
		return err
	}
	defer closeLog()

	rec, err := wizard.Run(cmd.Context(), wizard.Options{
		Store:      session.NewMemStore(),
		Logger:     logger,
		RNG:        util.NewRNG(s.Seed),
		Accessible: s.Accessible,
		Input:      cmd.InOrStdin(),
		Output:     cmd.ErrOrStderr(),
	})
	if errors.Is(err, wizard.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Intake cancelled, nothing recorded.")
		return nil
	}
	if err != nil {
		return err
	}

	return wizard.WriteRecord(cmd.OutOrStdout(), rec, s.Output)
}
