package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsinham/alzforge/cmd/alzforge/wizard"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Root()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "alzforge", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"fields", "config", "about", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}

	for _, flag := range []string{"seed", "output", "accessible"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
	for _, flag := range []string{"config", "log-level", "log-format", "log-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func parsedRoot(t *testing.T, args ...string) (*cobra.Command, *rootFlags) {
	t.Helper()
	f := &rootFlags{}
	cmd := &cobra.Command{Use: "test"}
	def := wizard.DefaultSettings()
	cmd.Flags().StringVar(&f.configPath, "config", "", "")
	cmd.Flags().Int64Var(&f.seed, "seed", def.Seed, "")
	cmd.Flags().StringVar(&f.output, "output", def.Output, "")
	cmd.Flags().BoolVar(&f.accessible, "accessible", def.Accessible, "")
	cmd.Flags().StringVar(&f.logLevel, "log-level", def.Log.Level, "")
	cmd.Flags().StringVar(&f.logFormat, "log-format", def.Log.Format, "")
	cmd.Flags().StringVar(&f.logFile, "log-file", def.Log.File, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd, f
}

func TestResolveSettings_Defaults(t *testing.T) {
	cmd, f := parsedRoot(t)

	s, err := resolveSettings(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, wizard.DefaultSettings(), s)
}

func TestResolveSettings_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\noutput: yaml\nlog:\n  level: warn\n"), 0644))

	cmd, f := parsedRoot(t, "--config", path, "--seed", "9")

	s, err := resolveSettings(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, int64(9), s.Seed, "explicit flag wins")
	assert.Equal(t, wizard.OutputYAML, s.Output, "file value kept when flag unset")
	assert.Equal(t, "warn", s.Log.Level)
}

func TestResolveSettings_Invalid(t *testing.T) {
	cmd, f := parsedRoot(t, "--output", "csv")

	_, err := resolveSettings(cmd, f)
	assert.ErrorIs(t, err, wizard.ErrInvalidSettings)
}

func TestOpenLogger_File(t *testing.T) {
	s := wizard.DefaultSettings()
	s.Log.File = filepath.Join(t.TempDir(), "intake.log")

	logger, closeLog, err := openLogger(s)
	require.NoError(t, err)
	logger.Info("hello")
	closeLog()

	data, err := os.ReadFile(s.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "level: debug")
	assert.Contains(t, out, "output: table")
}

func TestConfigCommand_BadFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
