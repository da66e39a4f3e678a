package wizard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mrsinham/alzforge/internal/logging"
	"gopkg.in/yaml.v3"
)

// Output formats for the finished record.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// ErrInvalidSettings wraps every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the optional YAML settings file. Flags set on the command line
// override it.
type Settings struct {
	Seed       int64       `yaml:"seed"`
	Output     string      `yaml:"output"`
	Accessible bool        `yaml:"accessible"`
	Log        LogSettings `yaml:"log"`
}

// LogSettings configures logging while the wizard runs.
type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives logs. Empty discards them, the terminal belongs to the wizard.
	File string `yaml:"file"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Output: OutputTable,
		Log: LogSettings{
			Level:  "info",
			Format: string(logging.FormatJSON),
		},
	}
}

// LoadFromYAML reads settings from path on top of DefaultSettings.
// Unknown keys are rejected.
func LoadFromYAML(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	s := DefaultSettings()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// WriteYAML encodes s to w.
func (s Settings) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return enc.Close()
}

// Validate checks the enumerated settings.
func (s Settings) Validate() error {
	switch s.Output {
	case OutputTable, OutputYAML:
	default:
		return fmt.Errorf("%w: output %q (want %s or %s)", ErrInvalidSettings, s.Output, OutputTable, OutputYAML)
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if _, err := logging.ParseFormat(s.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}
