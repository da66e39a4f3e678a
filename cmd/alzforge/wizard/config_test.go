package wizard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alzforge.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test settings: %v", err)
	}
	return path
}

func TestLoadFromYAML_ValidConfig(t *testing.T) {
	path := writeSettings(t, `
seed: 42
output: yaml
accessible: true
log:
  level: debug
  format: text
  file: /tmp/alzforge.log
`)

	s, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if s.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", s.Seed)
	}
	if s.Output != OutputYAML {
		t.Errorf("Expected output yaml, got %s", s.Output)
	}
	if !s.Accessible {
		t.Error("Expected accessible mode")
	}
	if s.Log.Level != "debug" || s.Log.Format != "text" || s.Log.File != "/tmp/alzforge.log" {
		t.Errorf("Unexpected log settings: %+v", s.Log)
	}
}

func TestLoadFromYAML_PartialKeepsDefaults(t *testing.T) {
	s, err := LoadFromYAML(writeSettings(t, "seed: 7\n"))
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	def := DefaultSettings()
	if s.Output != def.Output || s.Log.Level != def.Log.Level || s.Log.Format != def.Log.Format {
		t.Errorf("Defaults lost: %+v", s)
	}
	if s.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", s.Seed)
	}
}

func TestLoadFromYAML_Empty(t *testing.T) {
	s, err := LoadFromYAML(writeSettings(t, ""))
	if err != nil {
		t.Fatalf("LoadFromYAML failed on empty file: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestLoadFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"unknown key", "colour: blue\n", false},
		{"bad yaml", "seed: [\n", false},
		{"bad output", "output: csv\n", true},
		{"bad level", "log:\n  level: loud\n", true},
		{"bad format", "log:\n  format: xml\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromYAML(writeSettings(t, tc.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestLoadFromYAML_MissingFile(t *testing.T) {
	_, err := LoadFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestSettings_WriteYAMLRoundTrip(t *testing.T) {
	orig := DefaultSettings()
	orig.Seed = 99
	orig.Log.File = "intake.log"

	var buf bytes.Buffer
	if err := orig.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	got, err := LoadFromYAML(writeSettings(t, buf.String()))
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if got != orig {
		t.Errorf("Round trip mismatch: %+v vs %+v", got, orig)
	}
}
