package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper resets viper state between tests
func resetViper() {
	viper.Reset()
}

func TestLoad_Success(t *testing.T) {
	resetViper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "coffeescript.yaml")

	configContent := `
bare: true
header: true
inline_map: true

log:
  level: debug
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	originalPaths := Paths
	Paths = []string{tmpDir}
	defer func() { Paths = originalPaths }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if !cfg.Bare {
		t.Error("Bare = false, want true")
	}
	if !cfg.Header {
		t.Error("Header = false, want true")
	}
	if !cfg.InlineMap {
		t.Error("InlineMap = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	resetViper()

	tmpDir := t.TempDir()

	originalPaths := Paths
	Paths = []string{tmpDir}
	defer func() { Paths = originalPaths }()

	// Missing config file is not an error, everything defaults off
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil (file not found should not error)", err)
	}

	if cfg.Bare || cfg.Header || cfg.InlineMap {
		t.Errorf("Load() = %+v, want all flags false by default", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	resetViper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "coffeescript.yaml")

	invalidYAML := `
bare: [true
header
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatal(err)
	}

	originalPaths := Paths
	Paths = []string{tmpDir}
	defer func() { Paths = originalPaths }()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with invalid YAML should return error")
	}
	if !errors.Is(err, ErrReadConfig) {
		t.Errorf("Load() error = %v, want ErrReadConfig", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	resetViper()

	tmpDir := t.TempDir()

	originalPaths := Paths
	Paths = []string{tmpDir}
	defer func() { Paths = originalPaths }()

	t.Setenv("COFFEE_BARE", "true")
	t.Setenv("COFFEE_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if !cfg.Bare {
		t.Error("Bare = false, want true from COFFEE_BARE")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q from COFFEE_LOG_LEVEL", cfg.Log.Level, "warn")
	}
}

func TestConfig_CompilerOptions(t *testing.T) {
	cfg := &Config{Bare: true, InlineMap: true}

	options := cfg.CompilerOptions()

	if options["bare"] != true {
		t.Errorf("options[bare] = %v, want true", options["bare"])
	}
	if options["header"] != false {
		t.Errorf("options[header] = %v, want false", options["header"])
	}
	if options["inlineMap"] != true {
		t.Errorf("options[inlineMap] = %v, want true", options["inlineMap"])
	}
}
