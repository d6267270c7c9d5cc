package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------- ValidateConfigPath ----------

func TestValidateConfigPath_Valid(t *testing.T) {
	// Create a real configs/ directory so filepath.Abs resolves correctly.
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "default.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateConfigPath(path); err != nil {
		t.Errorf("expected valid path, got error: %v", err)
	}
}

func TestValidateConfigPath_PathTraversal(t *testing.T) {
	cases := []string{
		"../../etc/passwd",
		"configs/../../../etc/shadow",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for traversal path %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_WrongExtension(t *testing.T) {
	cases := []string{
		"configs/default.json",
		"configs/default.yml",
		"configs/default.txt",
		"configs/default",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for extension in %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_NotInConfigsDir(t *testing.T) {
	cases := []string{
		"other/default.yaml",
		"default.yaml",
		"/tmp/default.yaml",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for path outside configs/ %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_EmptyPath(t *testing.T) {
	if err := ValidateConfigPath(""); err == nil {
		t.Error("expected error for empty path, got nil")
	}
}

func TestValidateConfigPath_VeryLongPath(t *testing.T) {
	long := "configs/" + strings.Repeat("a", 1000) + ".yaml"
	// Should not panic; error or success is OS-dependent, but must not crash.
	_ = ValidateConfigPath(long)
}

// ---------- Load ----------

// writeConfig creates a temporary configs/ dir with the given YAML content and returns the path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validYAML = `
camera:
  type: "dummy"
  handle: 7
defaults:
  debug_level: 2
  captures: 3
  dump_frame: true
  probe_address: true
  list_controls: false
`

func TestLoad_ValidFullConfig(t *testing.T) {
	path := writeConfig(t, validYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Camera.Type != "dummy" {
		t.Errorf("camera.type = %q, want %q", cfg.Camera.Type, "dummy")
	}
	if cfg.Camera.Handle != 7 {
		t.Errorf("camera.handle = %d, want 7", cfg.Camera.Handle)
	}
	if cfg.Defaults.DebugLevel != 2 {
		t.Errorf("debug_level = %d, want 2", cfg.Defaults.DebugLevel)
	}
	if cfg.Defaults.Captures != 3 {
		t.Errorf("captures = %d, want 3", cfg.Defaults.Captures)
	}
	if !cfg.Defaults.DumpFrame {
		t.Error("dump_frame = false, want true")
	}
	if !cfg.Defaults.ProbeAddress {
		t.Error("probe_address = false, want true")
	}
	if cfg.Defaults.ListControls {
		t.Error("list_controls = true, want false")
	}
}

func TestLoad_CapturesDefaultsToOne(t *testing.T) {
	yaml := `
camera:
  type: "dummy"
`
	path := writeConfig(t, yaml)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Captures != 1 {
		t.Errorf("captures = %d, want default 1", cfg.Defaults.Captures)
	}
}

func TestLoad_MissingCameraType(t *testing.T) {
	yaml := `
defaults:
  debug_level: 1
`
	path := writeConfig(t, yaml)
	if _, err := Load(path); err == nil {
		t.Error("expected error for missing camera.type, got nil")
	}
}

func TestLoad_DebugLevelOutOfRange(t *testing.T) {
	cases := []string{
		`
camera:
  type: "dummy"
defaults:
  debug_level: 5
`,
		`
camera:
  type: "dummy"
defaults:
  debug_level: -1
`,
	}
	for _, yaml := range cases {
		path := writeConfig(t, yaml)
		if _, err := Load(path); err == nil {
			t.Errorf("expected error for out-of-range debug_level, got nil")
		}
	}
}

func TestLoad_CapturesOutOfRange(t *testing.T) {
	cases := []string{
		`
camera:
  type: "dummy"
defaults:
  captures: -1
`,
		`
camera:
  type: "dummy"
defaults:
  captures: 10001
`,
	}
	for _, yaml := range cases {
		path := writeConfig(t, yaml)
		if _, err := Load(path); err == nil {
			t.Errorf("expected error for out-of-range captures, got nil")
		}
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "camera: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml, got nil")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "configs", "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
