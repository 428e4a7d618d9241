package server

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFromFile tests that file keys override defaults and
// absent keys keep them
func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "novel.json")
	body := `{"addr": ":9090", "scriptDir": "stories/act1"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFromFile(path, DefaultAppConfig())
	if err != nil {
		t.Fatalf("loadConfigFromFile failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr not overridden: %q", cfg.Addr)
	}
	if cfg.ScriptDir != "stories/act1" {
		t.Errorf("scriptDir not overridden: %q", cfg.ScriptDir)
	}
	if cfg.AssetDir != "" {
		t.Errorf("absent key changed assetDir: %q", cfg.AssetDir)
	}
}

// TestLoadConfigMissingFile tests that a missing config file keeps the defaults
func TestLoadConfigMissingFile(t *testing.T) {
	base := DefaultAppConfig()
	cfg, err := loadConfigFromFile(filepath.Join(t.TempDir(), "nope.json"), base)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != base {
		t.Errorf("config changed: %+v", cfg)
	}
}

// TestLoadConfigMalformed tests that a broken config file reports an error
func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novel.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfigFromFile(path, DefaultAppConfig()); err == nil {
		t.Error("expected error for malformed config")
	}
}

// TestApplyEnvConfig tests environment overrides
func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("NIGHTFALL_ADDR", ":7070")
	t.Setenv("NIGHTFALL_START_SCENE", "rooftop")

	cfg, err := applyEnvConfig(DefaultAppConfig())
	if err != nil {
		t.Fatalf("applyEnvConfig failed: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("addr not overridden from env: %q", cfg.Addr)
	}
	if cfg.StartScene != "rooftop" {
		t.Errorf("startScene not overridden from env: %q", cfg.StartScene)
	}
}
