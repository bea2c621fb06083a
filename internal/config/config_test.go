package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.General.PageSize)
	}
	if cfg.General.MonthPolicy != MonthPolicyLatest {
		t.Errorf("MonthPolicy = %q, want %q", cfg.General.MonthPolicy, MonthPolicyLatest)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "finboard")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[general]\npage_size = 25\nmonth_policy = \"now\"\n\n[appearance]\ntheme = \"terminal\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", cfg.General.PageSize)
	}
	if cfg.General.MonthPolicy != MonthPolicyNow {
		t.Errorf("MonthPolicy = %q, want %q", cfg.General.MonthPolicy, MonthPolicyNow)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "finboard")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[general]\npage_size = -5\nmonth_policy = \"sometime\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.PageSize != 10 {
		t.Errorf("PageSize = %d, want normalized 10", cfg.General.PageSize)
	}
	if cfg.General.MonthPolicy != MonthPolicyLatest {
		t.Errorf("MonthPolicy = %q, want normalized %q", cfg.General.MonthPolicy, MonthPolicyLatest)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.PageSize = 15
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.General.PageSize != 15 {
		t.Errorf("PageSize = %d, want 15", loaded.General.PageSize)
	}
	if loaded.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", loaded.Appearance.Theme)
	}
}
