package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pders01/modpack/internal/config"
)

func TestInitCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	cfgFile = ""

	if err := runInit(nil, []string{}); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	configPath := filepath.Join(home, ".config", "modpack", "config.toml")
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config was not created: %v", err)
	}

	f, err := config.Decode(content)
	if err != nil {
		t.Fatalf("created config is not valid TOML: %v", err)
	}
	if f.Build.OutDir != "build" {
		t.Errorf("default out_dir = %q, want build", f.Build.OutDir)
	}
}

func TestInitWithExistingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	existing := "[build]\nout_dir = \"dist\"\n"
	if err := os.WriteFile(configPath, []byte(existing), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfgFile = configPath
	defer func() { cfgFile = "" }()

	if err := runInit(nil, []string{}); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if string(content) != existing {
		t.Error("existing config was overwritten")
	}
}

func TestInitWithInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[build\nout_dir = "), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfgFile = configPath
	defer func() { cfgFile = "" }()

	if err := runInit(nil, []string{}); err == nil {
		t.Error("expected error for an invalid existing config")
	}
}
