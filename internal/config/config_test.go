package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("server.http_port")
	if value != "8080" {
		t.Errorf("Expected default http_port to be 8080, got %s", value)
	}
	if got := GetInt("server.rate_limit"); got != 30 {
		t.Errorf("Expected default rate_limit to be 30, got %d", got)
	}
	if got := GetDuration("export.cache_ttl"); got != 10*time.Minute {
		t.Errorf("Expected default cache_ttl to be 10m, got %s", got)
	}
	if got := GetFloat64("defaults.type_scale"); got != 1.25 {
		t.Errorf("Expected default type_scale to be 1.25, got %v", got)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("server.http_port", "9090")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.http_port")
	if value != "9090" {
		t.Errorf("Expected http_port to be 9090, got %s", value)
	}

	// Reload from disk
	InitConfig(configPath)
	if value := GetString("server.http_port"); value != "9090" {
		t.Errorf("Expected persisted http_port 9090, got %s", value)
	}
}

func TestDefaultSelection(t *testing.T) {
	tmpDir := t.TempDir()
	InitConfig(filepath.Join(tmpDir, "config.yaml"))

	if got := DefaultSelection(); got != tokens.DefaultSelection() {
		t.Errorf("Expected built-in defaults, got %+v", got)
	}

	if err := Set("defaults.theme", "cyberpunk"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := DefaultSelection().Theme; got != themes.Cyberpunk {
		t.Errorf("Expected cyberpunk, got %s", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("STYLELAB_LOG_LEVEL", "debug")
	InitConfig(filepath.Join(t.TempDir(), "config.yaml"))

	if got := GetString("log.level"); got != "debug" {
		t.Errorf("Expected env override debug, got %s", got)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("Expected env path, got %s", got)
	}
}

func TestIPListsDefaultEmpty(t *testing.T) {
	InitConfig(filepath.Join(t.TempDir(), "config.yaml"))

	if got := GetStringSlice("server.blocked_ips"); len(got) != 0 {
		t.Errorf("Expected empty blocklist, got %v", got)
	}
	if got := GetStringSlice("server.allowed_ips"); len(got) != 0 {
		t.Errorf("Expected empty allowlist, got %v", got)
	}
}
