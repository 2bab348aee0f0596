package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Test loading with no config file (should use defaults)
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	// Check defaults: everything enabled, no overrides
	if len(cfg.Anchors.Enabled) != 0 {
		t.Errorf("expected empty enabled list, got %v", cfg.Anchors.Enabled)
	}
	if cfg.Anchors.RedisAddr != "" {
		t.Errorf("expected empty redis_addr, got %s", cfg.Anchors.RedisAddr)
	}
	if cfg.Verbose {
		t.Error("expected verbose to default to false")
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	configContent := `
verbose: true
anchors:
  enabled:
    - crypto
    - logging
  redis_addr: 127.0.0.1:16379
`
	os.WriteFile("ballast.yml", []byte(configContent), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if !cfg.Verbose {
		t.Error("expected verbose true")
	}
	if len(cfg.Anchors.Enabled) != 2 {
		t.Errorf("expected 2 enabled anchors, got %v", cfg.Anchors.Enabled)
	}
	if cfg.Anchors.RedisAddr != "127.0.0.1:16379" {
		t.Errorf("expected redis_addr override, got %s", cfg.Anchors.RedisAddr)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("ballast.yml", []byte("anchors: [not: a: mapping"), 0644)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config, got nil")
	}
}

func TestAnchorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled []string
		anchor  string
		want    bool
	}{
		{"empty list enables everything", nil, "network", true},
		{"listed anchor", []string{"crypto"}, "crypto", true},
		{"unlisted anchor", []string{"crypto"}, "network", false},
		{"case insensitive", []string{"Crypto"}, "crypto", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Anchors.Enabled = tt.enabled
			if got := cfg.AnchorEnabled(tt.anchor); got != tt.want {
				t.Errorf("AnchorEnabled(%q) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}
