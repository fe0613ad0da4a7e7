package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"TEAMDOCS_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TEAMDOCS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvSkipsMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() = %v, want nil", err)
	}
}

func TestLoadDotEnvDoesNotOverrideExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "TEAMDOCS_DOTENV_NEW=from-file\nTEAMDOCS_DOTENV_SET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("TEAMDOCS_DOTENV_SET", "from-env")
	t.Setenv("TEAMDOCS_DOTENV_NEW", "")
	if err := os.Unsetenv("TEAMDOCS_DOTENV_NEW"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() = %v", err)
	}
	if got := os.Getenv("TEAMDOCS_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("TEAMDOCS_DOTENV_NEW = %q, want %q", got, "from-file")
	}
	if got := os.Getenv("TEAMDOCS_DOTENV_SET"); got != "from-env" {
		t.Fatalf("TEAMDOCS_DOTENV_SET = %q, want %q", got, "from-env")
	}
}
