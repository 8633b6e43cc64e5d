package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
port: 8080
dsn: "user:pass@tcp(localhost:3306)/packets"
admin_password: "hunter2"
allowed_origins:
  - stewartandjane.com
  - "*.stewartandjane.com"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("port: %d", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Fatal("env should default to development")
	}
	if cfg.ViewSalt == "" {
		t.Fatal("view salt should get a default")
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("origins: %v", cfg.AllowedOrigins)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
port: 8080
dsn: "from-yaml"
admin_password: "hunter2"
`)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DSN", "from-env")
	t.Setenv("ALLOWED_ORIGINS", "a.com, b.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9090 || cfg.DSN != "from-env" {
		t.Fatalf("env should win: port=%d dsn=%s", cfg.Port, cfg.DSN)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "b.com" {
		t.Fatalf("origins: %v", cfg.AllowedOrigins)
	}
}

func TestMissingFileEnvOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "user:pass@tcp(localhost:3306)/packets")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("port default: %d", cfg.Port)
	}
}

func TestValidation(t *testing.T) {
	if _, err := Load(writeConfig(t, `port: 8080`)); err == nil {
		t.Fatal("missing dsn should fail")
	}
	if _, err := Load(writeConfig(t, "dsn: x\n")); err == nil {
		t.Fatal("missing admin password should fail")
	}
	if _, err := Load(writeConfig(t, "dsn: x\nadmin_password: y\nenv: production\n")); err == nil {
		t.Fatal("production without jwt_secret should fail")
	}
}
