package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8000" || cfg.DBDriver != "sqlite" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AuthEnabled {
		t.Fatal("auth should be disabled by default")
	}
	if len(cfg.Transitions) != 0 {
		t.Fatal("expected no transition table by default")
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
port: "9000"
db_driver: sqlite
db_source: file.db
jwt_ttl: 2h
timezone: UTC
transitions:
  pending: [confirmed, cancelled]
  confirmed: [preparing]
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_SOURCE", "env.db")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %q, want file value", cfg.Port)
	}
	if cfg.DBSource != "env.db" {
		t.Errorf("db source = %q, want env override", cfg.DBSource)
	}
	if cfg.JWTTTL != 2*time.Hour {
		t.Errorf("jwt ttl = %v", cfg.JWTTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
	if got := cfg.Transitions["pending"]; len(got) != 2 || got[1] != "cancelled" {
		t.Errorf("transitions = %v", cfg.Transitions)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"auth without secret", map[string]string{"AUTH_ENABLED": "true"}},
		{"auth flag", map[string]string{"AUTH_ENABLED": "maybe"}},
		{"ttl", map[string]string{"JWT_TTL": "forever"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeFile(t, "port: [unclosed"))
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}
