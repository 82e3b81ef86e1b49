package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"server": {"bindAddr": "127.0.0.1:9090"},
		"database": {"host": "db.internal", "port": 5433},
		"media": {"bucket": "alert-media", "baseURL": "https://cdn.example.com"}
	}`)

	cfg := &Config{}
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if cfg.Server.BindAddr != "127.0.0.1:9090" {
		t.Errorf("bindAddr = %q", cfg.Server.BindAddr)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 5433 {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Media.Bucket != "alert-media" {
		t.Errorf("media = %+v", cfg.Media)
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
server:
  bindAddr: 0.0.0.0:7070
redis:
  addr: localhost:6379
  db: 2
media:
  folder: alert-board
`)

	cfg := &Config{}
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if cfg.Server.BindAddr != "0.0.0.0:7070" {
		t.Errorf("bindAddr = %q", cfg.Server.BindAddr)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("redis = %+v", cfg.Redis)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "bad_json", file: "bad.json", content: `{not json`},
		{name: "bad_yaml", file: "bad.yaml", content: "server: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)
			if err := loadFromFile(&Config{}, path); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}

	if err := loadFromFile(&Config{}, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "admin",
		Password: "secret",
		DBName:   "alertboard",
		SSLMode:  "disable",
	}
	expected := "host=localhost port=5432 user=admin password=secret dbname=alertboard sslmode=disable"
	if got := c.DSN(); got != expected {
		t.Errorf("DSN() = %q, want %q", got, expected)
	}
}
