package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeEnvFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Chdir(dir)
}

func TestLoadConfig(t *testing.T) {
	writeEnvFile(t, `APP_NAME=Test Clinic
APP_PORT=8080
APP_ENV=test
DB_HOST=localhost
DB_PORT=5432
DB_USER=postgres
DB_PASSWORD=secret
DB_NAME=clinic_test
REDIS_HOST=localhost
REDIS_PORT=6379
JWT_SECRET=test-secret
JWT_ACCESS_EXPIRY=15m
JWT_REFRESH_EXPIRY=168h
STATS_SUMMARY_CACHE_TTL=2m
STATS_RECENT_DAYS=14
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Name != "Test Clinic" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.DB.Name != "clinic_test" {
		t.Errorf("DB.Name = %q", cfg.DB.Name)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("JWT.AccessExpiry = %v", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 168*time.Hour {
		t.Errorf("JWT.RefreshExpiry = %v", cfg.JWT.RefreshExpiry)
	}
	if cfg.Stats.SummaryCacheTTL != 2*time.Minute {
		t.Errorf("Stats.SummaryCacheTTL = %v", cfg.Stats.SummaryCacheTTL)
	}
	if cfg.Stats.RecentDays != 14 {
		t.Errorf("Stats.RecentDays = %d", cfg.Stats.RecentDays)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	writeEnvFile(t, `APP_PORT=3000
JWT_SECRET=test-secret
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Name != "Medical Information System" {
		t.Errorf("App.Name default = %q", cfg.App.Name)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("JWT.AccessExpiry default = %v", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("JWT.RefreshExpiry default = %v", cfg.JWT.RefreshExpiry)
	}
	if cfg.Stats.SummaryCacheTTL != 60*time.Second {
		t.Errorf("Stats.SummaryCacheTTL default = %v", cfg.Stats.SummaryCacheTTL)
	}
	if cfg.Stats.RecentDays != 30 {
		t.Errorf("Stats.RecentDays default = %d", cfg.Stats.RecentDays)
	}
	if cfg.DB.MigrationsDir != "db/migrations" {
		t.Errorf("DB.MigrationsDir default = %q", cfg.DB.MigrationsDir)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error when .env is missing")
	}
}
