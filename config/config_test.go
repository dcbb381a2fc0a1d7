package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AppName != "taskhive" {
		t.Errorf("AppName = %s, want taskhive", cfg.AppName)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.AccessTTL != time.Hour {
		t.Errorf("AccessTTL = %v, want 1h", cfg.AccessTTL)
	}
	if cfg.ESTasksIndex != "tasks" {
		t.Errorf("ESTasksIndex = %s, want tasks", cfg.ESTasksIndex)
	}
	if !cfg.MetricsEnabled {
		t.Error("metrics default on")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "otherdb")
	t.Setenv("DB_MAX_CONNS", "33")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("JWT_ACCESS_TTL", "15m")

	cfg := Load()
	if cfg.DBName != "otherdb" {
		t.Errorf("DBName = %s, want otherdb", cfg.DBName)
	}
	if cfg.DBMaxConns != 33 {
		t.Errorf("DBMaxConns = %d, want 33", cfg.DBMaxConns)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should be true")
	}
	if cfg.AccessTTL != 15*time.Minute {
		t.Errorf("AccessTTL = %v, want 15m", cfg.AccessTTL)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("COOKIE_SECURE", "yep")
	t.Setenv("JWT_ACCESS_TTL", "soon")

	cfg := Load()
	if cfg.DBMaxConns != 10 {
		t.Errorf("DBMaxConns = %d, want default 10", cfg.DBMaxConns)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure should fall back to false")
	}
	if cfg.AccessTTL != time.Hour {
		t.Errorf("AccessTTL = %v, want default 1h", cfg.AccessTTL)
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Errorf("dsn = %s, want %s", got, want)
	}
}

func TestListHelpers(t *testing.T) {
	cfg := &Config{
		CORSAllowedOrigins: "http://a.test, http://b.test ,,",
		ElasticsearchAddrs: "",
	}
	origins := cfg.CORSOrigins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Errorf("origins = %v", origins)
	}
	if addrs := cfg.ESAddrs(); len(addrs) != 0 {
		t.Errorf("addrs = %v, want empty", addrs)
	}
}
