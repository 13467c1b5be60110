package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "DB_DSN", "JWT_SECRET", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS", "ENABLE_HSTS", "MAX_BODY_BYTES", "OPENLIBRARY_SUBJECTS", "OPENLIBRARY_BOOKS_MAX", "OPENLIBRARY_RPS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.DatabaseDSN != "" || cfg.JWTSecret != "" {
		t.Fatalf("expected optional settings to be empty, got %+v", cfg)
	}
	if cfg.RateLimitRPS != 20 || cfg.RateLimitBurst != 40 {
		t.Fatalf("unexpected rate limit defaults: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("unexpected body limit %d", cfg.MaxBodyBytes)
	}
	if cfg.CORSOrigins != nil || cfg.EnableHSTS {
		t.Fatalf("expected CORS and HSTS off, got %+v", cfg)
	}
	if cfg.OpenLibrarySubjects != nil || cfg.OpenLibraryBooksMax != 50 || cfg.OpenLibraryRPS != 1 {
		t.Fatalf("unexpected import defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "nope")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("ENABLE_HSTS", "true")
	t.Setenv("OPENLIBRARY_SUBJECTS", "poetry,history")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected APP_ADDR override, got %q", cfg.Addr)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rps 2.5, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 40 {
		t.Fatalf("expected invalid burst to fall back, got %d", cfg.RateLimitBurst)
	}
	if want := []string{"http://a.test", "http://b.test"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORSOrigins)
	}
	if !cfg.EnableHSTS {
		t.Fatal("expected HSTS on")
	}
	if want := []string{"poetry", "history"}; !reflect.DeepEqual(cfg.OpenLibrarySubjects, want) {
		t.Fatalf("expected %v, got %v", want, cfg.OpenLibrarySubjects)
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("DB_DSN=from_file\nJWT_SECRET=file_secret\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("DB_DSN", "from_env")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Chdir(tmp)

	LoadEnvFiles()

	if got := os.Getenv("DB_DSN"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
	if got := os.Getenv("JWT_SECRET"); got != "file_secret" {
		t.Fatalf("expected .env to fill missing keys, got %q", got)
	}
}
