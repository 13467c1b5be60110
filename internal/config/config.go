package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings of the HTTP server.
type Config struct {
	Addr           string
	DatabaseDSN    string // optional; when set the catalog is seeded from Postgres
	JWTSecret      string // optional; when empty mutating routes are open
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
	EnableHSTS     bool
	MaxBodyBytes   int64

	// Startup import from Open Library; off unless subjects are listed.
	OpenLibrarySubjects []string
	OpenLibraryBooksMax int
	OpenLibraryRPS      int
}

// LoadEnvFiles reads .env and .env.local. Variables already present in the
// environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment.
func Load() Config {
	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseDSN:    os.Getenv("DB_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		CORSOrigins:    getEnvList("CORS_ALLOWED_ORIGINS"),
		EnableHSTS:     os.Getenv("ENABLE_HSTS") == "true",
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),

		OpenLibrarySubjects: getEnvList("OPENLIBRARY_SUBJECTS"),
		OpenLibraryBooksMax: getEnvInt("OPENLIBRARY_BOOKS_MAX", 50),
		OpenLibraryRPS:      getEnvInt("OPENLIBRARY_RPS", 1),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
