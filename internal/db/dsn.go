package db

import (
	"os"
	"strings"
)

// IsPostgresDSN reports whether the DSN selects the postgres driver.
// Anything else (a plain path, file:... URI) is treated as sqlite.
func IsPostgresDSN(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	// lib/pq key=value form
	for _, key := range []string{"host=", "dbname=", "user="} {
		if strings.Contains(lower, key) {
			return true
		}
	}
	return false
}

// NormalizeDSN trims quotes and whitespace; for postgres key=value form it
// supplements sslmode=disable when absent (local-dev convenience).
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	if !IsPostgresDSN(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// GetNormalizedDSN fetches DATABASE_DSN env var and normalizes it.
func GetNormalizedDSN() string { return NormalizeDSN(os.Getenv("DATABASE_DSN")) }
