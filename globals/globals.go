package globals

import (
	"os"

	"github.com/joho/godotenv"
)

// Package-level init so the secret is resolved before any importer runs.
func init() {
	godotenv.Load()
	JwtSecret = []byte(getenv("ACCESS_TOKEN_SECRET", "your_secret_key"))
}

var JwtSecret []byte

// Context keys
type ContextKey string

const EmailKey ContextKey = "email"

// IsProduction gates the cookie flags (Secure, SameSite=None).
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
