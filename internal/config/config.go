package config

import (
	"log"
	"os"
	"strconv"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

type Config struct {
	Port             string
	DatabaseDSN      string
	Env              string
	UploadsDir       string
	MaxUploadBytes   int64
	SessionSecret    string
	DevMode          bool
	DBDebug          bool
	RunSQLMigrations bool
	SeedDemo         bool
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:instance/social.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.UploadsDir = getEnv("UPLOADS_DIR", "instance/uploads")
	cfg.MaxUploadBytes = getInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	cfg.SessionSecret = getEnv("SESSION_SECRET", "devsessionsecret")
	cfg.DevMode = ParseBool("DEV", false)
	cfg.DBDebug = ParseBool("DB_DEBUG", false)
	cfg.RunSQLMigrations = ParseBool("MIGRATIONS", false)
	cfg.SeedDemo = ParseBool("DB_SEED", false)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
