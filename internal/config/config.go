package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server and demo settings, all overridable through
// TEXTLAB_* environment variables or a .env file in the working directory.
type Config struct {
	Host        string
	Port        string
	DebugMode   bool
	Seed        int64
	MaxUploadMB int64
}

// Load reads the optional .env file and assembles the configuration from
// the environment. Missing or malformed keys fall back to defaults.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Host:        getenv("TEXTLAB_HOST", ""),
		Port:        getenv("TEXTLAB_PORT", "8080"),
		DebugMode:   getenvBool("TEXTLAB_DEBUG", false),
		Seed:        getenvInt64("TEXTLAB_SEED", 0),
		MaxUploadMB: getenvInt64("TEXTLAB_MAX_UPLOAD_MB", 10),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if raw == "" {
		return def
	}
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}

func getenvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}
