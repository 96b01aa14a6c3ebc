package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MaxUploadBytes int64
	TaxonomyDir    string

	OCRLanguages     []string
	OCRMaxConcurrent int64
	OCRTimeout       time.Duration
	OCRQueueTimeout  time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		TaxonomyDir:      os.Getenv("TAXONOMY_DIR"),
		OCRLanguages:     getEnvList("OCR_LANGUAGES", []string{"eng"}),
		OCRMaxConcurrent: int64(getEnvInt("OCR_MAX_CONCURRENT", 4)),
		OCRTimeout:       time.Duration(getEnvInt("OCR_TIMEOUT_SECONDS", 60)) * time.Second,
		OCRQueueTimeout:  time.Duration(getEnvInt("OCR_QUEUE_TIMEOUT_SECONDS", 5)) * time.Second,
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
