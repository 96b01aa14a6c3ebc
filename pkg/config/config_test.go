package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MAX_UPLOAD_BYTES", "TAXONOMY_DIR", "OCR_LANGUAGES", "OCR_MAX_CONCURRENT", "OCR_TIMEOUT_SECONDS", "OCR_QUEUE_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.TaxonomyDir)
	assert.Equal(t, []string{"eng"}, cfg.OCRLanguages)
	assert.Equal(t, int64(4), cfg.OCRMaxConcurrent)
	assert.Equal(t, time.Minute, cfg.OCRTimeout)
	assert.Equal(t, 5*time.Second, cfg.OCRQueueTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("OCR_LANGUAGES", "eng, deu ,")
	t.Setenv("OCR_MAX_CONCURRENT", "not-a-number")
	t.Setenv("OCR_TIMEOUT_SECONDS", "-3")
	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"eng", "deu"}, cfg.OCRLanguages)
	assert.Equal(t, int64(4), cfg.OCRMaxConcurrent)
	assert.Equal(t, time.Minute, cfg.OCRTimeout)
}
