package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer-key auth (local development).
	RenderAPIKey string

	// Upload limits
	MaxDocumentBytes int64

	// Presentation defaults
	DefaultTextSize string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		RenderAPIKey: os.Getenv("RENDER_API_KEY"),

		MaxDocumentBytes: envInt64("MAX_DOCUMENT_BYTES", 10485760), // 10MB

		DefaultTextSize: envOr("DEFAULT_TEXT_SIZE", "medium"),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.DefaultTextSize {
	case "small", "medium", "large":
	default:
		return fmt.Errorf("DEFAULT_TEXT_SIZE must be small, medium or large, got %q", c.DefaultTextSize)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
