package config

import (
	"fmt"
	"os"
	"strconv"
)

// Style holds the document-wide font defaults, configured once per
// document. Sizes are in half-points.
type Style struct {
	FontFamily string
	FontSize   int
	MonoFamily string
	MonoSize   int
}

type Config struct {
	Port string

	// Auth
	APIKey string

	// Request limits
	MaxBodyBytes int64

	// Document style defaults
	Style Style
}

func Load() Config {
	cfg := Config{
		Port:   envOr("PORT", "8091"),
		APIKey: os.Getenv("MDOCX_API_KEY"),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 10485760), // 10MB

		Style: Style{
			FontFamily: envOr("DOC_FONT_FAMILY", "Calibri"),
			FontSize:   envInt("DOC_FONT_SIZE", 22),
			MonoFamily: envOr("DOC_MONO_FAMILY", "Consolas"),
			MonoSize:   envInt("DOC_MONO_SIZE", 18),
		},
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 10485760
	}
	if cfg.Style.FontSize <= 0 {
		cfg.Style.FontSize = 22
	}
	if cfg.Style.MonoSize <= 0 {
		cfg.Style.MonoSize = 18
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MDOCX_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
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
