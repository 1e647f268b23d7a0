package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Request limits
	MaxBodyBytes      int64
	MaxBatchDocuments int

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Job state
	JobTTL time.Duration

	// Template defaults applied when the source carries no global styles
	DefaultBackground   string
	DefaultContentWidth string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8092"),

		APIKey: os.Getenv("MAILTMPL_API_KEY"),

		MaxBodyBytes:      envInt64("MAX_BODY_BYTES", 2097152), // 2MB
		MaxBatchDocuments: envInt("MAX_BATCH_DOCUMENTS", 50),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		DefaultBackground:   envOr("DEFAULT_BACKGROUND", "#ffffff"),
		DefaultContentWidth: envOr("DEFAULT_CONTENT_WIDTH", "600px"),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 2097152
	}
	if cfg.MaxBatchDocuments <= 0 {
		cfg.MaxBatchDocuments = 50
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MAILTMPL_API_KEY is required")
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

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
