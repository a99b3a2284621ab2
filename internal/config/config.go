package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Notion API
	NotionBaseURL    string
	NotionToken      string
	NotionDatabaseID string

	// Serve-mode auth
	APIKey string

	// Block generation
	MaxTextChars int // Per-block character ceiling.

	// Page partitioning
	BlockQuota      int // Max blocks per page.
	SplitLookbehind int
	SplitLookahead  int

	// Worker pool (serve mode)
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8087"),

		NotionBaseURL:    envOr("NOTION_BASE_URL", "https://api.notion.com"),
		NotionToken:      os.Getenv("NOTION_API_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),

		APIKey: os.Getenv("NOTIONUP_API_KEY"),

		MaxTextChars: envInt("MAX_TEXT_CHARS", 1800),

		BlockQuota:      envInt("BLOCK_QUOTA", 100),
		SplitLookbehind: envInt("SPLIT_LOOKBEHIND", 50),
		SplitLookahead:  envInt("SPLIT_LOOKAHEAD", 10),

		WorkerCount:  envInt("WORKER_COUNT", 2),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 50),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.MaxTextChars <= 0 {
		cfg.MaxTextChars = 1800
	}
	if cfg.BlockQuota <= 0 {
		cfg.BlockQuota = 100
	}
	if cfg.SplitLookbehind <= 0 {
		cfg.SplitLookbehind = 50
	}
	if cfg.SplitLookahead <= 0 {
		cfg.SplitLookahead = 10
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// Validate checks the credentials every upload needs.
func (c Config) Validate() error {
	if c.NotionToken == "" {
		return fmt.Errorf("NOTION_API_TOKEN is required")
	}
	if c.NotionDatabaseID == "" {
		return fmt.Errorf("NOTION_DATABASE_ID is required")
	}
	return nil
}

// ValidateServe checks the additional settings serve mode needs.
func (c Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return fmt.Errorf("NOTIONUP_API_KEY is required")
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
