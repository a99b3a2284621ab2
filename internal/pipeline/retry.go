package pipeline

import (
	"errors"
	"math/rand"
	"time"

	"github.com/notionup/notionup/internal/notion"
)

// MaxRetries bounds attempts per page creation.
const MaxRetries = 3

// IsRetryable checks if an error is worth retrying (rate limit, 5xx).
func IsRetryable(err error) bool {
	var retryErr *notion.RetryableError
	return errors.As(err, &retryErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(base) / 2))
	return base + jitter
}
