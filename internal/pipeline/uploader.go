package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/notionup/notionup/internal/blocks"
	"github.com/notionup/notionup/internal/config"
	"github.com/notionup/notionup/internal/markdown"
	"github.com/notionup/notionup/internal/notion"
	"github.com/notionup/notionup/internal/splitter"
)

// Uploader converts markdown text into Notion pages: parse into blocks,
// partition into quota-bounded chunks, create one page per chunk.
type Uploader struct {
	client   *notion.Client
	log      *slog.Logger
	splitCfg splitter.Config
	maxChars int
}

func NewUploader(client *notion.Client, log *slog.Logger, cfg config.Config) *Uploader {
	return &Uploader{
		client: client,
		log:    log,
		splitCfg: splitter.Config{
			Quota:      cfg.BlockQuota,
			Lookbehind: cfg.SplitLookbehind,
			Lookahead:  cfg.SplitLookahead,
		},
		maxChars: cfg.MaxTextChars,
	}
}

// Result describes one created page.
type Result struct {
	Title  string      `json:"title"`
	Blocks int         `json:"blocks"`
	Page   notion.Page `json:"page"`
}

// Parse converts markdown text into blocks. The progress func, when
// non-nil, is advanced per parsed line.
func (u *Uploader) Parse(text string, progress func(n int)) blocks.Document {
	return markdown.Parse(text, markdown.Config{
		MaxTextChars: u.maxChars,
		Progress:     progress,
	})
}

// Partition cuts a document into quota-bounded chunks.
func (u *Uploader) Partition(doc blocks.Document) []blocks.Chunk {
	return splitter.Partition(doc, u.splitCfg)
}

// Convert runs Parse and Partition, without touching the network.
func (u *Uploader) Convert(text string, progress func(n int)) (blocks.Document, []blocks.Chunk) {
	doc := u.Parse(text, progress)
	return doc, u.Partition(doc)
}

// UploadChunks creates one page per chunk, sequentially and in order.
// Multi-chunk uploads get "- Part N" titles. onPage, when non-nil, fires
// after each successful page. The first failed chunk aborts the rest;
// already-created pages stay in place.
func (u *Uploader) UploadChunks(ctx context.Context, title string, chunks []blocks.Chunk, onPage func(Result)) ([]Result, error) {
	results := make([]Result, 0, len(chunks))
	for i, chunk := range chunks {
		partTitle := title
		if len(chunks) > 1 {
			partTitle = fmt.Sprintf("%s - Part %d", title, i+1)
		}

		page, err := u.createWithRetry(ctx, partTitle, chunk)
		if err != nil {
			return results, fmt.Errorf("upload chunk %d/%d: %w", i+1, len(chunks), err)
		}

		u.log.Info("created page",
			"title", partTitle,
			"blocks", len(chunk),
			"page_id", page.ID,
		)
		res := Result{Title: partTitle, Blocks: len(chunk), Page: *page}
		results = append(results, res)
		if onPage != nil {
			onPage(res)
		}
	}
	return results, nil
}

// Upload runs the full pipeline for one document.
func (u *Uploader) Upload(ctx context.Context, title, text string) ([]Result, error) {
	_, chunks := u.Convert(text, nil)
	return u.UploadChunks(ctx, title, chunks, nil)
}

func (u *Uploader) createWithRetry(ctx context.Context, title string, chunk blocks.Chunk) (*notion.Page, error) {
	var page *notion.Page
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		page, lastErr = u.client.CreatePage(ctx, title, chunk)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		u.log.Warn("retryable page creation error", "title", title, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return page, nil
}
