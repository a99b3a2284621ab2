package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/notionup/notionup/internal/source"
)

// Worker processes one upload job at a time.
type Worker struct {
	uploader *Uploader
	log      *slog.Logger
}

func NewWorker(uploader *Uploader, log *slog.Logger) *Worker {
	return &Worker{uploader: uploader, log: log}
}

// Process runs the full pipeline for a job: load the source into markdown
// text, parse and partition it, then create one page per chunk. Pages
// created before a failure stay in place; the job ends partial or failed
// accordingly.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusLoading, "loading source")
	loader, err := source.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading source")
		return
	}
	text, err := loader.Load(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("load failed", "error", err)
		job.AddError(fmt.Sprintf("load: %s", err))
		job.SetStatus(StatusFailed, "loading source")
		return
	}

	title := job.Title
	if title == "" {
		title = source.DefaultTitle(text, job.Filename)
		job.SetTitle(title)
	}

	job.SetStatus(StatusParsing, "parsing markdown")
	doc := w.uploader.Parse(text, nil)
	if len(doc) == 0 {
		job.AddError("no content")
		job.SetStatus(StatusFailed, "parsing markdown")
		return
	}

	job.SetStatus(StatusPartitioning, "partitioning blocks")
	chunks := w.uploader.Partition(doc)
	job.SetCounts(len(doc), len(chunks))
	log.Info("partitioned document", "blocks", len(doc), "chunks", len(chunks))

	job.SetStatus(StatusUploading, "creating pages")
	_, err = w.uploader.UploadChunks(ctx, title, chunks, func(res Result) {
		job.AddPage(res.Page)
	})
	if err != nil {
		log.Error("upload failed", "error", err)
		job.AddError(err.Error())
		if job.PagesCreated() > 0 {
			job.SetStatus(StatusPartial, "creating pages")
		} else {
			job.SetStatus(StatusFailed, "creating pages")
		}
		return
	}

	log.Info("upload complete", "pages", job.PagesCreated())
	job.SetStatus(StatusCompleted, "done")
}
