package pipeline

import (
	"sync"
	"time"

	"github.com/notionup/notionup/internal/notion"
)

// JobStatus represents the state of an upload job.
type JobStatus string

const (
	StatusQueued       JobStatus = "queued"
	StatusLoading      JobStatus = "loading"
	StatusParsing      JobStatus = "parsing"
	StatusPartitioning JobStatus = "partitioning"
	StatusUploading    JobStatus = "uploading"
	StatusCompleted    JobStatus = "completed"
	StatusFailed       JobStatus = "failed"
	StatusPartial      JobStatus = "partial"
)

// Job tracks the state of one document upload.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	errors   []string
}

// Progress tracks upload progress.
type Progress struct {
	TotalBlocks  int           `json:"total_blocks"`
	TotalChunks  int           `json:"total_chunks"`
	PagesCreated int           `json:"pages_created"`
	Pages        []notion.Page `json:"pages"`
	Errors       []string      `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// All returns every live job.
func (s *JobStore) All() []*Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetCounts records block and chunk totals once partitioning is done.
func (j *Job) SetCounts(blocks, chunks int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalBlocks = blocks
	j.Progress.TotalChunks = chunks
	j.UpdatedAt = time.Now()
}

// AddPage records a created page.
func (j *Job) AddPage(p notion.Page) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.PagesCreated++
	j.Progress.Pages = append(j.Progress.Pages, p)
	j.UpdatedAt = time.Now()
}

// PagesCreated returns how many pages this job has created so far.
func (j *Job) PagesCreated() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.Progress.PagesCreated
}

// SetTitle records the resolved title.
func (j *Job) SetTitle(title string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Title = title
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Filename  string    `json:"filename"`
	Title     string    `json:"title"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	pages := make([]notion.Page, len(j.Progress.Pages))
	copy(pages, j.Progress.Pages)
	return JobSnapshot{
		ID:       j.ID,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.Filename,
		Title:    j.Title,
		Progress: Progress{
			TotalBlocks:  j.Progress.TotalBlocks,
			TotalChunks:  j.Progress.TotalChunks,
			PagesCreated: j.Progress.PagesCreated,
			Pages:        pages,
			Errors:       errs,
		},
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
