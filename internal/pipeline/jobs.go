package pipeline

import (
	"sync"
	"time"

	"github.com/davetubbs/mailtmpl/internal/ingest"
	"github.com/davetubbs/mailtmpl/internal/parse"
	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

// JobStatus represents the state of a batch parse job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusPartial   JobStatus = "partial"
)

// Document is one source document in a batch.
type Document struct {
	Name string
	Kind ingest.Kind
	Data []byte
}

// DocumentResult is the per-document outcome of a batch parse.
type DocumentResult struct {
	Name     string                   `json:"name"`
	Template *tmpl.StructuredTemplate `json:"template,omitempty"`
	Warnings []parse.Diagnostic       `json:"warnings,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

// Progress tracks batch processing progress.
type Progress struct {
	TotalDocuments  int      `json:"total_documents"`
	DocumentsParsed int      `json:"documents_parsed"`
	DocumentsFailed int      `json:"documents_failed"`
	Errors          []string `json:"errors"`
}

// Job tracks the state of one batch parse.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	documents []Document
	results   []DocumentResult
	errors    []string
}

// SetDocuments sets the batch input.
func (j *Job) SetDocuments(docs []Document) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.documents = docs
	j.Progress.TotalDocuments = len(docs)
}

// Documents returns the batch input.
func (j *Job) Documents() []Document {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.documents
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddResult records one document outcome.
func (j *Job) AddResult(res DocumentResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.results = append(j.results, res)
	if res.Error != "" {
		j.Progress.DocumentsFailed++
		j.errors = append(j.errors, res.Name+": "+res.Error)
		j.Progress.Errors = j.errors
	} else {
		j.Progress.DocumentsParsed++
	}
	j.UpdatedAt = time.Now()
}

// AddError records a job-level error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string           `json:"job_id"`
	Status   JobStatus        `json:"status"`
	Phase    string           `json:"phase"`
	Progress Progress         `json:"progress"`
	Results  []DocumentResult `json:"results"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	results := j.results
	if results == nil {
		results = []DocumentResult{}
	}
	return JobSnapshot{
		ID:     j.ID,
		Status: j.Status,
		Phase:  j.Phase,
		Progress: Progress{
			TotalDocuments:  j.Progress.TotalDocuments,
			DocumentsParsed: j.Progress.DocumentsParsed,
			DocumentsFailed: j.Progress.DocumentsFailed,
			Errors:          errs,
		},
		Results: results,
	}
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
