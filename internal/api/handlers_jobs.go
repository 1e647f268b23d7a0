package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/davetubbs/mailtmpl/internal/pipeline"
	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

type batchRequest struct {
	Documents []batchDocument `json:"documents"`
}

type batchDocument struct {
	Name     string `json:"name"`
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`
}

// handleBatchParse queues an asynchronous parse over a set of documents,
// typically a customer's stored campaign library being migrated into the
// editor. Input validation happens here; everything after submission is
// reported through the job snapshot.
func (s *Server) handleBatchParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes*int64(s.cfg.MaxBatchDocuments))

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 {
		jsonError(w, "at least one document is required", http.StatusBadRequest)
		return
	}
	if len(req.Documents) > s.cfg.MaxBatchDocuments {
		jsonError(w, fmt.Sprintf("batch exceeds %d documents", s.cfg.MaxBatchDocuments), http.StatusBadRequest)
		return
	}

	docs := make([]pipeline.Document, 0, len(req.Documents))
	for i, d := range req.Documents {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("document-%d", i)
		}
		kind, data, ok := parseRequest{HTML: d.HTML, Markdown: d.Markdown}.source()
		if !ok {
			jsonError(w, fmt.Sprintf("%s: exactly one of html or markdown is required", name), http.StatusBadRequest)
			return
		}
		if int64(len(data)) > s.cfg.MaxBodyBytes {
			jsonError(w, fmt.Sprintf("%s: exceeds max size (%d bytes)", name, s.cfg.MaxBodyBytes), http.StatusRequestEntityTooLarge)
			return
		}
		docs = append(docs, pipeline.Document{Name: name, Kind: kind, Data: data})
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        tmpl.NewID(),
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetDocuments(docs)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/parse/jobs/%s", job.ID),
	})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}
