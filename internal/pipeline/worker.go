package pipeline

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/davetubbs/mailtmpl/internal/ingest"
	"github.com/davetubbs/mailtmpl/internal/parse"
)

// Worker processes one batch parse job at a time.
type Worker struct {
	assembler parse.Assembler
	log       *slog.Logger
}

func NewWorker(assembler parse.Assembler, log *slog.Logger) *Worker {
	return &Worker{assembler: assembler, log: log}
}

// Process parses every document in the job. A document that fails to
// convert or parse records its error and never stops the rest of the
// batch; the final status reflects the mix.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	docs := job.Documents()
	job.SetStatus(StatusParsing, "parsing")

	for _, doc := range docs {
		if ctx.Err() != nil {
			job.AddError("shutdown before batch finished")
			job.SetStatus(StatusFailed, "canceled")
			return
		}
		job.AddResult(w.parseDocument(log, doc))
	}

	snap := job.Snapshot()
	switch {
	case snap.Progress.DocumentsFailed == 0:
		job.SetStatus(StatusCompleted, "done")
	case snap.Progress.DocumentsParsed > 0:
		job.SetStatus(StatusPartial, "done")
	default:
		job.SetStatus(StatusFailed, "parsing")
	}
	log.Info("batch complete",
		"parsed", snap.Progress.DocumentsParsed,
		"failed", snap.Progress.DocumentsFailed,
	)
}

func (w *Worker) parseDocument(log *slog.Logger, doc Document) DocumentResult {
	conv, err := ingest.ForKind(doc.Kind)
	if err != nil {
		log.Error("unsupported source", "document", doc.Name, "error", err)
		return DocumentResult{Name: doc.Name, Error: err.Error()}
	}

	src, err := conv.ToHTML(doc.Data)
	if err != nil {
		log.Error("convert failed", "document", doc.Name, "error", err)
		return DocumentResult{Name: doc.Name, Error: err.Error()}
	}

	res, err := w.assembler.Assemble(bytes.NewReader(src))
	if err != nil {
		log.Error("parse failed", "document", doc.Name, "error", err)
		return DocumentResult{Name: doc.Name, Error: err.Error()}
	}

	if len(res.Diagnostics) > 0 {
		log.Warn("parse finished with element failures",
			"document", doc.Name,
			"failed_elements", len(res.Diagnostics),
		)
	}
	return DocumentResult{
		Name:     doc.Name,
		Template: res.Template,
		Warnings: res.Diagnostics,
	}
}
