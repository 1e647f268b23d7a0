package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/davetubbs/mailtmpl/internal/ingest"
)

type parseRequest struct {
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`
}

// source validates the request and returns the selected authoring format.
func (p parseRequest) source() (ingest.Kind, []byte, bool) {
	switch {
	case p.HTML != "" && p.Markdown == "":
		return ingest.KindHTML, []byte(p.HTML), true
	case p.Markdown != "" && p.HTML == "":
		return ingest.KindMarkdown, []byte(p.Markdown), true
	default:
		return "", nil, false
	}
}

// handleParse parses one document synchronously. Per-element extraction
// failures come back as warnings next to the template; only an
// unparseable request or an HTML tree the parser rejects is an error.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	kind, data, ok := req.source()
	if !ok {
		jsonError(w, "exactly one of html or markdown is required", http.StatusBadRequest)
		return
	}

	conv, err := ingest.ForKind(kind)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	src, err := conv.ToHTML(data)
	if err != nil {
		jsonError(w, "convert: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	res, err := s.assembler.Assemble(bytes.NewReader(src))
	if err != nil {
		jsonError(w, "parse: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	for _, d := range res.Diagnostics {
		s.log.Warn("element extraction failed",
			"element_id", d.ElementID,
			"element_type", d.ElementType,
			"reason", d.Reason,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
