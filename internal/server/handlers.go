package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/analysis"
	"github.com/jonathan/resume-insight/internal/extraction"
)

// extractRequest is the payload for POST /v1/extract.
type extractRequest struct {
	// Document is the base64-encoded document, optionally with a data-URI prefix.
	Document string `json:"document"`
	Filename string `json:"filename,omitempty"`
}

// handleExtract decodes an uploaded document, extracts and normalizes its
// text, and reports the quick score so the caller can decide whether a full
// analysis is worth requesting.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Document == "" {
		s.errorResponse(w, http.StatusBadRequest, "document is required")
		return
	}

	data, err := extraction.DecodePayload(req.Document)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	result, err := s.pipeline.ExtractText(data)
	if err != nil {
		s.log.Info("extraction rejected",
			zap.String("filename", req.Filename),
			zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyze runs the full analysis pipeline over resume text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.pipeline.Analyze(r.Context(), req)
	if err != nil {
		// Full cause stays in the logs; the surfaced message is filtered.
		s.log.Error("analysis failed",
			zap.String("job_role", req.JobRole),
			zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListRoles returns the role catalog for UI role pickers.
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": s.catalog.Roles()})
}
