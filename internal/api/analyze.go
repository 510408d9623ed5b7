package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"javacheck/internal/models"
)

// AnalyzeRequest is the request body for the analyze endpoint
type AnalyzeRequest struct {
	Code *string `json:"code"`
}

// AnalyzeResponse is the wire format consumed by the frontend. The scores
// and concept list ride inside a conceptAnalysis envelope; security
// findings ride in securityAnalysis.
type AnalyzeResponse struct {
	ConceptAnalysis  ConceptAnalysis         `json:"conceptAnalysis"`
	LinesOfCode      int                     `json:"linesOfCode"`
	QualityScore     int                     `json:"qualityScore"`
	Recommendations  []string                `json:"recommendations"`
	SecurityAnalysis models.SecurityAnalysis `json:"securityAnalysis"`
}

type ConceptAnalysis struct {
	ComplexityScore  int                      `json:"complexityScore"`
	DetectedConcepts []models.DetectedConcept `json:"detectedConcepts"`
}

// analyzeCode handles POST /analyze. Validation happens before the engine
// runs: a missing code field and an empty (post-trim) one are distinct
// client errors.
func (s *Server) analyzeCode(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.Server.MaxRequestSize)*1024)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, `Missing "code" field in request`)
		return
	}
	if req.Code == nil {
		respondError(w, http.StatusBadRequest, `Missing "code" field in request`)
		return
	}
	if strings.TrimSpace(*req.Code) == "" {
		respondError(w, http.StatusBadRequest, "Code cannot be empty")
		return
	}

	report := s.engine.Analyze(*req.Code)

	log.Info().
		Int("patterns", len(report.DetectedConcepts)).
		Int("vulnerabilities", len(report.Security.Vulnerabilities)).
		Int("quality_score", report.QualityScore).
		Msg("analysis completed")

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		ConceptAnalysis: ConceptAnalysis{
			ComplexityScore:  report.ComplexityScore,
			DetectedConcepts: report.DetectedConcepts,
		},
		LinesOfCode:      report.LinesOfCode,
		QualityScore:     report.QualityScore,
		Recommendations:  report.Recommendations,
		SecurityAnalysis: report.Security,
	})
}
