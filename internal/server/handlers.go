package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/fraudguard/internal/db"
	"github.com/jonathan/fraudguard/internal/ingestion"
	"github.com/jonathan/fraudguard/internal/reporting"
	"github.com/jonathan/fraudguard/internal/schemas"
	"github.com/jonathan/fraudguard/internal/scoring"
	"github.com/jonathan/fraudguard/internal/types"
	"github.com/jonathan/fraudguard/internal/validation"
)

// maxBodyBytes caps request payloads; a 50k-record CSV batch serialized as
// JSON stays well under this.
const maxBodyBytes = 64 << 20

// BatchResponse carries the summary plus per-record predictions for
// POST /api/v1/predict/batch.
type BatchResponse struct {
	Summary types.BatchSummary       `json:"summary"`
	Results []types.PredictionResult `json:"results"`
}

// ReportResponse wraps a generated report. ID is set when prediction history
// is enabled and the run was stored.
type ReportResponse struct {
	ID     *uuid.UUID         `json:"id,omitempty"`
	Report *types.BatchReport `json:"report"`
}

// handlePredict scores a single record.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req types.PredictRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	records := ingestion.Clean([]types.JobRecord{req.Record})
	result := s.scorer.Predict(&records[0])

	s.jsonResponse(w, http.StatusOK, result)
}

// handlePredictBatch scores a batch of records and returns per-record results
// alongside summary statistics.
func (s *Server) handlePredictBatch(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBatch(w, r)
	if !ok {
		return
	}

	start := time.Now()
	scored, err := s.processor.ScoreAll(r.Context(), req.Records)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Batch scoring failed")
		return
	}
	summary := reporting.Summarize(scored, time.Since(start))

	results := make([]types.PredictionResult, len(scored))
	for i, record := range scored {
		results[i] = record.Prediction
	}

	s.jsonResponse(w, http.StatusOK, BatchResponse{
		Summary: summary,
		Results: results,
	})
}

// handleReport generates a full batch report, storing it when prediction
// history is enabled.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBatch(w, r)
	if !ok {
		return
	}

	report, err := s.processor.GenerateReport(r.Context(), req.Records)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Report generation failed")
		return
	}

	response := ReportResponse{Report: report}
	if s.db != nil {
		if id, err := s.db.SaveBatchRun(r.Context(), "api", report); err == nil {
			response.ID = &id
		}
		// Storage failures don't block the response; the report was computed.
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleModelInfo describes the scoring engine: weights, thresholds and the
// required input columns.
func (s *Server) handleModelInfo(w http.ResponseWriter, _ *http.Request) {
	info := types.ModelInfo{
		Name:    "fraudguard-rule-engine",
		Version: Version,
		Weights: map[string]float64{
			"text_analysis":        scoring.TextWeight,
			"structural_features":  scoring.StructuralWeight,
			"company_verification": scoring.CompanyWeight,
		},
		RiskThresholds: map[string]float64{
			"critical": scoring.CriticalThreshold,
			"high":     scoring.HighThreshold,
			"medium":   scoring.MediumThreshold,
		},
		FraudThreshold:  reporting.FraudThreshold,
		RequiredColumns: validation.RequiredColumns,
	}

	s.jsonResponse(w, http.StatusOK, info)
}

// handleListReports lists stored batch runs, newest first.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	runs, err := s.db.ListBatchRuns(r.Context(), db.RunFilters{
		Source: r.URL.Query().Get("source"),
		Limit:  limit,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}

	s.jsonResponse(w, http.StatusOK, runs)
}

// handleGetReport returns one stored report by run ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := s.db.GetReport(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get report")
		return
	}
	if report == nil {
		notFound := &ErrReportNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// decodeBatch reads, schema-validates and decodes a batch payload. Records
// are cleaned the same way CSV input is. Writes an error response and
// returns false on failure.
func (s *Server) decodeBatch(w http.ResponseWriter, r *http.Request) (*types.BatchRequest, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return nil, false
	}

	if err := schemas.ValidateBatchPayload(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	var req types.BatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := req.Validate(); err != nil {
		validationErr := &ErrValidation{Field: "records", Message: "at least one record is required"}
		s.errorResponse(w, HTTPStatus(validationErr), validationErr.Error())
		return nil, false
	}

	req.Records = ingestion.Clean(req.Records)
	return &req, true
}
