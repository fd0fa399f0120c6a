package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"StageSentinel/internal/analysis"
	"StageSentinel/internal/service"
)

type handlers struct {
	analyzer *service.Analyzer
}

// envelope is the JSON response wrapper: {"status": "...", "data": ...} on
// success, {"status": "error", "message": "..."} on failure.
type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *handlers) analyzeStage(w http.ResponseWriter, r *http.Request) {
	ticker, ok := tickerFromPath(w, r, "/analyze/stage2/")
	if !ok {
		return
	}
	report, err := h.analyzer.AnalyzeStage(r.Context(), ticker)
	if err != nil {
		writeError(w, ticker, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: "success", Data: report})
}

func (h *handlers) analyzeVolume(w http.ResponseWriter, r *http.Request) {
	ticker, ok := tickerFromPath(w, r, "/analyze/volume/")
	if !ok {
		return
	}
	report, err := h.analyzer.AnalyzeVolume(r.Context(), ticker)
	if err != nil {
		writeError(w, ticker, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: "success", Data: report})
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Status: "ok"})
}

func tickerFromPath(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, envelope{Status: "error", Message: "method not allowed"})
		return "", false
	}
	ticker := strings.TrimPrefix(r.URL.Path, prefix)
	if ticker == "" || strings.Contains(ticker, "/") {
		writeJSON(w, http.StatusBadRequest, envelope{Status: "error", Message: "ticker is required"})
		return "", false
	}
	return strings.ToUpper(ticker), true
}

// writeError maps core analysis errors to 422, everything else (provider
// failures) to 502.
func writeError(w http.ResponseWriter, ticker string, err error) {
	var insufficient *analysis.InsufficientDataError
	var malformed *analysis.MalformedSeriesError

	status := http.StatusBadGateway
	if errors.As(err, &insufficient) || errors.As(err, &malformed) {
		status = http.StatusUnprocessableEntity
	}
	log.Printf("[WARN] analyze %s: %v", ticker, err)
	writeJSON(w, status, envelope{Status: "error", Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
