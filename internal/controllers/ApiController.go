package controllers

import (
	"errors"
	json "github.com/goccy/go-json"
	"net/http"
	"urlchecker/internal/models"
	"urlchecker/internal/providers"
	"urlchecker/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const copyFailedWarning = "Failed to copy to clipboard"

type ApiController struct {
	logger    providers.Logger
	service   services.ScanOrchestratorInterface
	clipboard providers.ClipboardProviderInterface
	metrics   providers.MetricsProviderInterface
}

type scanRequest struct {
	URL string `json:"url"`
}

type selectRequest struct {
	ID string `json:"id"`
}

type scanResponse struct {
	Result models.ScanResult   `json:"result"`
	Entry  models.HistoryEntry `json:"entry"`
}

type copyResponse struct {
	Copied  bool   `json:"copied"`
	Text    string `json:"text,omitempty"`
	Warning string `json:"warning,omitempty"`
}

type clipboardResponse struct {
	Text string `json:"text"`
}

func NewApiController(logger providers.Logger, service services.ScanOrchestratorInterface, clipboard providers.ClipboardProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		service:   service,
		clipboard: clipboard,
		metrics:   metrics,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

// writeScanOutcome maps a Scan result onto the response and metrics.
func (ac *ApiController) writeScanOutcome(w http.ResponseWriter, result models.ScanResult, entry models.HistoryEntry, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyURL):
		http.Error(w, "URL is required", http.StatusBadRequest)
	case errors.Is(err, services.ErrScanInProgress):
		ac.metrics.IncScansRejected()
		http.Error(w, "Scan already in progress", http.StatusConflict)
	case err != nil:
		ac.logger.Errorf(providers.TypeScan, "Scan failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	default:
		ac.metrics.IncScansTotal(string(result.ThreatLevel))
		ac.metrics.SetHistoryEntries(ac.service.HistorySize())
		writeJSON(w, http.StatusOK, scanResponse{Result: result, Entry: entry})
	}
}

func (ac *ApiController) Scan(w http.ResponseWriter, r *http.Request) {
	var payload scanRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	result, entry, err := ac.service.Scan(r.Context(), payload.URL)
	ac.writeScanOutcome(w, result, entry, err)
}

// SetURL mirrors an edit of the URL input. An empty URL is allowed.
func (ac *ApiController) SetURL(w http.ResponseWriter, r *http.Request) {
	var payload scanRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := ac.service.SetURL(payload.URL); err != nil {
		if errors.Is(err, services.ErrScanInProgress) {
			http.Error(w, "Scan already in progress", http.StatusConflict)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) SelectHistory(w http.ResponseWriter, r *http.Request) {
	var payload selectRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.ID == "" {
		http.Error(w, "ID is required", http.StatusBadRequest)
		return
	}
	entry, ok := ac.service.FindHistoryEntry(payload.ID)
	if !ok {
		http.Error(w, services.ErrEntryNotFound.Error(), http.StatusNotFound)
		return
	}
	result, next, err := ac.service.SelectHistoryEntry(r.Context(), entry)
	ac.writeScanOutcome(w, result, next, err)
}

func (ac *ApiController) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.State())
}

func (ac *ApiController) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.History())
}

func (ac *ApiController) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ac.service.ClearHistory()
	ac.metrics.SetHistoryEntries(0)
	w.WriteHeader(http.StatusNoContent)
}

// CopyResult reports a clipboard failure in the body, not the status code;
// the result is still there and the caller may retry.
func (ac *ApiController) CopyResult(w http.ResponseWriter, r *http.Request) {
	text, err := ac.service.CopyResult(r.Context())
	switch {
	case errors.Is(err, services.ErrNoResult):
		http.Error(w, "No scan result to copy", http.StatusConflict)
	case errors.Is(err, services.ErrClipboardWrite):
		writeJSON(w, http.StatusOK, copyResponse{Copied: false, Warning: copyFailedWarning})
	case err != nil:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, copyResponse{Copied: true, Text: text})
	}
}

func (ac *ApiController) Clipboard(w http.ResponseWriter, r *http.Request) {
	text, ok := ac.clipboard.ReadText()
	if !ok {
		http.Error(w, "Clipboard is empty", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, clipboardResponse{Text: text})
}
