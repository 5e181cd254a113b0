package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"paycheck-agent/domain"
	"paycheck-agent/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	// Encode into a buffer first so a failure does not leave a half written body.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Log.Error("Error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Log.Warn("Error writing response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeCalculationError maps the calculation error taxonomy to HTTP statuses.
func writeCalculationError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case domain.KindInvalidInput, domain.KindUnresolvedJurisdiction:
		status = http.StatusBadRequest
	case domain.KindRemoteServiceError, domain.KindMalformedResponse, domain.KindTransportFailure:
		status = http.StatusBadGateway
	}

	code := string(kind)
	if code == "" {
		code = "internal_error"
	}
	writeError(w, status, code, err.Error())
}
