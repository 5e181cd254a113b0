package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"paycheck-agent/domain"
)

const maxRequestBytes = 64 << 10

// PaycheckCalculator is the part of the paycheck service the handler needs.
type PaycheckCalculator interface {
	Calculate(ctx context.Context, input domain.PaycheckInput) (domain.Breakdown, error)
	Latest() (domain.Breakdown, bool)
	Reset()
}

type PaycheckHandler struct {
	service PaycheckCalculator
}

func NewPaycheckHandler(service PaycheckCalculator) *PaycheckHandler {
	return &PaycheckHandler{service: service}
}

// Calculate handles POST /paycheck/calculate.
func (h *PaycheckHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var input domain.PaycheckInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, string(domain.KindInvalidInput), "invalid request body")
		return
	}

	breakdown, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}

// Latest handles GET and DELETE on /paycheck/latest.
func (h *PaycheckHandler) Latest(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		breakdown, ok := h.service.Latest()
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "no calculation yet")
			return
		}
		writeJSON(w, http.StatusOK, breakdown)
	case http.MethodDelete:
		h.service.Reset()
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
