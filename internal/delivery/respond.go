package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/speakeasy/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFailure maps a failure kind to a status and the {error, details} body.
func writeFailure(w http.ResponseWriter, log *logger.ZapLogger, err error) {
	f := domain.AsFailure(err, "")
	if f.Kind == "" {
		f.Kind = "INTERNAL_ERROR"
		f.Message = "Internal error"
	}

	status := statusFor(f.Kind)
	if status >= http.StatusInternalServerError && log != nil {
		log.Log(logger.LogEntry{Level: "error", Message: f.Message, Error: err})
	}

	writeJSON(w, status, errorResponse{
		Error:   f.Message,
		Details: f.Details(),
		Code:    string(f.Kind),
		Message: domain.UserMessage(f.Kind),
	})
}

func statusFor(kind domain.FailureKind) int {
	switch kind {
	case domain.InvalidInput:
		return http.StatusBadRequest
	case domain.SessionNotFound:
		return http.StatusNotFound
	case domain.TurnInFlight, domain.CaptureActive:
		return http.StatusConflict
	case domain.UnsupportedCapability:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads at most limit bytes of JSON into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewFailure(domain.InvalidInput, "request body too large", err)
		}
		return domain.NewFailure(domain.InvalidInput, "invalid json", err)
	}
	return nil
}
