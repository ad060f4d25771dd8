package delivery

import (
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/Vovarama1992/speakeasy/internal/domain"
	"github.com/Vovarama1992/speakeasy/internal/ports"
	"github.com/Vovarama1992/speakeasy/internal/session"
)

type SessionHandler struct {
	sessions  *session.Registry
	log       *logger.ZapLogger
	bodyLimit int64
}

func NewSessionHandler(sessions *session.Registry, log *logger.ZapLogger, bodyLimit int64) *SessionHandler {
	return &SessionHandler{sessions: sessions, log: log, bodyLimit: bodyLimit}
}

type noticeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type turnRequest struct {
	Text       string `json:"text"`
	Suggestion string `json:"suggestion"`
}

type turnResponse struct {
	Session      session.Snapshot    `json:"session"`
	Submitted    bool                `json:"submitted"`
	Translation  string              `json:"translation,omitempty"`
	Vocalization *ports.Vocalization `json:"vocalization,omitempty"`
	Notice       *noticeResponse     `json:"notice,omitempty"`
}

// POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	h.log.Log(logger.LogEntry{Level: "info", Message: "session created " + s.ID})
	writeJSON(w, http.StatusCreated, s.Snapshot())
}

// GET /api/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// DELETE /api/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		writeFailure(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}
	s.Reset()
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// POST /api/sessions/{id}/primary
// body: { "text": "Hello" }
func (h *SessionHandler) SubmitPrimary(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(s *session.Session, req turnRequest) (domain.TurnOutcome, error) {
		return s.Turns.SubmitPrimary(r.Context(), req.Text)
	})
}

// POST /api/sessions/{id}/secondary
// body: { "text": "Bien" }
func (h *SessionHandler) SubmitSecondary(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(s *session.Session, req turnRequest) (domain.TurnOutcome, error) {
		return s.Turns.SubmitSecondary(r.Context(), req.Text)
	})
}

// POST /api/sessions/{id}/select
// body: { "suggestion": "1. \"Sounds good\"" }
func (h *SessionHandler) SelectSuggestion(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(s *session.Session, req turnRequest) (domain.TurnOutcome, error) {
		return s.Turns.SelectSuggestion(r.Context(), req.Suggestion)
	})
}

func (h *SessionHandler) submit(
	w http.ResponseWriter,
	r *http.Request,
	run func(s *session.Session, req turnRequest) (domain.TurnOutcome, error),
) {
	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}

	var req turnRequest
	if err := decodeJSON(w, r, h.bodyLimit, &req); err != nil {
		writeFailure(w, h.log, err)
		return
	}

	outcome, err := run(s, req)
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}

	resp := turnResponse{
		Session:      s.Snapshot(),
		Submitted:    outcome.Submitted,
		Translation:  outcome.Translation,
		Vocalization: outcome.Vocalization,
	}
	if outcome.Notice != nil {
		resp.Notice = &noticeResponse{
			Code:    string(outcome.Notice.Kind),
			Message: domain.UserMessage(outcome.Notice.Kind),
			Details: outcome.Notice.Details(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /api/sessions/{id}/capture/{side}/start
func (h *SessionHandler) StartCapture(w http.ResponseWriter, r *http.Request) {
	capture, err := h.capture(r)
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}
	if err := capture.Start(); err != nil {
		writeFailure(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, capture.Status())
}

// POST /api/sessions/{id}/capture/{side}/stop
// body: { "audio": "<base64>", "encoding": "WEBM_OPUS", "sampleRateHertz": 48000 }
func (h *SessionHandler) StopCapture(w http.ResponseWriter, r *http.Request) {
	capture, err := h.capture(r)
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}

	var req struct {
		Audio           string `json:"audio"`
		Encoding        string `json:"encoding"`
		SampleRateHertz int    `json:"sampleRateHertz"`
	}
	if err := decodeJSON(w, r, h.bodyLimit, &req); err != nil {
		capture.Cancel()
		writeFailure(w, h.log, err)
		return
	}
	audio, err := decodeAudio(req.Audio)
	if err != nil {
		capture.Cancel()
		writeFailure(w, h.log, err)
		return
	}

	result, err := capture.Stop(r.Context(), domain.AudioClip{
		Data:            audio,
		Encoding:        req.Encoding,
		SampleRateHertz: req.SampleRateHertz,
	})
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"language":      result.Language,
		"transcription": result.Text,
		"capture":       capture.Status(),
	})
}

func (h *SessionHandler) capture(r *http.Request) (*domain.CaptureSession, error) {
	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	lang, err := domain.ParseLanguage(chi.URLParam(r, "side"))
	if err != nil {
		return nil, err
	}
	capture := s.Capture(lang)
	if capture == nil {
		return nil, domain.NewFailure(domain.InvalidInput, fmt.Sprintf("no capture for %s", lang), nil)
	}
	return capture, nil
}
