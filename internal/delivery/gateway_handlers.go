package delivery

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/Vovarama1992/speakeasy/internal/domain"
	"github.com/Vovarama1992/speakeasy/internal/ports"
)

// GatewayHandler exposes the stateless provider endpoints.
type GatewayHandler struct {
	gw        ports.Gateway
	log       *logger.ZapLogger
	bodyLimit int64
}

func NewGatewayHandler(gw ports.Gateway, log *logger.ZapLogger, bodyLimit int64) *GatewayHandler {
	return &GatewayHandler{gw: gw, log: log, bodyLimit: bodyLimit}
}

// POST /api/translate
// body: { "text": "Hello", "sourceLanguage": "en-US", "targetLanguage": "es-ES" }
func (h *GatewayHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text           string `json:"text"`
		SourceLanguage string `json:"sourceLanguage"`
		TargetLanguage string `json:"targetLanguage"`
	}
	if err := decodeJSON(w, r, h.bodyLimit, &req); err != nil {
		writeFailure(w, h.log, err)
		return
	}

	translation, err := h.gw.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"translation": translation})
}

// POST /api/speech-to-text
// body: { "audio": "<base64>", "encoding": "LINEAR16", "sampleRateHertz": 16000, "languageCode": "es-ES" }
func (h *GatewayHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Audio           string `json:"audio"`
		Encoding        string `json:"encoding"`
		SampleRateHertz int    `json:"sampleRateHertz"`
		LanguageCode    string `json:"languageCode"`
	}
	if err := decodeJSON(w, r, h.bodyLimit, &req); err != nil {
		writeFailure(w, h.log, err)
		return
	}

	audio, err := decodeAudio(req.Audio)
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("speech-to-text: %s %s @%dHz %s", humanize.Bytes(uint64(len(audio))), req.Encoding, req.SampleRateHertz, req.LanguageCode),
	})

	transcription, err := h.gw.Transcribe(r.Context(), audio, req.Encoding, req.SampleRateHertz, req.LanguageCode)
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"transcription": transcription})
}

// POST /api/suggest
// body: { "text": "Good, thanks" }
func (h *GatewayHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(w, r, h.bodyLimit, &req); err != nil {
		writeFailure(w, h.log, err)
		return
	}

	suggestions, err := h.gw.Suggest(r.Context(), req.Text)
	if err != nil {
		writeFailure(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

func decodeAudio(b64 string) ([]byte, error) {
	if b64 == "" {
		return nil, domain.NewFailure(domain.InvalidInput, "audio must not be empty", nil)
	}
	audio, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, domain.NewFailure(domain.InvalidInput, "audio is not valid base64", err)
	}
	return audio, nil
}
