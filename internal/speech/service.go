package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/Vovarama1992/speakeasy/internal/ports"
)

const audioContentType = "audio/mpeg"

// Service vocalizes translations. Without a synthesizer it asks the client
// to speak; without a store it returns the audio inline.
type Service struct {
	tts   ports.Synthesizer
	store ports.AudioStore
	log   *logger.ZapLogger
}

func NewService(tts ports.Synthesizer, store ports.AudioStore, log *logger.ZapLogger) *Service {
	return &Service{
		tts:   tts,
		store: store,
		log:   log,
	}
}

func (s *Service) Vocalize(ctx context.Context, req ports.VocalizeRequest) (ports.Vocalization, error) {
	out := ports.Vocalization{Text: req.Text, LanguageTag: req.LanguageTag}
	if s.tts == nil {
		out.ClientSide = true
		return out, nil
	}

	audio, err := s.tts.Synthesize(ctx, req.Text)
	if err != nil {
		return ports.Vocalization{}, fmt.Errorf("synthesize: %w", err)
	}
	s.logf("info", fmt.Sprintf("[speech] synthesized %s for session %s", humanize.Bytes(uint64(len(audio))), req.SessionID))

	out.ContentType = audioContentType
	if s.store == nil {
		out.AudioBase64 = base64.StdEncoding.EncodeToString(audio)
		return out, nil
	}

	url, err := s.store.SaveAudio(ctx, req.SessionID, audio, audioContentType)
	if err != nil {
		return ports.Vocalization{}, fmt.Errorf("store audio: %w", err)
	}
	out.AudioURL = url
	return out, nil
}

func (s *Service) logf(level, msg string) {
	if s.log == nil {
		return
	}
	s.log.Log(logger.LogEntry{Level: level, Message: msg, Service: "speakeasy"})
}
