// Package gateway wraps the translation, transcription and suggestion
// providers and turns every provider error into a *domain.Failure.
package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/speakeasy/internal/domain"
	"github.com/Vovarama1992/speakeasy/internal/error_notificator"
	"github.com/Vovarama1992/speakeasy/internal/ports"
)

// SuggestionCount is how many independent completions Suggest asks for.
const SuggestionCount = 3

type Service struct {
	translator  ports.Translator
	transcriber ports.Transcriber
	suggester   ports.Suggester
	notifier    error_notificator.Notificator
}

// NewService builds the gateway. transcriber may be nil, in which case
// speech recognition is reported as unsupported.
func NewService(
	translator ports.Translator,
	transcriber ports.Transcriber,
	suggester ports.Suggester,
	notifier error_notificator.Notificator,
) *Service {
	if notifier == nil {
		notifier = error_notificator.Nop{}
	}
	return &Service{
		translator:  translator,
		transcriber: transcriber,
		suggester:   suggester,
		notifier:    notifier,
	}
}

func (s *Service) TranscriptionAvailable() bool {
	return s.transcriber != nil
}

func (s *Service) Translate(ctx context.Context, text, sourceTag, targetTag string) (out string, err error) {
	defer s.recoverInto(ctx, domain.TranslationFailed, &err)

	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewFailure(domain.InvalidInput, "text must not be empty", nil)
	}
	src, err := domain.ParseLanguage(sourceTag)
	if err != nil {
		return "", err
	}
	dst, err := domain.ParseLanguage(targetTag)
	if err != nil {
		return "", err
	}
	if src == dst {
		return "", domain.NewFailure(domain.InvalidInput, "source and target language must differ", nil)
	}
	if s.translator == nil {
		return "", domain.NewFailure(domain.TranslationFailed, "translation provider is not configured", nil)
	}

	translated, err := s.translator.Translate(ctx, text, string(src), string(dst))
	if err != nil {
		return "", s.fail(ctx, domain.TranslationFailed, "Translation failed", err)
	}
	return translated, nil
}

// Transcribe recognizes speech. No recognition results is an empty string,
// not a failure.
func (s *Service) Transcribe(ctx context.Context, audio []byte, encoding string, sampleRateHertz int, languageTag string) (out string, err error) {
	defer s.recoverInto(ctx, domain.TranscriptionFailed, &err)

	if s.transcriber == nil {
		return "", domain.NewFailure(domain.UnsupportedCapability, domain.UserMessage(domain.UnsupportedCapability), nil)
	}
	if len(audio) == 0 {
		return "", domain.NewFailure(domain.InvalidInput, "audio must not be empty", nil)
	}
	if sampleRateHertz < 0 {
		return "", domain.NewFailure(domain.InvalidInput, "sampleRateHertz must not be negative", nil)
	}
	if _, err := domain.ParseLanguage(languageTag); err != nil {
		return "", err
	}

	text, err := s.transcriber.Transcribe(ctx, audio, strings.ToUpper(strings.TrimSpace(encoding)), sampleRateHertz, languageTag)
	if domain.IsKind(err, domain.InvalidInput) {
		return "", err
	}
	if err != nil {
		return "", s.fail(ctx, domain.TranscriptionFailed, "Speech-to-text failed", err)
	}
	return text, nil
}

// Suggest asks for SuggestionCount completions and returns them trimmed,
// in provider order. Fewer completions are passed through as is.
func (s *Service) Suggest(ctx context.Context, text string) (out []string, err error) {
	defer s.recoverInto(ctx, domain.SuggestionFailed, &err)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewFailure(domain.InvalidInput, "text must not be empty", nil)
	}
	if s.suggester == nil {
		return nil, domain.NewFailure(domain.SuggestionFailed, "suggestion provider is not configured", nil)
	}

	raw, err := s.suggester.Suggest(ctx, text, SuggestionCount)
	if err != nil {
		return nil, s.fail(ctx, domain.SuggestionFailed, "Failed to generate suggestions", err)
	}
	out = make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, strings.TrimSpace(r))
	}
	return out, nil
}

func (s *Service) fail(ctx context.Context, kind domain.FailureKind, message string, err error) *domain.Failure {
	_ = s.notifier.Notify(ctx, "gateway", err, fmt.Sprintf("%s (%s)", message, kind))
	return domain.NewFailure(kind, message, err)
}

func (s *Service) recoverInto(ctx context.Context, kind domain.FailureKind, err *error) {
	if r := recover(); r != nil {
		*err = s.fail(ctx, kind, domain.UserMessage(kind), fmt.Errorf("provider panic: %v", r))
	}
}
