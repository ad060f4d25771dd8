package domain

import (
	"errors"
	"fmt"
)

type FailureKind string

const (
	TranslationFailed     FailureKind = "TRANSLATION_FAILED"
	TranscriptionFailed   FailureKind = "TRANSCRIPTION_FAILED"
	SuggestionFailed      FailureKind = "SUGGESTION_FAILED"
	SpeechCaptureFailed   FailureKind = "SPEECH_CAPTURE_FAILED"
	UnsupportedCapability FailureKind = "UNSUPPORTED_CAPABILITY"

	InvalidInput    FailureKind = "INVALID_INPUT"
	TurnInFlight    FailureKind = "TURN_IN_FLIGHT"
	CaptureActive   FailureKind = "CAPTURE_ACTIVE"
	SessionNotFound FailureKind = "SESSION_NOT_FOUND"
)

// Failure is the only error shape that crosses the gateway boundary.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// Details is the provider-reported reason, falling back to Message.
func (f *Failure) Details() string {
	if f == nil {
		return ""
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return f.Message
}

func NewFailure(kind FailureKind, message string, err error) *Failure {
	return &Failure{Kind: kind, Message: message, Err: err}
}

// AsFailure returns err as a *Failure, wrapping foreign errors with fallback.
func AsFailure(err error, fallback FailureKind) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return NewFailure(fallback, UserMessage(fallback), err)
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind FailureKind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

// UserMessage is the banner text shown for a failure kind.
func UserMessage(kind FailureKind) string {
	switch kind {
	case TranslationFailed:
		return "Translation failed. Please try again."
	case TranscriptionFailed:
		return "Speech-to-text failed. Please try again."
	case SuggestionFailed:
		return "Failed to fetch suggestions. Please try again."
	case SpeechCaptureFailed:
		return "Speech recognition failed. Please try again."
	case UnsupportedCapability:
		return "Speech recognition is not supported in this environment."
	case InvalidInput:
		return "Invalid request."
	case TurnInFlight:
		return "A translation for this turn is already in progress."
	case CaptureActive:
		return "Listening is already on. Stop it first."
	case SessionNotFound:
		return "Conversation session not found."
	default:
		return "Something went wrong. Please try again."
	}
}
