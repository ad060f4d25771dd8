package domain

import (
	"context"
	"strings"
	"sync"

	"github.com/Vovarama1992/speakeasy/internal/ports"
)

// AudioClip is one recorded utterance as the client encoded it.
type AudioClip struct {
	Data            []byte
	Encoding        string
	SampleRateHertz int
}

// CaptureResult is the completion event of one capture cycle.
type CaptureResult struct {
	Language Language
	Text     string
	Err      *Failure
}

type CaptureStatus struct {
	Language Language `json:"language"`
	Tag      string   `json:"tag"`
	Active   bool     `json:"active"`
}

// CaptureSession is the on/off listening toggle for one language.
type CaptureSession struct {
	lang    Language
	gateway ports.Gateway

	mu     sync.Mutex
	active bool
	done   chan CaptureResult
}

func NewCaptureSession(lang Language, gw ports.Gateway) *CaptureSession {
	return &CaptureSession{lang: lang, gateway: gw}
}

// Start turns listening on. Starting an active session is a caller error.
func (s *CaptureSession) Start() error {
	if s.gateway == nil || !s.gateway.TranscriptionAvailable() {
		return NewFailure(UnsupportedCapability, UserMessage(UnsupportedCapability), nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return NewFailure(CaptureActive, UserMessage(CaptureActive), nil)
	}
	s.active = true
	s.done = make(chan CaptureResult, 1)
	return nil
}

// Stop turns listening off and recognizes the clip. The completion event is
// also delivered on Done. Failures always leave the toggle off.
func (s *CaptureSession) Stop(ctx context.Context, clip AudioClip) (CaptureResult, error) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return CaptureResult{}, NewFailure(InvalidInput, "listening is not on", nil)
	}
	s.active = false
	done := s.done
	s.mu.Unlock()

	result := CaptureResult{Language: s.lang}
	if len(clip.Data) == 0 {
		result.Err = NewFailure(SpeechCaptureFailed, "no audio captured", nil)
	} else {
		text, err := s.gateway.Transcribe(ctx, clip.Data, clip.Encoding, clip.SampleRateHertz, s.lang.Tag())
		if err != nil {
			result.Err = NewFailure(SpeechCaptureFailed, UserMessage(SpeechCaptureFailed), err)
		} else {
			result.Text = strings.TrimSpace(text)
		}
	}

	done <- result
	close(done)

	if result.Err != nil {
		return result, result.Err
	}
	return result, nil
}

// Done delivers the result of the current cycle, or nil before the first Start.
func (s *CaptureSession) Done() <-chan CaptureResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *CaptureSession) Status() CaptureStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CaptureStatus{Language: s.lang, Tag: s.lang.Tag(), Active: s.active}
}

// Cancel turns an active session off without recognizing anything.
func (s *CaptureSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	s.done <- CaptureResult{Language: s.lang, Err: NewFailure(SpeechCaptureFailed, "listening cancelled", nil)}
	close(s.done)
}
