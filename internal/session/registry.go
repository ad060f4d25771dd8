// Package session keeps the in-memory conversation sessions. Nothing is
// persisted: a session lives until it is deleted or idles out.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Vovarama1992/speakeasy/internal/domain"
	"github.com/Vovarama1992/speakeasy/internal/error_notificator"
	"github.com/Vovarama1992/speakeasy/internal/ports"
)

// Session owns one conversation: its turn controller and both capture toggles.
type Session struct {
	ID      string
	Turns   *domain.TurnController
	capture map[domain.Language]*domain.CaptureSession

	mu       sync.Mutex
	lastSeen time.Time
}

type Snapshot struct {
	ID string `json:"id"`
	domain.TurnSnapshot
	Capture map[domain.Language]domain.CaptureStatus `json:"capture"`
}

// Capture returns the capture toggle for lang, or nil for an unknown language.
func (s *Session) Capture(lang domain.Language) *domain.CaptureSession {
	return s.capture[lang]
}

func (s *Session) Snapshot() Snapshot {
	capture := make(map[domain.Language]domain.CaptureStatus, len(s.capture))
	for lang, c := range s.capture {
		capture[lang] = c.Status()
	}
	return Snapshot{
		ID:           s.ID,
		TurnSnapshot: s.Turns.Snapshot(),
		Capture:      capture,
	}
}

// Reset clears the conversation and turns listening off.
func (s *Session) Reset() {
	s.Turns.Reset()
	for _, c := range s.capture {
		c.Cancel()
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Registry struct {
	gateway   ports.Gateway
	vocalizer ports.Vocalizer
	notifier  error_notificator.Notificator
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(gw ports.Gateway, vocalizer ports.Vocalizer, notifier error_notificator.Notificator) *Registry {
	return &Registry{
		gateway:   gw,
		vocalizer: vocalizer,
		notifier:  notifier,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

func (r *Registry) Create() *Session {
	id := uuid.NewString()
	s := &Session{
		ID:    id,
		Turns: domain.NewTurnController(id, r.gateway, r.vocalizer, r.notifier),
		capture: map[domain.Language]*domain.CaptureSession{
			domain.Primary:   domain.NewCaptureSession(domain.Primary, r.gateway),
			domain.Secondary: domain.NewCaptureSession(domain.Secondary, r.gateway),
		},
		lastSeen: r.now(),
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.NewFailure(domain.SessionNotFound, domain.UserMessage(domain.SessionNotFound), nil)
	}
	s.touch(r.now())
	return s, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return domain.NewFailure(domain.SessionNotFound, domain.UserMessage(domain.SessionNotFound), nil)
	}
	for _, c := range s.capture {
		c.Cancel()
	}
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and reports how many.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			for _, c := range s.capture {
				c.Cancel()
			}
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
