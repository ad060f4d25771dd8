package domain

import "sync"

// Utterance is one line of the conversation.
type Utterance struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
}

// Transcript is the append-only conversation log of a session.
type Transcript struct {
	mu    sync.RWMutex
	items []Utterance
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Append(u ...Utterance) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, u...)
}

// All returns a copy in insertion order.
func (t *Transcript) All() []Utterance {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Utterance, len(t.items))
	copy(out, t.items)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Reset clears the log; only a session reset calls it.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = nil
}
