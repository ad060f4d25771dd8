package domain

import (
	"context"
	"strings"
	"sync"

	"github.com/Vovarama1992/speakeasy/internal/error_notificator"
	"github.com/Vovarama1992/speakeasy/internal/ports"
)

type TurnState string

const (
	AwaitingPrimaryInput      TurnState = "AWAITING_PRIMARY_INPUT"
	AwaitingSecondaryResponse TurnState = "AWAITING_SECONDARY_RESPONSE"
)

// TurnSnapshot is a read-only copy of the conversation state for rendering.
type TurnSnapshot struct {
	State             TurnState           `json:"state"`
	AwaitingSecondary bool                `json:"awaitingSecondary"`
	Transcript        []Utterance         `json:"transcript"`
	Suggestions       SuggestionBatch     `json:"suggestions"`
	LastVocalization  *ports.Vocalization `json:"lastVocalization,omitempty"`
}

// TurnOutcome is what a submission produced. Submitted is false when the
// call was a no-op. Notice carries a non-fatal failure such as a suggestion
// request that failed after a successful translation.
type TurnOutcome struct {
	Snapshot     TurnSnapshot
	Submitted    bool
	Translation  string
	Vocalization *ports.Vocalization
	Notice       *Failure
}

// TurnController alternates between English input and the Spanish reply.
// External calls run without the lock held; results are applied in
// completion order. Each direction allows one translation in flight.
type TurnController struct {
	sessionID string
	gateway   ports.Gateway
	vocalizer ports.Vocalizer
	notifier  error_notificator.Notificator

	transcript *Transcript

	mu               sync.Mutex
	state            TurnState
	suggestions      SuggestionBatch
	lastVocalization *ports.Vocalization

	// inFlight holds the generation each direction's pending request started in.
	inFlight map[Language]uint64

	// generation changes on Reset; results started before it are dropped.
	generation uint64

	// turns counts applied turns; stale suggestion batches are dropped.
	turns uint64
}

func NewTurnController(
	sessionID string,
	gw ports.Gateway,
	vocalizer ports.Vocalizer,
	notifier error_notificator.Notificator,
) *TurnController {
	if notifier == nil {
		notifier = error_notificator.Nop{}
	}
	return &TurnController{
		sessionID:   sessionID,
		gateway:     gw,
		vocalizer:   vocalizer,
		notifier:    notifier,
		transcript:  NewTranscript(),
		state:       AwaitingPrimaryInput,
		suggestions: Bucketize(nil),
		inFlight:    make(map[Language]uint64, 2),
	}
}

// SubmitPrimary translates English input to Spanish. It is accepted in any
// state. Once issued, provider calls run to completion even if ctx is
// cancelled.
func (c *TurnController) SubmitPrimary(ctx context.Context, text string) (TurnOutcome, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TurnOutcome{}, NewFailure(InvalidInput, "text must not be empty", nil)
	}

	gen, err := c.acquire(Primary)
	if err != nil {
		return TurnOutcome{}, err
	}
	defer c.release(Primary, gen)
	ctx = context.WithoutCancel(ctx)

	translated, err := c.gateway.Translate(ctx, text, Primary.Tag(), Secondary.Tag())
	if err != nil {
		return TurnOutcome{}, AsFailure(err, TranslationFailed)
	}

	c.mu.Lock()
	if gen != c.generation {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return TurnOutcome{Snapshot: snap, Translation: translated}, nil
	}
	c.transcript.Append(
		Utterance{Text: text, Language: Primary},
		Utterance{Text: translated, Language: Secondary},
	)
	c.turns++
	turn := c.turns
	c.suggestions = Bucketize(nil)
	c.lastVocalization = nil
	c.state = AwaitingSecondaryResponse
	c.mu.Unlock()

	voc := c.vocalize(ctx, translated, Secondary)

	c.mu.Lock()
	if turn == c.turns && gen == c.generation {
		c.lastVocalization = &voc
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	return TurnOutcome{
		Snapshot:     snap,
		Submitted:    true,
		Translation:  translated,
		Vocalization: &voc,
	}, nil
}

// SubmitSecondary translates the Spanish reply to English and refreshes the
// suggestion batch from the translation.
func (c *TurnController) SubmitSecondary(ctx context.Context, text string) (TurnOutcome, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TurnOutcome{}, NewFailure(InvalidInput, "text must not be empty", nil)
	}

	gen, err := c.acquire(Secondary)
	if err != nil {
		return TurnOutcome{}, err
	}
	defer c.release(Secondary, gen)
	ctx = context.WithoutCancel(ctx)

	translated, err := c.gateway.Translate(ctx, text, Secondary.Tag(), Primary.Tag())
	if err != nil {
		return TurnOutcome{}, AsFailure(err, TranslationFailed)
	}

	c.mu.Lock()
	if gen != c.generation {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return TurnOutcome{Snapshot: snap, Translation: translated}, nil
	}
	c.transcript.Append(
		Utterance{Text: text, Language: Secondary},
		Utterance{Text: translated, Language: Primary},
	)
	c.turns++
	turn := c.turns
	c.mu.Unlock()

	out := TurnOutcome{Submitted: true, Translation: translated}

	raw, err := c.gateway.Suggest(ctx, translated)
	if err != nil {
		out.Notice = AsFailure(err, SuggestionFailed)
		_ = c.notifier.Notify(ctx, c.sessionID, err, "suggestions unavailable for turn")
		raw = nil
	}
	batch := Bucketize(raw)

	c.mu.Lock()
	if turn == c.turns && gen == c.generation {
		c.suggestions = batch
		c.state = AwaitingPrimaryInput
	}
	out.Snapshot = c.snapshotLocked()
	c.mu.Unlock()

	return out, nil
}

// SelectSuggestion submits a cleaned suggestion as the next English input.
// Without a current suggestion batch, or when cleaning leaves nothing, it
// is a no-op.
func (c *TurnController) SelectSuggestion(ctx context.Context, raw string) (TurnOutcome, error) {
	c.mu.Lock()
	empty := c.suggestions.IsEmpty()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if empty {
		return TurnOutcome{Snapshot: snap}, nil
	}
	cleaned := CleanSuggestion(raw)
	if cleaned == "" {
		return TurnOutcome{Snapshot: snap}, nil
	}
	return c.SubmitPrimary(ctx, cleaned)
}

func (c *TurnController) State() TurnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *TurnController) Snapshot() TurnSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Reset starts the conversation over. Results of requests still in flight
// are discarded when they arrive.
func (c *TurnController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript.Reset()
	c.suggestions = Bucketize(nil)
	c.lastVocalization = nil
	c.state = AwaitingPrimaryInput
	c.generation++
	clear(c.inFlight)
}

func (c *TurnController) snapshotLocked() TurnSnapshot {
	snap := TurnSnapshot{
		State:             c.state,
		AwaitingSecondary: c.state == AwaitingSecondaryResponse,
		Transcript:        c.transcript.All(),
		Suggestions:       c.suggestions,
	}
	if c.lastVocalization != nil {
		v := *c.lastVocalization
		snap.LastVocalization = &v
	}
	return snap
}

func (c *TurnController) acquire(side Language) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[side]; busy {
		return 0, NewFailure(TurnInFlight, UserMessage(TurnInFlight), nil)
	}
	c.inFlight[side] = c.generation
	return c.generation, nil
}

// release frees the slot taken in gen. A request from before a Reset does
// not free a slot taken after it.
func (c *TurnController) release(side Language, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if held, ok := c.inFlight[side]; ok && held == gen {
		delete(c.inFlight, side)
	}
}

// vocalize never fails: on any error the client speaks the text itself.
func (c *TurnController) vocalize(ctx context.Context, text string, lang Language) ports.Vocalization {
	fallback := ports.Vocalization{Text: text, LanguageTag: lang.Tag(), ClientSide: true}
	if c.vocalizer == nil {
		return fallback
	}
	voc, err := c.vocalizer.Vocalize(ctx, ports.VocalizeRequest{
		SessionID:   c.sessionID,
		Text:        text,
		LanguageTag: lang.Tag(),
	})
	if err != nil {
		_ = c.notifier.Notify(ctx, c.sessionID, err, "vocalization failed, falling back to client synthesis")
		return fallback
	}
	return voc
}
