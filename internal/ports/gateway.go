package ports

import "context"

// Gateway is the single boundary to external providers. Every error it
// returns is a *domain.Failure.
type Gateway interface {
	Translate(ctx context.Context, text, sourceTag, targetTag string) (string, error)
	Transcribe(ctx context.Context, audio []byte, encoding string, sampleRateHertz int, languageTag string) (string, error)
	Suggest(ctx context.Context, text string) ([]string, error)
	TranscriptionAvailable() bool
}
