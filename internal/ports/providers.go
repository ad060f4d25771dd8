package ports

import "context"

// Translator is a machine translation provider. Language arguments are
// base language codes ("en", "es").
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Transcriber is a batch speech-to-text provider.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, encoding string, sampleRateHertz int, languageTag string) (string, error)
}

// Suggester asks a language model for n independent continuations of text.
type Suggester interface {
	Suggest(ctx context.Context, text string, n int) ([]string, error)
}

// Synthesizer turns text into encoded audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
