package domain

import (
	"context"
	"io"
	"sync"

	"github.com/Vovarama1992/speakeasy/internal/ports"
)

type fakeGateway struct {
	mu          sync.Mutex
	translate   func(ctx context.Context, text, src, dst string) (string, error)
	suggest     func(ctx context.Context, text string) ([]string, error)
	transcribe  func(ctx context.Context, audio []byte, encoding string, rate int, tag string) (string, error)
	unavailable bool

	translateCalls int
	suggestCalls   int
}

func (g *fakeGateway) Translate(ctx context.Context, text, src, dst string) (string, error) {
	g.mu.Lock()
	g.translateCalls++
	fn := g.translate
	g.mu.Unlock()
	return fn(ctx, text, src, dst)
}

func (g *fakeGateway) Suggest(ctx context.Context, text string) ([]string, error) {
	g.mu.Lock()
	g.suggestCalls++
	fn := g.suggest
	g.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, text)
}

func (g *fakeGateway) Transcribe(ctx context.Context, audio []byte, encoding string, rate int, tag string) (string, error) {
	return g.transcribe(ctx, audio, encoding, rate, tag)
}

func (g *fakeGateway) TranscriptionAvailable() bool {
	return !g.unavailable && g.transcribe != nil
}

func (g *fakeGateway) calls() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.translateCalls, g.suggestCalls
}

type fakeVocalizer struct {
	err error
}

func (v fakeVocalizer) Vocalize(_ context.Context, req ports.VocalizeRequest) (ports.Vocalization, error) {
	if v.err != nil {
		return ports.Vocalization{}, v.err
	}
	return ports.Vocalization{Text: req.Text, LanguageTag: req.LanguageTag, AudioURL: "https://cdn.test/" + req.SessionID + ".mp3"}, nil
}

type fakeS3 struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (s *fakeS3) PutObject(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.key, s.body, s.contentType = key, body, contentType
	return "https://s3.test/bucket/" + key, nil
}
