package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	speechapi "google.golang.org/api/speech/v1"
)

// GoogleSTTClient calls Cloud Speech-to-Text v1 synchronous recognition.
type GoogleSTTClient struct {
	svc *speechapi.Service
}

func NewGoogleSTTClient(ctx context.Context, opts ...option.ClientOption) (*GoogleSTTClient, error) {
	svc, err := speechapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &GoogleSTTClient{svc: svc}, nil
}

// Transcribe joins the top alternative of every result with newlines.
// No results is an empty transcript.
func (c *GoogleSTTClient) Transcribe(ctx context.Context, audio []byte, encoding string, sampleRateHertz int, languageTag string) (string, error) {
	req := &speechapi.RecognizeRequest{
		Audio: &speechapi.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
		Config: &speechapi.RecognitionConfig{
			Encoding:        encoding,
			SampleRateHertz: int64(sampleRateHertz),
			LanguageCode:    languageTag,
		},
	}

	resp, err := c.svc.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("google speech: %w", err)
	}

	lines := make([]string, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result == nil || len(result.Alternatives) == 0 {
			continue
		}
		lines = append(lines, result.Alternatives[0].Transcript)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
