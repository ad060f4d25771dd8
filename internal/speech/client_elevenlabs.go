package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io/v1"
	// Rachel
	defaultVoiceID = "EXAVITQu4vr4xnSDxMaL"
	// speaks Spanish with the same voice
	multilingualModel = "eleven_multilingual_v2"
)

type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	baseURL string
	httpCli *http.Client
}

func NewElevenLabsClient(apiKey, voiceID, baseURL string) (*ElevenLabsClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("speech: ELEVENLABS_API_KEY not set")
	}
	if voiceID == "" {
		voiceID = defaultVoiceID
	}
	if baseURL == "" {
		baseURL = elevenLabsBaseURL
	}
	return &ElevenLabsClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCli: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Synthesize returns mp3 audio for text.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, c.voiceID)

	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": multilingualModel,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("elevenlabs error: status %d: %s", resp.StatusCode, string(b))
	}

	return io.ReadAll(resp.Body)
}
