package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Vovarama1992/speakeasy/internal/domain"
)

const deepgramBaseURL = "https://api.deepgram.com/v1"

// DeepgramClient is the alternative batch transcriber.
type DeepgramClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewDeepgramClient(apiKey, baseURL, model string) (*DeepgramClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ai: DEEPGRAM_API_KEY not set")
	}
	if baseURL == "" {
		baseURL = deepgramBaseURL
	}
	if model == "" {
		model = "nova-2"
	}
	return &DeepgramClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *DeepgramClient) Transcribe(ctx context.Context, audio []byte, encoding string, sampleRateHertz int, languageTag string) (string, error) {
	lang, err := domain.ParseLanguage(languageTag)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("model", c.model)
	q.Set("smart_format", "true")
	q.Set("language", string(lang))
	contentType, raw, err := deepgramContentType(encoding)
	if err != nil {
		return "", err
	}
	if raw {
		// raw PCM needs its layout spelled out
		q.Set("encoding", "linear16")
		if sampleRateHertz > 0 {
			q.Set("sample_rate", strconv.Itoa(sampleRateHertz))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/listen?"+q.Encode(), bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepgram error: status %d: %s", resp.StatusCode, body)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode deepgram: %w", err)
	}

	var lines []string
	for _, ch := range parsed.Results.Channels {
		if len(ch.Alternatives) == 0 {
			continue
		}
		if t := strings.TrimSpace(ch.Alternatives[0].Transcript); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// deepgramContentType maps a recognizer encoding to the upload content type.
// Only LINEAR16 is sent as raw PCM; containers are sniffed by Deepgram.
func deepgramContentType(encoding string) (contentType string, raw bool, err error) {
	switch strings.ToUpper(strings.TrimSpace(encoding)) {
	case "LINEAR16":
		return "application/octet-stream", true, nil
	case "WEBM_OPUS":
		return "audio/webm", false, nil
	case "OGG_OPUS":
		return "audio/ogg", false, nil
	case "MP3":
		return "audio/mpeg", false, nil
	case "FLAC":
		return "audio/flac", false, nil
	default:
		return "", false, domain.NewFailure(domain.InvalidInput, fmt.Sprintf("encoding %q is not supported", encoding), nil)
	}
}
