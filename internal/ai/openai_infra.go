package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel       = openai.GPT3Dot5Turbo
	DefaultMaxTokens   = 150
	DefaultTemperature = 0.7

	systemPrompt = "You are a helpful assistant."
)

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

// Truncator caps the text put into a prompt.
type Truncator interface {
	Truncate(text string) string
}

// OpenAIClient produces conversation continuations with chat completions.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	temp      float32
	truncator Truncator
}

func NewOpenAIClient(cfg OpenAIConfig, truncator Truncator) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("ai: OPENAI_API_KEY not set")
	}
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(conf),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		temp:      cfg.Temperature,
		truncator: truncator,
	}, nil
}

// Suggest asks for n independent completions in a single request and
// returns their trimmed contents in choice order.
func (c *OpenAIClient) Suggest(ctx context.Context, text string, n int) ([]string, error) {
	if n <= 0 {
		n = 1
	}
	if c.truncator != nil {
		text = c.truncator.Truncate(text)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: suggestionPrompt(text)},
		},
		MaxTokens:   c.maxTokens,
		N:           n,
		Temperature: c.temp,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", analyzeOpenAIError(err), err)
	}

	out := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		out = append(out, strings.TrimSpace(choice.Message.Content))
	}
	return out, nil
}

func suggestionPrompt(text string) string {
	return fmt.Sprintf("Given this translated text: %q, suggest three natural ways to continue the conversation.", text)
}
