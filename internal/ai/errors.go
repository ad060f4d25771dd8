package ai

import (
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// analyzeOpenAIError turns an OpenAI failure into an operator hint.
func analyzeOpenAIError(err error) string {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	msg := strings.ToLower(err.Error())
	switch {
	case status == http.StatusUnauthorized:
		return "invalid OpenAI API key"
	case status == http.StatusNotFound:
		return "model not found"
	case status == http.StatusTooManyRequests:
		return "OpenAI rate limit exceeded"
	case status == http.StatusBadRequest && strings.Contains(msg, "model"):
		return "invalid model"
	case status == http.StatusBadRequest:
		return "bad request to OpenAI"
	case status >= http.StatusInternalServerError:
		return "OpenAI internal error"
	}
	return "unknown OpenAI error"
}
