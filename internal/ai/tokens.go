package ai

import (
	"log"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TokenLimiter cuts prompt input to a token budget. The encoding is loaded
// lazily; if it cannot be loaded the text is passed through.
type TokenLimiter struct {
	model string
	limit int

	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

func NewTokenLimiter(model string, limit int) *TokenLimiter {
	return &TokenLimiter{model: model, limit: limit}
}

func (l *TokenLimiter) Truncate(text string) string {
	if l == nil || l.limit <= 0 || text == "" {
		return text
	}
	enc, err := l.encoding()
	if err != nil {
		return text
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= l.limit {
		return text
	}
	return enc.Decode(tokens[:l.limit])
}

func (l *TokenLimiter) encoding() (*tiktoken.Tiktoken, error) {
	l.once.Do(func() {
		l.enc, l.err = tiktoken.EncodingForModel(l.model)
		if l.err != nil {
			l.enc, l.err = tiktoken.GetEncoding(fallbackEncoding)
		}
		if l.err != nil {
			log.Printf("[ai] tokenizer init fail: %v", l.err)
		}
	})
	return l.enc, l.err
}
