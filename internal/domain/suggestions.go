package domain

import (
	"regexp"
	"strings"
)

const SuggestionSetCount = 3

// A list number is only markup when a quote, whitespace or nothing follows
// it; "3.5 hours" is left alone.
var (
	quotedOrdinal = regexp.MustCompile(`^\d+\.\s*(["“”])`)
	ordinalPrefix = regexp.MustCompile(`^\d+\.(?:\s+|$)`)
)

// SuggestionBatch holds one suggestion response and its round-robin split.
type SuggestionBatch struct {
	Raw  []string                     `json:"raw"`
	Sets [SuggestionSetCount][]string `json:"sets"`
}

func (b SuggestionBatch) IsEmpty() bool {
	for _, set := range b.Sets {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// Flatten splits every raw suggestion into its non-empty trimmed lines.
func Flatten(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, line := range strings.Split(strings.ReplaceAll(item, "\r\n", "\n"), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

// Bucketize puts flattened element i into set i mod 3.
func Bucketize(raw []string) SuggestionBatch {
	batch := SuggestionBatch{Raw: append([]string{}, raw...)}
	for i := range batch.Sets {
		batch.Sets[i] = []string{}
	}
	for i, s := range Flatten(raw) {
		batch.Sets[i%SuggestionSetCount] = append(batch.Sets[i%SuggestionSetCount], s)
	}
	return batch
}

// CleanSuggestion strips list numbering and one pair of surrounding quotes.
// Already clean strings are returned unchanged.
func CleanSuggestion(s string) string {
	s = strings.TrimSpace(s)
	s = quotedOrdinal.ReplaceAllString(s, "$1")
	s = ordinalPrefix.ReplaceAllString(s, "")
	for _, q := range []string{`"`, "“", "”"} {
		if strings.HasPrefix(s, q) {
			s = strings.TrimPrefix(s, q)
			break
		}
	}
	for _, q := range []string{`"`, "”", "“"} {
		if strings.HasSuffix(s, q) {
			s = strings.TrimSuffix(s, q)
			break
		}
	}
	return strings.TrimSpace(s)
}
