package ports

import "context"

type VocalizeRequest struct {
	SessionID   string
	Text        string
	LanguageTag string
}

// Vocalization tells the client how to speak a translation. ClientSide
// means no audio was produced and the client should use its own synthesis.
type Vocalization struct {
	Text        string `json:"text"`
	LanguageTag string `json:"language"`
	ClientSide  bool   `json:"clientSide"`
	AudioURL    string `json:"audioUrl,omitempty"`
	AudioBase64 string `json:"audioBase64,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

type Vocalizer interface {
	Vocalize(ctx context.Context, req VocalizeRequest) (Vocalization, error)
}
