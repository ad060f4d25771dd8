package ports

import "context"

// AudioStore keeps synthesized speech clips and hands back a playable URL.
type AudioStore interface {
	ObjectKey(sessionID, ext string) string
	SaveAudio(ctx context.Context, sessionID string, audio []byte, contentType string) (string, error)
}
