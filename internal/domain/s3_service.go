package domain

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Vovarama1992/speakeasy/internal/ports"
)

type audioStore struct {
	client ports.S3Client
	now    func() time.Time
}

func NewAudioStore(client ports.S3Client) ports.AudioStore {
	return &audioStore{client: client, now: time.Now}
}

// ObjectKey is the bucket path: date/session/random.ext
func (s *audioStore) ObjectKey(sessionID, ext string) string {
	date := s.now().Format("2006-01-02")
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s/%s.%s", date, sessionID, uuid.NewString(), ext)
}

func (s *audioStore) SaveAudio(ctx context.Context, sessionID string, audio []byte, contentType string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("sessionID required")
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio")
	}

	key := s.ObjectKey(sessionID, extensionFor(contentType))
	return s.client.PutObject(ctx, key, bytes.NewReader(audio), int64(len(audio)), contentType)
}

func extensionFor(contentType string) string {
	if contentType == "audio/mpeg" {
		return "mp3"
	}
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return "bin"
	}
	return exts[0]
}
