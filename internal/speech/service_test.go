package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vovarama1992/speakeasy/internal/ports"
)

type fakeSynth struct {
	audio []byte
	err   error
}

func (f fakeSynth) Synthesize(context.Context, string) ([]byte, error) {
	return f.audio, f.err
}

type fakeStore struct {
	err     error
	session string
}

func (s *fakeStore) ObjectKey(sessionID, ext string) string { return sessionID + "." + ext }

func (s *fakeStore) SaveAudio(_ context.Context, sessionID string, _ []byte, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.session = sessionID
	return "https://s3.test/" + sessionID + ".mp3", nil
}

var (
	testLog = logger.NewZapLogger(zap.NewNop().Sugar())
	request = ports.VocalizeRequest{SessionID: "s1", Text: "Hola", LanguageTag: "es-ES"}
)

func TestVocalize_ClientSideWithoutSynthesizer(t *testing.T) {
	v, err := NewService(nil, nil, testLog).Vocalize(context.Background(), request)
	require.NoError(t, err)
	require.True(t, v.ClientSide)
	require.Equal(t, "Hola", v.Text)
	require.Equal(t, "es-ES", v.LanguageTag)
	require.Empty(t, v.AudioURL)
}

func TestVocalize_InlineAudioWithoutStore(t *testing.T) {
	v, err := NewService(fakeSynth{audio: []byte("mp3")}, nil, testLog).Vocalize(context.Background(), request)
	require.NoError(t, err)
	require.False(t, v.ClientSide)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("mp3")), v.AudioBase64)
	require.Equal(t, audioContentType, v.ContentType)
}

func TestVocalize_StoredAudio(t *testing.T) {
	store := &fakeStore{}
	v, err := NewService(fakeSynth{audio: []byte("mp3")}, store, testLog).Vocalize(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, "https://s3.test/s1.mp3", v.AudioURL)
	require.Empty(t, v.AudioBase64)
	require.Equal(t, "s1", store.session)
}

func TestVocalize_Errors(t *testing.T) {
	_, err := NewService(fakeSynth{err: errors.New("quota")}, nil, nil).Vocalize(context.Background(), request)
	require.ErrorContains(t, err, "quota")

	_, err = NewService(fakeSynth{audio: []byte("mp3")}, &fakeStore{err: errors.New("denied")}, testLog).Vocalize(context.Background(), request)
	require.ErrorContains(t, err, "denied")
}
