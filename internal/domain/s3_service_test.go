package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAudioStore_SaveAudio(t *testing.T) {
	s3 := &fakeS3{}
	store := NewAudioStore(s3).(*audioStore)
	store.now = func() time.Time { return time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC) }

	url, err := store.SaveAudio(context.Background(), "sess-1", []byte("ID3"), "audio/mpeg")
	require.NoError(t, err)
	require.Regexp(t, `^2026-03-04/sess-1/[0-9a-f-]{36}\.mp3$`, s3.key)
	require.Equal(t, "https://s3.test/bucket/"+s3.key, url)
	require.Equal(t, []byte("ID3"), s3.body)
	require.Equal(t, "audio/mpeg", s3.contentType)
}

func TestAudioStore_Rejects(t *testing.T) {
	store := NewAudioStore(&fakeS3{})

	_, err := store.SaveAudio(context.Background(), "", []byte("x"), "audio/mpeg")
	require.Error(t, err)
	_, err = store.SaveAudio(context.Background(), "s", nil, "audio/mpeg")
	require.Error(t, err)

	failing := NewAudioStore(&fakeS3{err: errors.New("denied")})
	_, err = failing.SaveAudio(context.Background(), "s", []byte("x"), "audio/mpeg")
	require.EqualError(t, err, "denied")
}

func TestExtensionFor(t *testing.T) {
	require.Equal(t, "mp3", extensionFor("audio/mpeg"))
	require.Equal(t, "bin", extensionFor("application/x-unknown-thing"))
}
