package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func transcribeTo(text string, err error) func(context.Context, []byte, string, int, string) (string, error) {
	return func(context.Context, []byte, string, int, string) (string, error) {
		return text, err
	}
}

func TestCaptureSession_StartStop(t *testing.T) {
	var gotTag string
	gw := &fakeGateway{transcribe: func(_ context.Context, audio []byte, _ string, _ int, tag string) (string, error) {
		gotTag = tag
		return "  hola  ", nil
	}}
	s := NewCaptureSession(Spanish, gw)

	require.NoError(t, s.Start())
	require.True(t, s.Status().Active)

	err := s.Start()
	require.True(t, IsKind(err, CaptureActive))

	done := s.Done()
	res, err := s.Stop(context.Background(), AudioClip{Data: []byte{1, 2}, Encoding: "LINEAR16", SampleRateHertz: 16000})
	require.NoError(t, err)
	require.Equal(t, "hola", res.Text)
	require.Equal(t, "es-ES", gotTag)
	require.False(t, s.Status().Active)

	event, ok := <-done
	require.True(t, ok)
	require.Equal(t, res, event)
	_, ok = <-done
	require.False(t, ok)
}

func TestCaptureSession_Unsupported(t *testing.T) {
	require.True(t, IsKind(NewCaptureSession(English, nil).Start(), UnsupportedCapability))

	gw := &fakeGateway{unavailable: true, transcribe: transcribeTo("", nil)}
	require.True(t, IsKind(NewCaptureSession(English, gw).Start(), UnsupportedCapability))
}

func TestCaptureSession_StopWhenOff(t *testing.T) {
	s := NewCaptureSession(English, &fakeGateway{transcribe: transcribeTo("x", nil)})
	_, err := s.Stop(context.Background(), AudioClip{Data: []byte{1}})
	require.True(t, IsKind(err, InvalidInput))
	require.Nil(t, s.Done())
}

func TestCaptureSession_FailuresTurnListeningOff(t *testing.T) {
	s := NewCaptureSession(English, &fakeGateway{transcribe: transcribeTo("", errors.New("recognizer down"))})

	require.NoError(t, s.Start())
	res, err := s.Stop(context.Background(), AudioClip{Data: []byte{1}})
	require.True(t, IsKind(err, SpeechCaptureFailed))
	require.NotNil(t, res.Err)
	require.False(t, s.Status().Active)

	require.NoError(t, s.Start())
	_, err = s.Stop(context.Background(), AudioClip{})
	require.True(t, IsKind(err, SpeechCaptureFailed))
	require.Contains(t, err.Error(), "no audio captured")
	require.False(t, s.Status().Active)
}

func TestCaptureSession_Cancel(t *testing.T) {
	s := NewCaptureSession(English, &fakeGateway{transcribe: transcribeTo("hello", nil)})
	s.Cancel()

	require.NoError(t, s.Start())
	done := s.Done()
	s.Cancel()
	event := <-done
	require.Equal(t, SpeechCaptureFailed, event.Err.Kind)
	require.False(t, s.Status().Active)

	// the toggle is reusable
	require.NoError(t, s.Start())
	res, err := s.Stop(context.Background(), AudioClip{Data: []byte{1}})
	require.NoError(t, err)
	require.Equal(t, "hello", res.Text)
}
