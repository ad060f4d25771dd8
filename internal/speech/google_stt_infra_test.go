package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestSTT(t *testing.T, h http.HandlerFunc) *GoogleSTTClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewGoogleSTTClient(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return c
}

func TestGoogleSTT_Transcribe(t *testing.T) {
	c := newTestSTT(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Audio struct {
				Content string `json:"content"`
			} `json:"audio"`
			Config struct {
				Encoding        string `json:"encoding"`
				SampleRateHertz int    `json:"sampleRateHertz"`
				LanguageCode    string `json:"languageCode"`
			} `json:"config"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, base64.StdEncoding.EncodeToString([]byte{7, 8}), req.Audio.Content)
		require.Equal(t, "LINEAR16", req.Config.Encoding)
		require.Equal(t, 16000, req.Config.SampleRateHertz)
		require.Equal(t, "es-ES", req.Config.LanguageCode)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"alternatives":[{"transcript":"hola"},{"transcript":"ola"}]},
			{"alternatives":[]},
			{"alternatives":[{"transcript":"qué tal"}]}
		]}`))
	})

	out, err := c.Transcribe(context.Background(), []byte{7, 8}, "LINEAR16", 16000, "es-ES")
	require.NoError(t, err)
	require.Equal(t, "hola\nqué tal", out)
}

func TestGoogleSTT_NoResults(t *testing.T) {
	c := newTestSTT(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	out, err := c.Transcribe(context.Background(), []byte{1}, "LINEAR16", 16000, "en-US")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGoogleSTT_Error(t *testing.T) {
	c := newTestSTT(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid recognition 'config': bad encoding"}}`))
	})

	_, err := c.Transcribe(context.Background(), []byte{1}, "NOPE", 16000, "en-US")
	require.ErrorContains(t, err, "bad encoding")
}
