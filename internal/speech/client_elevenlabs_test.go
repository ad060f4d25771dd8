package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElevenLabsSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/text-to-speech/"+defaultVoiceID, r.URL.Path)
		require.Equal(t, "el-key", r.Header.Get("xi-api-key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Hola", body["text"])
		require.Equal(t, multilingualModel, body["model_id"])

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-audio"))
	}))
	defer srv.Close()

	c, err := NewElevenLabsClient("el-key", "", srv.URL+"/v1")
	require.NoError(t, err)

	audio, err := c.Synthesize(context.Background(), "Hola")
	require.NoError(t, err)
	require.Equal(t, []byte("ID3-audio"), audio)
}

func TestElevenLabsSynthesize_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer srv.Close()

	c, err := NewElevenLabsClient("bad", "voice", srv.URL)
	require.NoError(t, err)

	_, err = c.Synthesize(context.Background(), "Hola")
	require.ErrorContains(t, err, "status 401")

	_, err = NewElevenLabsClient(" ", "", "")
	require.Error(t, err)
}
