package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestTranslator(t *testing.T, h http.HandlerFunc) *GoogleTranslator {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	tr, err := NewGoogleTranslator(context.Background(),
		option.WithEndpoint(srv.URL+"/language/translate/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return tr
}

func TestGoogleTranslate(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "Hello", q.Get("q"))
		require.Equal(t, "es", q.Get("target"))
		require.Equal(t, "en", q.Get("source"))
		require.Equal(t, "text", q.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"&iquest;Hola?"}]}}`))
	})

	out, err := tr.Translate(context.Background(), "Hello", "en", "es")
	require.NoError(t, err)
	require.Equal(t, "¿Hola?", out)
}

func TestGoogleTranslate_Errors(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	})

	_, err := tr.Translate(context.Background(), "Hello", "en", "es")
	require.ErrorContains(t, err, "API key not valid")

	empty := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
	})
	_, err = empty.Translate(context.Background(), "Hello", "en", "es")
	require.ErrorContains(t, err, "no translations")
}
