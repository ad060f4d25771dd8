package infra

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoogleClientOptions_APIKey(t *testing.T) {
	opts, err := GoogleClientOptions(context.Background(), "key", "/does/not/matter.json")
	require.NoError(t, err)
	require.Len(t, opts, 1)
}

func TestGoogleClientOptions_BadCredentialsFile(t *testing.T) {
	_, err := GoogleClientOptions(context.Background(), "", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "read google credentials")

	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	_, err = GoogleClientOptions(context.Background(), "", path)
	require.ErrorContains(t, err, "parse google credentials")
}
