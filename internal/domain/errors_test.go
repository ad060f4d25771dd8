package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsFailure(t *testing.T) {
	require.Nil(t, AsFailure(nil, TranslationFailed))

	provider := errors.New("quota exceeded")
	f := AsFailure(provider, TranslationFailed)
	require.Equal(t, TranslationFailed, f.Kind)
	require.Equal(t, "quota exceeded", f.Details())
	require.ErrorIs(t, f, provider)

	wrapped := fmt.Errorf("outer: %w", NewFailure(SuggestionFailed, "Failed to generate suggestions", nil))
	f = AsFailure(wrapped, TranslationFailed)
	require.Equal(t, SuggestionFailed, f.Kind)
	require.Equal(t, "Failed to generate suggestions", f.Details())
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewFailure(TurnInFlight, UserMessage(TurnInFlight), nil))
	require.True(t, IsKind(err, TurnInFlight))
	require.False(t, IsKind(err, CaptureActive))
	require.False(t, IsKind(errors.New("plain"), TurnInFlight))
}
