package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscript_AppendKeepsOrderAndCopies(t *testing.T) {
	tr := NewTranscript()
	tr.Append(Utterance{Text: "Hello", Language: English}, Utterance{Text: "Hola", Language: Spanish})
	tr.Append(Utterance{Text: "Bien", Language: Spanish})

	all := tr.All()
	require.Equal(t, 3, tr.Len())
	require.Equal(t, "Hello", all[0].Text)
	require.Equal(t, "Bien", all[2].Text)

	all[0].Text = "mutated"
	require.Equal(t, "Hello", tr.All()[0].Text)

	tr.Reset()
	require.Zero(t, tr.Len())
	require.Empty(t, tr.All())
}
