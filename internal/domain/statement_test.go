package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

func pos(line, char int) m.Position {
	return m.Position{Line: line, Character: char}
}

func TestExtractStatement(t *testing.T) {
	source := m.Source{
		Path:    "theories/A.v",
		Content: "Require Import B.\n\nLemma add0 n :\n  n + 0 = n.\nProof. by elim: n. Qed.\n",
	}

	tests := []struct {
		name string
		r    m.Range
		want string
	}{
		{"single line", m.Range{Start: pos(0, 15), End: pos(0, 16)}, "B"},
		{"whole line", m.Range{Start: pos(0, 0), End: pos(0, 17)}, "Require Import B."},
		{"multi line", m.Range{Start: pos(2, 0), End: pos(3, 12)}, "Lemma add0 n :\n  n + 0 = n."},
		{"empty line inside", m.Range{Start: pos(0, 8), End: pos(2, 5)}, "Import B.\n\nLemma"},
		{"empty range", m.Range{Start: pos(4, 3), End: pos(4, 3)}, ""},
		{"end past line clamps", m.Range{Start: pos(4, 19), End: pos(4, 99)}, "Qed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractStatement(tt.r, source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractStatement_CodePoints(t *testing.T) {
	source := m.Source{Content: "Lemma α_β : ∀ x, x = x."}

	got, err := ExtractStatement(m.Range{Start: pos(0, 6), End: pos(0, 9)}, source)
	require.NoError(t, err)
	assert.Equal(t, "α_β", got)
}

func TestExtractStatement_Errors(t *testing.T) {
	source := m.Source{Path: "A.v", Content: "Lemma x : P.\nProof. Qed."}

	t.Run("out of bounds", func(t *testing.T) {
		_, err := ExtractStatement(m.Range{Start: pos(1, 0), End: pos(4, 2)}, source)
		require.ErrorIs(t, err, ErrRangeOutOfBounds)
		assert.Equal(t, m.FailureExtraction, m.Classify(err))
	})

	t.Run("inverted", func(t *testing.T) {
		_, err := ExtractStatement(m.Range{Start: pos(1, 4), End: pos(0, 2)}, source)
		require.ErrorIs(t, err, m.ErrExtraction)
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := ExtractStatement(m.Range{Start: pos(0, 0), End: pos(0, 1)}, m.Source{})
		require.ErrorIs(t, err, ErrRangeOutOfBounds)
	})
}

func TestUpdateStatement(t *testing.T) {
	source := m.Source{Path: "A.v", Content: "Lemma x : P.\nProof. Qed."}

	t.Run("fills statement", func(t *testing.T) {
		element := m.Element{Name: "x", Range: m.Range{Start: pos(0, 0), End: pos(0, 12)}}

		assert.True(t, UpdateStatement(&element, source))
		assert.Equal(t, "Lemma x : P.", element.Statement)
	})

	t.Run("degrades to empty statement", func(t *testing.T) {
		element := m.Element{Name: "x", Statement: "stale", Range: m.Range{Start: pos(3, 0), End: pos(5, 1)}}

		assert.False(t, UpdateStatement(&element, source))
		assert.Empty(t, element.Statement)
	})
}
