package domain

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

const cmp0Source = "\n" +
	"Lemma cmp0 x : unify_itv i (Itv.Real `]-oo, +oo[) -> 0 >=< x%:num. Proof. by case: i x => [//| i' [x /=/andP[]]].\n" +
	"- by case: y => [y /=/andP[]]. Qed.\n"

func tacticTexts(tactics []Tactic) []string {
	texts := make([]string, 0, len(tactics))
	for _, tactic := range tactics {
		texts = append(texts, tactic.Text)
	}

	return texts
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

func TestProofSteps_BulletAndBrackets(t *testing.T) {
	source := m.Source{Path: "cmp0.v", Content: cmp0Source}

	tactics, err := ProofSteps(m.Position{Line: 1, Character: 66}, nil, source)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Proof.",
		"by case: i x => [//| i' [x /=/andP[]]].",
		"-",
		"by case: y => [y /=/andP[]].",
		"Qed.",
	}, tacticTexts(tactics))
}

func TestProofSteps_Ranges(t *testing.T) {
	source := m.Source{Path: "cmp0.v", Content: cmp0Source}

	tactics, err := ProofSteps(m.Position{Line: 1, Character: 66}, nil, source)
	require.NoError(t, err)
	require.Len(t, tactics, 5)

	assert.Equal(t, m.Range{Start: m.Position{Line: 1, Character: 67}, End: m.Position{Line: 1, Character: 73}}, tactics[0].Range)
	assert.Equal(t, m.Range{Start: m.Position{Line: 1, Character: 74}, End: m.Position{Line: 1, Character: 113}}, tactics[1].Range)
	assert.Equal(t, m.Range{Start: m.Position{Line: 2, Character: 0}, End: m.Position{Line: 2, Character: 1}}, tactics[2].Range)
	assert.Equal(t, m.Range{Start: m.Position{Line: 2, Character: 2}, End: m.Position{Line: 2, Character: 30}}, tactics[3].Range)
	assert.Equal(t, m.Range{Start: m.Position{Line: 2, Character: 31}, End: m.Position{Line: 2, Character: 35}}, tactics[4].Range)

	for _, tactic := range tactics {
		text, err := ExtractStatement(tactic.Range, source)
		require.NoError(t, err)
		assert.Equal(t, tactic.Text, text, "range of %q does not cover its text", tactic.Text)
	}
}

func TestProofSteps_ConcatenationReproducesText(t *testing.T) {
	sources := []string{
		cmp0Source,
		"Lemma a : True.\nProof.\n  split; [ apply: foo. | by [] ].\n  + auto.\n  + { simpl. (* a. b *) now rewrite \"x. y\". }\nQed.\n",
		"Theorem t : 1 = 1.\nProof.\n  -- reflexivity.\n  ** exact (f x.1).\nDefined.",
	}

	for _, content := range sources {
		source := m.Source{Content: content}
		lines := source.ContentLines()
		first := strings.Index(lines[0], ".") + 1
		if first == 0 {
			first = len(lines[0])
		}

		from := m.Position{Line: 0, Character: first}
		if strings.HasPrefix(content, "\n") {
			from = m.Position{Line: 1, Character: 66}
		}

		tactics, err := ProofSteps(from, nil, source)
		require.NoError(t, err)

		tail := strings.Join(lines[from.Line:], "\n")
		if from.Line < len(lines) {
			tail = string([]rune(lines[from.Line])[from.Character:]) + "\n" + strings.Join(lines[from.Line+1:], "\n")
		}

		assert.Equal(t, stripSpace(tail), stripSpace(strings.Join(tacticTexts(tactics), "")))
	}
}

func TestProofSteps_Cases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		from    m.Position
		want    []string
	}{
		{
			name:    "parentheses keep periods",
			content: "Lemma x : P.\nProof. apply (f (g x.1)). Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "apply (f (g x.1)).", "Qed."},
		},
		{
			name:    "qualified names",
			content: "Lemma x : P.\nProof. rewrite Nat.add_comm. Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "rewrite Nat.add_comm.", "Qed."},
		},
		{
			name:    "bullets on one line",
			content: "Lemma x : P.\nProof. split. - auto. + auto. * auto. Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "split.", "-", "auto.", "+", "auto.", "*", "auto.", "Qed."},
		},
		{
			name:    "repeated bullet is one step",
			content: "Lemma x : P.\nProof.\n-- auto.\nQed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "--", "auto.", "Qed."},
		},
		{
			name:    "focusing braces",
			content: "Lemma x : P.\nProof.\n{ auto. }\n{ now apply H. }\nQed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "{", "auto.", "}", "{", "now apply H.", "}", "Qed."},
		},
		{
			name:    "goal selector with focusing brace",
			content: "Lemma x : P.\nProof.\nsplit.\n2: { simpl. auto. }\nall: { auto. }\n[H]:{ exact I. }\nQed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "split.", "2: {", "simpl.", "auto.", "}", "all: {", "auto.", "}", "[H]:{", "exact I.", "}", "Qed."},
		},
		{
			name:    "goal selector without brace",
			content: "Lemma x : P.\nProof. split. 2: auto. 1-2: { auto. } Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "split.", "2: auto.", "1-2: {", "auto.", "}", "Qed."},
		},
		{
			name:    "record braces inside a tactic",
			content: "Lemma x : P.\nProof. exists {| f := 1. |}. Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "exists {| f := 1. |}.", "Qed."},
		},
		{
			name:    "comment with period",
			content: "Lemma x : P.\nProof. (* see. below *) auto. Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "(* see. below *) auto.", "Qed."},
		},
		{
			name:    "string with period",
			content: "Lemma x : P.\nProof. idtac \"a. b\". Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "idtac \"a. b\".", "Qed."},
		},
		{
			name:    "ellipsis does not split",
			content: "Lemma x : P.\nProof. auto... Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "auto... Qed."},
		},
		{
			name:    "stops at first terminator",
			content: "Lemma x : P.\nProof. auto. Defined.\nLemma y : Q.\nProof. auto. Qed.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "auto.", "Defined."},
		},
		{
			name:    "admitted",
			content: "Lemma x : P.\nProof. Admitted.",
			from:    m.Position{Line: 0, Character: 12},
			want:    []string{"Proof.", "Admitted."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tactics, err := ProofSteps(tt.from, nil, m.Source{Content: tt.content})
			if tt.name == "ellipsis does not split" {
				require.ErrorIs(t, err, ErrMissingTerminator)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, tacticTexts(tactics))
		})
	}
}

func TestProofSteps_Bound(t *testing.T) {
	content := "Lemma x : P.\nProof. auto.\nLemma y : Q.\nProof. auto. Qed."
	bound := m.Position{Line: 2, Character: 0}

	tactics, err := ProofSteps(m.Position{Line: 0, Character: 12}, &bound, m.Source{Path: "x.v", Content: content})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingTerminator)
	require.ErrorIs(t, err, m.ErrExtraction)
	assert.Equal(t, []string{"Proof.", "auto."}, tacticTexts(tactics))
}

func TestProofSteps_Deterministic(t *testing.T) {
	source := m.Source{Content: cmp0Source}
	from := m.Position{Line: 1, Character: 66}

	first, err := ProofSteps(from, nil, source)
	require.NoError(t, err)

	second, err := ProofSteps(from, nil, source)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProofSteps_Errors(t *testing.T) {
	t.Run("start beyond source", func(t *testing.T) {
		_, err := ProofSteps(m.Position{Line: 5}, nil, m.Source{Content: "Lemma x : P."})
		require.ErrorIs(t, err, ErrRangeOutOfBounds)
		require.ErrorIs(t, err, m.ErrExtraction)
	})

	t.Run("empty tail", func(t *testing.T) {
		tactics, err := ProofSteps(m.Position{Line: 0, Character: 12}, nil, m.Source{Content: "Lemma x : P."})
		require.ErrorIs(t, err, ErrMissingTerminator)
		assert.Empty(t, tactics)
	})

	t.Run("unterminated tail keeps partial step", func(t *testing.T) {
		tactics, err := ProofSteps(m.Position{Line: 0, Character: 12}, nil, m.Source{Content: "Lemma x : P.\nProof. auto\n  "})
		require.ErrorIs(t, err, ErrMissingTerminator)
		assert.Equal(t, []string{"Proof.", "auto"}, tacticTexts(tactics))
	})
}
