package domain

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// ErrMissingTerminator is returned when a proof tail ends without one of the
// accepted terminator commands. The bound used to cut the tail was most
// likely wrong.
var ErrMissingTerminator = errors.New("proof has no terminator")

// Terminators are the commands that close a proof.
var Terminators = []string{"Qed.", "Defined.", "Admitted.", "Abort."}

// goalSelector matches the selector in front of a focusing brace, as in
// "2: {", "1-3: {", "[x]: {" or "all: {".
var goalSelector = regexp.MustCompile(`^(all|\d+(\s*-\s*\d+)?(\s*,\s*\d+(\s*-\s*\d+)?)*|\[\s*[\p{L}_][\p{L}\p{N}_']*\s*\])\s*:$`)

// Tactic is one atomic proof step and the source span it was read from.
type Tactic struct {
	Text  string
	Range m.Range
}

// proofText is the tail of a source as a flat rune slice, with the source
// position of every rune. Line breaks are kept as '\n'.
type proofText struct {
	runes     []rune
	positions []m.Position
}

// ProofSteps splits the text following a statement into tactics. Scanning
// starts at from and stops at the first terminator, at bound (exclusive) or
// at the end of the source, whichever comes first. When no terminator is
// found the steps read so far are returned together with an error wrapping
// ErrMissingTerminator.
func ProofSteps(from m.Position, bound *m.Position, source m.Source) ([]Tactic, error) {
	lines := source.ContentLines()
	if from.Line < 0 || from.Line >= len(lines) {
		return nil, fmt.Errorf("%w: %w: proof starts at %s, source has %d lines",
			m.ErrExtraction, ErrRangeOutOfBounds, from, len(lines))
	}

	text := cutProofText(lines, from, bound)
	tactics := splitTactics(text)

	if len(tactics) == 0 || !isTerminator(tactics[len(tactics)-1].Text) {
		return tactics, fmt.Errorf("%w: %w after %s in %s", m.ErrExtraction, ErrMissingTerminator, from, source.Path)
	}

	return tactics, nil
}

func cutProofText(lines []string, from m.Position, bound *m.Position) proofText {
	var text proofText

	for line := from.Line; line < len(lines); line++ {
		runes := []rune(lines[line])

		start := 0
		if line == from.Line {
			start = min(max(from.Character, 0), len(runes))
		}

		for char := start; char <= len(runes); char++ {
			pos := m.Position{Line: line, Character: char}
			if bound != nil && pos.Compare(*bound) >= 0 {
				return text
			}

			if char == len(runes) {
				if line < len(lines)-1 {
					text.runes = append(text.runes, '\n')
					text.positions = append(text.positions, pos)
				}

				break
			}

			text.runes = append(text.runes, runes[char])
			text.positions = append(text.positions, pos)
		}
	}

	return text
}

// splitTactics walks the text once. A period closes a step when it sits at
// nesting depth zero, does not follow another period and is followed by
// white space or the end of the text. Bullets and focusing braces found at
// the start of a step are steps of their own, and so is a goal selector with
// its opening brace. Comments and string literals never split a step.
func splitTactics(text proofText) []Tactic {
	var (
		tactics []Tactic
		depth   int
		start   = -1
	)

	runes := text.runes
	emit := func(from, to int) Tactic {
		tactic := Tactic{
			Text: strings.TrimSpace(string(runes[from : to+1])),
			Range: m.Range{
				Start: text.positions[from],
				End:   afterPosition(text.positions[to]),
			},
		}
		tactics = append(tactics, tactic)

		return tactic
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if start < 0 {
			if unicode.IsSpace(r) {
				continue
			}

			if depth == 0 && isBullet(r) {
				end := i
				for end+1 < len(runes) && runes[end+1] == r {
					end++
				}

				emit(i, end)
				i = end

				continue
			}

			if depth == 0 && (r == '{' || r == '}') {
				emit(i, i)

				continue
			}

			start = i
		}

		switch {
		case r == '(' && i+1 < len(runes) && runes[i+1] == '*':
			i = skipComment(runes, i)
		case r == '"':
			i = skipString(runes, i)
		case r == '{' && depth == 0 && goalSelector.MatchString(strings.TrimSpace(string(runes[start:i]))):
			emit(start, i)
			start = -1
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			if depth > 0 {
				depth--
			}
		case r == '.' && depth == 0 && isStepBoundary(runes, i):
			tactic := emit(start, i)
			start = -1

			if isTerminator(tactic.Text) {
				return tactics
			}
		}
	}

	if start >= 0 {
		end := len(runes) - 1
		for end > start && unicode.IsSpace(runes[end]) {
			end--
		}

		emit(start, end)
	}

	return tactics
}

func isBullet(r rune) bool {
	return r == '-' || r == '+' || r == '*'
}

func isStepBoundary(runes []rune, i int) bool {
	if i > 0 && runes[i-1] == '.' {
		return false
	}

	return i+1 == len(runes) || unicode.IsSpace(runes[i+1])
}

func isTerminator(text string) bool {
	return slices.Contains(Terminators, text)
}

// skipComment returns the index of the closing ')' of the (possibly nested)
// comment opened at i, or the last index when it is never closed.
func skipComment(runes []rune, i int) int {
	level := 0

	for j := i; j+1 < len(runes); j++ {
		switch {
		case runes[j] == '(' && runes[j+1] == '*':
			level++
			j++
		case runes[j] == '*' && runes[j+1] == ')':
			level--
			j++

			if level == 0 {
				return j
			}
		}
	}

	return len(runes) - 1
}

// skipString returns the index of the quote closing the string opened at i.
// A doubled quote is an escaped quote.
func skipString(runes []rune, i int) int {
	for j := i + 1; j < len(runes); j++ {
		if runes[j] != '"' {
			continue
		}

		if j+1 < len(runes) && runes[j+1] == '"' {
			j++

			continue
		}

		return j
	}

	return len(runes) - 1
}

func afterPosition(p m.Position) m.Position {
	return m.Position{Line: p.Line, Character: p.Character + 1}
}
