package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// ErrRangeOutOfBounds is returned when a range addresses lines that the
// source does not have.
var ErrRangeOutOfBounds = errors.New("range outside source content")

// ExtractStatement returns the text covered by r in source. The first line is
// cut before r.Start.Character, the last line after r.End.Character.
func ExtractStatement(r m.Range, source m.Source) (string, error) {
	if !r.Valid() {
		return "", fmt.Errorf("%w: range %s is inverted", m.ErrExtraction, r)
	}

	lines := source.ContentLines()
	if r.Start.Line < 0 || r.End.Line >= len(lines) {
		return "", fmt.Errorf("%w: %w: range %s, source has %d lines", m.ErrExtraction, ErrRangeOutOfBounds, r, len(lines))
	}

	selected := lines[r.Start.Line : r.End.Line+1]
	if len(selected) == 1 {
		return sliceRunes(selected[0], r.Start.Character, r.End.Character), nil
	}

	parts := make([]string, len(selected))
	copy(parts, selected)
	parts[0] = sliceRunes(parts[0], r.Start.Character, -1)
	parts[len(parts)-1] = sliceRunes(parts[len(parts)-1], 0, r.End.Character)

	return strings.Join(parts, "\n"), nil
}

// UpdateStatement fills element.Statement from source. On failure the
// statement is left empty and the problem is logged; it never aborts the
// caller.
func UpdateStatement(element *m.Element, source m.Source) bool {
	statement, err := ExtractStatement(element.Range, source)
	if err != nil {
		slog.Warn("Failed to extract statement",
			"theorem", element.Name,
			"range", element.Range.String(),
			"source", source.Path,
			"error", err,
		)

		element.Statement = ""

		return false
	}

	element.Statement = statement

	return true
}

// sliceRunes cuts s between code point offsets from and to. A negative to
// means the end of s. Offsets are clamped to the string.
func sliceRunes(s string, from, to int) string {
	runes := []rune(s)
	if to < 0 || to > len(runes) {
		to = len(runes)
	}

	from = max(from, 0)
	if from >= to {
		return ""
	}

	return string(runes[from:to])
}
