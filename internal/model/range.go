package model

import "fmt"

// Position is a zero-based location in a source file. Character is a column
// offset counted in code points within Line.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Compare orders positions lexicographically by (line, character).
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Character < other.Character:
		return -1
	case p.Character > other.Character:
		return 1
	}

	return 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Range is a span between two positions. End is exclusive on the character
// axis and inclusive on the line axis.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Valid reports whether Start <= End.
func (r Range) Valid() bool {
	return r.Start.Compare(r.End) <= 0
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
