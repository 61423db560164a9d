package search

import (
	"fmt"
	"strings"
)

// Line is one matching line of the searched text.
//
// Content is a substring of the text passed to Search and shares its
// backing memory, so holding on to a Line keeps the whole text alive.
// Use Detach before storing lines beyond the lifetime of the text.
type Line struct {
	Number  int // zero-based
	Content string
}

// String renders the line for display using its 1-based number.
func (l Line) String() string {
	return fmt.Sprintf("Line #%d: %s", l.Number+1, l.Content)
}

// Detach returns a copy of l whose Content owns its own memory.
func (l Line) Detach() Line {
	return Line{Number: l.Number, Content: strings.Clone(l.Content)}
}
