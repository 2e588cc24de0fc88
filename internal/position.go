package internal

import "fmt"

// Position is a zero-based line and column plus the byte offset into the source
type Position struct {
	Offset int
	Line   int
	Col    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span covers the source range [Start, End)
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Len returns the number of source bytes covered by s
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
