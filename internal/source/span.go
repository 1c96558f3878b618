package source

import (
	"fmt"
)

// Position is a 1-based line/column pair. Columns count bytes on the line.
type Position struct {
	Line uint32
	Col  uint32
}

// Before reports strict document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span marks a region of one file: Start inclusive, Stop exclusive.
type Span struct {
	Path  string
	Start Position
	Stop  Position
}

// LineSpan builds a span covering [startCol, stopCol) on a single line.
func LineSpan(path string, line, startCol, stopCol uint32) Span {
	return Span{
		Path:  path,
		Start: Position{Line: line, Col: startCol},
		Stop:  Position{Line: line, Col: stopCol},
	}
}

func (s Span) Empty() bool {
	return s.Start == s.Stop
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%s-%s", s.Path, s.Start, s.Stop)
}
