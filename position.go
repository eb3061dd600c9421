package gobf

import "fmt"

// Position locates a source character for diagnostics; both Line and Column
// are 1-based. Positions matter only to error reporting, they are not part
// of the parsed program.
type Position struct {
	Line   int
	Column int
}

func startPosition() Position { return Position{Line: 1, Column: 1} }

// advance returns the position one past r: a newline starts the next line,
// any other rune is one column over.
func (pos Position) advance(r rune) Position {
	if r == '\n' {
		pos.Line++
		pos.Column = 1
	} else {
		pos.Column++
	}
	return pos
}

func (pos Position) String() string {
	return fmt.Sprintf("line %v, column %v", pos.Line, pos.Column)
}
