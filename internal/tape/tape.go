package tape

// DefaultLength is the canonical number of cells on a Tape.
const DefaultLength = 30000

// Tape implements a fixed-length memory of unsigned byte cells, along with a
// data pointer into them. All cells start at zero, the pointer starts at cell
// zero. The length is fixed at creation time: the pointer saturates at either
// end rather than wrapping or growing the cell array.
type Tape struct {
	cells []byte
	pos   int
}

// New creates a tape with n zero cells; any n < 1 means DefaultLength.
func New(n int) *Tape {
	if n < 1 {
		n = DefaultLength
	}
	return &Tape{cells: make([]byte, n)}
}

// Len returns the fixed cell count.
func (t *Tape) Len() int { return len(t.cells) }

// Pos returns the current pointer, always within [0, Len()-1].
func (t *Tape) Pos() int { return t.pos }

// Right moves the pointer one cell up, saturating at the last cell.
func (t *Tape) Right() {
	if t.pos < len(t.cells)-1 {
		t.pos++
	}
}

// Left moves the pointer one cell down, saturating at cell zero.
func (t *Tape) Left() {
	if t.pos > 0 {
		t.pos--
	}
}

// Inc adds one to the current cell, wrapping 255 around to 0.
func (t *Tape) Inc() { t.cells[t.pos]++ }

// Dec subtracts one from the current cell, wrapping 0 around to 255.
func (t *Tape) Dec() { t.cells[t.pos]-- }

// Cell returns the current cell value.
func (t *Tape) Cell() byte { return t.cells[t.pos] }

// SetCell overwrites the current cell value.
func (t *Tape) SetCell(b byte) { t.cells[t.pos] = b }

// Dump is a test-friendly view of a Tape: the pointer plus a prefix of the
// cell array running through the last nonzero cell.
type Dump struct {
	Pos   int
	Cells []byte
}

// Dump captures the pointer and the used cell prefix. The captured cells are
// a copy; mutating them does not affect the tape.
func (t *Tape) Dump() Dump {
	end := len(t.cells)
	for end > 0 && t.cells[end-1] == 0 {
		end--
	}
	d := Dump{Pos: t.pos}
	if end > 0 {
		d.Cells = append([]byte(nil), t.cells[:end]...)
	}
	return d
}
