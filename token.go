package gobf

import "fmt"

// Command is one of the six leaf operations of the language. The loop
// brackets are not commands: they shape the program tree instead.
type Command int

const (
	MoveRight Command = iota + 1 // >
	MoveLeft                     // <
	Increment                    // +
	Decrement                    // -
	Output                       // .
	Input                        // ,
)

// commandOf maps a source rune to its command; ok is false for the loop
// brackets and for every commentary rune.
func commandOf(r rune) (cmd Command, ok bool) {
	switch r {
	case '>':
		return MoveRight, true
	case '<':
		return MoveLeft, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	}
	return 0, false
}

// Rune returns the source character denoting cmd, or 0 for an invalid value.
func (cmd Command) Rune() rune {
	switch cmd {
	case MoveRight:
		return '>'
	case MoveLeft:
		return '<'
	case Increment:
		return '+'
	case Decrement:
		return '-'
	case Output:
		return '.'
	case Input:
		return ','
	}
	return 0
}

func (cmd Command) String() string {
	switch cmd {
	case MoveRight:
		return "MoveRight (>)"
	case MoveLeft:
		return "MoveLeft (<)"
	case Increment:
		return "Increment (+)"
	case Decrement:
		return "Decrement (-)"
	case Output:
		return "Output (.)"
	case Input:
		return "Input (,)"
	}
	return fmt.Sprintf("Command(%d)", int(cmd))
}
