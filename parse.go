package gobf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gobf/internal/runeio"
)

// ErrParse is matched, per errors.Is, by every structural error returned
// from Parse and ParseReader, whatever its concrete kind.
var ErrParse = errors.New("parse error")

// UnmatchedBracketError reports a closing bracket read at top level, outside
// any open loop. Its value is the bracket's position.
type UnmatchedBracketError Position

// UnexpectedEOFError reports source text running out while at least one loop
// body was still open. Its value is the position just past the last rune.
type UnexpectedEOFError Position

func (pos UnmatchedBracketError) Error() string {
	return fmt.Sprintf("Unmatched closing bracket ']' at %v", Position(pos))
}

func (pos UnexpectedEOFError) Error() string {
	return fmt.Sprintf("Unexpected end of input while parsing loop at %v", Position(pos))
}

func (pos UnmatchedBracketError) Is(target error) bool { return target == ErrParse }
func (pos UnexpectedEOFError) Is(target error) bool    { return target == ErrParse }

// Parse reads source in a single left-to-right pass into its program form.
// Non-command runes are dropped as commentary. The first structural fault
// wins: the error carries the offending position and no partial program is
// returned.
func Parse(source string) ([]Node, error) {
	return ParseReader(strings.NewReader(source))
}

// ParseReader is Parse over a stream. Apart from the two structural error
// kinds, it can also fail with whatever read error r produces.
func ParseReader(r io.Reader) ([]Node, error) {
	p := parser{src: runeio.NewReader(r), pos: startPosition()}
	return p.parse()
}

type parser struct {
	src runeio.Reader
	pos Position
}

// parse drives the single pass. Loop nesting is tracked on an explicit
// frame stack rather than through recursion, so bracket depth is bounded by
// heap memory, not by call stack growth.
func (p *parser) parse() ([]Node, error) {
	var (
		prog []Node   // the top level accumulation
		open [][]Node // one body per unclosed bracket, innermost last
	)
	emit := func(n Node) {
		if i := len(open) - 1; i >= 0 {
			open[i] = append(open[i], n)
		} else {
			prog = append(prog, n)
		}
	}

	for {
		r, _, err := p.src.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		at := p.pos
		p.pos = p.pos.advance(r)

		switch r {
		case '[':
			open = append(open, nil)
		case ']':
			i := len(open) - 1
			if i < 0 {
				return nil, UnmatchedBracketError(at)
			}
			body := open[i]
			open = open[:i]
			emit(Loop(body...))
		default:
			if cmd, ok := commandOf(r); ok {
				emit(Leaf(cmd))
			}
		}
	}

	if len(open) > 0 {
		return nil, UnexpectedEOFError(p.pos)
	}
	return prog, nil
}
