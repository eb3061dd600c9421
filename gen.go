package gobf

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/gobf/internal/tape"
)

// DefaultTapeLength is the canonical cell count of a fresh tape.
const DefaultTapeLength = tape.DefaultLength

// Config carries the tape geometry handed to a code generator.
type Config struct {
	TapeLength int // cell count; DefaultTapeLength when zero
	CellSize   int // bytes per cell; the canonical semantics fix this at 1
}

// DefaultConfig returns the geometry the canonical evaluator uses.
func DefaultConfig() Config {
	return Config{TapeLength: DefaultTapeLength, CellSize: 1}
}

type cellSizeError int

func (n cellSizeError) Error() string {
	return fmt.Sprintf("unsupported cell size %v bytes", int(n))
}

// A Generator turns a parsed program into some target artifact. Whatever
// strategy a generator picks, the bytes its artifact writes for a given
// input stream must match what a VM over the same program and input writes.
// The artifact's file format and any toolchain invocation are the
// generator's own business.
type Generator interface {
	Generate(ctx context.Context, prog []Node, cfg Config) (io.WriterTo, error)
}
