package gobf

import (
	"bytes"
	"context"
	"errors"
	"io"
)

// ErrNotFoldable reports a program whose behavior depends on its input.
var ErrNotFoldable = errors.New("program reads input, not foldable")

// Folder is a Generator that fully evaluates an input-independent program
// ahead of time, producing an artifact that just replays the recorded
// output bytes.
type Folder struct{}

// Generate implements Generator by way of Fold.
func (Folder) Generate(ctx context.Context, prog []Node, cfg Config) (io.WriterTo, error) {
	out, err := Fold(ctx, prog, cfg)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out), nil
}

// Fold evaluates prog against an empty input stream and returns its entire
// output. A program containing Input anywhere fails with ErrNotFoldable,
// even when that command could never run: input dependence is judged
// structurally, not by evaluation.
func Fold(ctx context.Context, prog []Node, cfg Config) ([]byte, error) {
	if cfg.CellSize > 1 {
		return nil, cellSizeError(cfg.CellSize)
	}
	if usesInput(prog) {
		return nil, ErrNotFoldable
	}

	var out bytes.Buffer
	vm := New(
		WithProgram(prog),
		WithTapeLength(cfg.TapeLength),
		WithOutput(&out),
	)
	if err := vm.Run(ctx); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func usesInput(prog []Node) bool {
	pending := [][]Node{prog}
	for len(pending) > 0 {
		nodes := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, n := range nodes {
			if n.IsLoop() {
				pending = append(pending, n.Body)
			} else if n.Cmd == Input {
				return true
			}
		}
	}
	return false
}
