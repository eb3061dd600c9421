package gobf

import (
	"context"
	"io"

	"github.com/jcorbin/gobf/internal/panicerr"
)

// New creates a virtual machine ready to Run. Without options it evaluates
// an empty program over an empty input stream, discarding output.
func New(opts ...VMOption) *VM {
	var vm VM
	vm.apply(opts...)
	return &vm
}

// Run evaluates the VM's program to completion over a fresh zeroed tape.
// The returned error is nil on normal termination; otherwise it reflects a
// stream error or ctx cancellation.
func (vm *VM) Run(ctx context.Context) error {
	return panicerr.Recover("VM", func() error {
		vm.run(ctx)
		return nil
	})
}

// RunString parses source and evaluates it against the given byte streams.
func RunString(ctx context.Context, source string, in io.Reader, out io.Writer) error {
	prog, err := Parse(source)
	if err != nil {
		return err
	}
	return New(WithProgram(prog), WithInput(in), WithOutput(out)).Run(ctx)
}

func WithInput(r io.Reader) VMOption     { return withInput(r) }
func WithOutput(w io.Writer) VMOption    { return withOutput(w) }
func WithTee(w io.Writer) VMOption       { return withTee(w) }
func WithTapeLength(n int) VMOption      { return withTapeLength(n) }
func WithProgram(prog []Node) VMOption   { return withProgram(prog) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
