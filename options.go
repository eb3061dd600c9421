package gobf

import (
	"bytes"
	"io"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/runeio"
)

// VMOption configures a VM at construction time.
type VMOption interface{ apply(vm *VM) }

var defaults = []VMOption{
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
}

func (vm *VM) apply(opts ...VMOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(vm)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type tapeLengthOption int
type programOption []Node

func withInput(r io.Reader) inputOption       { return inputOption{r} }
func withOutput(w io.Writer) outputOption     { return outputOption{w} }
func withTee(w io.Writer) teeOption           { return teeOption{w} }
func withTapeLength(n int) tapeLengthOption   { return tapeLengthOption(n) }
func withProgram(prog []Node) programOption   { return programOption(prog) }

func (i inputOption) apply(vm *VM) {
	vm.in = runeio.NewByteReader(i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (n tapeLengthOption) apply(vm *VM) {
	vm.tapeLength = int(n)
}

func (p programOption) apply(vm *VM) {
	vm.prog = p
}
