package gobf

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/runeio"
	"github.com/jcorbin/gobf/internal/tape"
)

// VM executes a parsed program under the canonical semantics: a fixed-length
// byte tape with a saturating pointer and wrapping cells, loops guarded by
// the current cell being nonzero with the guard re-checked before every body
// execution, Output appending the current cell to an output stream, and
// Input taking the next byte from an input stream.
//
// Reading input past its end leaves the current cell unchanged. That is the
// one point where the semantics admit a choice of policy; this
// implementation fixes it, and tests pin it.
//
// Evaluation itself has no failure mode: edge-of-tape movement and cell
// wraparound are defined outcomes, not errors. A run ends early only on a
// stream error or context cancellation.
type VM struct {
	logging

	tape       *tape.Tape
	tapeLength int

	prog []Node

	in  runeio.ByteReader
	out flushio.WriteFlusher
}

// frame is one level of the execution stack: a node sequence, a cursor into
// it, and whether exhausting the sequence re-arms on the loop guard.
type frame struct {
	body []Node
	next int
	loop bool
}

func (vm *VM) run(ctx context.Context) {
	vm.tape = tape.New(vm.tapeLength)

	stack := []frame{{body: vm.prog}}
	for len(stack) > 0 {
		vm.haltif(ctx.Err())

		top := &stack[len(stack)-1]
		if top.next >= len(top.body) {
			if top.loop && vm.tape.Cell() != 0 {
				top.next = 0
				continue
			}
			stack = stack[:len(stack)-1]
			continue
		}

		node := top.body[top.next]
		top.next++
		if node.IsLoop() {
			if vm.tape.Cell() != 0 {
				stack = append(stack, frame{body: node.Body, loop: true})
			}
			continue
		}
		vm.step(node.Cmd)
	}

	vm.haltif(vm.out.Flush())
}

func (vm *VM) step(cmd Command) {
	if vm.logfn != nil {
		vm.logf("exec %v @%v", cmd, vm.tape.Pos())
	}
	switch cmd {
	case MoveRight:
		vm.tape.Right()
	case MoveLeft:
		vm.tape.Left()
	case Increment:
		vm.tape.Inc()
	case Decrement:
		vm.tape.Dec()
	case Output:
		vm.writeByte(vm.tape.Cell())
	case Input:
		if b, ok := vm.readByte(); ok {
			vm.tape.SetCell(b)
		}
	default:
		vm.halt(badCommandError(cmd))
	}
}

func (vm *VM) writeByte(b byte) {
	if _, err := vm.out.Write([]byte{b}); err != nil {
		vm.halt(err)
	}
}

// readByte flushes pending output, then takes the next input byte; ok is
// false once input is exhausted.
func (vm *VM) readByte() (byte, bool) {
	vm.haltif(vm.out.Flush())
	b, err := vm.in.ReadByte()
	if err == io.EOF {
		return 0, false
	}
	vm.haltif(err)
	return b, true
}

func (vm *VM) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if vm.out != nil {
			vm.out.Flush()
		}
	}()
	vm.logf("halt error: %v", err)
	panic(err)
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

type badCommandError Command

func (cmd badCommandError) Error() string {
	return fmt.Sprintf("invalid command %v", int(cmd))
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
