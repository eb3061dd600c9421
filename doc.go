/* Package gobf parses Brainfuck source text into a validated program tree,
and implements the canonical semantics that any downstream evaluator or code
generator must reproduce.

Brainfuck programs are written with eight meaningful characters; every other
character is commentary and never affects program shape:

	>	move the data pointer one cell right
	<	move the data pointer one cell left
	+	increment the current cell
	-	decrement the current cell
	.	write the current cell to the output stream
	,	read one byte from the input stream into the current cell
	[	begin a loop, run while the current cell is nonzero
	]	end a loop

Parse reads source in one left-to-right pass into a []Node, validating
bracket structure as it goes. A failing parse reports the exact offending
1-based line and column, either as an UnmatchedBracketError or an
UnexpectedEOFError; no partial program is ever returned. The parsed tree is
immutable by convention and safe to hand to any number of concurrent
evaluators or generators.

VM is the authoritative operational model. Memory is a fixed-length tape of
byte cells (30000 by default), all zero at the start of a run. Cell
arithmetic wraps modulo 256. Pointer movement saturates at the tape's edges
rather than wrapping or growing the tape. A loop re-checks its guard before
every execution of its body, including the first, so a loop whose cell is
zero on entry runs zero times. Reading input past its end leaves the current
cell unchanged; that policy is fixed here and pinned by tests.

The translation of a parsed program to a target instruction set belongs to
an external collaborator behind the Generator interface, which receives the
program along with a Config describing tape geometry. The one generator
implemented here, Folder, exploits a freedom the contract grants: a program
that never reads input may be fully evaluated ahead of time and replaced by
its recorded output bytes.
*/
package gobf
