package gobf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		out     []Node
		wantErr error
	}{
		{
			name: "all six commands",
			in:   "+-><.,",
			out: []Node{
				Leaf(Increment), Leaf(Decrement),
				Leaf(MoveRight), Leaf(MoveLeft),
				Leaf(Output), Leaf(Input),
			},
		},

		{name: "empty source", in: ""},

		{name: "commentary only", in: "nothing to see here!\nmove along\n"},

		{
			name: "simple loop",
			in:   "[+-]",
			out:  []Node{Loop(Leaf(Increment), Leaf(Decrement))},
		},

		{
			name: "nested loops",
			in:   "+[>[-]<]",
			out: []Node{
				Leaf(Increment),
				Loop(
					Leaf(MoveRight),
					Loop(Leaf(Decrement)),
					Leaf(MoveLeft),
				),
			},
		},

		{name: "empty loop", in: "[]", out: []Node{Loop()}},

		{
			name: "commentary dropped",
			in:   "Hello + World - Test",
			out:  []Node{Leaf(Increment), Leaf(Decrement)},
		},

		{
			name: "commentary inside a loop",
			in:   "[ add one + and stop ]",
			out:  []Node{Loop(Leaf(Increment))},
		},

		{name: "unclosed loop", in: "[+", wantErr: UnexpectedEOFError{Line: 1, Column: 3}},
		{name: "stray closing bracket", in: "+]", wantErr: UnmatchedBracketError{Line: 1, Column: 2}},
		{name: "stray close on a later line", in: "++\n+]", wantErr: UnmatchedBracketError{Line: 2, Column: 2}},
		{name: "unclosed loop across lines", in: "[+\n+", wantErr: UnexpectedEOFError{Line: 2, Column: 2}},
		{name: "close after nested close", in: "[[]]]", wantErr: UnmatchedBracketError{Line: 1, Column: 5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := Parse(tc.in)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err)
				assert.ErrorIs(t, err, ErrParse)
				assert.Nil(t, prog, "expected no partial program")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.out, prog)
		})
	}
}

func Test_Parse_errorMessages(t *testing.T) {
	_, err := Parse("+]")
	require.Error(t, err)
	assert.Equal(t, "Unmatched closing bracket ']' at line 1, column 2", err.Error())

	_, err = Parse("[+")
	require.Error(t, err)
	assert.Equal(t, "Unexpected end of input while parsing loop at line 1, column 3", err.Error())
}

func Test_Parse_deterministic(t *testing.T) {
	const src = "+[>foo[-]bar<]+]trailing"
	a, aerr := Parse(src)
	b, berr := Parse(src)
	assert.Equal(t, a, b)
	assert.Equal(t, aerr, berr)
}

// Inserting commentary anywhere in a well formed program never changes its
// shape.
func Test_Parse_commentaryIdempotent(t *testing.T) {
	const src = "++[>+<-]>."
	want, err := Parse(src)
	require.NoError(t, err)

	for i := 0; i <= len(src); i++ {
		noisy := src[:i] + "a Z9 \n\t" + src[i:]
		got, err := Parse(noisy)
		require.NoError(t, err, "must parse %q", noisy)
		assert.Equal(t, want, got, "expected same program from %q", noisy)
	}
}

// The recursive loop count equals the number of matched bracket pairs.
func Test_Count(t *testing.T) {
	for _, tc := range []struct {
		in       string
		commands int
		loops    int
	}{
		{"", 0, 0},
		{"+-><.,", 6, 0},
		{"[+-]", 2, 1},
		{"[[[]]]", 0, 3},
		{"+[>[-]<]+[,]", 6, 3},
		{"+[>[-]<]+[,][]", 6, 4},
	} {
		t.Run(tc.in, func(t *testing.T) {
			prog, err := Parse(tc.in)
			require.NoError(t, err)
			commands, loops := Count(prog)
			assert.Equal(t, tc.commands, commands, "expected command count")
			assert.Equal(t, tc.loops, loops, "expected loop count")
		})
	}
}

// Bracket depth is bounded by memory, not by the goroutine stack.
func Test_Parse_deepNesting(t *testing.T) {
	const depth = 50000
	src := strings.Repeat("[", depth) + "+" + strings.Repeat("]", depth)
	prog, err := Parse(src)
	require.NoError(t, err)
	commands, loops := Count(prog)
	assert.Equal(t, 1, commands)
	assert.Equal(t, depth, loops)
}

func Test_ParseReader(t *testing.T) {
	prog, err := ParseReader(strings.NewReader("+[-]"))
	require.NoError(t, err)
	assert.Equal(t, []Node{Leaf(Increment), Loop(Leaf(Decrement))}, prog)
}
