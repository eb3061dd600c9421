package gobf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_commandOf(t *testing.T) {
	commands := map[rune]Command{
		'>': MoveRight,
		'<': MoveLeft,
		'+': Increment,
		'-': Decrement,
		'.': Output,
		',': Input,
	}
	for r, want := range commands {
		cmd, ok := commandOf(r)
		assert.True(t, ok, "expected %q to be a command", r)
		assert.Equal(t, want, cmd)
		assert.Equal(t, r, cmd.Rune(), "expected round trip for %q", r)
	}

	for _, r := range "ab \n[]0#" {
		_, ok := commandOf(r)
		assert.False(t, ok, "expected %q to not be a command", r)
	}
}

func Test_Command_String(t *testing.T) {
	assert.Equal(t, "Increment (+)", Increment.String())
	assert.Equal(t, "Command(42)", Command(42).String())
	assert.Equal(t, rune(0), Command(42).Rune())
}
