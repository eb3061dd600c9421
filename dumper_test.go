package gobf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fprint(t *testing.T) {
	prog, err := Parse("+[->.[,]]<")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, prog))
	assert.Equal(t, lines(
		`Increment (+)`,
		`Loop [`,
		`  Decrement (-)`,
		`  MoveRight (>)`,
		`  Output (.)`,
		`  Loop [`,
		`    Input (,)`,
		`  ]`,
		`]`,
		`MoveLeft (<)`,
	), buf.String())
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
