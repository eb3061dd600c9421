package panicerr_test

import (
	"errors"
	"testing"

	"github.com/jcorbin/gobf/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recover(t *testing.T) {
	t.Run("plain return passes through", func(t *testing.T) {
		want := errors.New("just an error")
		err := panicerr.Recover("unit", func() error { return want })
		assert.Equal(t, want, err)
		assert.Empty(t, panicerr.PanicStack(err), "expected no stack from a plain error")
	})

	t.Run("panic becomes an error with a stack", func(t *testing.T) {
		cause := errors.New("boom")
		err := panicerr.Recover("unit", func() error { panic(cause) })
		require.Error(t, err)
		assert.ErrorIs(t, err, cause, "expected the panic value to unwrap")
		assert.Contains(t, err.Error(), "unit paniced: boom")
		assert.NotEmpty(t, panicerr.PanicStack(err), "expected a captured stack")
	})
}
