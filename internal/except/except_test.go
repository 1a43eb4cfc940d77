package except

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	t.Run("no-op", func(t *testing.T) {
		Must(true, "ok")
	})

	t.Run("panic", func(t *testing.T) {
		require.Panics(t, func() {
			Must(false, "panic")
		})
	})
}

func TestRequire(t *testing.T) {
	require.NotPanics(t, func() { Require(nil) })
	require.PanicsWithValue(t, "unexpected error: boom", func() { Require(errors.New("boom")) })
}

func TestLogErrAttr(t *testing.T) {
	assert.Equal(t, "boom", LogErrAttr(errors.New("boom")).Value.String())
	assert.Equal(t, logErrKey, LogErrAttr(nil).Key)
}

func TestPanic(t *testing.T) {
	t.Run("custom hook", func(t *testing.T) {
		var got Location
		var msg string
		SetHook(func(loc Location, m string) { got, msg = loc, m })
		defer SetHook(nil)

		require.PanicsWithValue(t, "failed: 42", func() { Panic("failed: %d", 42) })
		assert.Equal(t, "failed: 42", msg)
		assert.Contains(t, got.File, "except_test.go")
		assert.Positive(t, got.Line)
		assert.Contains(t, got.Func, "TestPanic")
	})

	t.Run("default hook exits", func(t *testing.T) {
		var code int
		old := exit
		exit = func(c int) { code = c }
		defer func() { exit = old }()

		require.Panics(t, func() { Panic("fatal") })
		assert.Equal(t, 2, code)
	})
}
