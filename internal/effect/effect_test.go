//go:build test

package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwap(t *testing.T) {
	val := "original"
	restore := Swap(&val, "swapped")
	assert.Equal(t, "swapped", val)
	restore()
	assert.Equal(t, "original", val)
}
