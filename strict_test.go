//go:build dynarray_strict

package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictMoveFromOccupiedPanics(t *testing.T) {
	dst := NewRawBuffer[int](1)
	src := NewRawBuffer[int](2)
	assert.Panics(t, func() { dst.MoveFrom(&src) })
}

func TestStrictMoveFromAbsentAllowed(t *testing.T) {
	var dst RawBuffer[int]
	src := NewRawBuffer[int](2)
	assert.NotPanics(t, func() { dst.MoveFrom(&src) })
	assert.Equal(t, 2, dst.Len())
}
