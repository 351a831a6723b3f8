//go:build dynarray_strict

package dynarray

// strictOwnership turns a move into a buffer that still owns a block into a
// panic instead of silently dropping the old block.
const strictOwnership = true
