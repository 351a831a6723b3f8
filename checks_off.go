//go:build dynarray_unchecked

package dynarray

const checked = false
