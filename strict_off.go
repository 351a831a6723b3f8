//go:build !dynarray_strict

package dynarray

const strictOwnership = false
