//go:build !dynarray_unchecked

package dynarray

// checked enables precondition assertions on indexing, positional
// insert/erase and PopBack. Build with -tags dynarray_unchecked to drop them.
const checked = true
