package dynarray

// noCopy marks a struct that must not be copied after first use.
// go vet's copylocks check reports copies of any struct embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawBuffer owns zero or one contiguous block of T slots.
// It does not track how many slots hold live values; that is the owner's job.
//
// A RawBuffer is move-only: transfer it with Move or MoveFrom, never by
// assignment. The zero value is the absent state.
type RawBuffer[T any] struct {
	_     noCopy
	block []T // nil iff absent
}

// NewRawBuffer allocates a block of n zero-valued slots.
// If n == 0 the result is absent.
func NewRawBuffer[T any](n int) RawBuffer[T] {
	if checked && n < 0 {
		violated("NewRawBuffer: negative slot count %d", n)
	}
	if n <= 0 {
		return RawBuffer[T]{}
	}
	return RawBuffer[T]{block: make([]T, n)}
}

// AdoptRawBuffer takes ownership of an already allocated block.
// The caller must not use block through any other owner afterwards.
// An empty block yields the absent state.
func AdoptRawBuffer[T any](block []T) RawBuffer[T] {
	if len(block) == 0 {
		return RawBuffer[T]{}
	}
	return RawBuffer[T]{block: block[:len(block):len(block)]}
}

// Move transfers the owned block to the returned buffer and leaves b absent.
func (b *RawBuffer[T]) Move() RawBuffer[T] {
	block := b.block
	b.block = nil
	return RawBuffer[T]{block: block}
}

// MoveFrom takes src's block and leaves src absent. A block already owned by
// b is freed first; built with the dynarray_strict tag this panics instead.
func (b *RawBuffer[T]) MoveFrom(src *RawBuffer[T]) {
	if b == src {
		return
	}
	if b.block != nil {
		if strictOwnership {
			violated("RawBuffer.MoveFrom: destination still owns %d slots", len(b.block))
		}
		b.Free()
	}
	b.block, src.block = src.block, nil
}

// Release gives up ownership without freeing and returns the block.
// The caller becomes responsible for it and b is left absent.
func (b *RawBuffer[T]) Release() []T {
	block := b.block
	b.block = nil
	return block
}

// At returns slot i. The index is not checked against any live bound.
func (b *RawBuffer[T]) At(i int) T {
	return b.block[i]
}

// Set stores v in slot i.
func (b *RawBuffer[T]) Set(i int, v T) {
	b.block[i] = v
}

// Ref returns a pointer to slot i.
func (b *RawBuffer[T]) Ref(i int) *T {
	return &b.block[i]
}

// NonEmpty reports whether b owns a block.
func (b *RawBuffer[T]) NonEmpty() bool {
	return b.block != nil
}

// Get borrows the owned block without transferring ownership.
func (b *RawBuffer[T]) Get() []T {
	return b.block
}

// Len returns the number of slots in the owned block.
func (b *RawBuffer[T]) Len() int {
	return len(b.block)
}

// Swap exchanges blocks with other in constant time.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.block, other.block = other.block, b.block
}

// Free drops the owned block. Slots are zeroed first so values are not kept
// reachable through stale aliases of the block.
func (b *RawBuffer[T]) Free() {
	clear(b.block)
	b.block = nil
}
