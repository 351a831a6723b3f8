package dynarray

import "iter"

// DynamicArray is a growable sequence with O(1) amortized append and O(1)
// indexed access. Not goroutine-safe.
//
// Slots [0, Size()) hold live values. Slots [Size(), Capacity()) are allocated
// but hold zero values or stale values left behind by Clear, PopBack, Resize
// or Erase.
type DynamicArray[T any] struct {
	size          int
	capacity      int
	buf           RawBuffer[T]
	reallocations int
}

// New returns an empty array with no backing buffer.
func New[T any]() *DynamicArray[T] {
	return &DynamicArray[T]{}
}

// NewWithSize returns an array holding n zero values.
func NewWithSize[T any](n int) *DynamicArray[T] {
	a := &DynamicArray[T]{buf: NewRawBuffer[T](n)}
	a.size = a.buf.Len()
	a.capacity = a.size
	return a
}

// NewFilled returns an array holding n copies of value.
func NewFilled[T any](n int, value T) *DynamicArray[T] {
	a := NewWithSize[T](n)
	block := a.buf.Get()
	for i := range block {
		block[i] = value
	}
	return a
}

// NewFilledFunc returns an array of n elements, each built by its own call to fn.
// Use it when elements must not share state, e.g. slices or maps.
func NewFilledFunc[T any](n int, fn func() T) *DynamicArray[T] {
	a := NewWithSize[T](n)
	block := a.buf.Get()
	for i := range block {
		block[i] = fn()
	}
	return a
}

// Of returns an array holding values in order. Size and capacity both equal
// len(values); values itself is not retained.
func Of[T any](values ...T) *DynamicArray[T] {
	a := NewWithSize[T](len(values))
	copy(a.buf.Get(), values)
	return a
}

// NewReserved returns an empty array with r.Capacity allocated slots.
func NewReserved[T any](r ReserveRequest) *DynamicArray[T] {
	return &DynamicArray[T]{buf: NewRawBuffer[T](r.Capacity), capacity: max(r.Capacity, 0)}
}

// Clone returns a copy of the live elements. The copy's capacity equals its
// size, not a's capacity. Elements are copied by assignment.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	return Of(a.Values()...)
}

// CopyFrom replaces a's contents with a copy of src's live elements.
func (a *DynamicArray[T]) CopyFrom(src *DynamicArray[T]) {
	if a == src {
		return
	}
	tmp := src.Clone()
	a.Swap(tmp)
}

// Move transfers a's buffer, size and capacity to a new array in O(1).
// a is left empty with no buffer and remains usable.
func (a *DynamicArray[T]) Move() *DynamicArray[T] {
	m := &DynamicArray[T]{size: a.size, capacity: a.capacity, buf: a.buf.Move()}
	a.size, a.capacity = 0, 0
	return m
}

// MoveFrom drops a's contents and takes src's buffer, size and capacity.
// src is left empty with no buffer.
func (a *DynamicArray[T]) MoveFrom(src *DynamicArray[T]) {
	if a == src {
		return
	}
	a.buf.Free()
	a.buf.MoveFrom(&src.buf)
	a.size, a.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
}

// Size returns the number of live elements.
func (a *DynamicArray[T]) Size() int {
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *DynamicArray[T]) Capacity() int {
	return a.capacity
}

// IsEmpty reports whether Size() == 0.
func (a *DynamicArray[T]) IsEmpty() bool {
	return a.size == 0
}

// Index returns element i. i must be in [0, Size()); this is asserted only
// in checked builds.
func (a *DynamicArray[T]) Index(i int) T {
	if checked && (i < 0 || i >= a.size) {
		violated("Index: index %d out of range [0,%d)", i, a.size)
	}
	return a.buf.At(i)
}

// Set stores v at index i. Same precondition as Index.
func (a *DynamicArray[T]) Set(i int, v T) {
	if checked && (i < 0 || i >= a.size) {
		violated("Set: index %d out of range [0,%d)", i, a.size)
	}
	a.buf.Set(i, v)
}

// Ref returns a pointer to element i. Same precondition as Index.
// The pointer is invalidated by any operation that reallocates.
func (a *DynamicArray[T]) Ref(i int) *T {
	if checked && (i < 0 || i >= a.size) {
		violated("Ref: index %d out of range [0,%d)", i, a.size)
	}
	return a.buf.Ref(i)
}

// At returns element i, or an *OutOfRangeError if i is outside [0, Size()).
func (a *DynamicArray[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, outOfRange(i, a.size)
	}
	return a.buf.At(i), nil
}

// AtRef is the bounds-checked form of Ref.
func (a *DynamicArray[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, outOfRange(i, a.size)
	}
	return a.buf.Ref(i), nil
}

// Clear sets the size to zero. Capacity and storage are kept.
func (a *DynamicArray[T]) Clear() {
	a.size = 0
}

// Resize sets the size to n. Shrinking only moves the size down. Growing
// within capacity zeroes the newly exposed slots; growing past capacity
// reallocates to max(n, 2*Capacity()).
func (a *DynamicArray[T]) Resize(n int) {
	if checked && n < 0 {
		violated("Resize: negative size %d", n)
	}
	if n > a.size {
		if n <= a.capacity {
			clear(a.buf.Get()[a.size:n])
		} else {
			a.relocate(max(n, 2*a.capacity))
		}
	}
	a.size = n
}

// PushBack appends v, doubling the capacity (or allocating one slot) when full.
func (a *DynamicArray[T]) PushBack(v T) {
	if a.size == a.capacity {
		a.relocate(a.grownCapacity())
	}
	a.buf.Set(a.size, v)
	a.size++
}

// Insert places v at position pos in [Begin(), End()] and returns the
// position of the inserted element. pos == End() appends.
func (a *DynamicArray[T]) Insert(pos int, v T) int {
	if checked && (pos < 0 || pos > a.size) {
		violated("Insert: position %d out of range [0,%d]", pos, a.size)
	}
	if a.size < a.capacity {
		block := a.buf.Get()
		// copy has memmove semantics, so the overlapping shift is safe.
		copy(block[pos+1:a.size+1], block[pos:a.size])
		block[pos] = v
	} else {
		next := NewRawBuffer[T](a.grownCapacity())
		block, live := next.Get(), a.buf.Get()[:a.size]
		copy(block, live[:pos])
		block[pos] = v
		copy(block[pos+1:], live[pos:])
		a.buf.Swap(&next)
		next.Free()
		a.capacity = len(block)
		a.reallocations++
	}
	a.size++
	return pos
}

// PopBack drops the last element. The array must not be empty.
// The vacated slot keeps its value.
func (a *DynamicArray[T]) PopBack() {
	if checked && a.size == 0 {
		violated("PopBack: empty array")
	}
	a.size--
}

// Erase removes the element at pos in [Begin(), End()) by shifting the tail
// one slot left. It returns pos, which now holds the next element or equals
// End() if the last element was removed.
func (a *DynamicArray[T]) Erase(pos int) int {
	if checked && (pos < 0 || pos >= a.size) {
		violated("Erase: position %d out of range [0,%d)", pos, a.size)
	}
	block := a.buf.Get()
	copy(block[pos:a.size-1], block[pos+1:a.size])
	a.size--
	return pos
}

// Reserve grows the capacity to exactly n if n exceeds it. Size is unchanged.
func (a *DynamicArray[T]) Reserve(n int) {
	if n > a.capacity {
		a.relocate(n)
	}
}

// Swap exchanges contents with other in O(1).
func (a *DynamicArray[T]) Swap(other *DynamicArray[T]) {
	if a == other {
		return
	}
	a.buf.Swap(&other.buf)
	a.size, other.size = other.size, a.size
	a.capacity, other.capacity = other.capacity, a.capacity
}

// Begin returns the position of the first element.
func (a *DynamicArray[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (a *DynamicArray[T]) End() int {
	return a.size
}

// Values returns the live elements as a slice sharing a's storage.
// Writes through it are visible in a; appends never touch a's spare slots.
// The slice is invalidated by any operation that reallocates.
func (a *DynamicArray[T]) Values() []T {
	if a.size == 0 {
		return nil
	}
	return a.buf.Get()[:a.size:a.size]
}

// All returns an iterator over index/value pairs of the live elements.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf.At(i)) {
				return
			}
		}
	}
}

// grownCapacity is the doubling rule used by PushBack and Insert.
func (a *DynamicArray[T]) grownCapacity() int {
	if a.capacity > 0 {
		return 2 * a.capacity
	}
	return 1
}

// relocate moves the live prefix into a fresh buffer of the given capacity.
func (a *DynamicArray[T]) relocate(capacity int) {
	next := NewRawBuffer[T](capacity)
	copy(next.Get(), a.buf.Get()[:a.size])
	a.buf.Swap(&next)
	next.Free()
	a.capacity = capacity
	a.reallocations++
}
