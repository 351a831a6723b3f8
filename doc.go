// Package dynarray implements a resizable array over an explicitly owned
// backing buffer.
//
// # Overview
//
// The package has two layers:
//
//   - RawBuffer owns zero or one contiguous block of slots. It knows how many
//     slots exist but not how many are in use, and it can only be moved.
//   - DynamicArray tracks a size (live elements) and a capacity (allocated
//     slots) on top of one RawBuffer and implements growth, shifting and
//     element placement.
//
// # Basic Usage
//
//	a := dynarray.New[int]()
//	a.PushBack(1)
//	a.PushBack(3)
//	a.Insert(1, 2) // [1 2 3]
//	a.Erase(0)     // [2 3]
//
//	v, err := a.At(5)
//	if errors.Is(err, dynarray.ErrOutOfRange) {
//		// handle
//	}
//
//	// Room for 64 elements, size 0
//	b := dynarray.NewReserved[string](dynarray.Reserve(64))
//
// # Growth
//
// PushBack and Insert on a full array double the capacity, or allocate a
// single slot when the capacity is zero. Resize past the capacity grows to
// max(n, 2*capacity). Reserve(n) grows to exactly n.
//
// # Ownership
//
// A buffer has exactly one owner. Move and MoveFrom transfer it in O(1) and
// leave the source empty, with zero capacity and no buffer. Clone and
// CopyFrom copy the live elements into a buffer sized to fit them exactly.
// Both RawBuffer and DynamicArray must not be copied by value; go vet's
// copylocks check reports such copies.
//
// # Preconditions
//
// Index, Set, Ref, Insert, Erase and PopBack panic on a broken precondition.
// Building with -tags dynarray_unchecked removes these checks; a broken
// precondition then has unspecified results. At and AtRef always check and
// return an *OutOfRangeError instead of panicking.
//
// Building with -tags dynarray_strict makes RawBuffer.MoveFrom panic when
// the destination still owns a block instead of freeing it.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Callers that share an
// array between goroutines must serialize access themselves.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// The metrics subpackage exports the same snapshot as Prometheus series.
package dynarray
