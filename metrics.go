package dynarray

// Utilization returns the ratio of live elements to allocated slots (0.0 to 1.0).
// Returns 0.0 if the array has no capacity.
func (a *DynamicArray[T]) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.size) / float64(a.capacity)
}

// Reallocations returns how many times growth replaced the backing buffer.
func (a *DynamicArray[T]) Reallocations() int {
	return a.reallocations
}

// Metrics returns a snapshot of array statistics.
func (a *DynamicArray[T]) Metrics() Metrics {
	return Metrics{
		Size:          a.size,
		Capacity:      a.capacity,
		Utilization:   a.Utilization(),
		Reallocations: a.reallocations,
	}
}

// Metrics contains statistical information about an array.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
	Reallocations int     // Buffer replacements caused by growth
}
