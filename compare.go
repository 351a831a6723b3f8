package dynarray

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether x and y hold equal elements in the same order.
func Equal[T comparable](x, y *DynamicArray[T]) bool {
	return slices.Equal(x.Values(), y.Values())
}

// Less reports whether x orders lexicographically before y.
func Less[T constraints.Ordered](x, y *DynamicArray[T]) bool {
	return LessFunc(x, y, func(a, b T) bool { return a < b })
}

func NotEqual[T comparable](x, y *DynamicArray[T]) bool {
	return !Equal(x, y)
}

func LessOrEqual[T constraints.Ordered](x, y *DynamicArray[T]) bool {
	return !Less(y, x)
}

func Greater[T constraints.Ordered](x, y *DynamicArray[T]) bool {
	return Less(y, x)
}

func GreaterOrEqual[T constraints.Ordered](x, y *DynamicArray[T]) bool {
	return !Less(x, y)
}

// EqualFunc is Equal with an explicit element equality.
func EqualFunc[T any](x, y *DynamicArray[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(x.Values(), y.Values(), eq)
}

// LessFunc is Less with an explicit strict weak ordering on elements.
// The first pair where either side is less decides; otherwise the shorter
// array is less.
func LessFunc[T any](x, y *DynamicArray[T], less func(a, b T) bool) bool {
	xs, ys := x.Values(), y.Values()
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if less(xs[i], ys[i]) {
			return true
		}
		if less(ys[i], xs[i]) {
			return false
		}
	}
	return len(xs) < len(ys)
}

func NotEqualFunc[T any](x, y *DynamicArray[T], eq func(a, b T) bool) bool {
	return !EqualFunc(x, y, eq)
}

func LessOrEqualFunc[T any](x, y *DynamicArray[T], less func(a, b T) bool) bool {
	return !LessFunc(y, x, less)
}

func GreaterFunc[T any](x, y *DynamicArray[T], less func(a, b T) bool) bool {
	return LessFunc(y, x, less)
}

func GreaterOrEqualFunc[T any](x, y *DynamicArray[T], less func(a, b T) bool) bool {
	return !LessFunc(x, y, less)
}
