package dynarray

import (
	"math"
	"testing"
)

func TestArrayMetrics(t *testing.T) {
	a := New[int]()

	// Test initial state
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}
	if a.Reallocations() != 0 {
		t.Errorf("Initial Reallocations = %d, want 0", a.Reallocations())
	}

	for i := 0; i < 3; i++ {
		a.PushBack(i)
	}

	utilization := a.Utilization()
	if utilization != 0.75 {
		t.Errorf("Utilization = %f, want 0.75", utilization)
	}

	// Test metrics snapshot
	metrics := a.Metrics()
	want := Metrics{Size: 3, Capacity: 4, Utilization: 0.75, Reallocations: 3}
	if metrics != want {
		t.Errorf("Metrics() = %+v, want %+v", metrics, want)
	}
}

func TestReallocationsFollowDoubling(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8, 9, 100, 1000} {
		a := New[int]()
		for i := 0; i < n; i++ {
			a.PushBack(i)
		}
		want := int(math.Ceil(math.Log2(float64(n)))) + 1
		if a.Reallocations() != want {
			t.Errorf("%d pushes: Reallocations = %d, want %d", n, a.Reallocations(), want)
		}
	}
}

func TestArrayMetricsAfterClear(t *testing.T) {
	a := Of(1, 2, 3, 4)
	if a.Utilization() != 1 {
		t.Errorf("Full Utilization = %f, want 1", a.Utilization())
	}

	a.Clear()
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Clear = %f, want 0", a.Utilization())
	}
	// Capacity should remain
	if a.Metrics().Capacity != 4 {
		t.Errorf("Capacity after Clear = %d, want 4", a.Metrics().Capacity)
	}
}

func TestMetricsAfterMove(t *testing.T) {
	a := Of(1, 2)
	a.PushBack(3)
	b := a.Move()

	if got := a.Metrics(); got.Size != 0 || got.Capacity != 0 || got.Utilization != 0 {
		t.Errorf("moved-from Metrics() = %+v", got)
	}
	if b.Metrics().Capacity != 4 {
		t.Errorf("moved-to Capacity = %d, want 4", b.Metrics().Capacity)
	}
}

func TestReallocationsCountEveryGrowthPath(t *testing.T) {
	a := New[int]()
	a.Reserve(2)   // 1
	a.Resize(5)    // 2
	a.Insert(0, 1) // 3
	a.Reserve(100) // 4
	a.Reserve(50)  // no-op
	a.PushBack(1)  // room
	a.Resize(3)    // shrink
	if a.Reallocations() != 4 {
		t.Errorf("Reallocations = %d, want 4", a.Reallocations())
	}
}
