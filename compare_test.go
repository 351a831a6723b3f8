package dynarray

import (
	"strings"
	"testing"
)

func TestOrdering(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
		eq   bool
		less bool
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true, false},
		{"last element smaller", []int{1, 2, 3}, []int{1, 2, 4}, false, true},
		{"last element larger", []int{1, 2, 4}, []int{1, 2, 3}, false, false},
		{"prefix", []int{1, 2}, []int{1, 2, 3}, false, true},
		{"longer but smaller", []int{0, 9, 9}, []int{1}, false, true},
		{"both empty", nil, nil, true, false},
		{"empty vs non-empty", nil, []int{0}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Of(tt.x...), Of(tt.y...)
			greater := !tt.eq && !tt.less

			checks := []struct {
				op   string
				got  bool
				want bool
			}{
				{"Equal", Equal(x, y), tt.eq},
				{"NotEqual", NotEqual(x, y), !tt.eq},
				{"Less", Less(x, y), tt.less},
				{"LessOrEqual", LessOrEqual(x, y), tt.less || tt.eq},
				{"Greater", Greater(x, y), greater},
				{"GreaterOrEqual", GreaterOrEqual(x, y), greater || tt.eq},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s(%v, %v) = %v, want %v", c.op, tt.x, tt.y, c.got, c.want)
				}
			}
		})
	}
}

func TestEqualIgnoresSpareSlots(t *testing.T) {
	x := Of(1, 2, 3)
	x.PopBack()
	y := NewReserved[int](Reserve(10))
	y.PushBack(1)
	y.PushBack(2)
	if !Equal(x, y) {
		t.Errorf("Equal(%v, %v) = false", x.Values(), y.Values())
	}
}

func TestFuncOrdering(t *testing.T) {
	type word struct{ s string }
	eq := func(a, b word) bool { return strings.EqualFold(a.s, b.s) }
	less := func(a, b word) bool { return strings.ToLower(a.s) < strings.ToLower(b.s) }

	x := Of(word{"Go"}, word{"Array"})
	y := Of(word{"go"}, word{"array"})
	z := Of(word{"go"}, word{"buffer"})

	if !EqualFunc(x, y, eq) || NotEqualFunc(x, y, eq) {
		t.Error("case-insensitive arrays should be equal")
	}
	if !LessFunc(x, z, less) || !LessOrEqualFunc(x, z, less) {
		t.Error("x should order before z")
	}
	if !GreaterFunc(z, x, less) || !GreaterOrEqualFunc(z, x, less) {
		t.Error("z should order after x")
	}
	if LessFunc(x, y, less) || !LessOrEqualFunc(x, y, less) || !GreaterOrEqualFunc(x, y, less) {
		t.Error("equivalent arrays should be neither less nor greater")
	}
}
