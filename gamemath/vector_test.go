package gamemath

import "testing"

func TestVectorPlus(t *testing.T) {
	got := Vector{1, 2}.Plus(Vector{3, 4})
	if got != (Vector{4, 6}) {
		t.Errorf("Plus = %v, want {4 6}", got)
	}
}

func TestVectorTimes(t *testing.T) {
	got := Vector{2, 3}.Times(2)
	if got != (Vector{4, 6}) {
		t.Errorf("Times = %v, want {4 6}", got)
	}
}

func TestVectorIdentities(t *testing.T) {
	// Small integers and powers of two keep float arithmetic exact.
	vectors := []Vector{
		{0, 0}, {1, -1}, {0.5, 2.25}, {-3, 7}, {1024, -0.125},
	}
	factors := []float64{0, 1, -2, 0.5, 4}

	for _, a := range vectors {
		for _, b := range vectors {
			if a.Plus(b) != b.Plus(a) {
				t.Errorf("Plus not commutative for %v, %v", a, b)
			}
			for _, k := range factors {
				left := a.Plus(b).Times(k)
				right := a.Times(k).Plus(b.Times(k))
				if left != right {
					t.Errorf("Times(%v) does not distribute over %v + %v: %v != %v", k, a, b, left, right)
				}
			}
		}
	}
}

func TestVectorValueSemantics(t *testing.T) {
	v := Vector{1, 1}
	_ = v.Plus(Vector{5, 5})
	_ = v.Times(10)
	if v != (Vector{1, 1}) {
		t.Errorf("operations mutated receiver: %v", v)
	}
}

func TestCenter(t *testing.T) {
	got := Center(Vector{2, 2}, Vector{1, 3})
	want := Vector{2.5, 3.5}
	if got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}
