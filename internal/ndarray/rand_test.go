package ndarray

import "testing"

func TestRandFloatRangeAndSeedReproducibility(t *testing.T) {
	Seed(42)
	a := Rand[float64](3, 3)
	for _, v := range a.Elements() {
		if v < 0 || v >= 1 {
			t.Errorf("element %v out of [0,1) range", v)
		}
	}

	Seed(42)
	b := Rand[float64](3, 3)
	for i, v := range a.Elements() {
		if v != b.Elements()[i] {
			t.Errorf("element %d differs across equal seeds: %v vs %v", i, v, b.Elements()[i])
		}
	}
}

func TestRandIntRange(t *testing.T) {
	Seed(1)
	a := Rand[int](10)
	for _, v := range a.Elements() {
		if v < 0 || v >= 100 {
			t.Errorf("element %v out of [0,100) range", v)
		}
	}
}
