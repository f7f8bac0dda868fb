package ndarray

import "testing"

func TestBroadcastOuterProduct(t *testing.T) {
	row := makeView(1, 3)
	col := NewView([]float64{0, 10}, Shape{2, 1}, CanonicalStrides(Shape{2, 1}))
	out := NewArray[float64](2, 3)
	outView := out.View()
	Broadcast(func(elems ...*float64) {
		*elems[0] = *elems[1] + *elems[2]
	}, &outView, &row, &col)
	want := [][]float64{{0, 1, 2}, {10, 11, 12}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if got := *out.At(i, j); got != want[i][j] {
				t.Errorf("out.At(%d,%d) = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestBroadcastWithoutFullShapeFirstView(t *testing.T) {
	row := makeView(1, 3)
	col := NewView([]float64{0, 10, 20}, Shape{3, 1}, CanonicalStrides(Shape{3, 1}))
	count := 0
	Broadcast(func(elems ...*float64) {
		count++
		*elems[0] = *elems[0] + *elems[1]
	}, &row, &col)
	if count != 9 {
		t.Errorf("visited %d cells, want 9 for a (1,3)+(3,1) outer product", count)
	}
}

func TestBroadcastRankMismatch(t *testing.T) {
	ab := NewArray[float64](3, 3, 3, 3)
	a := NewArray[float64](3, 3, 1, 1)
	a.AssignScalar(1)
	b := NewArray[float64](3, 3)
	b.AssignScalar(2)
	abView, aView, bView := ab.View(), a.View(), b.View()
	Broadcast(func(elems ...*float64) {
		*elems[0] = *elems[1] + *elems[2]
	}, &abView, &aView, &bView)
	for _, v := range ab.Elements() {
		if v != 3 {
			t.Errorf("element = %v, want 3", v)
		}
	}
}

func TestBroadcastOverShapeVisitsEveryIndex(t *testing.T) {
	count := 0
	BroadcastOverShape(func(idx Shape) { count++ }, Shape{2, 3})
	if count != 6 {
		t.Errorf("visited %d indices, want 6", count)
	}
}

func TestBroadcastOverShapeZeroExtentSkips(t *testing.T) {
	count := 0
	BroadcastOverShape(func(idx Shape) { count++ }, Shape{2, 0})
	if count != 0 {
		t.Errorf("visited %d indices, want 0 for a zero-extent axis", count)
	}
}

func TestBroadcastIndexPassesIndex(t *testing.T) {
	v := makeView(2, 2)
	var seen []Shape
	BroadcastIndex(func(elems []*float64, idx Shape) {
		seen = append(seen, idx)
	}, &v)
	if len(seen) != 4 {
		t.Fatalf("got %d calls, want 4", len(seen))
	}
}
