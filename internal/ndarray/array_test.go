package ndarray

import "testing"

func TestNewArrayZeroInitialized(t *testing.T) {
	a := NewArray[float64](2, 3)
	if a.Length() != 6 {
		t.Errorf("Length() = %d, want 6", a.Length())
	}
	for _, v := range a.Elements() {
		if v != 0 {
			t.Errorf("element = %v, want 0", v)
		}
	}
}

func TestArrayReshapeDiscardsContents(t *testing.T) {
	a := NewArray[int](3)
	a.AssignScalar(7)
	a.Reshape(2, 2)
	if a.Length() != 4 {
		t.Errorf("Length() after reshape = %d, want 4", a.Length())
	}
	for _, v := range a.Elements() {
		if v != 0 {
			t.Errorf("reshaped element = %v, want 0 (fresh buffer)", v)
		}
	}
}

func TestArrayClone(t *testing.T) {
	a := NewArray[int](2)
	a.Set(1, 0)
	a.Set(2, 1)
	clone := a.Clone()
	clone.Set(99, 0)
	if got := *a.At(0); got != 1 {
		t.Errorf("original mutated by clone write: got %v, want 1", got)
	}
	if got := *clone.At(0); got != 99 {
		t.Errorf("clone.At(0) = %v, want 99", got)
	}
}

func TestArraySetAndAt(t *testing.T) {
	a := NewArray[float64](2, 2)
	a.Set(3.5, 1, 1)
	if got := *a.At(1, 1); got != 3.5 {
		t.Errorf("At(1,1) = %v, want 3.5", got)
	}
}

func TestArrayFlatAt(t *testing.T) {
	a := NewArray[int](2, 2)
	a.Set(5, 0, 0)
	a.Set(6, 0, 1)
	if got := a.FlatAt(1); got != 6 {
		t.Errorf("FlatAt(1) = %v, want 6", got)
	}
}

func TestArrayAssignArrayReshapesOnMismatch(t *testing.T) {
	dst := NewArray[int](3)
	src := NewArray[int](2, 2)
	src.AssignScalar(4)
	dst.AssignArray(src)
	if !dst.Shape().Equal(Shape{2, 2}) {
		t.Errorf("dst.Shape() = %v, want {2,2}", dst.Shape())
	}
	for _, v := range dst.Elements() {
		if v != 4 {
			t.Errorf("element = %v, want 4", v)
		}
	}
}

func TestArrayReverseElements(t *testing.T) {
	a := NewArray[int](3)
	a.Set(1, 0)
	a.Set(2, 1)
	a.Set(3, 2)
	rev := a.ReverseElements()
	want := []int{3, 2, 1}
	for i, v := range want {
		if rev[i] != v {
			t.Errorf("rev[%d] = %v, want %v", i, rev[i], v)
		}
	}
}
