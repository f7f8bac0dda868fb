package ndarray

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 0, 3}, 0},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("expected equal shapes to compare equal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("expected different shapes to compare unequal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("expected different-rank shapes to compare unequal")
	}
}

func TestCanonicalStrides(t *testing.T) {
	tests := []struct {
		extents Shape
		want    Shape
	}{
		{Shape{}, Shape{}},
		{Shape{4}, Shape{1}},
		{Shape{2, 3}, Shape{3, 1}},
		{Shape{2, 3, 4}, Shape{12, 4, 1}},
	}
	for _, tt := range tests {
		if got := CanonicalStrides(tt.extents); !got.Equal(tt.want) {
			t.Errorf("CanonicalStrides(%v) = %v, want %v", tt.extents, got, tt.want)
		}
	}
}

func TestAlignAndCombine(t *testing.T) {
	target := Shape{0, 0}
	broadcasted, err := AlignAndCombine(target, Shape{3, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !target.Equal(Shape{3, 1}) {
		t.Errorf("target = %v, want {3,1}", target)
	}
	if broadcasted {
		t.Error("first combination into a zero target should not itself be reported as broadcast")
	}

	broadcasted, err = AlignAndCombine(target, Shape{1, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !target.Equal(Shape{3, 4}) {
		t.Errorf("target = %v, want {3,4}", target)
	}
	if !broadcasted {
		t.Error("stretching a size-1 target axis should report broadcast")
	}
}

func TestAlignAndCombineMismatch(t *testing.T) {
	target := Shape{3, 4}
	if _, err := AlignAndCombine(target, Shape{3, 5}); err == nil {
		t.Error("expected shape-mismatch error for incompatible axes")
	}
}

func TestBroadcastShapesOuterProduct(t *testing.T) {
	result, broadcasted, err := BroadcastShapes(Shape{3, 1}, Shape{1, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Equal(Shape{3, 4}) {
		t.Errorf("result = %v, want {3,4}", result)
	}
	if !broadcasted {
		t.Error("expected broadcast flag set for outer-product alignment")
	}
}
