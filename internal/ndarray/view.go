package ndarray

import "fmt"

// View is a non-owning strided descriptor into someone else's storage:
// spec.md §3 View(T,D). data is a Go slice re-sliced from the owning
// buffer at this view's starting element — the idiomatic stand-in for the
// spec's raw `data` pointer plus manual offset arithmetic; Go's slice
// header already carries a bounds-checked base pointer, so there is no
// separate "offset" field to keep in sync (compare with the teacher's
// RawTensor, which keeps data+offset as two fields precisely because it
// manages a raw byte buffer).
type View[T Numeric] struct {
	data    []T
	extents Shape
	strides Shape
}

// NewView constructs a view directly from a data slice, extents and
// strides (spec.md §4.2 "Construction: from {data, extents, strides}
// directly").
func NewView[T Numeric](data []T, extents, strides Shape) View[T] {
	return View[T]{data: data, extents: extents, strides: strides}
}

// Shape returns the view's extents.
func (v View[T]) Shape() Shape { return v.extents }

// Length returns the product of extents.
func (v View[T]) Length() int { return v.extents.NumElements() }

// Rank returns the number of axes.
func (v View[T]) Rank() int { return len(v.extents) }

// IsContiguous reports whether the view's strides match the canonical
// row-major strides for its extents (used by the lazy-node fast path).
func (v View[T]) IsContiguous() bool {
	return v.strides.Equal(CanonicalStrides(v.extents))
}

func (v View[T]) offsetOf(idx Shape) int {
	off := 0
	for i, ix := range idx {
		off += ix * v.strides[i]
	}
	return off
}

// At returns a pointer to the element at the given complete index
// (spec.md §4.2 element access). Panics on an out-of-range index
// (precondition-violation, per spec.md §7).
func (v View[T]) At(idx ...int) *T {
	if len(idx) != len(v.extents) {
		panic(fmt.Sprintf("ndarray: At expects %d indices, got %d", len(v.extents), len(idx)))
	}
	for i, ix := range idx {
		if ix < 0 || ix >= v.extents[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d (extent %d)", ix, i, v.extents[i]))
		}
	}
	return &v.data[v.offsetOf(idx)]
}

// AtShape is the Shape-tuple overload of At.
func (v View[T]) AtShape(idx Shape) *T { return v.At(idx...) }

// ExtendedAt implements spec.md §4.2 extended_element: reads through the
// view treating size-1 axes as index-agnostic and ignoring leading
// dimensions of idx beyond this view's rank. This is the broadcasting-read
// primitive used by lazy-node evaluation once Broadcasted() is true.
func (v View[T]) ExtendedAt(idx Shape) *T {
	lead := len(idx) - len(v.extents)
	off := 0
	for i := range v.extents {
		ix := idx[lead+i]
		if v.extents[i] == 1 {
			continue
		}
		off += ix * v.strides[i]
	}
	return &v.data[off]
}

// Slice resolves a list of specifiers against this view and returns a new
// view of the resulting (possibly lower) rank, per spec.md §4.2's
// construction rule:
//  1. walk specifiers in order, advancing the child's data start and
//     pushing (extent, stride) pairs for specifiers with non-zero extent;
//  2. axes not consumed by any specifier keep their parent (extent,
//     stride) unchanged (trailing axes are implicitly `All`).
func (v View[T]) Slice(specs ...Specifier) View[T] {
	childExtents := make(Shape, 0, len(v.extents)+len(specs))
	childStrides := make(Shape, 0, len(v.extents)+len(specs))
	dataStart := 0
	oldAxis := 0
	for _, spec := range specs {
		if isNewAxis(spec) {
			// NewAxis consumes no parent axis, so it may follow the last one.
			childExtents = append(childExtents, 1)
			childStrides = append(childStrides, 0)
			continue
		}
		r := resolveSlice(spec, v.extents[oldAxis])
		dataStart += v.strides[oldAxis] * r.startOffset
		if r.outExtent != 0 || isNewAxis(spec) {
			if r.outExtent == 0 {
				// NewAxis: extent 1, stride irrelevant.
				childExtents = append(childExtents, 1)
				childStrides = append(childStrides, 0)
			} else {
				childExtents = append(childExtents, r.outExtent)
				childStrides = append(childStrides, v.strides[oldAxis])
			}
		}
		if r.consumesAxis {
			oldAxis++
		}
	}
	for ; oldAxis < len(v.extents); oldAxis++ {
		childExtents = append(childExtents, v.extents[oldAxis])
		childStrides = append(childStrides, v.strides[oldAxis])
	}
	return View[T]{data: v.data[dataStart:], extents: childExtents, strides: childStrides}
}

func isNewAxis(spec Specifier) bool {
	_, ok := spec.(NewAxis)
	return ok
}

// AssignScalar implements spec.md §4.2 bulk assignment "from a scalar".
func (v View[T]) AssignScalar(value T) {
	it := v.Elements()
	for it.Valid() {
		*it.Value() = value
		it.Next()
	}
}

// AssignView implements spec.md §4.2 bulk assignment "from another view of
// identical shape". Panics with a shape-mismatch on differing shapes
// (views cannot grow, per spec.md §4.7).
func (v View[T]) AssignView(src View[T]) {
	if !v.extents.Equal(src.extents) {
		panic(fmt.Sprintf("ndarray: cannot assign view of shape %v into view of shape %v", src.extents, v.extents))
	}
	dst := v.Elements()
	srcIt := src.Elements()
	for dst.Valid() {
		*dst.Value() = *srcIt.Value()
		dst.Next()
		srcIt.Next()
	}
}

// Elements returns a row-major iterator over the view (spec.md §4.2
// "Iteration: begin() and end() yield row-major iterators").
func (v View[T]) Elements() Iterator[T] {
	return newIterator(&v)
}

// ShallowCopyFrom overwrites this view's data/extents/strides from
// another view (spec.md §4.2 "Shallow copy"). Array does not call it: it
// builds its embedded view with NewView in Reshape and Clone.
func (v *View[T]) ShallowCopyFrom(src View[T]) {
	v.data = src.data
	v.extents = src.extents
	v.strides = src.strides
}
