package ndarray

// Array is an owning tensor: spec.md §3 Array(T,D) — a contiguous element
// buffer plus an embedded View pointing into it. Unlike the C++ source,
// Go's garbage collector and reference semantics mean there is no manual
// move-constructor bookkeeping: assigning a *Array[T] copies a pointer,
// and the embedded view addresses the buffer structurally (via Go slice
// headers), never via a raw pointer that a move could leave dangling —
// see DESIGN.md's "Move semantics" note.
type Array[T Numeric] struct {
	buffer []T
	view   View[T]
}

// NewArray creates an array with the given per-axis extents, value-
// initialized (Go zero value) elements, and canonical row-major strides:
// spec.md §4.5 "Extents construction".
func NewArray[T Numeric](extents ...int) *Array[T] {
	return NewArrayShape[T](Shape(extents))
}

// NewArrayShape is the Shape-tuple overload of NewArray.
func NewArrayShape[T Numeric](shape Shape) *Array[T] {
	a := &Array[T]{}
	a.Reshape(shape...)
	return a
}

// Reshape allocates a fresh buffer of the new product length (discarding
// prior contents), sets canonical strides, and re-points the embedded
// view: spec.md §4.5 reshape. Must be called on a default-constructed
// Array before any element access.
func (a *Array[T]) Reshape(extents ...int) {
	shape := Shape(extents).Clone()
	a.buffer = make([]T, shape.NumElements())
	strides := CanonicalStrides(shape)
	a.view = NewView(a.buffer, shape, strides)
}

// Clone deep-copies the buffer and re-points a fresh view at the copy:
// spec.md §4.5 "Copy construction / copy assignment".
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{buffer: make([]T, len(a.buffer))}
	copy(out.buffer, a.buffer)
	out.view = NewView(out.buffer, a.view.extents.Clone(), a.view.strides.Clone())
	return out
}

// Shape returns the array's extents.
func (a *Array[T]) Shape() Shape { return a.view.extents }

// Length is spec.md's `length() == size() == Π extents` — computed from
// the buffer directly rather than from Shape().NumElements(), so a
// default-constructed, not-yet-reshaped array correctly reports 0 instead
// of the rank-0 scalar convention's 1.
func (a *Array[T]) Length() int { return len(a.buffer) }

// At returns a pointer to the element at the given complete index.
func (a *Array[T]) At(idx ...int) *T { return a.view.At(idx...) }

// Set writes the element at the given complete index.
func (a *Array[T]) Set(value T, idx ...int) { *a.view.At(idx...) = value }

// FlatAt returns the element at a flat buffer index (array-only, since
// only arrays are guaranteed contiguous): spec.md §6 "flat subscript [i]
// (array only, contiguous)".
func (a *Array[T]) FlatAt(i int) T { return a.buffer[i] }

// SetFlatAt writes the element at a flat buffer index.
func (a *Array[T]) SetFlatAt(i int, value T) { a.buffer[i] = value }

// Slice delegates to the embedded view: spec.md §4.5 "Element access...
// and slicing... delegate to the embedded view".
func (a *Array[T]) Slice(specs ...Specifier) View[T] { return a.view.Slice(specs...) }

// View returns the embedded view (a non-owning alias into this array's
// buffer): spec.md §4.5 "Conversion to view".
func (a *Array[T]) View() View[T] { return a.view }

// AssignScalar fills the entire buffer with value.
func (a *Array[T]) AssignScalar(value T) {
	for i := range a.buffer {
		a.buffer[i] = value
	}
}

// AssignArray deep-copies src's contents into this array, reshaping first
// if the shapes differ (mirroring spec.md's array-destination materializer
// path, generalized to a plain array-to-array copy).
func (a *Array[T]) AssignArray(src *Array[T]) {
	if !a.view.extents.Equal(src.view.extents) {
		a.Reshape(src.view.extents...)
	}
	copy(a.buffer, src.buffer)
}

// Elements iterates the buffer directly in forward order: spec.md §4.5
// "Forward and reverse iteration: directly over the contiguous buffer
// (not via the view's strided iterator), since arrays are contiguous."
func (a *Array[T]) Elements() []T { return a.buffer }

// ReverseElements returns the buffer's elements in reverse order as a new
// slice (Go has no in-place reverse-iterator type; callers needing
// in-place reverse traversal should range over Elements() backwards).
func (a *Array[T]) ReverseElements() []T {
	out := make([]T, len(a.buffer))
	for i, v := range a.buffer {
		out[len(out)-1-i] = v
	}
	return out
}
