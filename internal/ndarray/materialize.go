package ndarray

// This file is spec.md §4.7's materializers: the assignment paths that
// consume a LazyNode, selected by (destination kind, Contiguous(),
// Broadcasted()). Ported from original_source/ndarray/declarations/
// nd_array.hpp's two constructor/assignment-operator overloads (the
// contiguous_nd_storage-gated pair) and nd_view.hpp's operator=, combined
// per DESIGN.md's "Open Question: size-1 broadcast combined with
// contiguity" resolution: Broadcasted() always wins over Contiguous().

// AssignLazy materializes a lazy node into this array, reshaping first if
// the node's shape differs from the array's current shape:
//
//   - contiguous, not broadcasted: flat fast path, one pass over the
//     buffer;
//   - contiguous but broadcasted, or not contiguous at all: multi-index
//     path over the destination's own canonical shape.
func (a *Array[T]) AssignLazy(node LazyNode[T]) {
	if !a.view.extents.Equal(node.Shape()) {
		a.Reshape(node.Shape()...)
	}
	if node.Contiguous() && !node.Broadcasted() {
		for i := range a.buffer {
			a.buffer[i] = node.FlatAt(i)
		}
		return
	}
	walkShape(a.view.extents, func(idx Shape) {
		*a.view.AtShape(idx) = node.ExtendedAt(idx)
	})
}

// AssignLazy materializes a lazy node into this (fixed-shape) view:
// spec.md's view-destination rules. Views cannot grow, so a shape
// mismatch when the node is not broadcasting is a precondition violation
// (panic); when the node is broadcasting, every destination index is
// still visited and read through ExtendedAt per spec.md's rule.
func (v View[T]) AssignLazy(node LazyNode[T]) {
	if !node.Broadcasted() {
		if !v.extents.Equal(node.Shape()) {
			panic("ndarray: cannot assign lazy node of shape " + node.Shape().String() + " into view of shape " + v.extents.String())
		}
		walkShape(v.extents, func(idx Shape) {
			*v.AtShape(idx) = node.MultiAt(idx)
		})
		return
	}
	walkShape(v.extents, func(idx Shape) {
		*v.ExtendedAt(idx) = node.ExtendedAt(idx)
	})
}

// Materialize builds a new Array from a lazy node's own shape, spec.md
// §5's "makeTensor"-equivalent convenience (see SPEC_FULL.md §5).
func Materialize[T Numeric](node LazyNode[T]) *Array[T] {
	a := NewArrayShape[T](node.Shape())
	a.AssignLazy(node)
	return a
}
