package ndarray

// Broadcast, BroadcastIndex and BroadcastOverShape are spec.md §4.4's three
// iteration entry points. Views need not share rank or shape: the result
// shape is the NumPy-style broadcast of every view's extents
// (broadcastResultShape/BroadcastShapes), and every view is read through
// View.ExtendedAt whenever that combination required any rank-padding or
// size-1 stretching — exactly scenario §8.5's outer product, where a
// rank-2 operand is read against a rank-4 result shape.
//
// Iteration is row-major: a runtime odometer loop over a Shape counter,
// which spec.md §4.4 explicitly allows in place of compile-time-recursive
// nesting ("a runtime loop of equivalent semantics is acceptable provided
// iteration order is preserved").
func Broadcast[T Numeric](f func(elems ...*T), views ...*View[T]) {
	if len(views) == 0 {
		return
	}
	resultShape, anyBroadcast := broadcastResultShape(views)
	elems := make([]*T, len(views))
	walkShape(resultShape, func(idx Shape) {
		for i, v := range views {
			if anyBroadcast {
				elems[i] = v.ExtendedAt(idx)
			} else {
				elems[i] = v.AtShape(idx)
			}
		}
		f(elems...)
	})
}

// BroadcastIndex is Broadcast plus the current multi-index, appended as
// the final callback argument (spec.md §4.4 broadcast_index).
func BroadcastIndex[T Numeric](f func(elems []*T, idx Shape), views ...*View[T]) {
	if len(views) == 0 {
		return
	}
	resultShape, anyBroadcast := broadcastResultShape(views)
	elems := make([]*T, len(views))
	walkShape(resultShape, func(idx Shape) {
		for i, v := range views {
			if anyBroadcast {
				elems[i] = v.ExtendedAt(idx)
			} else {
				elems[i] = v.AtShape(idx)
			}
		}
		f(elems, idx)
	})
}

// broadcastResultShape computes the shared broadcast shape of every view's
// extents via BroadcastShapes (NumPy-style trailing-axis alignment,
// spec.md §4.1), mirroring original_source/ndarray/declarations/
// broadcast.hpp's getBroadcastShape(views.shape()...), which pads every
// view's shape up to pack_max<dimensions...> before reading through
// extendedElement. Views are not required to share rank.
func broadcastResultShape[T Numeric](views []*View[T]) (Shape, bool) {
	shapes := make([]Shape, len(views))
	for i, v := range views {
		shapes[i] = v.extents
	}
	resultShape, broadcasted, err := BroadcastShapes(shapes...)
	if err != nil {
		panic(err)
	}
	return resultShape, broadcasted
}

// BroadcastOverShape calls f(idx) for every multi-index of shape, with no
// view reads at all (spec.md §4.4 broadcast_shape).
func BroadcastOverShape(f func(idx Shape), shape Shape) {
	walkShape(shape, f)
}

// walkShape is the shared row-major odometer: outermost axis slowest,
// last axis fastest, skipping entirely when any extent is 0.
func walkShape(shape Shape, f func(idx Shape)) {
	for _, e := range shape {
		if e == 0 {
			return
		}
	}
	if len(shape) == 0 {
		f(Shape{})
		return
	}
	idx := make(Shape, len(shape))
	for {
		f(idx.Clone())
		d := len(shape) - 1
		idx[d]++
		for k := d; k >= 1 && idx[k] == shape[k]; k-- {
			idx[k] = 0
			idx[k-1]++
		}
		if idx[0] == shape[0] {
			return
		}
	}
}
