// Copyright 2025 stridelab authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/stridelab/ndarray/internal/ndarray"

// View is a non-owning strided descriptor into someone else's storage.
// Copying a View copies the handle, not the underlying data.
type View[T ndarray.Numeric] = ndarray.View[T]

// NewView constructs a view directly from a data slice, extents, and
// strides.
func NewView[T ndarray.Numeric](data []T, extents, strides Shape) View[T] {
	return ndarray.NewView(data, extents, strides)
}

// Iterator is a random-access, row-major cursor over a View.
type Iterator[T ndarray.Numeric] = ndarray.Iterator[T]

// Broadcast walks the shared broadcast shape of views, calling f with a
// pointer into each view per element. Views need not share rank: shapes
// align at their trailing axes and size-1 axes stretch.
func Broadcast[T ndarray.Numeric](f func(elems ...*T), views ...*View[T]) {
	ndarray.Broadcast(f, views...)
}

// BroadcastIndex is Broadcast plus the current multi-index, appended as the
// final callback argument.
func BroadcastIndex[T ndarray.Numeric](f func(elems []*T, idx Shape), views ...*View[T]) {
	ndarray.BroadcastIndex(f, views...)
}

// BroadcastOverShape calls f(idx) for every multi-index of shape, with no
// view reads at all.
func BroadcastOverShape(f func(idx Shape), shape Shape) {
	ndarray.BroadcastOverShape(f, shape)
}
