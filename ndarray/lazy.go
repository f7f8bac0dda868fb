// Copyright 2025 stridelab authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/stridelab/ndarray/internal/ndarray"

// LazyNode is a deferred element-wise computation over one or more
// operands (a scalar, a View, an *Array, or another LazyNode); it is only
// walked into a destination buffer when assigned to an Array/View, or
// passed to Materialize.
type LazyNode[T Numeric] = ndarray.LazyNode[T]

// Apply is the generic `apply(f, args...)` factory for building a LazyNode
// directly from a callable and an arbitrary operand list. T must be given
// explicitly at the call site since Go cannot infer a type parameter from
// `any`-typed arguments.
func Apply[T Numeric](f func(vals []T) T, args ...any) LazyNode[T] {
	return ndarray.Apply[T](f, args...)
}

// Materialize builds a new Array from a lazy node's own (possibly
// broadcast) shape and assigns the node into it.
func Materialize[T Numeric](node LazyNode[T]) *Array[T] { return ndarray.Materialize(node) }
