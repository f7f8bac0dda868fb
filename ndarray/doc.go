// Copyright 2025 stridelab authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides strided, broadcasting N-dimensional arrays and
// views for numeric Go code.
//
// # Overview
//
// The package centers on two types:
//   - View[T]: a non-owning, strided descriptor into someone else's buffer
//   - Array[T]: an owning, contiguous buffer plus an embedded View
//
// Both support multi-index access, slicing, and row-major iteration.
// Arithmetic (Add, Sub, Mul, Div, Sqrt, Pow, Exp, Log) builds a LazyNode
// instead of evaluating immediately; the node is only walked into a
// destination buffer once assigned to an Array or View, or passed to
// Materialize.
//
// # Basic Usage
//
//	a := ndarray.NewArray[float64](3, 4)
//	b := ndarray.NewArray[float64](3, 4)
//	a.AssignScalar(1)
//	b.AssignScalar(2)
//	c := ndarray.Materialize(a.Add(b))
//
// # Broadcasting
//
// Shapes align at their trailing axes, NumPy-style: a size-1 axis stretches
// to match its counterpart.
//
//	row := ndarray.NewArray[float64](1, 4)
//	col := ndarray.NewArray[float64](3, 1)
//	outer := ndarray.Materialize(row.Add(col)) // shape (3, 4)
//
// # Slicing
//
// View.Slice and Array.Slice accept a mix of int (collapse an axis), Range
// (a half-open sub-range, negative indices allowed, End == 0 meaning "to
// the end of the axis"), and NewAxis (insert a size-1 axis).
//
//	sub := a.Slice(ndarray.Range{Start: 1, End: 0}, ndarray.All)
package ndarray
