// Copyright 2025 stridelab authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/stridelab/ndarray/internal/ndarray"

// Shape is a rank-agnostic tuple of non-negative axis extents.
type Shape = ndarray.Shape

// End is the "to the end of the axis" sentinel used inside Range.
const End = ndarray.End

// Range is a half-open axis selector [Start, End).
type Range = ndarray.Range

// NewAxis inserts an extent-1 axis without consuming a parent axis.
type NewAxis = ndarray.NewAxis

// All selects an entire axis unchanged.
var All = ndarray.All

// Specifier is the union of the slice-specifier kinds accepted by
// View.Slice and Array.Slice: int, Range, or NewAxis.
type Specifier = ndarray.Specifier

// CanonicalStrides computes row-major strides for the given extents.
func CanonicalStrides(extents Shape) Shape { return ndarray.CanonicalStrides(extents) }

// BroadcastShapes computes the NumPy-style broadcast of any number of
// shapes.
func BroadcastShapes(shapes ...Shape) (Shape, bool, error) { return ndarray.BroadcastShapes(shapes...) }
