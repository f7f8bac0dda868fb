// Copyright 2025 stridelab authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/stridelab/ndarray/internal/ndarray"

// Numeric constrains the element types the array engine is defined over:
// int, int32, int64, float32 and float64, and types derived from them.
type Numeric = ndarray.Numeric

// Array is an owning tensor: a contiguous element buffer plus an embedded
// View pointing into it.
type Array[T Numeric] = ndarray.Array[T]

// NewArray creates an array with the given per-axis extents, zero-valued
// elements, and canonical row-major strides.
func NewArray[T Numeric](extents ...int) *Array[T] { return ndarray.NewArray[T](extents...) }

// NewArrayShape is the Shape-tuple overload of NewArray.
func NewArrayShape[T Numeric](shape Shape) *Array[T] { return ndarray.NewArrayShape[T](shape) }

// Rand creates an array of the given extents filled with values uniformly
// distributed in [0, 1) for float element types, or [0, 100) for integer
// element types.
func Rand[T Numeric](extents ...int) *Array[T] { return ndarray.Rand[T](extents...) }

// Seed reseeds the random source used by Rand.
func Seed(seed uint64) { ndarray.Seed(seed) }

// FromNested builds an Array from an arbitrarily-deep nested Go slice
// literal, the idiomatic stand-in for brace-initialization.
func FromNested[T Numeric](nested any) (*Array[T], error) { return ndarray.FromNested[T](nested) }
