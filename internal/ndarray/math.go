package ndarray

import "math"

// sqrtFn, powFn, expFn, logFn implement spec.md §4.6's unary math
// functions generically over any Numeric element type by routing through
// float64, matching the teacher's own per-dtype math ops (internal/tensor
// Backend.Exp/Log/Sqrt) in spirit: the element type's own arithmetic
// determines the result, this engine adds no promotion policy of its own
// (spec.md §1 Non-goals).
func sqrtFn[T Numeric](a T) T { return T(math.Sqrt(float64(a))) }

func powFn[T Numeric](a, exponent T) T { return T(math.Pow(float64(a), float64(exponent))) }

func expFn[T Numeric](a T) T { return T(math.Exp(float64(a))) }

func logFn[T Numeric](a T) T { return T(math.Log(float64(a))) }
