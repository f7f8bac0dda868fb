package ndarray

import "math/rand"

// Seed reseeds the package-wide random source used by Rand, grounded on the
// teacher's math/rand usage in internal/tensor/creation.go (Rand/Randn),
// widened here to an explicit, reproducible seed rather than the global
// default source.
func Seed(seed uint64) {
	randSource = rand.New(rand.NewSource(int64(seed))) //nolint:gosec // not used for cryptographic purposes
}

var randSource = rand.New(rand.NewSource(1)) //nolint:gosec // not used for cryptographic purposes

// Rand creates an array of the given extents filled with values uniformly
// distributed in [0, 1) for float element types, or in [0, 100) for integer
// element types: spec.md's creation helpers, extending the teacher's
// Rand[T DType, B Backend] (internal/tensor/creation.go) to the ndarray
// engine's element types.
func Rand[T Numeric](extents ...int) *Array[T] {
	a := NewArray[T](extents...)
	buf := a.Elements()
	var dummy T
	switch any(dummy).(type) {
	case float32:
		for i := range buf {
			buf[i] = T(randSource.Float64())
		}
	case float64:
		for i := range buf {
			buf[i] = T(randSource.Float64())
		}
	default:
		for i := range buf {
			buf[i] = T(randSource.Intn(100))
		}
	}
	return a
}
