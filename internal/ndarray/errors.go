package ndarray

import "github.com/pkg/errors"

// ErrShapeMismatch is returned when two shapes cannot be aligned or
// broadcast together (AlignAndCombine, BroadcastShapes). Assigning a
// source of a different shape into a fixed-size View destination panics
// instead of returning this error.
var ErrShapeMismatch = errors.New("ndarray: shape mismatch")

// ErrInvalidInitializer is returned by FromNested when a nested slice is
// not rectangular: two sibling lists at the same depth disagree on length.
var ErrInvalidInitializer = errors.New("ndarray: invalid nested initializer")

func wrapShapeMismatch(format string, args ...any) error {
	return errors.Wrapf(ErrShapeMismatch, format, args...)
}
