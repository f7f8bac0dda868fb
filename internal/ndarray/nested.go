package ndarray

import (
	"reflect"

	"github.com/pkg/errors"
)

// FromNested builds an Array from an arbitrarily-deep nested Go slice
// literal (the idiomatic stand-in for C++ brace-initialization), ported
// from original_source/ndarray/declarations/brace_initialization.hpp's
// readData: it walks the nested slices depth-first, records the extent
// seen at each depth on first visit, and rejects later siblings whose
// length disagrees (a non-rectangular initializer).
//
//	a, err := FromNested[float64]([][]float64{{1, 2}, {3, 4}})
func FromNested[T Numeric](nested any) (*Array[T], error) {
	shape := Shape{}
	data := make([]T, 0)
	if err := readNested[T](reflect.ValueOf(nested), 0, &shape, &data); err != nil {
		return nil, err
	}
	a := NewArrayShape[T](shape)
	copy(a.Elements(), data)
	return a, nil
}

func readNested[T Numeric](v reflect.Value, depth int, shape *Shape, data *[]T) error {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		elem, ok := toElement[T](v)
		if !ok {
			return errors.Wrapf(ErrInvalidInitializer, "non-rectangular or non-numeric initializer at depth %d", depth)
		}
		*data = append(*data, elem)
		return nil
	}
	n := v.Len()
	if depth == len(*shape) {
		*shape = append(*shape, n)
	} else if (*shape)[depth] != n {
		return errors.Wrapf(ErrInvalidInitializer, "list initialization from non-rectangular data at depth %d", depth)
	}
	for i := 0; i < n; i++ {
		if err := readNested[T](v.Index(i), depth+1, shape, data); err != nil {
			return err
		}
	}
	return nil
}

func toElement[T Numeric](v reflect.Value) (T, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(v.Int()), true
	case reflect.Float32, reflect.Float64:
		return T(v.Float()), true
	default:
		var zero T
		return zero, false
	}
}
