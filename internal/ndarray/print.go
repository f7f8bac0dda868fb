package ndarray

import (
	"strconv"
	"strings"
)

// String renders a view as nested brackets, one level of brackets per axis,
// ported from original_source/ndarray/nd_view.hpp's operator<<. A rank-0
// view prints its single element with no brackets.
func (v View[T]) String() string {
	var b strings.Builder
	writeView(&b, v)
	return b.String()
}

func writeView[T Numeric](b *strings.Builder, v View[T]) {
	if len(v.extents) == 0 {
		writeScalar(b, *v.At())
		return
	}
	b.WriteByte('[')
	n := v.extents[0]
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		writeView(b, v.Slice(i))
	}
	b.WriteByte(']')
}

func writeScalar[T Numeric](b *strings.Builder, value T) {
	switch v := any(value).(type) {
	case float32:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		b.WriteString(strconv.FormatInt(toInt64(value), 10))
	}
}

func toInt64[T Numeric](value T) int64 {
	switch v := any(value).(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// String renders an array the same way as its embedded view, plus the
// shape, mirroring the teacher's Tensor.String (internal/tensor/tensor.go)
// which reports shape alongside contents.
func (a *Array[T]) String() string {
	return "Array" + a.view.extents.String() + a.view.String()
}
