package ndarray

import "fmt"

// Numeric constrains the element types lazy arithmetic is defined over.
// spec.md leaves the element type's own arithmetic as given; this
// constraint is the Go equivalent of letting any arithmetic-capable T
// instantiate the engine, matching the teacher's DType constraint
// (internal/tensor/dtype.go) but limited to int, int32, int64, float32 and
// float64 (and types derived from them), since the lazy layer never needs
// the bool/byte semantics the teacher's DType carried for tensor storage.
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Operand is the dispatch interface every lazy-evaluable value implements:
// spec.md §4.6's "lazy-evaluable" category (scalar, view, array, lazy
// node). It mirrors the original source's nd_object/contiguous_nd_storage
// concepts (original_source/ndarray/declarations/lazy_functions.hpp) as a
// Go interface instead of C++ concepts, since spec.md §9 explicitly
// permits "interface polymorphism... whichever idiom their target language
// offers".
type Operand[T Numeric] interface {
	OperandShape() Shape
	FlatAt(i int) T
	MultiAt(idx Shape) T
	ExtendedAt(idx Shape) T
	Contiguous() bool
	Broadcasted() bool
}

// scalarOperand captures a scalar by value, per spec.md §4.6's "scalars
// are captured by value (ownership semantics: exclusive copy)".
type scalarOperand[T Numeric] struct{ value T }

func (s scalarOperand[T]) OperandShape() Shape      { return Shape{} }
func (s scalarOperand[T]) FlatAt(int) T             { return s.value }
func (s scalarOperand[T]) MultiAt(Shape) T          { return s.value }
func (s scalarOperand[T]) ExtendedAt(Shape) T       { return s.value }
func (s scalarOperand[T]) Contiguous() bool         { return true }
func (s scalarOperand[T]) Broadcasted() bool        { return false }

// viewOperand captures a View by value: spec.md's "views... are captured
// by value (they are cheap handles)".
type viewOperand[T Numeric] struct{ v View[T] }

func (o viewOperand[T]) OperandShape() Shape { return o.v.extents }
func (o viewOperand[T]) FlatAt(i int) T      { return o.v.data[i] }
func (o viewOperand[T]) MultiAt(idx Shape) T { return *o.v.AtShape(idx) }
func (o viewOperand[T]) ExtendedAt(idx Shape) T { return *o.v.ExtendedAt(idx) }
func (o viewOperand[T]) Contiguous() bool    { return o.v.IsContiguous() }
func (o viewOperand[T]) Broadcasted() bool   { return false }

// arrayOperand captures an *Array by reference: spec.md's "arrays are
// captured by reference (they are expensive to copy and stable in address
// within an expression)".
type arrayOperand[T Numeric] struct{ a *Array[T] }

func (o arrayOperand[T]) OperandShape() Shape   { return o.a.view.extents }
func (o arrayOperand[T]) FlatAt(i int) T        { return o.a.buffer[i] }
func (o arrayOperand[T]) MultiAt(idx Shape) T   { return *o.a.view.AtShape(idx) }
func (o arrayOperand[T]) ExtendedAt(idx Shape) T { return *o.a.view.ExtendedAt(idx) }
func (o arrayOperand[T]) Contiguous() bool      { return true }
func (o arrayOperand[T]) Broadcasted() bool     { return false }

// nodeOperand captures a sub-LazyNode by value: cheap handle, same as a
// view.
type nodeOperand[T Numeric] struct{ n LazyNode[T] }

func (o nodeOperand[T]) OperandShape() Shape    { return o.n.shape }
func (o nodeOperand[T]) FlatAt(i int) T         { return o.n.flatAt(i) }
func (o nodeOperand[T]) MultiAt(idx Shape) T    { return o.n.multiAt(idx) }
func (o nodeOperand[T]) ExtendedAt(idx Shape) T { return o.n.extendedAt(idx) }
func (o nodeOperand[T]) Contiguous() bool       { return o.n.contiguous }

// Broadcasted reports the nested node's own cached broadcast flag: a node
// built from a broadcasting sub-expression stays broadcasted even once its
// combined shape no longer requires any further stretching against a
// sibling operand, per original_source/ndarray/declarations/
// lazy_functions.hpp's getBroadcasted() accessor.
func (o nodeOperand[T]) Broadcasted() bool { return o.n.broadcasted }

// wrapOperand converts any lazy-evaluable Go value into an Operand[T],
// implementing spec.md's capture policy at the point of node construction
// (operator/method call sites), matching the note in spec.md §4.6 that
// "node construction happens inline at operator sites".
func wrapOperand[T Numeric](x any) Operand[T] {
	switch v := x.(type) {
	case Operand[T]:
		return v
	case T:
		return scalarOperand[T]{value: v}
	case View[T]:
		return viewOperand[T]{v: v}
	case *Array[T]:
		return arrayOperand[T]{a: v}
	case LazyNode[T]:
		return nodeOperand[T]{n: v}
	default:
		panic(fmt.Sprintf("ndarray: %T is not a lazy-evaluable operand for element type %T", x, *new(T)))
	}
}

// LazyNode is spec.md §3/§4.6's LazyNode(F, Args...): a value holding a
// callable and a slice of operand wrappers, with shape/broadcasted/
// contiguous cached at construction.
type LazyNode[T Numeric] struct {
	eval       func(vals []T) T
	operands   []Operand[T]
	shape      Shape
	broadcasted bool
	contiguous bool
}

// Apply is spec.md §4.6's generic `apply(f, args…)` factory. T must be
// given explicitly at the call site since Go cannot infer a type
// parameter from `any`-typed arguments — see DESIGN.md's "Operators →
// methods" note.
func Apply[T Numeric](f func(vals []T) T, args ...any) LazyNode[T] {
	operands := make([]Operand[T], len(args))
	for i, a := range args {
		operands[i] = wrapOperand[T](a)
	}
	return buildNode(f, operands)
}

func buildNode[T Numeric](f func(vals []T) T, operands []Operand[T]) LazyNode[T] {
	maxRank := 0
	for _, op := range operands {
		if r := len(op.OperandShape()); r > maxRank {
			maxRank = r
		}
	}
	shape := make(Shape, maxRank)
	broadcasted := false
	contiguous := true
	for _, op := range operands {
		b, err := AlignAndCombine(shape, op.OperandShape())
		if err != nil {
			panic(err)
		}
		broadcasted = broadcasted || b || op.Broadcasted()
		contiguous = contiguous && op.Contiguous()
	}
	return LazyNode[T]{eval: f, operands: operands, shape: shape, broadcasted: broadcasted, contiguous: contiguous}
}

// Shape returns the node's cached result shape.
func (n LazyNode[T]) Shape() Shape { return n.shape }

// Broadcasted reports whether building Shape required any stretching,
// trailing-axis alignment, or scalar operand (spec.md §4.6).
func (n LazyNode[T]) Broadcasted() bool { return n.broadcasted }

// Contiguous reports whether every operand is contiguous (a scalar counts
// as contiguous), spec.md §3's `contiguous = all operands are contiguous`.
func (n LazyNode[T]) Contiguous() bool { return n.contiguous }

// FlatAt is spec.md's `node[flat]`: only valid when Contiguous() is true.
func (n LazyNode[T]) FlatAt(i int) T { return n.flatAt(i) }

func (n LazyNode[T]) flatAt(i int) T {
	vals := make([]T, len(n.operands))
	for j, op := range n.operands {
		vals[j] = op.FlatAt(i)
	}
	return n.eval(vals)
}

// MultiAt is spec.md's `node(index_tuple)`.
func (n LazyNode[T]) MultiAt(idx Shape) T { return n.multiAt(idx) }

func (n LazyNode[T]) multiAt(idx Shape) T {
	vals := make([]T, len(n.operands))
	for j, op := range n.operands {
		vals[j] = op.MultiAt(idx)
	}
	return n.eval(vals)
}

// ExtendedAt is spec.md's `node.extended_element(index_tuple)`.
func (n LazyNode[T]) ExtendedAt(idx Shape) T { return n.extendedAt(idx) }

func (n LazyNode[T]) extendedAt(idx Shape) T {
	vals := make([]T, len(n.operands))
	for j, op := range n.operands {
		vals[j] = op.ExtendedAt(idx)
	}
	return n.eval(vals)
}

// --- Arithmetic: Go has no operator overloading, so spec.md's
// `+ - * /` operators become methods on every lazy-evaluable receiver
// type, each inferring T from the receiver (View[T], *Array[T] and
// LazyNode[T] all implement these methods; see arith.go for the
// View/Array variants). LazyNode's own methods below let
// expressions chain: a.Sub(b).Div(two.Mul(c)).

func binaryOp[T Numeric](lhs Operand[T], rhs any, f func(a, b T) T) LazyNode[T] {
	return buildNode(func(vals []T) T { return f(vals[0], vals[1]) }, []Operand[T]{lhs, wrapOperand[T](rhs)})
}

func unaryOp[T Numeric](x Operand[T], f func(a T) T) LazyNode[T] {
	return buildNode(func(vals []T) T { return f(vals[0]) }, []Operand[T]{x})
}

// Add returns a lazy node computing n + rhs element-wise.
func (n LazyNode[T]) Add(rhs any) LazyNode[T] {
	return binaryOp[T](nodeOperand[T]{n}, rhs, func(a, b T) T { return a + b })
}

// Sub returns a lazy node computing n - rhs element-wise.
func (n LazyNode[T]) Sub(rhs any) LazyNode[T] {
	return binaryOp[T](nodeOperand[T]{n}, rhs, func(a, b T) T { return a - b })
}

// Mul returns a lazy node computing n * rhs element-wise.
func (n LazyNode[T]) Mul(rhs any) LazyNode[T] {
	return binaryOp[T](nodeOperand[T]{n}, rhs, func(a, b T) T { return a * b })
}

// Div returns a lazy node computing n / rhs element-wise.
func (n LazyNode[T]) Div(rhs any) LazyNode[T] {
	return binaryOp[T](nodeOperand[T]{n}, rhs, func(a, b T) T { return a / b })
}

// Sqrt returns a lazy node computing element-wise square root.
func (n LazyNode[T]) Sqrt() LazyNode[T] { return unaryOp[T](nodeOperand[T]{n}, sqrtFn[T]) }

// Pow returns a lazy node computing element-wise exponentiation by a
// fixed scalar exponent.
func (n LazyNode[T]) Pow(exponent T) LazyNode[T] {
	return unaryOp[T](nodeOperand[T]{n}, func(a T) T { return powFn(a, exponent) })
}

// Exp returns a lazy node computing the element-wise natural exponential.
func (n LazyNode[T]) Exp() LazyNode[T] { return unaryOp[T](nodeOperand[T]{n}, expFn[T]) }

// Log returns a lazy node computing the element-wise natural logarithm.
func (n LazyNode[T]) Log() LazyNode[T] { return unaryOp[T](nodeOperand[T]{n}, logFn[T]) }
