package ndarray

// Arithmetic methods on View[T] and *Array[T]: the same operator→method
// translation as LazyNode's (lazy.go), grounded on the teacher's
// Tensor[T,B].Add/.Sub/.Mul/.Div (internal/tensor/ops.go). Each method
// wraps its receiver as the left operand and its argument — a scalar T, a
// View[T], a *Array[T], or a LazyNode[T] — as the right operand via
// wrapOperand, then returns the resulting LazyNode[T] unevaluated.

// Add returns a lazy node computing v + rhs element-wise.
func (v View[T]) Add(rhs any) LazyNode[T] {
	return binaryOp[T](viewOperand[T]{v}, rhs, func(a, b T) T { return a + b })
}

// Sub returns a lazy node computing v - rhs element-wise.
func (v View[T]) Sub(rhs any) LazyNode[T] {
	return binaryOp[T](viewOperand[T]{v}, rhs, func(a, b T) T { return a - b })
}

// Mul returns a lazy node computing v * rhs element-wise.
func (v View[T]) Mul(rhs any) LazyNode[T] {
	return binaryOp[T](viewOperand[T]{v}, rhs, func(a, b T) T { return a * b })
}

// Div returns a lazy node computing v / rhs element-wise.
func (v View[T]) Div(rhs any) LazyNode[T] {
	return binaryOp[T](viewOperand[T]{v}, rhs, func(a, b T) T { return a / b })
}

// Sqrt returns a lazy node computing the element-wise square root of v.
func (v View[T]) Sqrt() LazyNode[T] { return unaryOp[T](viewOperand[T]{v}, sqrtFn[T]) }

// Pow returns a lazy node computing v raised to a fixed scalar exponent.
func (v View[T]) Pow(exponent T) LazyNode[T] {
	return unaryOp[T](viewOperand[T]{v}, func(a T) T { return powFn(a, exponent) })
}

// Exp returns a lazy node computing the element-wise natural exponential
// of v.
func (v View[T]) Exp() LazyNode[T] { return unaryOp[T](viewOperand[T]{v}, expFn[T]) }

// Log returns a lazy node computing the element-wise natural logarithm of
// v.
func (v View[T]) Log() LazyNode[T] { return unaryOp[T](viewOperand[T]{v}, logFn[T]) }

// Add returns a lazy node computing a + rhs element-wise.
func (a *Array[T]) Add(rhs any) LazyNode[T] {
	return binaryOp[T](arrayOperand[T]{a}, rhs, func(x, y T) T { return x + y })
}

// Sub returns a lazy node computing a - rhs element-wise.
func (a *Array[T]) Sub(rhs any) LazyNode[T] {
	return binaryOp[T](arrayOperand[T]{a}, rhs, func(x, y T) T { return x - y })
}

// Mul returns a lazy node computing a * rhs element-wise.
func (a *Array[T]) Mul(rhs any) LazyNode[T] {
	return binaryOp[T](arrayOperand[T]{a}, rhs, func(x, y T) T { return x * y })
}

// Div returns a lazy node computing a / rhs element-wise.
func (a *Array[T]) Div(rhs any) LazyNode[T] {
	return binaryOp[T](arrayOperand[T]{a}, rhs, func(x, y T) T { return x / y })
}

// Sqrt returns a lazy node computing the element-wise square root of a.
func (a *Array[T]) Sqrt() LazyNode[T] { return unaryOp[T](arrayOperand[T]{a}, sqrtFn[T]) }

// Pow returns a lazy node computing a raised to a fixed scalar exponent.
func (a *Array[T]) Pow(exponent T) LazyNode[T] {
	return unaryOp[T](arrayOperand[T]{a}, func(x T) T { return powFn(x, exponent) })
}

// Exp returns a lazy node computing the element-wise natural exponential
// of a.
func (a *Array[T]) Exp() LazyNode[T] { return unaryOp[T](arrayOperand[T]{a}, expFn[T]) }

// Log returns a lazy node computing the element-wise natural logarithm of
// a.
func (a *Array[T]) Log() LazyNode[T] { return unaryOp[T](arrayOperand[T]{a}, logFn[T]) }
