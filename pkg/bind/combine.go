package bind

// Map creates an expression over a single parent node. The result is
// recomputed from the parent's current value whenever the parent
// changes, under the default EvalInstant policy.
func Map[A, T any](parent Node[A], fn func(A) T) *Expr[T] {
	return NewExpr(func(args []any) T {
		return fn(args[0].(A))
	}, parent)
}

// Combine creates an expression over two parent nodes computed by a
// binary function, with the default EvalInstant policy. This is the
// operator sugar of the engine: every arithmetic helper below is a
// Combine over the matching operator.
func Combine[L, R, T any](lhs Node[L], rhs Node[R], fn func(L, R) T) *Expr[T] {
	return NewExpr(func(args []any) T {
		return fn(args[0].(L), args[1].(R))
	}, lhs, rhs)
}

// numeric covers the built-in types the arithmetic helpers operate on.
type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add creates an expression computing lhs + rhs.
func Add[T numeric](lhs, rhs Node[T]) *Expr[T] {
	return Combine(lhs, rhs, func(a, b T) T { return a + b })
}

// Sub creates an expression computing lhs - rhs.
func Sub[T numeric](lhs, rhs Node[T]) *Expr[T] {
	return Combine(lhs, rhs, func(a, b T) T { return a - b })
}

// Mul creates an expression computing lhs * rhs.
func Mul[T numeric](lhs, rhs Node[T]) *Expr[T] {
	return Combine(lhs, rhs, func(a, b T) T { return a * b })
}

// Div creates an expression computing lhs / rhs.
// Note: integer division truncates toward zero, and a zero divisor
// panics out of the triggering Set or Get.
func Div[T numeric](lhs, rhs Node[T]) *Expr[T] {
	return Combine(lhs, rhs, func(a, b T) T { return a / b })
}
