package bind

import "time"

// Expr is a node derived from an ordered list of parent nodes through a
// pure function. The expression subscribes to every parent at
// construction and reacts to their changes according to its evaluation
// policy. Its recomputed result runs through the same compare, store
// and notify machinery as a Value write, so expressions compose into
// arbitrarily deep graphs.
//
// Expressions are not externally settable; only their own recomputation
// stores into them.
type Expr[T any] struct {
	nodeCore[T]

	// fn receives the parents' current values positionally, in parent
	// order. It must be pure; a panic unwinds to whichever Set or Get
	// triggered the recomputation.
	fn func(args []any) T

	// parents is the ordered owning parent list. Argument positions in
	// fn match parent positions here.
	parents []Bindable

	eval EvalPolicy

	// dirty marks the cached value stale, pending recomputation on the
	// next Get.
	dirty bool

	disposed bool
}

// NewExpr creates an expression over the given parents with the default
// EvalInstant policy. The expression registers itself as a dependent of
// every parent, in parent order, and performs one initial evaluation
// pass so the cache reflects the parents' values at construction time.
func NewExpr[T any](fn func(args []any) T, parents ...Bindable) *Expr[T] {
	return NewExprWithPolicy(EvalInstant, fn, parents...)
}

// NewExprWithPolicy is NewExpr with an explicit evaluation policy.
// Under EvalLazy the initial pass only marks the expression dirty; the
// first recomputation happens on the first Get.
func NewExprWithPolicy[T any](policy EvalPolicy, fn func(args []any) T, parents ...Bindable) *Expr[T] {
	e := &Expr[T]{
		nodeCore: nodeCore[T]{id: nextID()},
		fn:       fn,
		parents:  append([]Bindable(nil), parents...),
		eval:     policy,
	}
	for _, p := range e.parents {
		p.attach(e)
	}
	e.dirty = policy == EvalInstant
	e.DependencyChanged()
	return e
}

// Get returns the expression's value, recomputing first if a dependency
// change has been deferred. The deferred recomputation runs through the
// same compare/store path as an eager one, so a change surfaced by Get
// still notifies this expression's dependents.
func (e *Expr[T]) Get() T {
	if e.dirty {
		e.recompute(true)
	}
	return e.value
}

// GetAny returns the expression's value, recomputing first if needed.
func (e *Expr[T]) GetAny() any {
	return e.Get()
}

// Dirty reports whether the cached value is stale.
func (e *Expr[T]) Dirty() bool {
	return e.dirty
}

// DependencyChanged implements Dependent. Under EvalInstant the
// expression recomputes immediately; under EvalLazy it only marks
// itself dirty and does not forward the notification. Notifications
// under an out-of-range policy are ignored.
func (e *Expr[T]) DependencyChanged() {
	switch e.eval {
	case EvalInstant:
		e.recompute(false)
	case EvalLazy:
		e.dirty = true
	}
}

// EvalPolicy returns the current evaluation policy.
func (e *Expr[T]) EvalPolicy() EvalPolicy {
	return e.eval
}

// SetEvalPolicy switches the evaluation policy. Safe to call on a live
// expression; a pending dirty flag survives the switch and is resolved
// by the next Get.
func (e *Expr[T]) SetEvalPolicy(p EvalPolicy) {
	e.eval = p
}

// Dispose removes the expression from every parent's dependent list and
// releases the parent handles. Subsequent parent writes no longer reach
// the expression; it retains its last cached value. Dispose is
// idempotent.
func (e *Expr[T]) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	for _, p := range e.parents {
		p.detach(e)
	}
	e.parents = nil
}

// WithComparePolicy configures the comparison policy gating stores of
// recomputed results, and returns the expression for chaining.
func (e *Expr[T]) WithComparePolicy(p ComparePolicy) *Expr[T] {
	e.cmp = p
	return e
}

// WithEquals configures a custom equality comparator.
func (e *Expr[T]) WithEquals(fn func(T, T) bool) *Expr[T] {
	e.eq = fn
	return e
}

// WithNotEquals configures a custom inequality comparator.
func (e *Expr[T]) WithNotEquals(fn func(T, T) bool) *Expr[T] {
	e.neq = fn
	return e
}

// recompute gathers every parent's current value, invokes the function
// and stores the result. All parent values are gathered before the
// call; partial evaluation is not supported. A panic in the function
// unwinds to the triggering caller, leaving the cached value and dirty
// flag as they were before the attempt.
func (e *Expr[T]) recompute(deferred bool) {
	args := make([]any, len(e.parents))
	for i, p := range e.parents {
		args[i] = p.GetAny()
	}

	var start time.Time
	if observer != nil {
		start = time.Now()
	}
	result := e.fn(args)
	if observer != nil {
		observer.NodeRecomputed(e.id, deferred, time.Since(start))
	}

	e.dirty = false
	e.store(result)
}

var _ Node[int] = (*Expr[int])(nil)
var _ Dependent = (*Expr[int])(nil)
