// Package bind provides a small reactive value-binding engine.
//
// The engine has two kinds of nodes. Value[T] is a leaf holding a
// settable value; Expr[T] is derived from an ordered list of parent
// nodes through a pure function. Writing a Value fans out synchronously
// to every dependent expression, and each expression either recomputes
// immediately (EvalInstant) or marks itself stale for the next read
// (EvalLazy).
//
// # Core Types
//
// Value[T] is a settable node:
//
//	a := bind.NewValue(1)
//	v := a.Get() // Read
//	a.Set(3)     // Write (notifies dependents if changed)
//
// Expr[T] is a derived node computed from its parents:
//
//	sum := bind.Combine(a, b, func(x, y int) int { return x + y })
//	sum.Get() // a.Get() + b.Get(), kept current as a and b change
//
// # Change Gating
//
// Every store runs through a ComparePolicy deciding whether the new
// value counts as a change worth propagating. The default,
// CompareNotEqual, propagates only when the value differs; CompareAlways
// propagates unconditionally. Unrecognized policies fail open and behave
// like CompareAlways.
//
// # Evaluation Policies
//
// EvalInstant (the default) recomputes an expression the moment any
// parent changes; the recomputed result is itself a store, so it fans
// out to the expression's own dependents in the same call stack.
// EvalLazy defers recomputation to the next Get on the expression. A
// lazy expression does not forward the notification to its own
// dependents; a chain of lazy expressions therefore only becomes fresh
// from the point that is actually read (see EvalLazy).
//
// # Concurrency
//
// A binding graph is confined to a single goroutine. Set, Get and the
// notification fan-out all run to completion synchronously, and the
// package takes no locks. Callers that need cross-goroutine access must
// serialize it themselves.
//
// # Lifetime
//
// An expression holds its parents alive (the parent slice is an owning
// reference under Go's GC), while a parent holds only non-owning
// back-references to its dependents. Call Dispose on an expression that
// is no longer needed to remove it from every parent's dependent list;
// until then it keeps being recomputed according to its evaluation
// policy.
package bind
