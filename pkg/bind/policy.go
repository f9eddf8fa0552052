package bind

import "reflect"

// ComparePolicy decides whether a candidate write counts as a change
// worth propagating to dependents.
type ComparePolicy int

const (
	// CompareNotEqual propagates iff the candidate differs from the
	// stored value, judged by the inequality comparator. The default.
	CompareNotEqual ComparePolicy = iota

	// CompareEqual propagates iff the equality comparator denies that
	// the candidate equals the stored value. Distinct from
	// CompareNotEqual only when custom comparators make equality and
	// inequality disagree (partial orders, NaN-bearing types).
	CompareEqual

	// CompareAlways propagates every write, regardless of equality.
	CompareAlways
)

// String returns the policy name. Unknown values render as "always"
// because that is how the engine treats them.
func (p ComparePolicy) String() string {
	switch p {
	case CompareNotEqual:
		return "not-equal"
	case CompareEqual:
		return "equal"
	default:
		return "always"
	}
}

// EvalPolicy decides how an expression reacts when a parent changes.
type EvalPolicy int

const (
	// EvalInstant recomputes immediately on every parent notification.
	// The recomputed result is itself a store, so it fans out to the
	// expression's own dependents in the same call stack. The default.
	EvalInstant EvalPolicy = iota

	// EvalLazy only marks the expression dirty; recomputation is
	// deferred until the next Get. The notification is not forwarded to
	// the expression's own dependents, so a lazy expression that depends
	// on another lazy expression stays clean (and stale) until the inner
	// one is actually read.
	EvalLazy
)

// String returns the policy name.
func (p EvalPolicy) String() string {
	switch p {
	case EvalInstant:
		return "instant"
	case EvalLazy:
		return "lazy"
	default:
		return "unknown"
	}
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for the common comparable kinds and reflect.DeepEqual for
// everything else.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		// Fall back to reflect.DeepEqual for slices, maps, structs, etc.
		return reflect.DeepEqual(a, b)
	}
}
