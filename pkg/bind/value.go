package bind

// Value is a leaf node holding a settable value of type T.
// Writes run through the node's comparison policy; accepted writes
// notify every dependent synchronously before Set returns.
type Value[T any] struct {
	nodeCore[T]
}

// NewValue creates a value node with the given initial value and the
// default CompareNotEqual policy.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{nodeCore[T]{
		id:    nextID(),
		value: initial,
	}}
}

// Get returns the current value. Reads have no side effects.
func (v *Value[T]) Get() T {
	return v.value
}

// GetAny returns the current value.
func (v *Value[T]) GetAny() any {
	return v.value
}

// Set runs the comparison policy against the current value. If the
// write counts as a change, the new value is stored and every dependent
// is notified in registration order before Set returns. Otherwise
// nothing is mutated and no dependent is notified.
func (v *Value[T]) Set(x T) {
	v.store(x)
}

// DependencyChanged implements Dependent as a no-op: leaves have no
// dependencies, so nothing ever notifies them.
func (v *Value[T]) DependencyChanged() {}

// WithComparePolicy configures the comparison policy and returns the
// value for chaining.
func (v *Value[T]) WithComparePolicy(p ComparePolicy) *Value[T] {
	v.cmp = p
	return v
}

// WithEquals configures a custom equality comparator, consulted by
// CompareNotEqual (when no inequality comparator is set) and
// CompareEqual. Useful for types where reflect.DeepEqual is too
// expensive or has the wrong semantics.
func (v *Value[T]) WithEquals(fn func(T, T) bool) *Value[T] {
	v.eq = fn
	return v
}

// WithNotEquals configures a custom inequality comparator, consulted by
// CompareNotEqual.
func (v *Value[T]) WithNotEquals(fn func(T, T) bool) *Value[T] {
	v.neq = fn
	return v
}

var _ Node[int] = (*Value[int])(nil)
var _ Dependent = (*Value[int])(nil)
