package bind

// Dependent is anything that can be told one of its dependencies
// changed. Expressions react according to their evaluation policy;
// leaf values never receive the call.
type Dependent interface {
	// DependencyChanged notifies the dependent that a node it depends on
	// accepted a new value.
	DependencyChanged()

	// ID returns the unique identifier of the dependent.
	// Used to remove dependent-list entries at disposal.
	ID() uint64
}

// Bindable is the type-erased view of a node: something that produces a
// current value and accepts dependent registrations. Exactly two
// implementations exist, Value[T] and Expr[T].
type Bindable interface {
	// GetAny returns the current value, first recomputing it if the node
	// is a stale lazy expression.
	GetAny() any

	// PeekAny returns the last stored value without recomputing.
	PeekAny() any

	// ID returns the unique identifier of the node.
	ID() uint64

	attach(Dependent)
	detach(Dependent)
}

// Node is the typed view of a bindable node producing values of type T.
type Node[T any] interface {
	Bindable

	// Get returns the current value.
	Get() T

	// Peek returns the last stored value without recomputing.
	Peek() T
}

// nodeCore carries the state shared by both node variants: the stored
// value, the comparison gate and the ordered dependent list.
type nodeCore[T any] struct {
	id  uint64
	cmp ComparePolicy

	value T

	// eq and neq are optional custom comparators consulted by the
	// comparison policies. When nil the default equality applies.
	eq  func(T, T) bool
	neq func(T, T) bool

	// dependents is notified, in registration order, whenever a store
	// passes the comparison gate. Entries are non-owning back-references;
	// they never keep a dependent alive and are removed at disposal.
	dependents []Dependent
}

// ID returns the unique identifier of the node.
func (n *nodeCore[T]) ID() uint64 {
	return n.id
}

// Peek returns the last stored value without recomputing.
func (n *nodeCore[T]) Peek() T {
	return n.value
}

// PeekAny returns the last stored value without recomputing.
func (n *nodeCore[T]) PeekAny() any {
	return n.value
}

// attach appends a dependent to the notification list. Registering the
// same dependent through two parent positions yields two entries and
// two notifications per change.
func (n *nodeCore[T]) attach(d Dependent) {
	if d == nil {
		return
	}
	n.dependents = append(n.dependents, d)
}

// detach removes every entry for d, preserving the registration order
// of the remaining dependents.
func (n *nodeCore[T]) detach(d Dependent) {
	if d == nil {
		return
	}
	did := d.ID()
	kept := n.dependents[:0]
	for _, existing := range n.dependents {
		if existing.ID() != did {
			kept = append(kept, existing)
		}
	}
	// Clear the tail so removed entries don't linger in the backing array.
	for i := len(kept); i < len(n.dependents); i++ {
		n.dependents[i] = nil
	}
	n.dependents = kept
}

// store runs the comparison gate and, on change, stores the candidate
// and notifies every dependent in registration order. The fan-out is
// synchronous and depth-first: an eager dependent recomputation is
// itself a store, so it recurses to its own dependents before store
// returns.
func (n *nodeCore[T]) store(candidate T) {
	if !n.changed(candidate) {
		observeWrite(n.id, false)
		return
	}
	n.value = candidate
	observeWrite(n.id, true)
	n.notify()
}

func (n *nodeCore[T]) notify() {
	observeNotify(n.id, len(n.dependents))
	for _, d := range n.dependents {
		d.DependencyChanged()
	}
}

// changed applies the comparison policy to the stored value and a
// candidate. Unknown policies fail open: they never silently drop a
// write.
func (n *nodeCore[T]) changed(candidate T) bool {
	switch n.cmp {
	case CompareNotEqual:
		if n.neq != nil {
			return n.neq(n.value, candidate)
		}
		return !n.equals(candidate)
	case CompareEqual:
		return !n.equals(candidate)
	default:
		return true
	}
}

func (n *nodeCore[T]) equals(candidate T) bool {
	if n.eq != nil {
		return n.eq(n.value, candidate)
	}
	return defaultEquals(n.value, candidate)
}
