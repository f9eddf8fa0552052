package bind

import (
	"math"
	"testing"
)

func TestValueBasic(t *testing.T) {
	v := NewValue(0)

	if v.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", v.Get())
	}

	v.Set(5)
	if v.Get() != 5 {
		t.Errorf("expected value 5, got %d", v.Get())
	}
}

func TestValueIdempotentRead(t *testing.T) {
	v := NewValue("hello")

	first := v.Get()
	second := v.Get()
	if first != second {
		t.Errorf("two reads without a write disagree: %q vs %q", first, second)
	}
}

func TestValueNotEqualGating(t *testing.T) {
	v := NewValue(7)
	dep := newTestDependent()
	v.attach(dep)

	// Writing the same value must not notify.
	v.Set(7)
	if dep.count != 0 {
		t.Errorf("equal write notified %d dependents, want 0", dep.count)
	}
	if v.Get() != 7 {
		t.Errorf("rejected write mutated value to %d", v.Get())
	}

	// Writing a different value must notify exactly once.
	v.Set(8)
	if dep.count != 1 {
		t.Errorf("changed write produced %d notifications, want 1", dep.count)
	}
}

func TestValueAlwaysPolicy(t *testing.T) {
	v := NewValue(7).WithComparePolicy(CompareAlways)
	dep := newTestDependent()
	v.attach(dep)

	v.Set(7)
	v.Set(7)
	if dep.count != 2 {
		t.Errorf("CompareAlways produced %d notifications, want 2", dep.count)
	}
}

func TestValueUnknownPolicyFailsOpen(t *testing.T) {
	v := NewValue(7).WithComparePolicy(ComparePolicy(99))
	dep := newTestDependent()
	v.attach(dep)

	v.Set(7)
	if dep.count != 1 {
		t.Errorf("unknown policy dropped a write: %d notifications, want 1", dep.count)
	}
}

func TestValueEqualPolicyWithCustomComparators(t *testing.T) {
	// NaN is the classic type where == and != are not logical
	// complements once comparators diverge: model a comparator pair
	// where neither a == b nor a != b holds for NaN.
	eq := func(a, b float64) bool { return a == b }
	neq := func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return false
		}
		return a != b
	}

	nan := math.NaN()

	notEqual := NewValue(nan).WithEquals(eq).WithNotEquals(neq)
	depNE := newTestDependent()
	notEqual.attach(depNE)
	notEqual.Set(nan)
	if depNE.count != 0 {
		t.Errorf("CompareNotEqual: NaN write notified %d dependents, want 0", depNE.count)
	}

	equal := NewValue(nan).WithComparePolicy(CompareEqual).WithEquals(eq).WithNotEquals(neq)
	depEQ := newTestDependent()
	equal.attach(depEQ)
	equal.Set(nan)
	if depEQ.count != 1 {
		t.Errorf("CompareEqual: NaN write notified %d dependents, want 1", depEQ.count)
	}
}

func TestValueNotificationOrder(t *testing.T) {
	v := NewValue(0)
	var order []string
	v.attach(newOrderedDependent("first", &order))
	v.attach(newOrderedDependent("second", &order))
	v.attach(newOrderedDependent("third", &order))

	v.Set(1)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("notified %d dependents, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("notification %d went to %q, want %q", i, order[i], want[i])
		}
	}
}

func TestValueDetachRemovesAllEntries(t *testing.T) {
	v := NewValue(0)
	dep := newTestDependent()
	other := newTestDependent()
	v.attach(dep)
	v.attach(other)
	v.attach(dep)

	v.Set(1)
	if dep.count != 2 {
		t.Errorf("doubly registered dependent got %d notifications, want 2", dep.count)
	}

	v.detach(dep)
	v.Set(2)
	if dep.count != 2 {
		t.Errorf("detached dependent still notified: count %d", dep.count)
	}
	if other.count != 2 {
		t.Errorf("unrelated dependent got %d notifications, want 2", other.count)
	}
}

func TestValueDeepEqualFallback(t *testing.T) {
	v := NewValue([]int{1, 2, 3})
	dep := newTestDependent()
	v.attach(dep)

	v.Set([]int{1, 2, 3})
	if dep.count != 0 {
		t.Errorf("deep-equal slice write notified %d dependents, want 0", dep.count)
	}

	v.Set([]int{1, 2, 4})
	if dep.count != 1 {
		t.Errorf("changed slice write notified %d dependents, want 1", dep.count)
	}
}
