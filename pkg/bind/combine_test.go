package bind

import (
	"fmt"
	"math"
	"testing"
)

func TestCombineAdd(t *testing.T) {
	a := NewValue(1)
	b := NewValue(2)
	e := Add(a, b)

	if e.Get() != 3 {
		t.Errorf("expected 1 + 2 = 3, got %d", e.Get())
	}

	a.Set(3)
	if e.Get() != 5 {
		t.Errorf("expected 3 + 2 = 5, got %d", e.Get())
	}
}

func TestCombineDefaultPolicyIsInstant(t *testing.T) {
	a := NewValue(1)
	b := NewValue(2)
	e := Combine(a, b, func(x, y int) int { return x * y })

	if e.EvalPolicy() != EvalInstant {
		t.Errorf("Combine policy = %v, want %v", e.EvalPolicy(), EvalInstant)
	}

	a.Set(4)
	if e.Peek() != 8 {
		t.Errorf("expected eager cache 8, got %d", e.Peek())
	}
}

func TestCombineMixedTypes(t *testing.T) {
	count := NewValue(3)
	label := NewValue("items")
	e := Combine(count, label, func(n int, s string) string {
		return fmt.Sprintf("%d %s", n, s)
	})

	if e.Get() != "3 items" {
		t.Errorf("expected %q, got %q", "3 items", e.Get())
	}

	count.Set(5)
	if e.Get() != "5 items" {
		t.Errorf("expected %q, got %q", "5 items", e.Get())
	}
}

func TestCombineOfExpressions(t *testing.T) {
	a := NewValue(1)
	b := NewValue(2)
	c := NewValue(3)

	e := Add(Add(a, b), Add(a, c))
	if e.Get() != 7 {
		t.Errorf("expected (1+2)+(1+3) = 7, got %d", e.Get())
	}

	a.Set(5)
	if e.Get() != 15 {
		t.Errorf("expected (5+2)+(5+3) = 15, got %d", e.Get())
	}
}

func TestMapSin(t *testing.T) {
	a := NewValue(1)
	e := Map(a, func(n int) float64 { return math.Sin(float64(n)) })

	if got := e.Get(); math.Abs(got-math.Sin(1)) > 1e-12 {
		t.Errorf("expected sin(1), got %v", got)
	}

	a.Set(3)
	if got := e.Get(); math.Abs(got-math.Sin(3)) > 1e-12 {
		t.Errorf("expected sin(3), got %v", got)
	}
}

func TestArithmeticHelpers(t *testing.T) {
	a := NewValue(10.0)
	b := NewValue(4.0)

	if got := Sub(a, b).Get(); got != 6.0 {
		t.Errorf("Sub: expected 6, got %v", got)
	}
	if got := Mul(a, b).Get(); got != 40.0 {
		t.Errorf("Mul: expected 40, got %v", got)
	}
	if got := Div(a, b).Get(); got != 2.5 {
		t.Errorf("Div: expected 2.5, got %v", got)
	}
}
