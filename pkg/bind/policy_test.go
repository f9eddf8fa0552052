package bind

import "testing"

func TestComparePolicyString(t *testing.T) {
	cases := []struct {
		policy ComparePolicy
		want   string
	}{
		{CompareNotEqual, "not-equal"},
		{CompareEqual, "equal"},
		{CompareAlways, "always"},
		{ComparePolicy(42), "always"},
	}
	for _, tc := range cases {
		if got := tc.policy.String(); got != tc.want {
			t.Errorf("ComparePolicy(%d).String() = %q, want %q", int(tc.policy), got, tc.want)
		}
	}
}

func TestEvalPolicyString(t *testing.T) {
	cases := []struct {
		policy EvalPolicy
		want   string
	}{
		{EvalInstant, "instant"},
		{EvalLazy, "lazy"},
		{EvalPolicy(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.policy.String(); got != tc.want {
			t.Errorf("EvalPolicy(%d).String() = %q, want %q", int(tc.policy), got, tc.want)
		}
	}
}

func TestDefaultEqualsKinds(t *testing.T) {
	if !defaultEquals(3, 3) || defaultEquals(3, 4) {
		t.Error("int equality broken")
	}
	if !defaultEquals("a", "a") || defaultEquals("a", "b") {
		t.Error("string equality broken")
	}
	if !defaultEquals(1.5, 1.5) || defaultEquals(1.5, 2.5) {
		t.Error("float64 equality broken")
	}
	if !defaultEquals(true, true) || defaultEquals(true, false) {
		t.Error("bool equality broken")
	}
	if !defaultEquals([]int{1, 2}, []int{1, 2}) || defaultEquals([]int{1}, []int{2}) {
		t.Error("DeepEqual fallback broken")
	}
}
