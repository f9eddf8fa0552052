package bind

import "testing"

// Benchmarks for the propagation paths. Rough targets:
// - Value.Get: a couple of ns (plain field read)
// - Value.Set with no dependents: dominated by the comparison gate
// - instant chains: linear in depth, no allocation beyond the args slice

func BenchmarkValueGet(b *testing.B) {
	v := NewValue(42)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Get()
	}
}

func BenchmarkValueSetNoDependents(b *testing.B) {
	v := NewValue(0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v.Set(i)
	}
}

func BenchmarkValueSetRejected(b *testing.B) {
	v := NewValue(7)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v.Set(7)
	}
}

func BenchmarkInstantChainDepth10(b *testing.B) {
	v := NewValue(0)
	var node Node[int] = v
	for i := 0; i < 10; i++ {
		node = Map(node, func(n int) int { return n + 1 })
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v.Set(i)
	}
	_ = node
}

func BenchmarkLazyGetCached(b *testing.B) {
	v := NewValue(1)
	e := NewExpr(sumArgs, v)
	e.SetEvalPolicy(EvalLazy)
	_ = e.Get()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Get()
	}
}

func BenchmarkFanOut100(b *testing.B) {
	v := NewValue(0)
	for i := 0; i < 100; i++ {
		Map(v, func(n int) int { return n * 2 })
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v.Set(i)
	}
}
