package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/bindwire-dev/bindwire/pkg/bind"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the binding engine walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd.OutOrStdout())
			return nil
		},
	}
}

func runDemo(w io.Writer) {
	// Instant propagation: the sum is fresh the moment a source changes.
	{
		a := bind.NewValue(1)
		b := bind.NewValue(2)
		e := bind.Add(a, b)
		fmt.Fprintf(w, "%d + %d = %d\n", a.Get(), b.Get(), e.Get())
		a.Set(3)
		fmt.Fprintf(w, "%d + %d = %d\n", a.Get(), b.Get(), e.Get())
	}

	// Lazy evaluation, switched live after construction: the write only
	// marks the expression dirty, and the next read recomputes.
	{
		a := bind.NewValue(1)
		b := bind.NewValue(2)
		e := bind.Add(a, b)
		e.SetEvalPolicy(bind.EvalLazy)
		fmt.Fprintf(w, "%d + %d = %d\n", a.Get(), b.Get(), e.Get())
		a.Set(3)
		fmt.Fprintf(w, "value: %d, dirty: %v\n", e.Peek(), e.Dirty())
		fmt.Fprintf(w, "%d + %d = %d\n", a.Get(), b.Get(), e.Get())
	}

	// Diamond dependency: one source reachable through two paths.
	{
		a := bind.NewValue(1)
		b := bind.NewValue(2)
		c := bind.NewValue(3)
		e := bind.Add(bind.Add(a, b), bind.Add(a, c))
		fmt.Fprintf(w, "%d\n", e.Get())
		a.Set(5)
		fmt.Fprintf(w, "%d\n", e.Get())
	}

	// Unary function composition.
	{
		a := bind.NewValue(1)
		e := bind.Map(a, func(n int) float64 { return math.Sin(float64(n)) })
		fmt.Fprintf(w, "%g\n", e.Get())
		a.Set(3)
		fmt.Fprintf(w, "%g\n", e.Get())
	}
}
