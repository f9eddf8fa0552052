package main

import (
	"log"
	"math"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/bindwire-dev/bindwire/pkg/bind"
	"github.com/bindwire-dev/bindwire/pkg/inspect"
	"github.com/bindwire-dev/bindwire/pkg/metrics"
)

func serveCmd() *cobra.Command {
	var addr string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph inspector over HTTP",
		Long: `Builds a small live binding graph, mutates it on a ticker and
serves the inspector: /nodes, /events, /events/ws and /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, interval)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8090", "listen address")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "mutation interval")
	return cmd
}

// teeObserver fans engine events out to several observers.
type teeObserver []bind.Observer

func (t teeObserver) NodeWritten(id uint64, changed bool) {
	for _, o := range t {
		o.NodeWritten(id, changed)
	}
}

func (t teeObserver) NodeRecomputed(id uint64, deferred bool, d time.Duration) {
	for _, o := range t {
		o.NodeRecomputed(id, deferred, d)
	}
}

func (t teeObserver) NodeNotified(id uint64, dependents int) {
	for _, o := range t {
		o.NodeNotified(id, dependents)
	}
}

func runServe(addr string, interval time.Duration) error {
	insp := inspect.NewServer()
	prom := metrics.New()
	bind.SetObserver(teeObserver{insp, prom})

	// Demo graph: a ticking counter with eager and lazy derivations.
	counter := bind.NewValue(0)
	doubled := bind.Map(counter, func(n int) int { return n * 2 })
	wave := bind.Map(counter, func(n int) float64 { return math.Sin(float64(n) / 10) })
	parity := bind.Map(counter, func(n int) int { return n % 2 })
	lazySum := bind.Add(doubled, parity)
	lazySum.SetEvalPolicy(bind.EvalLazy)

	insp.Register("counter", counter)
	insp.Register("doubled", doubled)
	insp.Register("wave", wave)
	insp.Register("parity", parity)
	insp.Register("lazy_sum", lazySum)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		i := 0
		for range ticker.C {
			i++
			counter.Set(i)
			if i%5 == 0 {
				_ = lazySum.Get()
			}
		}
	}()

	log.Printf("inspector listening on %s", addr)
	return http.ListenAndServe(addr, insp.Handler())
}
