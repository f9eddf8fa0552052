// Package inspect provides a development-time HTTP inspector for a
// binding graph: a JSON snapshot of registered nodes, a log of engine
// events, a WebSocket stream of events as they happen, and a Prometheus
// metrics endpoint.
//
// The inspector attaches to the engine through bind.Observer; it keeps
// its own event log under a lock, so HTTP goroutines never walk the
// live graph. The one exception is the node snapshot, which samples
// values with PeekAny: if the graph is being mutated while a snapshot
// is taken, a value may be torn. This is a development tool; serve it
// from the goroutine owning the graph or accept that caveat.
//
//	insp := inspect.NewServer()
//	insp.Register("temperature", temp)
//	bind.SetObserver(insp)
//	http.ListenAndServe(":8090", insp.Handler())
package inspect
