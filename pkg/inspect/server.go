package inspect

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bindwire-dev/bindwire/pkg/bind"
)

// EventKind classifies an engine event.
type EventKind string

const (
	EventWrite     EventKind = "write"
	EventRecompute EventKind = "recompute"
	EventNotify    EventKind = "notify"
)

// Event is one engine occurrence, as exposed on the event endpoints.
type Event struct {
	Seq        uint64    `json:"seq"`
	Time       time.Time `json:"time"`
	Kind       EventKind `json:"kind"`
	NodeID     uint64    `json:"node_id"`
	Node       string    `json:"node,omitempty"`
	Changed    bool      `json:"changed,omitempty"`
	Deferred   bool      `json:"deferred,omitempty"`
	Dependents int       `json:"dependents,omitempty"`
	DurationUS int64     `json:"duration_us,omitempty"`
}

// NodeInfo is one registered node in the snapshot endpoint.
type NodeInfo struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Value         string `json:"value"`
	Writes        int64  `json:"writes"`
	Rejected      int64  `json:"rejected"`
	Recomputes    int64  `json:"recomputes"`
	Notifications int64  `json:"notifications"`
}

type nodeCounters struct {
	writes        int64
	rejected      int64
	recomputes    int64
	notifications int64
}

// Config configures the inspector.
type Config struct {
	// EventLimit bounds the in-memory event log (default: 1024).
	EventLimit int

	// Gatherer backs the /metrics endpoint.
	// Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Option configures the inspector.
type Option func(*Config)

// WithEventLimit bounds the in-memory event log.
func WithEventLimit(n int) Option {
	return func(c *Config) {
		c.EventLimit = n
	}
}

// WithGatherer sets the gatherer backing the /metrics endpoint.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(c *Config) {
		c.Gatherer = g
	}
}

// Server is a development-time inspector for a binding graph.
// It implements bind.Observer.
type Server struct {
	mu       sync.Mutex
	order    []uint64
	names    map[uint64]string
	nodes    map[uint64]bind.Bindable
	counters map[uint64]*nodeCounters
	events   []Event
	seq      uint64

	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader

	limit    int
	gatherer prometheus.Gatherer
}

// NewServer creates an inspector.
func NewServer(opts ...Option) *Server {
	cfg := Config{
		EventLimit: 1024,
		Gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		names:    make(map[uint64]string),
		nodes:    make(map[uint64]bind.Bindable),
		counters: make(map[uint64]*nodeCounters),
		clients:  make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
		limit:    cfg.EventLimit,
		gatherer: cfg.Gatherer,
	}
}

// Register gives a node a human-readable name in snapshots and events.
func (s *Server) Register(name string, n bind.Bindable) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := n.ID()
	if _, known := s.nodes[id]; !known {
		s.order = append(s.order, id)
	}
	s.nodes[id] = n
	s.names[id] = name
}

// NodeWritten implements bind.Observer.
func (s *Server) NodeWritten(id uint64, changed bool) {
	s.record(Event{Kind: EventWrite, NodeID: id, Changed: changed}, func(c *nodeCounters) {
		if changed {
			c.writes++
		} else {
			c.rejected++
		}
	})
}

// NodeRecomputed implements bind.Observer.
func (s *Server) NodeRecomputed(id uint64, deferred bool, d time.Duration) {
	s.record(Event{Kind: EventRecompute, NodeID: id, Deferred: deferred, DurationUS: d.Microseconds()}, func(c *nodeCounters) {
		c.recomputes++
	})
}

// NodeNotified implements bind.Observer.
func (s *Server) NodeNotified(id uint64, dependents int) {
	s.record(Event{Kind: EventNotify, NodeID: id, Dependents: dependents}, func(c *nodeCounters) {
		c.notifications++
	})
}

func (s *Server) record(ev Event, count func(*nodeCounters)) {
	s.mu.Lock()
	s.seq++
	ev.Seq = s.seq
	ev.Time = time.Now()
	ev.Node = s.names[ev.NodeID]

	c, ok := s.counters[ev.NodeID]
	if !ok {
		c = &nodeCounters{}
		s.counters[ev.NodeID] = c
	}
	count(c)

	s.events = append(s.events, ev)
	if len(s.events) > s.limit {
		s.events = s.events[len(s.events)-s.limit:]
	}

	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	if len(conns) == 0 {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("inspect: dropping client: %v", err)
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}
	}
}

// Handler returns the inspector's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/nodes", s.handleNodes)
	r.Get("/events", s.handleEvents)
	r.Get("/events/ws", s.handleWebSocket)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleNodes(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	infos := make([]NodeInfo, 0, len(s.order))
	sampled := make([]bind.Bindable, 0, len(s.order))
	for _, id := range s.order {
		c := s.counters[id]
		if c == nil {
			c = &nodeCounters{}
		}
		infos = append(infos, NodeInfo{
			ID:            id,
			Name:          s.names[id],
			Writes:        c.writes,
			Rejected:      c.rejected,
			Recomputes:    c.recomputes,
			Notifications: c.notifications,
		})
		sampled = append(sampled, s.nodes[id])
	}
	s.mu.Unlock()

	// Values sampled with Peek outside the lock; see package doc.
	for i, n := range sampled {
		infos[i].Value = fmt.Sprintf("%v", n.PeekAny())
	}

	writeJSON(w, infos)
}

func (s *Server) handleEvents(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.Unlock()

	writeJSON(w, events)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// Keep the connection alive until the client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var _ bind.Observer = (*Server)(nil)
