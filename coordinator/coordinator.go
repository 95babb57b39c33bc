// SPDX-License-Identifier: MIT
//
// File: coordinator.go
// Role: Coordinator type, Run/Cancel/Wait, and the paced worker.
//
// Locking:
//
//	opMu serialises Run and Edit and is taken before the others.
//	smu  guards the execution state (run, status). It is only held for short
//	     sections and nothing waits for mu while holding it, so a View
//	     callback may call State or Status.
//	mu   guards the graph. The worker holds it for writing while the engine
//	     mutates and drops it at each step boundary; readers take it for reading.

package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/core"
)

const tracerName = "github.com/katalvlaran/algoviz/coordinator"

// Sentinel errors.
var (
	// ErrAlreadyRunning is returned by Run while another run is active.
	ErrAlreadyRunning = errors.New("coordinator: a run is already active")

	// ErrRunning is returned by Edit while a run is active.
	ErrRunning = errors.New("coordinator: graph is locked by an active run")

	// ErrUnknownAlgorithm is returned by Run for an invalid algorithm.
	ErrUnknownAlgorithm = algorithms.ErrUnknownAlgorithm
)

// Coordinator owns a graph and runs traversals over it one at a time.
type Coordinator struct {
	opMu sync.Mutex

	mu    sync.RWMutex
	graph *core.Graph

	smu    sync.Mutex
	run    *run
	status Status

	seq atomic.Uint64
	hub *hub

	pacing  time.Duration
	log     logr.Logger
	metrics *Metrics
	tracer  trace.Tracer
	onStep  func(Event)
	reset   bool
}

// run is the per-run execution state.
type run struct {
	id     string
	algo   algorithms.Algorithm
	cancel context.CancelFunc
	done   chan struct{}
	steps  atomic.Int64
}

// New wraps g. A nil g is replaced by an empty undirected graph.
func New(g *core.Graph, opts ...Option) *Coordinator {
	if g == nil {
		g = core.NewGraph()
	}
	c := &Coordinator{
		graph:  g,
		hub:    newHub(),
		pacing: DefaultPacing,
		log:    logr.Discard(),
		tracer: otel.Tracer(tracerName),
		reset:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run starts algo on a background worker and returns the run ID without
// waiting. The run is bound to ctx: cancelling ctx has the same effect as
// Cancel.
//
// With reset enabled (the default) the graph is reset before Run returns.
// Running on a graph without a start node completes immediately.
func (c *Coordinator) Run(ctx context.Context, algo algorithms.Algorithm) (string, error) {
	if !algo.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.smu.Lock()
	if c.status.State == Running {
		active := c.status.RunID
		c.smu.Unlock()
		c.metrics.runRejected(algo.String())
		c.log.Info("run rejected", "algorithm", algo.String(), "activeRunID", active)
		return "", fmt.Errorf("%w: %s", ErrAlreadyRunning, active)
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &run{
		id:     uuid.NewString(),
		algo:   algo,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	c.run = r
	c.status = Status{
		State:     Running,
		RunID:     r.id,
		Algorithm: algo,
		Started:   time.Now(),
	}
	c.smu.Unlock()
	c.metrics.runStarted()

	// The run is already claimed, so Edit and Run are rejected while the
	// reset waits for readers to leave.
	if c.reset {
		c.mu.Lock()
		c.graph.Reset()
		c.mu.Unlock()
	}

	go c.work(runCtx, r)

	return r.id, nil
}

// Cancel asks the active run to stop. It returns at once; use Wait to block
// until the run is terminal. No-op when nothing is running.
func (c *Coordinator) Cancel() {
	c.smu.Lock()
	defer c.smu.Unlock()

	if c.status.State != Running || c.run == nil {
		return
	}
	c.status.Cancelled = true
	c.log.Info("cancel requested", "runID", c.run.id)
	c.run.cancel()
}

// Wait blocks until the latest run is terminal or ctx is done. It returns nil
// immediately if no run was ever started.
func (c *Coordinator) Wait(ctx context.Context) error {
	c.smu.Lock()
	r := c.run
	c.smu.Unlock()

	if r == nil {
		return nil
	}
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current execution state.
func (c *Coordinator) State() State {
	c.smu.Lock()
	defer c.smu.Unlock()
	return c.status.State
}

// Status returns a copy of the execution state of the latest run.
func (c *Coordinator) Status() Status {
	c.smu.Lock()
	st := c.status
	if st.State == Running && c.run != nil {
		st.Steps = int(c.run.steps.Load())
	}
	c.smu.Unlock()

	st.Seq = c.seq.Load()
	return st
}

// Seq returns the number of steps applied across all runs. It only grows.
func (c *Coordinator) Seq() uint64 { return c.seq.Load() }

// View calls fn with the graph under the read lock. During a run fn observes
// the graph between two complete steps. fn must not mutate the graph and must
// not call Run or Edit; State, Status and Seq are safe.
func (c *Coordinator) View(fn func(g *core.Graph)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.graph)
}

// Snapshot returns a detached copy of the graph taken under the read lock.
func (c *Coordinator) Snapshot() core.Snapshot {
	var s core.Snapshot
	c.View(func(g *core.Graph) { s = g.Snapshot() })
	return s
}

// Edit calls fn with the graph under the write lock. It returns ErrRunning
// without calling fn while a run is active.
func (c *Coordinator) Edit(fn func(g *core.Graph) error) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.State() == Running {
		return ErrRunning
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn(c.graph)
}

// Subscribe returns a channel receiving every Event published from now on and
// a function that unsubscribes and closes it. Events are dropped for a
// subscriber whose buffer is full. A run's terminal Event is delivered before
// any event of the next run.
func (c *Coordinator) Subscribe(buffer int) (<-chan Event, func()) {
	return c.hub.subscribe(buffer)
}

// work executes one run. It is the only writer of graph state while the run
// is active.
func (c *Coordinator) work(ctx context.Context, r *run) {
	defer r.cancel()

	ctx, span := c.tracer.Start(ctx, "coordinator.Run", trace.WithAttributes(
		attribute.String("algoviz.run_id", r.id),
		attribute.String("algoviz.algorithm", r.algo.String()),
		attribute.Int64("algoviz.pacing_ms", c.pacing.Milliseconds()),
	))

	log := c.log.WithValues("runID", r.id, "algorithm", r.algo.String())
	log.Info("run started", "pacing", c.pacing.String())
	start := time.Now()

	c.mu.Lock()
	sum, err := algorithms.Run(ctx, c.graph, r.algo, func(s core.Step) error {
		return c.step(ctx, r, log, s)
	})
	var invErr error
	if log.V(1).Enabled() {
		invErr = c.graph.Validate()
	}
	c.mu.Unlock()

	if invErr != nil {
		log.Error(invErr, "graph invariant violated after run")
	}

	state := Finished
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		state, err = Cancelled, nil
	}
	elapsed := time.Since(start)
	out := outcome(state, err)

	span.SetAttributes(
		attribute.Int("algoviz.steps", sum.Steps),
		attribute.String("algoviz.outcome", out),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(err, "run failed", "steps", sum.Steps, "duration", elapsed.String())
	} else {
		span.SetStatus(codes.Ok, "")
		log.Info("run ended", "outcome", out, "steps", sum.Steps, "order", sum.Order, "duration", elapsed.String())
	}
	span.End()
	c.metrics.runEnded(r.algo.String(), out, elapsed)

	ev := Event{
		RunID:     r.id,
		Algorithm: r.algo,
		Seq:       c.seq.Load(),
		State:     state,
		Terminal:  true,
	}

	// The terminal event goes out in the same section that releases Running,
	// so the next run cannot publish ahead of it.
	c.smu.Lock()
	c.status.State = state
	c.status.Steps = sum.Steps
	c.status.Cancelled = state == Cancelled
	c.status.Err = err
	c.status.Ended = time.Now()
	dropped := c.hub.publish(ev)
	c.smu.Unlock()

	c.logDropped(log, ev, dropped)
	if c.onStep != nil {
		c.onStep(ev)
	}
	close(r.done)
}

// step is the engine hook. It is entered with mu held for writing, right after
// a complete mutation batch, and returns with mu held again.
func (c *Coordinator) step(ctx context.Context, r *run, log logr.Logger, s core.Step) error {
	r.steps.Add(1)
	ev := Event{
		RunID:     r.id,
		Algorithm: r.algo,
		Seq:       c.seq.Add(1),
		Step:      s,
		State:     Running,
	}

	c.mu.Unlock()
	defer c.mu.Lock()

	c.metrics.step(r.algo.String())
	log.V(1).Info("step", "seq", ev.Seq, "step", s.String())
	c.publish(log, ev)

	return c.pace(ctx)
}

// pace sleeps one pacing interval, waking early on cancellation.
func (c *Coordinator) pace(ctx context.Context) error {
	if c.pacing <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.pacing)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
	return ctx.Err()
}

func (c *Coordinator) publish(log logr.Logger, ev Event) {
	c.logDropped(log, ev, c.hub.publish(ev))
	if c.onStep != nil {
		c.onStep(ev)
	}
}

func (c *Coordinator) logDropped(log logr.Logger, ev Event, dropped int) {
	if dropped > 0 {
		log.V(1).Info("event dropped by slow subscribers", "seq", ev.Seq, "subscribers", dropped)
	}
}
