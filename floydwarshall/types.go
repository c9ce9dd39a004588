// SPDX-License-Identifier: MIT

// Package floydwarshall defines core types and configuration options for the
// generic all-pairs shortest-path engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph is nil.
//	– ErrNilWeight         if the provided weight function is nil.
//	– ErrNilRelaxer        if the provided relaxer is nil.
//	– ErrVertexNotFound    if a query or an edge names a vertex outside the graph.
//	– ErrNegativeCycle     if the relaxation pass left a diagonal better than identity.
//	– ErrCancelled         if Compute observed cancellation at a checkpoint.
//	– ErrNotComputed       if a query is issued without a completed Compute.
//	– ErrInconsistentPath  if path reconstruction revisits an intermediate vertex.
package floydwarshall

import (
	"errors"
	"io"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil graph was passed to New.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNilWeight indicates that a nil weight function was passed to New.
	ErrNilWeight = errors.New("floydwarshall: weight function is nil")

	// ErrNilRelaxer indicates that a nil relaxer was passed to New.
	ErrNilRelaxer = errors.New("floydwarshall: relaxer is nil")

	// ErrVertexNotFound indicates a vertex that is not part of the computed graph.
	ErrVertexNotFound = errors.New("floydwarshall: vertex not found in graph")

	// ErrNegativeCycle indicates a cycle whose combined cost improves on the identity.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

	// ErrCancelled indicates that Compute stopped at a cancellation checkpoint.
	// The store is left incomplete and every query fails with ErrNotComputed.
	ErrCancelled = errors.New("floydwarshall: computation cancelled")

	// ErrNotComputed indicates a query against an engine without a completed run.
	ErrNotComputed = errors.New("floydwarshall: no completed computation")

	// ErrInconsistentPath indicates that reconstruction met the same intermediate
	// vertex twice, which means the store is structurally broken.
	ErrInconsistentPath = errors.New("floydwarshall: inconsistent path records")
)

// Cost is the set of numeric domains the engine can combine and compare.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is anything exposing its directed endpoints.
type Edge[V comparable] interface {
	Source() V
	Target() V
}

// Graph is the read-only view the engine consumes: an enumerable vertex set
// and an enumerable edge set. Enumeration order drives tie-breaking, so it
// should be stable between calls.
type Graph[V comparable, E Edge[V]] interface {
	Vertices() []V
	Edges() []E
}

// WeightFunc maps an edge to its cost.
type WeightFunc[E any, C Cost] func(e E) C

// State is the lifecycle position of an Engine.
type State int

const (
	// StateIdle means no computation has started, or the last one was rejected.
	StateIdle State = iota

	// StateInitializing means direct edges and identity records are being stored.
	StateInitializing

	// StateRelaxing means the k → i → j dynamic program is running.
	StateRelaxing

	// StateCycleCheck means the diagonal is being scanned for negative cycles.
	StateCycleCheck

	// StateDone means the store is complete and queries are valid.
	StateDone

	// StateCancelled means a checkpoint observed cancellation (terminal).
	StateCancelled

	// StateNegativeCycle means the run failed with ErrNegativeCycle (terminal).
	StateNegativeCycle
)

var stateNames = [...]string{
	StateIdle:          "idle",
	StateInitializing:  "initializing",
	StateRelaxing:      "relaxing",
	StateCycleCheck:    "cycle-check",
	StateDone:          "done",
	StateCancelled:     "cancelled",
	StateNegativeCycle: "negative-cycle",
}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Options configures the behavior of an Engine.
//
// CycleCheck – scan the diagonal after relaxation and fail with ErrNegativeCycle.
// Logger     – receives state transitions (Debug) and negative cycles (Warn).
type Options struct {
	CycleCheck bool
	Logger     *slog.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger routes engine diagnostics to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithoutCycleCheck disables the post-relaxation negative-cycle scan. Use it
// with relaxers whose "worse than identity" notion is meaningless.
func WithoutCycleCheck() Option {
	return func(o *Options) {
		o.CycleCheck = false
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
//
// Defaults:
//   - CycleCheck: true.
//   - Logger:     a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		CycleCheck: true,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
