// SPDX-License-Identifier: MIT

// Package parallel layers concurrency on top of the synchronous numeric
// packages.
//
// TransformIterator maps a forward Source through a function while keeping a
// bounded window of transform tasks in flight. Tasks start as soon as they
// enter the window and always run to completion; the consumer blocks only
// when it asks for a result that is not ready yet. Each task sees one input
// element and produces one output, so the window needs no locking.
//
// ForEach and Map are the context-aware counterparts for indexed work, built
// on errgroup with a concurrency limit.
package parallel

import "github.com/katalvlaran/linalg/logger"

// Source is a forward cursor. strided.Iterator satisfies it.
type Source[T any] interface {
	IsValid() bool
	Get() T
	Next()
}

// TransformIterator yields fn(x) for every x of a Source, in source order.
type TransformIterator[In, Out any] struct {
	src   Source[In]
	fn    func(In) Out
	slots []chan Out

	current int // slot holding the result Get returns
	live    int // slots whose task has not been consumed

	out   Out
	ready bool
}

// NewTransformIterator starts up to MaxTasks transforms from src immediately.
// src is advanced as tasks are issued and must not be used by the caller
// afterwards.
func NewTransformIterator[In, Out any](src Source[In], fn func(In) Out, opts ...Option) *TransformIterator[In, Out] {
	o := gatherOptions(opts...)
	it := &TransformIterator[In, Out]{src: src, fn: fn, slots: make([]chan Out, 0, o.maxTasks)}
	for len(it.slots) < o.maxTasks && src.IsValid() {
		it.slots = append(it.slots, it.launch())
	}
	it.live = len(it.slots)
	logger.Sugar().Debugw("parallel transform started", "window", o.maxTasks, "inFlight", it.live)

	return it
}

// launch starts fn on the current source element and advances the source.
func (it *TransformIterator[In, Out]) launch() chan Out {
	ch := make(chan Out, 1)
	go func(x In) { ch <- it.fn(x) }(it.src.Get())
	it.src.Next()

	return ch
}

// IsValid reports whether Get may be called. An empty source is never valid.
func (it *TransformIterator[In, Out]) IsValid() bool { return it.live > 0 }

// Get returns the current result, waiting for its task if needed.
// Repeated calls return the same value.
func (it *TransformIterator[In, Out]) Get() Out {
	if !it.ready {
		it.out = <-it.slots[it.current]
		it.ready = true
	}

	return it.out
}

// Next moves to the following result and refills the freed slot from the
// source without waiting. A result never fetched with Get is dropped.
func (it *TransformIterator[In, Out]) Next() {
	if !it.IsValid() {
		return
	}
	it.ready = false
	if it.src.IsValid() {
		it.slots[it.current] = it.launch()
	} else {
		it.live--
	}
	it.current = (it.current + 1) % len(it.slots)
}

// Collect drains it into a slice.
func Collect[In, Out any](it *TransformIterator[In, Out]) []Out {
	var out []Out
	for ; it.IsValid(); it.Next() {
		out = append(out, it.Get())
	}

	return out
}
