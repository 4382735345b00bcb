package sinks

import (
	"github.com/elastiflow/demandstreams"
	"github.com/elastiflow/demandstreams/demand"
)

// ForEach returns a Sink that requests unbounded demand and hands every value
// to fn. The terminal signal is dropped; use ForEachSignal to observe it.
func ForEach[T any](fn func(T)) demandstreams.Sink[T] {
	return ForEachSignal(fn, nil)
}

// ForEachSignal is ForEach with a terminal callback. Either callback may be
// nil.
func ForEachSignal[T any](fn func(T), terminal func(demandstreams.Signal)) demandstreams.Sink[T] {
	return demandstreams.SinkFuncs[T]{
		Subscribe: func(sub demandstreams.Subscription) {
			sub.Request(demand.Unbounded())
		},
		Value: func(v T) demand.Demand {
			if fn != nil {
				fn(v)
			}
			return demand.None
		},
		Terminal: func(sig demandstreams.Signal) {
			if terminal != nil {
				terminal(sig)
			}
		},
	}.Build()
}
