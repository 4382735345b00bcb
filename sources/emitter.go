package sources

import (
	"github.com/elastiflow/demandstreams"
	"github.com/elastiflow/demandstreams/demand"
)

// emitter is the producer-side credit pump shared by the concrete sources in
// this package. It owns the subscription state the protocol requires: the
// retained sink (cleared exactly once, on cancel or terminal delivery), the
// producer's own remaining supply, and the consumer's unfulfilled credit.
//
// The fulfillment loop is iterative on purpose: a sink may call Request again
// from inside OnValue, and the re-entrant call must only top up the shared
// credit counter, never start a second loop. Re-entrancy therefore grows the
// trip count of the one running loop instead of the call stack.
type emitter[T any] struct {
	sink      demandstreams.Sink[T]
	requested demand.Demand
	remaining int
	pumping   bool
	next      func() T
}

// Request implements demandstreams.Subscription for every source built on the
// emitter. It pushes as many values as both the remaining supply and the
// granted credit allow, then delivers Finished once the supply is exhausted.
func (e *emitter[T]) Request(d demand.Demand) {
	if e.sink == nil {
		return
	}
	e.requested = e.requested.Add(d)
	if e.pumping {
		return
	}
	e.pumping = true
	defer func() { e.pumping = false }()

	for e.sink != nil && e.remaining > 0 && !e.requested.IsZero() {
		e.requested = e.requested.Dec()
		e.remaining--
		more := e.sink.OnValue(e.next())
		if e.sink == nil {
			// Canceled from inside the callback.
			return
		}
		e.requested = e.requested.Add(more)
	}

	// Supply exhaustion is observable without consuming credit, so an
	// exhausted source finishes on its first Request call even when that
	// call granted nothing.
	if e.sink != nil && e.remaining == 0 {
		sink := e.sink
		e.sink = nil
		sink.OnTerminal(demandstreams.Finished())
	}
}

// Cancel implements demandstreams.Subscription. Idempotent; dropping the sink
// reference is the whole of cancellation.
func (e *emitter[T]) Cancel() {
	e.sink = nil
}

// fail delivers a Failed terminal and makes the emitter inert. No-op once the
// sink reference is gone.
func (e *emitter[T]) fail(err error) {
	if e.sink == nil {
		return
	}
	sink := e.sink
	e.sink = nil
	sink.OnTerminal(demandstreams.Failed(err))
}
