package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Sink is the consumer side of a stream. A conforming Sink receives exactly
// one OnSubscribe call, then zero or more OnValue calls, then exactly one
// OnTerminal call — unless it cancels the Subscription first, in which case
// no further callbacks arrive at all.
type Sink[T any] interface {
	// OnSubscribe delivers the live Subscription before any value is pushed.
	// The sink should store it and then grant initial demand. Granting zero
	// demand is legal and means "pull nothing yet".
	OnSubscribe(sub Subscription)

	// OnValue processes one value and returns additional demand to grant,
	// possibly zero. The sink may also call Request on its stored
	// Subscription from inside this callback; producers must tolerate the
	// re-entrancy.
	OnValue(v T) demand.Demand

	// OnTerminal delivers the single terminal signal. After it returns the
	// sink must not call back into the Subscription.
	OnTerminal(sig Signal)
}
