package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Subscription is the live link between one producer and one consumer. It is
// owned by the producer side and enforces that no more values are pushed than
// the consumer has credited.
type Subscription interface {
	// Request grants additional credit. The producer synchronously pushes as
	// many values as both its own remaining supply and the cumulative
	// unfulfilled credit allow, in production order. When the supply runs out
	// the Subscription delivers Finished exactly once and becomes inert;
	// Request calls against an inert Subscription are silently ignored.
	Request(d demand.Demand)

	// Cancel drops the producer's reference to the sink. Idempotent. After
	// Cancel returns, no further values or terminal signals are delivered.
	// Cancellation is not completion and not failure.
	Cancel()
}
