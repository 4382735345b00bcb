// Package demandstreams provides a synchronous reactive-stream core with
// credit-based flow control, plus composition stages for transforming,
// filtering, deduplicating, flattening, and retrying streams built on it.
//
// The package is built from four collaborating abstractions: demand.Demand is
// the credit a consumer grants, a Subscription is the live producer/consumer
// link enforcing that no more values are pushed than were credited, a Source
// builds one Subscription per connected Sink, and a Sink receives the
// Subscription, the values, and exactly one terminal Signal. Everything runs
// on the caller's stack: a Request call synchronously pushes values until
// supply or credit runs out, and cancellation takes effect before Cancel
// returns.
//
// Below is an example of a pipeline that squares the odd values of an integer
// sequence and drains the result:
//
//	package yourstream
//
//	import (
//		"log/slog"
//
//		"github.com/elastiflow/demandstreams"
//		"github.com/elastiflow/demandstreams/sinks"
//		"github.com/elastiflow/demandstreams/sources"
//	)
//
//	func Run() {
//		odds := demandstreams.Filter( // Keep odd values, crediting upstream for drops
//			sources.FromSequence(7),
//			func(v int) (bool, error) { return v%2 == 1, nil },
//		)
//		squared := demandstreams.Map( // Square each value; demand passes through 1:1
//			odds,
//			func(v int) (int, error) { return v * v, nil },
//		)
//
//		collector := sinks.NewCollector[int]()
//		squared.Connect(collector) // Synchronous: drained before Connect returns
//
//		for _, out := range collector.Values() {
//			slog.Info("received squared output", slog.Int("out", out))
//		}
//		if sig, ok := collector.Terminal(); ok {
//			slog.Info("stream terminated", slog.String("signal", sig.String()))
//		}
//	}
//
// Backpressure is cooperative and single-threaded: a Sink that wants values
// one at a time grants demand.Bounded(1) on subscribe and returns
// demand.Bounded(1) from each OnValue callback. No goroutines, channels, or
// locks are involved anywhere in the core; embedders that share a
// Subscription across threads must add their own synchronization.
package demandstreams
