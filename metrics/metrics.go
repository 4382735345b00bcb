// Package metrics instruments a stream with prometheus counters. The
// instrumented source is a transparent pass-through stage: demand translation
// is identity and every callback is forwarded unchanged.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/elastiflow/demandstreams"
	"github.com/elastiflow/demandstreams/demand"
)

// StreamMetrics holds the counters for one instrumented stream.
type StreamMetrics struct {
	Values    prometheus.Counter
	Requested prometheus.Counter
	Finished  prometheus.Counter
	Failed    prometheus.Counter
	Canceled  prometheus.Counter
}

// NewStreamMetrics builds and registers the counter set for the named stream.
func NewStreamMetrics(reg prometheus.Registerer, stream string) *StreamMetrics {
	labels := prometheus.Labels{"stream": stream}
	m := &StreamMetrics{
		Values: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "demandstreams_values_emitted_total",
			Help:        "Values pushed to the downstream sink.",
			ConstLabels: labels,
		}),
		Requested: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "demandstreams_credit_requested_total",
			Help:        "Bounded credit granted by the downstream sink.",
			ConstLabels: labels,
		}),
		Finished: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "demandstreams_finished_total",
			Help:        "Subscriptions that completed normally.",
			ConstLabels: labels,
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "demandstreams_failed_total",
			Help:        "Subscriptions that terminated with a failure.",
			ConstLabels: labels,
		}),
		Canceled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "demandstreams_canceled_total",
			Help:        "Subscriptions canceled by the downstream sink.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.Values, m.Requested, m.Finished, m.Failed, m.Canceled)
	return m
}

// Instrument wraps src so every subscription built from it reports to a
// counter set registered with reg under the given stream name.
func Instrument[T any](
	src demandstreams.Source[T],
	reg prometheus.Registerer,
	stream string,
) demandstreams.Source[T] {
	m := NewStreamMetrics(reg, stream)
	return demandstreams.SourceFunc[T](func(sink demandstreams.Sink[T]) {
		src.Connect(&instrumentedSink[T]{down: sink, m: m})
	})
}

type instrumentedSink[T any] struct {
	down demandstreams.Sink[T]
	m    *StreamMetrics
	done bool
}

func (s *instrumentedSink[T]) OnSubscribe(sub demandstreams.Subscription) {
	s.down.OnSubscribe(&instrumentedSubscription[T]{up: sub, sink: s})
}

func (s *instrumentedSink[T]) OnValue(v T) demand.Demand {
	s.m.Values.Inc()
	more := s.down.OnValue(v)
	s.m.countCredit(more)
	return more
}

func (s *instrumentedSink[T]) OnTerminal(sig demandstreams.Signal) {
	s.done = true
	if sig.IsFailed() {
		s.m.Failed.Inc()
	} else {
		s.m.Finished.Inc()
	}
	s.down.OnTerminal(sig)
}

type instrumentedSubscription[T any] struct {
	up       demandstreams.Subscription
	sink     *instrumentedSink[T]
	canceled bool
}

func (s *instrumentedSubscription[T]) Request(d demand.Demand) {
	if !s.canceled && !s.sink.done {
		s.sink.m.countCredit(d)
	}
	s.up.Request(d)
}

// Cancel counts only the first effective cancellation: repeated cancels and
// cancels after the terminal signal are protocol no-ops and stay invisible.
func (s *instrumentedSubscription[T]) Cancel() {
	if !s.canceled && !s.sink.done {
		s.sink.m.Canceled.Inc()
	}
	s.canceled = true
	s.up.Cancel()
}

// countCredit counts bounded credit only: unbounded demand has no meaningful
// unit to add.
func (m *StreamMetrics) countCredit(d demand.Demand) {
	if d.IsUnbounded() || d.IsZero() {
		return
	}
	m.Requested.Add(float64(d.Count()))
}
