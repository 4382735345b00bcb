package demandstreams_test

import (
	"github.com/elastiflow/demandstreams"
	"github.com/elastiflow/demandstreams/demand"
)

// probe wraps a source with a transparent stage that records the credit
// requested from it and whether it was canceled, so tests can observe what a
// stage under test does to its upstream.
type probe[T any] struct {
	src      demandstreams.Source[T]
	requests []demand.Demand
	canceled bool
}

func newProbe[T any](src demandstreams.Source[T]) *probe[T] {
	return &probe[T]{src: src}
}

func (p *probe[T]) Connect(sink demandstreams.Sink[T]) {
	p.src.Connect(&probeSink[T]{probe: p, down: sink})
}

// granted sums the bounded credit requested from upstream; unbounded grants
// report as -1.
func (p *probe[T]) granted() int {
	total := 0
	for _, d := range p.requests {
		if d.IsUnbounded() {
			return -1
		}
		total += d.Count()
	}
	return total
}

type probeSink[T any] struct {
	probe *probe[T]
	down  demandstreams.Sink[T]
	up    demandstreams.Subscription
}

func (s *probeSink[T]) OnSubscribe(sub demandstreams.Subscription) {
	s.up = sub
	s.down.OnSubscribe(&probeSubscription[T]{sink: s})
}

func (s *probeSink[T]) OnValue(v T) demand.Demand {
	more := s.down.OnValue(v)
	if !more.IsZero() {
		s.probe.requests = append(s.probe.requests, more)
	}
	return more
}

func (s *probeSink[T]) OnTerminal(sig demandstreams.Signal) {
	s.down.OnTerminal(sig)
}

type probeSubscription[T any] struct {
	sink *probeSink[T]
}

func (s *probeSubscription[T]) Request(d demand.Demand) {
	s.sink.probe.requests = append(s.sink.probe.requests, d)
	s.sink.up.Request(d)
}

func (s *probeSubscription[T]) Cancel() {
	s.sink.probe.canceled = true
	s.sink.up.Cancel()
}
