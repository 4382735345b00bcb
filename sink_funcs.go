package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// SinkFuncs lets callers assemble a Sink from named functions instead of
// implementing the interface on a type. Nil fields are filled with no-ops by
// Build; a nil Value grants no additional demand.
type SinkFuncs[T any] struct {
	Subscribe func(Subscription)
	Value     func(T) demand.Demand
	Terminal  func(Signal)
}

// Build fills in any nil functions and returns the assembled Sink.
func (f SinkFuncs[T]) Build() Sink[T] {
	if f.Subscribe == nil {
		f.Subscribe = func(Subscription) {}
	}
	if f.Value == nil {
		f.Value = func(T) demand.Demand { return demand.None }
	}
	if f.Terminal == nil {
		f.Terminal = func(Signal) {}
	}
	return &assembledSink[T]{f}
}

type assembledSink[T any] struct {
	funcs SinkFuncs[T]
}

func (s *assembledSink[T]) OnSubscribe(sub Subscription) {
	s.funcs.Subscribe(sub)
}

func (s *assembledSink[T]) OnValue(v T) demand.Demand {
	return s.funcs.Value(v)
}

func (s *assembledSink[T]) OnTerminal(sig Signal) {
	s.funcs.Terminal(sig)
}

// SubscriptionFuncs assembles a Subscription from named functions. Nil fields
// become no-ops.
type SubscriptionFuncs struct {
	RequestFunc func(demand.Demand)
	CancelFunc  func()
}

// Build fills in any nil functions and returns the assembled Subscription.
func (f SubscriptionFuncs) Build() Subscription {
	if f.RequestFunc == nil {
		f.RequestFunc = func(demand.Demand) {}
	}
	if f.CancelFunc == nil {
		f.CancelFunc = func() {}
	}
	return &assembledSubscription{f}
}

type assembledSubscription struct {
	funcs SubscriptionFuncs
}

func (s *assembledSubscription) Request(d demand.Demand) {
	s.funcs.RequestFunc(d)
}

func (s *assembledSubscription) Cancel() {
	s.funcs.CancelFunc()
}
