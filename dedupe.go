package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Dedupe suppresses consecutive duplicate values of src. A suppressed value
// returns one replacement credit upstream, like a filtered value.
func Dedupe[T comparable](src Source[T], params ...Params) Source[T] {
	return DedupeBy(src, func(v T) (T, error) { return v, nil }, params...)
}

// DedupeBy suppresses consecutive values of src whose derived keys are equal.
// A key error fails the stream with a DEDUPE stage error unless
// Params.SkipError is set.
func DedupeBy[T any, K comparable](
	src Source[T],
	key KeyFunc[T, K],
	params ...Params,
) Source[T] {
	param := applyParams(params...)
	return SourceFunc[T](func(sink Sink[T]) {
		src.Connect(&dedupeStage[T, K]{
			forwarder: forwarder[T]{down: sink},
			key:       key,
			param:     param,
		})
	})
}

type dedupeStage[T any, K comparable] struct {
	forwarder[T]
	key   KeyFunc[T, K]
	last  K
	seen  bool
	param Params
}

func (s *dedupeStage[T, K]) OnSubscribe(sub Subscription) {
	s.up = sub
	s.down.OnSubscribe(s)
}

func (s *dedupeStage[T, K]) OnValue(v T) demand.Demand {
	k, err := s.key(v)
	if err != nil {
		if s.param.SkipError {
			return demand.Bounded(1)
		}
		s.abort(newDedupeError(s.param.SegmentName, err))
		return demand.None
	}
	if s.seen && k == s.last {
		return demand.Bounded(1)
	}
	s.seen = true
	s.last = k
	return s.down.OnValue(v)
}

func (s *dedupeStage[T, K]) OnTerminal(sig Signal) {
	s.terminate(sig)
}
