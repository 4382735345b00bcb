package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Filter forwards only the values of src for which the predicate holds. A
// dropped value consumed one unit of upstream credit without producing
// output, so the stage returns one replacement credit upstream; downstream
// demand is eventually honored and never exceeded.
//
// A predicate error fails the stream with a FILTER stage error unless
// Params.SkipError is set, in which case the value is consumed and replaced.
func Filter[T any](
	src Source[T],
	filter FilterFunc[T],
	params ...Params,
) Source[T] {
	param := applyParams(params...)
	return SourceFunc[T](func(sink Sink[T]) {
		src.Connect(&filterStage[T]{
			forwarder: forwarder[T]{down: sink},
			filter:    filter,
			param:     param,
		})
	})
}

type filterStage[T any] struct {
	forwarder[T]
	filter FilterFunc[T]
	param  Params
}

func (s *filterStage[T]) OnSubscribe(sub Subscription) {
	s.up = sub
	s.down.OnSubscribe(s)
}

func (s *filterStage[T]) OnValue(v T) demand.Demand {
	pass, err := s.filter(v)
	if err != nil {
		if s.param.SkipError {
			return demand.Bounded(1)
		}
		s.abort(newFilterError(s.param.SegmentName, err))
		return demand.None
	}
	if !pass {
		return demand.Bounded(1)
	}
	return s.down.OnValue(v)
}

func (s *filterStage[T]) OnTerminal(sig Signal) {
	s.terminate(sig)
}
