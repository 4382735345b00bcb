package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Map applies a TransformFunc to every value of src, producing a source of
// the transformed values. Map is one-to-one, so demand passes through
// untranslated.
//
// A transform error fails the stream with a MAP stage error wrapping the
// cause, after cancelling upstream. With Params.SkipError the failing value
// is consumed instead and one replacement credit is requested upstream.
func Map[T any, U any](
	src Source[T],
	transform TransformFunc[T, U],
	params ...Params,
) Source[U] {
	param := applyParams(params...)
	return SourceFunc[U](func(sink Sink[U]) {
		src.Connect(&mapStage[T, U]{
			forwarder: forwarder[U]{down: sink},
			transform: transform,
			param:     param,
		})
	})
}

type mapStage[T any, U any] struct {
	forwarder[U]
	transform TransformFunc[T, U]
	param     Params
}

func (s *mapStage[T, U]) OnSubscribe(sub Subscription) {
	s.up = sub
	s.down.OnSubscribe(s)
}

func (s *mapStage[T, U]) OnValue(v T) demand.Demand {
	u, err := s.transform(v)
	if err != nil {
		if s.param.SkipError {
			return demand.Bounded(1)
		}
		s.abort(newMapError(s.param.SegmentName, err))
		return demand.None
	}
	return s.down.OnValue(u)
}

func (s *mapStage[T, U]) OnTerminal(sig Signal) {
	s.terminate(sig)
}
