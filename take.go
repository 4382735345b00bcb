package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Take forwards at most Params.Num values of src, then cancels upstream and
// finishes downstream. The stage translates demand: it never hands upstream
// more credit than it can still forward, so the source is not asked to
// produce values Take would only discard.
func Take[T any](src Source[T], params ...Params) Source[T] {
	param := applyParams(params...)
	return SourceFunc[T](func(sink Sink[T]) {
		src.Connect(&takeStage[T]{
			forwarder: forwarder[T]{down: sink},
			total:     param.Num,
		})
	})
}

type takeStage[T any] struct {
	forwarder[T]
	total   int // values to forward in this subscription's lifetime
	granted int // upstream credit handed out so far
	taken   int // values forwarded so far
}

func (s *takeStage[T]) OnSubscribe(sub Subscription) {
	s.up = sub
	s.down.OnSubscribe(s)
}

// Request caps downstream credit at what the stage may still forward. A Take
// of zero is supply exhausted at construction: it finishes on the first
// Request without consuming anything.
func (s *takeStage[T]) Request(d demand.Demand) {
	if s.down == nil {
		return
	}
	if s.total <= 0 {
		s.up.Cancel()
		s.terminate(Finished())
		return
	}
	if n := s.clamp(d); n > 0 {
		s.granted += n
		s.up.Request(demand.Bounded(n))
	}
}

func (s *takeStage[T]) OnValue(v T) demand.Demand {
	s.taken++
	more := s.down.OnValue(v)
	if s.taken >= s.total {
		if s.down != nil {
			s.up.Cancel()
			s.terminate(Finished())
		}
		return demand.None
	}
	if s.down == nil {
		return demand.None
	}
	if n := s.clamp(more); n > 0 {
		s.granted += n
		return demand.Bounded(n)
	}
	return demand.None
}

func (s *takeStage[T]) OnTerminal(sig Signal) {
	s.terminate(sig)
}

// clamp bounds a downstream grant by the credit the stage may still pass on.
func (s *takeStage[T]) clamp(d demand.Demand) int {
	room := s.total - s.granted
	if room <= 0 {
		return 0
	}
	if !d.IsUnbounded() && d.Count() < room {
		return d.Count()
	}
	return room
}
