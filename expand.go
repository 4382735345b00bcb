package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Expand is the flat-map stage: each upstream value is expanded into an inner
// source whose values are flattened into the downstream stream. The stage
// holds at most Params.Num concurrently open inner subscriptions (default 1),
// each independently cancelable, and asks upstream for one value per free
// slot.
//
// Demand translation: downstream credit is reserved one unit at a time and
// granted to an inner subscription only when a reservation exists, so the
// flattened stream can never over-deliver. An inner left without credit
// resumes when downstream grants more. Downstream finishes only after
// upstream has finished and every inner has finished; a failure anywhere
// fails downstream and cancels everything else.
func Expand[T any, U any](
	src Source[T],
	expand ExpandFunc[T, U],
	params ...Params,
) Source[U] {
	param := applyParams(params...)
	width := param.Num
	if width < 1 {
		width = 1
	}
	return SourceFunc[U](func(sink Sink[U]) {
		src.Connect(&expandStage[T, U]{
			down:    sink,
			expand:  expand,
			param:   param,
			width:   width,
			pending: demand.None,
		})
	})
}

type expandStage[T any, U any] struct {
	down     Sink[U]
	up       Subscription
	expand   ExpandFunc[T, U]
	param    Params
	width    int
	pending  demand.Demand // downstream credit not yet reserved by an inner
	inners   []*innerLink[T, U]
	inFlight int // upstream values requested but not yet delivered
	upDone   bool
}

func (s *expandStage[T, U]) OnSubscribe(sub Subscription) {
	s.up = sub
	s.down.OnSubscribe(s)
}

func (s *expandStage[T, U]) OnValue(v T) demand.Demand {
	if s.down == nil {
		return demand.None
	}
	s.inFlight--
	inner, err := s.expand(v)
	if err != nil {
		if s.param.SkipError {
			s.inFlight++
			return demand.Bounded(1)
		}
		s.fail(Failed(newExpandError(s.param.SegmentName, err)))
		return demand.None
	}
	l := &innerLink[T, U]{parent: s}
	s.inners = append(s.inners, l)
	inner.Connect(l)
	s.maybeFinish()
	s.topUp()
	return demand.None
}

func (s *expandStage[T, U]) OnTerminal(sig Signal) {
	if s.down == nil {
		return
	}
	if sig.IsFailed() {
		s.fail(sig)
		return
	}
	s.upDone = true
	s.maybeFinish()
}

// Request implements the downstream-facing Subscription. New credit first
// resumes inners stalled on zero credit, then opens upstream slots.
func (s *expandStage[T, U]) Request(d demand.Demand) {
	if s.down == nil {
		return
	}
	s.pending = s.pending.Add(d)
	s.resume()
	s.topUp()
}

// Cancel implements the downstream-facing Subscription: upstream and every
// open inner subscription are canceled.
func (s *expandStage[T, U]) Cancel() {
	if s.down == nil {
		return
	}
	s.down = nil
	s.up.Cancel()
	for _, l := range s.inners {
		if l.sub != nil {
			l.sub.Cancel()
		}
	}
	s.inners = nil
}

// resume grants one reserved credit to each creditless inner, in arrival
// order, while unreserved credit remains. Granting may synchronously push
// values, finish inners, and mutate the inner list; the scan re-checks its
// slot after every grant.
func (s *expandStage[T, U]) resume() {
	for i := 0; i < len(s.inners); i++ {
		if s.down == nil || s.pending.IsZero() {
			return
		}
		l := s.inners[i]
		if l.credit > 0 {
			continue
		}
		s.grant(l)
		if i < len(s.inners) && s.inners[i] != l {
			i--
		}
	}
}

// grant reserves one unit of downstream credit for l and passes it on.
func (s *expandStage[T, U]) grant(l *innerLink[T, U]) {
	s.pending = s.pending.Dec()
	l.credit++
	l.sub.Request(demand.Bounded(1))
}

// topUp asks upstream for one value per free inner slot, but only while
// downstream credit is outstanding: expansion is demand driven.
func (s *expandStage[T, U]) topUp() {
	if s.down == nil || s.upDone || s.pending.IsZero() {
		return
	}
	free := s.width - len(s.inners) - s.inFlight
	if free <= 0 {
		return
	}
	s.inFlight += free
	s.up.Request(demand.Bounded(free))
}

func (s *expandStage[T, U]) maybeFinish() {
	if s.down == nil || !s.upDone || len(s.inners) > 0 {
		return
	}
	down := s.down
	s.down = nil
	down.OnTerminal(Finished())
}

// fail delivers sig downstream once and tears the whole stage down.
func (s *expandStage[T, U]) fail(sig Signal) {
	if s.down == nil {
		return
	}
	down := s.down
	s.down = nil
	s.up.Cancel()
	for _, l := range s.inners {
		if l.sub != nil {
			l.sub.Cancel()
		}
	}
	s.inners = nil
	down.OnTerminal(sig)
}

func (s *expandStage[T, U]) remove(l *innerLink[T, U]) {
	for i, cand := range s.inners {
		if cand == l {
			s.inners = append(s.inners[:i], s.inners[i+1:]...)
			return
		}
	}
}

// innerLink is the stage's sink on one inner subscription.
type innerLink[T any, U any] struct {
	parent *expandStage[T, U]
	sub    Subscription
	credit int // reserved downstream credit held by this inner (0 or 1)
}

func (l *innerLink[T, U]) OnSubscribe(sub Subscription) {
	l.sub = sub
	p := l.parent
	if p.down == nil || p.pending.IsZero() {
		return
	}
	p.grant(l)
}

func (l *innerLink[T, U]) OnValue(u U) demand.Demand {
	p := l.parent
	if p.down == nil {
		return demand.None
	}
	l.credit--
	more := p.down.OnValue(u)
	p.pending = p.pending.Add(more)
	if p.down == nil || p.pending.IsZero() {
		return demand.None
	}
	p.pending = p.pending.Dec()
	l.credit++
	return demand.Bounded(1)
}

func (l *innerLink[T, U]) OnTerminal(sig Signal) {
	p := l.parent
	if p.down == nil {
		return
	}
	l.sub = nil
	p.remove(l)
	if sig.IsFailed() {
		p.fail(sig)
		return
	}
	if l.credit > 0 {
		// Unused reservation returns to the pool.
		p.pending = p.pending.Add(demand.Bounded(l.credit))
		l.credit = 0
	}
	p.maybeFinish()
	p.topUp()
}
