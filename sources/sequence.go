package sources

import (
	"github.com/elastiflow/demandstreams"
)

// sequence is a source that emits consecutive integers from a configured
// start value. How many it emits is the source's own business, independent of
// consumer demand: an even start supplies five values, an odd start three.
type sequence struct {
	start int
}

// FromSequence creates a source of consecutive integers beginning at start.
// The source is stateless: every Connect produces an independent subscription
// that begins again at start.
func FromSequence(start int) demandstreams.Source[int] {
	return &sequence{start: start}
}

// Connect builds a fresh subscription for sink and hands it over before any
// value is pushed.
func (s *sequence) Connect(sink demandstreams.Sink[int]) {
	supply := 3
	if s.start%2 == 0 {
		supply = 5
	}
	sub := &sequenceSubscription{cursor: s.start}
	sub.emitter = emitter[int]{
		sink:      sink,
		remaining: supply,
		next:      sub.nextValue,
	}
	sink.OnSubscribe(sub)
}

type sequenceSubscription struct {
	emitter[int]
	cursor int
}

func (s *sequenceSubscription) nextValue() int {
	v := s.cursor
	s.cursor++
	return v
}
