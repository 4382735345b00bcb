package sources

import (
	"github.com/elastiflow/demandstreams"
)

// array is a source that emits the values of a slice in order.
type array[T any] struct {
	values []T
}

// FromArray creates a source over the given slice. An empty slice is a source
// whose supply is exhausted at construction: it delivers Finished on the very
// first Request call without pushing a value.
func FromArray[T any](values []T) demandstreams.Source[T] {
	return &array[T]{values: values}
}

// Connect builds a fresh subscription for sink reading the slice from the
// beginning.
func (s *array[T]) Connect(sink demandstreams.Sink[T]) {
	sub := &arraySubscription[T]{values: s.values}
	sub.emitter = emitter[T]{
		sink:      sink,
		remaining: len(s.values),
		next:      sub.nextValue,
	}
	sink.OnSubscribe(sub)
}

type arraySubscription[T any] struct {
	emitter[T]
	values []T
	cursor int
}

func (s *arraySubscription[T]) nextValue() T {
	v := s.values[s.cursor]
	s.cursor++
	return v
}
