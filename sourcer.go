package demandstreams

// Source is a producer factory. Each call to Connect builds exactly one fresh
// Subscription bound to the given sink and hands it to the sink via
// OnSubscribe before any value is pushed. A Source does nothing until
// connected.
//
// Stateless sources may be connected any number of times, each connection
// producing an independent Subscription. Stateful sources (see
// sources.FromTrigger) mutate shared factory state across connections by
// design.
type Source[T any] interface {
	Connect(sink Sink[T])
}

// SourceFunc adapts a plain function into a Source.
type SourceFunc[T any] func(sink Sink[T])

// Connect implements Source by calling the function itself.
func (f SourceFunc[T]) Connect(sink Sink[T]) {
	f(sink)
}
