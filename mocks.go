package demandstreams

import (
	"github.com/stretchr/testify/mock"

	"github.com/elastiflow/demandstreams/demand"
)

// MockSink is a testify mock of the Sink contract, used in tests to assert
// callback ordering and payloads.
type MockSink[T any] struct {
	mock.Mock
}

func NewMockSink[T any]() *MockSink[T] {
	return &MockSink[T]{}
}

func (m *MockSink[T]) OnSubscribe(sub Subscription) {
	m.Called(sub)
}

func (m *MockSink[T]) OnValue(v T) demand.Demand {
	args := m.Called(v)
	return args.Get(0).(demand.Demand)
}

func (m *MockSink[T]) OnTerminal(sig Signal) {
	m.Called(sig)
}
