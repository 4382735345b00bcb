package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elastiflow/demandstreams"
	"github.com/elastiflow/demandstreams/demand"
	"github.com/elastiflow/demandstreams/sinks"
)

func TestFromSequence_Determinism(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  []int
	}{
		{
			name:  "odd start supplies three",
			start: 7,
			want:  []int{7, 8, 9},
		},
		{
			name:  "even start supplies five",
			start: 4,
			want:  []int{4, 5, 6, 7, 8},
		},
		{
			name:  "negative odd start supplies three",
			start: -3,
			want:  []int{-3, -2, -1},
		},
		{
			name:  "negative even start supplies five",
			start: -4,
			want:  []int{-4, -3, -2, -1, 0},
		},
		{
			name:  "zero start supplies five",
			start: 0,
			want:  []int{0, 1, 2, 3, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := sinks.NewCollector[int]()
			FromSequence(tt.start).Connect(collector)

			assert.Equal(t, tt.want, collector.Values())
			sig, ok := collector.Terminal()
			assert.True(t, ok)
			assert.True(t, sig.IsFinished())
		})
	}
}

func TestFromSequence_PartialDemand(t *testing.T) {
	collector := sinks.NewCollectorWithDemand[int](demand.Bounded(1), demand.None)
	FromSequence(7).Connect(collector)

	assert.Equal(t, []int{7}, collector.Values())

	collector.Request(demand.Bounded(1))
	assert.Equal(t, []int{7, 8}, collector.Values())

	collector.Request(demand.Bounded(1))
	assert.Equal(t, []int{7, 8, 9}, collector.Values())
	sig, ok := collector.Terminal()
	assert.True(t, ok)
	assert.True(t, sig.IsFinished())
}

func TestFromSequence_DemandConservation(t *testing.T) {
	collector := sinks.NewCollectorWithDemand[int](demand.Bounded(2), demand.None)
	FromSequence(7).Connect(collector)

	// Two credits granted, so exactly two values and no terminal yet.
	assert.Equal(t, []int{7, 8}, collector.Values())
	_, ok := collector.Terminal()
	assert.False(t, ok)

	// Excess credit is fine: supply caps delivery at one more value.
	collector.Request(demand.Bounded(10))
	assert.Equal(t, []int{7, 8, 9}, collector.Values())
	sig, ok := collector.Terminal()
	assert.True(t, ok)
	assert.True(t, sig.IsFinished())
}

func TestFromSequence_ZeroInitialDemand(t *testing.T) {
	collector := sinks.NewCollectorWithDemand[int](demand.None, demand.None)
	FromSequence(7).Connect(collector)

	assert.Empty(t, collector.Values())
	_, ok := collector.Terminal()
	assert.False(t, ok)
}

func TestFromSequence_PerValueReplenishment(t *testing.T) {
	collector := sinks.NewCollectorWithDemand[int](demand.Bounded(1), demand.Bounded(1))
	FromSequence(4).Connect(collector)

	// Each OnValue returns one more credit, draining the whole supply.
	assert.Equal(t, []int{4, 5, 6, 7, 8}, collector.Values())
	sig, ok := collector.Terminal()
	assert.True(t, ok)
	assert.True(t, sig.IsFinished())
}

func TestFromSequence_ReentrantRequest(t *testing.T) {
	var sub demandstreams.Subscription
	var got []int
	sink := demandstreams.SinkFuncs[int]{
		Subscribe: func(s demandstreams.Subscription) {
			sub = s
			s.Request(demand.Bounded(1))
		},
		Value: func(v int) demand.Demand {
			got = append(got, v)
			// Re-enter the fulfillment loop instead of returning demand.
			sub.Request(demand.Bounded(1))
			return demand.None
		},
	}.Build()

	FromSequence(4).Connect(sink)

	assert.Equal(t, []int{4, 5, 6, 7, 8}, got)
}

func TestFromSequence_CancelStopsDelivery(t *testing.T) {
	collector := sinks.NewCollectorWithDemand[int](demand.Bounded(1), demand.None)
	FromSequence(7).Connect(collector)
	assert.Equal(t, []int{7}, collector.Values())

	collector.Cancel()
	collector.Request(demand.Unbounded())

	assert.Equal(t, []int{7}, collector.Values())
	_, ok := collector.Terminal()
	assert.False(t, ok, "cancellation is not a terminal signal")
}

func TestFromSequence_CancelIdempotent(t *testing.T) {
	collector := sinks.NewCollectorWithDemand[int](demand.Bounded(1), demand.None)
	FromSequence(7).Connect(collector)

	collector.Cancel()
	assert.NotPanics(t, func() {
		collector.Cancel()
		collector.Cancel()
	})
	assert.Equal(t, []int{7}, collector.Values())
}

func TestFromSequence_CancelInsideOnValue(t *testing.T) {
	var sub demandstreams.Subscription
	var got []int
	var terminals int
	sink := demandstreams.SinkFuncs[int]{
		Subscribe: func(s demandstreams.Subscription) {
			sub = s
			s.Request(demand.Unbounded())
		},
		Value: func(v int) demand.Demand {
			got = append(got, v)
			sub.Cancel()
			return demand.Unbounded()
		},
		Terminal: func(demandstreams.Signal) {
			terminals++
		},
	}.Build()

	FromSequence(4).Connect(sink)

	assert.Equal(t, []int{4}, got)
	assert.Zero(t, terminals)
}

func TestFromSequence_SingleTerminal(t *testing.T) {
	var terminals int
	var sub demandstreams.Subscription
	sink := demandstreams.SinkFuncs[int]{
		Subscribe: func(s demandstreams.Subscription) {
			sub = s
			s.Request(demand.Unbounded())
		},
		Terminal: func(sig demandstreams.Signal) {
			terminals++
		},
	}.Build()

	FromSequence(7).Connect(sink)
	sub.Request(demand.Unbounded())
	sub.Request(demand.Bounded(3))
	sub.Cancel()

	assert.Equal(t, 1, terminals)
}

func TestFromSequence_Reconnect(t *testing.T) {
	src := FromSequence(7)

	first := sinks.NewCollector[int]()
	src.Connect(first)
	second := sinks.NewCollector[int]()
	src.Connect(second)

	// Stateless source: every connection starts over at the configured start.
	assert.Equal(t, []int{7, 8, 9}, first.Values())
	assert.Equal(t, []int{7, 8, 9}, second.Values())
}
