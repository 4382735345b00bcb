package sources

import (
	"fmt"

	"github.com/elastiflow/demandstreams"
	"github.com/elastiflow/demandstreams/demand"
)

// TriggerError is the typed failure delivered by a trigger source whose
// counter was still negative when the subscription first requested values.
type TriggerError struct {
	Trigger int
}

func (e *TriggerError) Error() string {
	return fmt.Sprintf("trigger is negative: %d", e.Trigger)
}

// Trigger is a stateful source factory built around a signed counter. Each
// Connect captures the current counter into the new subscription and then
// increments the factory's copy, so repeated subscription attempts converge
// toward a non-negative trigger and eventual success. That convergence is the
// hook the Retry combinator relies on: every retry is a brand-new
// subscription against the same factory, observing the incremented state.
type Trigger struct {
	trigger int
}

var _ demandstreams.Source[int] = (*Trigger)(nil)

// FromTrigger creates a trigger source starting at the given counter value.
func FromTrigger(trigger int) *Trigger {
	return &Trigger{trigger: trigger}
}

// Connect builds a fresh subscription for sink, capturing the current trigger
// value, and increments the factory counter.
func (t *Trigger) Connect(sink demandstreams.Sink[int]) {
	sub := &triggerSubscription{trigger: t.trigger}
	t.trigger++
	sub.emitter = emitter[int]{
		sink:      sink,
		remaining: 1,
		next:      func() int { return sub.trigger },
	}
	sink.OnSubscribe(sub)
}

type triggerSubscription struct {
	emitter[int]
	trigger int
}

// Request fails immediately on a negative trigger, regardless of how much
// credit the call granted: the failure is not a value and consumes none.
// Otherwise the single success value (the captured trigger) is pushed as soon
// as credit allows, followed by Finished.
func (s *triggerSubscription) Request(d demand.Demand) {
	if s.trigger < 0 {
		s.fail(&TriggerError{Trigger: s.trigger})
		return
	}
	s.emitter.Request(d)
}
