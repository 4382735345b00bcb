// Package sinks provides ready-made consumers for draining streams.
package sinks

import (
	"github.com/elastiflow/demandstreams"
	"github.com/elastiflow/demandstreams/demand"
)

// Collector is a Sink that records every value it receives and the terminal
// signal, with a configurable demand policy. With the default unbounded
// initial demand it drains the whole stream inside Connect; with a bounded
// policy it doubles as a stepping consumer for demand-driven pulls.
type Collector[T any] struct {
	sub      demandstreams.Subscription
	values   []T
	terminal demandstreams.Signal
	done     bool
	initial  demand.Demand
	perValue demand.Demand
}

// NewCollector creates a Collector that requests unbounded demand on
// subscribe and drains the stream eagerly.
func NewCollector[T any]() *Collector[T] {
	return NewCollectorWithDemand[T](demand.Unbounded(), demand.None)
}

// NewCollectorWithDemand creates a Collector granting initial demand on
// subscribe and perValue additional demand from each OnValue callback.
func NewCollectorWithDemand[T any](initial, perValue demand.Demand) *Collector[T] {
	return &Collector[T]{initial: initial, perValue: perValue}
}

// OnSubscribe stores the subscription and grants the initial demand.
func (c *Collector[T]) OnSubscribe(sub demandstreams.Subscription) {
	c.sub = sub
	sub.Request(c.initial)
}

// OnValue records the value and grants the per-value demand.
func (c *Collector[T]) OnValue(v T) demand.Demand {
	c.values = append(c.values, v)
	return c.perValue
}

// OnTerminal records the terminal signal.
func (c *Collector[T]) OnTerminal(sig demandstreams.Signal) {
	c.terminal = sig
	c.done = true
}

// Values returns the values received so far, in arrival order.
func (c *Collector[T]) Values() []T {
	return c.values
}

// Terminal returns the recorded signal and whether one has arrived.
func (c *Collector[T]) Terminal() (demandstreams.Signal, bool) {
	return c.terminal, c.done
}

// Request grants additional demand through the stored subscription. No-op
// before OnSubscribe.
func (c *Collector[T]) Request(d demand.Demand) {
	if c.sub == nil {
		return
	}
	c.sub.Request(d)
}

// Cancel cancels the stored subscription. No-op before OnSubscribe.
func (c *Collector[T]) Cancel() {
	if c.sub == nil {
		return
	}
	c.sub.Cancel()
}
