// Package demand provides the credit value type used for flow control between
// a producer and a consumer.
//
// A Demand is either a bounded non-negative count of values the consumer is
// willing to accept, or the unbounded sentinel meaning "push everything".
// Demands are immutable values; arithmetic returns new values.
package demand

import "fmt"

// Demand is a consumer-granted credit: either Bounded(n) or Unbounded.
// The zero value is Bounded(0).
type Demand struct {
	count     int
	unbounded bool
}

// None is the zero credit, Bounded(0).
var None = Demand{}

// Unbounded returns the demand that never runs out.
func Unbounded() Demand {
	return Demand{unbounded: true}
}

// Bounded returns a demand for exactly n values. It panics if n is negative:
// a negative credit is a programmer error, not a recoverable condition.
func Bounded(n int) Demand {
	if n < 0 {
		panic(fmt.Sprintf("demand: negative bound %d", n))
	}
	return Demand{count: n}
}

// Add combines two demands. Unbounded absorbs any addition.
func (d Demand) Add(other Demand) Demand {
	if d.unbounded || other.unbounded {
		return Unbounded()
	}
	return Demand{count: d.count + other.count}
}

// Dec consumes one credit. It is a no-op on Unbounded and panics on
// Bounded(0): producers must check IsZero before consuming credit.
func (d Demand) Dec() Demand {
	if d.unbounded {
		return d
	}
	if d.count == 0 {
		panic("demand: credit underflow, Dec on Bounded(0)")
	}
	return Demand{count: d.count - 1}
}

// IsZero reports whether no credit remains. Only Bounded(0) is zero.
func (d Demand) IsZero() bool {
	return !d.unbounded && d.count == 0
}

// IsUnbounded reports whether the demand never runs out.
func (d Demand) IsUnbounded() bool {
	return d.unbounded
}

// Count returns the bounded credit count. It is 0 for Unbounded; check
// IsUnbounded to tell the two apart.
func (d Demand) Count() int {
	if d.unbounded {
		return 0
	}
	return d.count
}

// Cmp orders demands by how much credit they carry: -1 if d < other, 0 if
// equal, +1 if d > other. Unbounded compares greater than every bounded
// demand and equal to itself.
func (d Demand) Cmp(other Demand) int {
	switch {
	case d.unbounded && other.unbounded:
		return 0
	case d.unbounded:
		return 1
	case other.unbounded:
		return -1
	case d.count < other.count:
		return -1
	case d.count > other.count:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (d Demand) String() string {
	if d.unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%d", d.count)
}
