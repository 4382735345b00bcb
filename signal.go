package demandstreams

// Signal is the terminal outcome of a stream: either Finished (no further
// values) or Failed carrying one error. A Subscription delivers at most one
// Signal, ever.
type Signal struct {
	failed bool
	err    error
}

// Finished returns the normal-completion signal.
func Finished() Signal {
	return Signal{}
}

// Failed returns a failure signal carrying err.
func Failed(err error) Signal {
	return Signal{failed: true, err: err}
}

// IsFinished reports whether the stream completed normally.
func (s Signal) IsFinished() bool {
	return !s.failed
}

// IsFailed reports whether the stream failed.
func (s Signal) IsFailed() bool {
	return s.failed
}

// Err returns the failure cause, or nil for Finished.
func (s Signal) Err() error {
	return s.err
}

// String implements fmt.Stringer.
func (s Signal) String() string {
	if s.failed {
		return "failed: " + s.err.Error()
	}
	return "finished"
}
