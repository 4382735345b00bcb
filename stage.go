package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// forwarder is the plumbing shared by the simple composition stages. A stage
// is a Sink to its upstream and a Source to its downstream; the forwarder
// holds both ends of that link and implements the downstream-facing
// Subscription, so a stage type only has to supply OnSubscribe and OnValue.
//
// The downstream sink reference doubles as the stage's lifecycle state: it is
// cleared exactly once, by downstream cancellation or terminal delivery, and
// every entry point is a no-op once it is gone.
type forwarder[U any] struct {
	down Sink[U]
	up   Subscription
}

// Request forwards credit upstream untranslated. Stages that change the
// demand unit override this.
func (f *forwarder[U]) Request(d demand.Demand) {
	if f.down == nil {
		return
	}
	f.up.Request(d)
}

// Cancel makes the stage inert and propagates the cancellation toward the
// source.
func (f *forwarder[U]) Cancel() {
	if f.down == nil {
		return
	}
	f.down = nil
	f.up.Cancel()
}

// terminate forwards a terminal signal downstream exactly once.
func (f *forwarder[U]) terminate(sig Signal) {
	if f.down == nil {
		return
	}
	down := f.down
	f.down = nil
	down.OnTerminal(sig)
}

// abort cancels upstream and fails downstream with err. Used when a stage's
// own processing fails mid-stream.
func (f *forwarder[U]) abort(err error) {
	if f.down == nil {
		return
	}
	f.up.Cancel()
	f.terminate(Failed(err))
}
