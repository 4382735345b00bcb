package demandstreams

import "github.com/elastiflow/demandstreams/demand"

// Retry resubscribes to src when it fails, up to maxAttempts total
// connection attempts, forwarding values and Finished untouched. Each retry
// is a brand-new subscription obtained from the same source factory, so a
// stateful factory (see sources.FromTrigger) can converge toward success
// across attempts. There is no delay between attempts: retry is
// resubscription, nothing more.
//
// The downstream sink receives OnSubscribe exactly once. Credit the failed
// attempt never fulfilled is re-issued to the next attempt's subscription,
// so granted demand survives resubscription. Once attempts are exhausted the
// last failure is forwarded as a RETRY stage error wrapping the cause.
func Retry[T any](src Source[T], maxAttempts int, params ...Params) Source[T] {
	param := applyParams(params...)
	return SourceFunc[T](func(sink Sink[T]) {
		r := &retryStage[T]{
			down:        sink,
			src:         src,
			maxAttempts: maxAttempts,
			attempt:     1,
			param:       param,
		}
		src.Connect(r)
	})
}

type retryStage[T any] struct {
	down        Sink[T]
	src         Source[T]
	cur         Subscription
	maxAttempts int
	attempt     int
	outstanding demand.Demand // granted downstream credit not yet fulfilled
	handedOff   bool
	param       Params
}

// OnSubscribe arrives once per attempt. The first one hands the stage itself
// to downstream as its Subscription; later ones re-issue the credit still
// owed from before the previous attempt failed.
func (r *retryStage[T]) OnSubscribe(sub Subscription) {
	r.cur = sub
	if !r.handedOff {
		r.handedOff = true
		r.down.OnSubscribe(r)
		return
	}
	if !r.outstanding.IsZero() {
		sub.Request(r.outstanding)
	}
}

func (r *retryStage[T]) OnValue(v T) demand.Demand {
	if r.down == nil {
		return demand.None
	}
	r.outstanding = r.outstanding.Dec()
	more := r.down.OnValue(v)
	r.outstanding = r.outstanding.Add(more)
	return more
}

func (r *retryStage[T]) OnTerminal(sig Signal) {
	if r.down == nil {
		return
	}
	if sig.IsFailed() && r.attempt < r.maxAttempts {
		r.attempt++
		r.src.Connect(r)
		return
	}
	down := r.down
	r.down = nil
	if sig.IsFailed() {
		sig = Failed(newRetryError(r.param.SegmentName, sig.Err()))
	}
	down.OnTerminal(sig)
}

// Request implements the downstream-facing Subscription.
func (r *retryStage[T]) Request(d demand.Demand) {
	if r.down == nil {
		return
	}
	r.outstanding = r.outstanding.Add(d)
	r.cur.Request(d)
}

// Cancel implements the downstream-facing Subscription; only the current
// attempt holds a live link to cancel.
func (r *retryStage[T]) Cancel() {
	if r.down == nil {
		return
	}
	r.down = nil
	r.cur.Cancel()
}
