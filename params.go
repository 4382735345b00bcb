package demandstreams

// Params are used to pass args into stage constructors.
type Params struct {
	// Num bounds a stage that counts: the number of values Take forwards, or
	// the number of concurrently open inner subscriptions in Expand.
	Num int

	// SkipError makes Map and Filter consume a value whose user function
	// errored and ask upstream for a replacement, instead of failing the
	// stream.
	SkipError bool

	// SegmentName labels the stage in stage errors.
	SegmentName string
}

func applyParams(params ...Params) Params {
	var p Params
	for _, param := range params {
		p = param
	}
	return p
}
