package demandstreams

// TransformFunc is a user defined function used by Map to convert values from
// one type to another.
type TransformFunc[T any, U any] func(T) (U, error)

// FilterFunc is a user defined predicate used by Filter; values for which it
// returns false are consumed without being forwarded.
type FilterFunc[T any] func(T) (bool, error)

// KeyFunc derives a comparable key from a value, used by DedupeBy.
type KeyFunc[T any, K comparable] func(T) (K, error)

// ExpandFunc is a user defined function used by Expand to turn one upstream
// value into an inner stream of downstream values.
type ExpandFunc[T any, U any] func(T) (Source[U], error)
