// Package pipe provides the function-composition primitive used to thread a
// value through an ordered list of unary functions.
//
// Pipe1 through Pipe4 keep full static typing across a chain whose types
// change at every step; Pipe handles chains of any length over a single
// type; Apply is the untyped fallback for arbitrary heterogeneous chains.
//
//	total := pipe.Pipe2(src,
//	    seq.Filter(func(n int) bool { return n%2 == 0 }),
//	    seq.Fold(func(acc, n int) int { return acc + n }, 0),
//	)
//
// Functions run strictly left to right. A panic inside any function stops
// the chain and propagates to the caller; TryPipe does the same for
// returned errors.
package pipe
