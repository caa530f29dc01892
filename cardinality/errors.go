package cardinality

import "errors"

// ErrRange indicates that the repetition bounds do not satisfy
// 0 <= start <= stop, or that a supplied bound could not be coerced to an
// integer.
//
// It can be wrapped with the offending values.
var ErrRange = errors.New("invalid cardinality range")

// ErrGreediness indicates that a laziness preference was given for a
// fixed-count repetition, where greedy and lazy matching are
// indistinguishable.
//
// It can be wrapped with the offending bounds.
var ErrGreediness = errors.New("greediness is undefined for a fixed count")

// ErrStep indicates that the step argument is neither [Greedy] nor [Lazy],
// or that more than one step was supplied.
var ErrStep = errors.New("invalid cardinality step")
