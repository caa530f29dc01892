package cardinality

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Step selects which way the engine resolves a repetition whose bounds
// differ: Greedy prefers the longest match and renders the plain quantifier;
// Lazy prefers the shortest and renders a trailing "?".
type Step int

const (
	// Greedy is the default matching preference. It adds nothing to the
	// rendered quantifier.
	Greedy Step = iota

	// Lazy appends "?" to the rendered quantifier. It is rejected when
	// start == stop, since a fixed count leaves nothing to prefer.
	Lazy
)

// Unbounded is reported by [Cardinality.Stop] when the repetition has no
// upper bound. It is not a valid input bound: only an absent (nil) stop
// means unbounded.
const Unbounded = -1

// Cardinality is an immutable repetition range. The zero value renders the
// empty suffix and behaves as [One]; build every other value with [New] or
// [Exact].
type Cardinality struct {
	start, stop int
	step        Step
	suffix      string
}

// Shortcuts for the common repetition counts.
var (
	One   = MustNew(1, 1)     // exactly one, the empty suffix
	Many  = MustNew(1, nil)   // one or more, "+"
	Any   = MustNew(nil, nil) // zero or more, "*"
	Maybe = MustNew(0, 1)     // zero or one, "?"
)

// New builds a validated Cardinality from range-like bounds.
//
// start and stop accept anything coercible to an integer (ints, floats —
// truncated toward zero — and numeric strings); nil start means 0 and nil
// stop means unbounded. At most one step may be given; it defaults to
// [Greedy].
//
// New fails with [ErrRange] when a bound does not coerce or the range does
// not satisfy 0 <= start <= stop, with [ErrStep] when the step is invalid,
// and with [ErrGreediness] when [Lazy] is combined with start == stop.
func New(start, stop any, step ...Step) (Cardinality, error) {
	if len(step) > 1 {
		return Cardinality{}, fmt.Errorf("%w: got %d steps, want at most one", ErrStep, len(step))
	}

	s := Greedy
	if len(step) == 1 {
		s = step[0]
	}
	if s != Greedy && s != Lazy {
		return Cardinality{}, fmt.Errorf("%w: step=%d", ErrStep, s)
	}

	lo, err := coerceBound(start, 0)
	if err != nil {
		return Cardinality{}, fmt.Errorf("%w: start: %v", ErrRange, err)
	}

	hi, err := coerceBound(stop, Unbounded)
	if err != nil {
		return Cardinality{}, fmt.Errorf("%w: stop: %v", ErrRange, err)
	}

	if lo < 0 || (stop != nil && hi < 0) || (hi != Unbounded && lo > hi) {
		return Cardinality{}, fmt.Errorf("%w: 0 <= start=%d <= stop=%d must hold", ErrRange, lo, hi)
	}

	if s == Lazy && lo == hi {
		return Cardinality{}, fmt.Errorf("%w: start=%d == stop=%d", ErrGreediness, lo, hi)
	}

	return Cardinality{start: lo, stop: hi, step: s, suffix: render(lo, hi, s)}, nil
}

// MustNew is like [New] but panics if the bounds are invalid.
func MustNew(start, stop any, step ...Step) Cardinality {
	c, err := New(start, stop, step...)
	if err != nil {
		panic(err)
	}
	return c
}

// Exact builds the fixed-count repetition {n}.
func Exact(n int) (Cardinality, error) {
	return New(n, n)
}

// String returns the quantifier suffix, e.g. "", "?", "*", "+", "{2,}",
// "{1,2}?".
func (c Cardinality) String() string {
	return c.suffix
}

// Equal reports whether c and other render the same quantifier suffix. This
// is the equality contract: bounds that differ internally but render the
// same text compare equal.
func (c Cardinality) Equal(other Cardinality) bool {
	return c.suffix == other.suffix
}

// Start returns the minimum number of repetitions.
func (c Cardinality) Start() int { return c.start }

// Stop returns the maximum number of repetitions, or [Unbounded].
func (c Cardinality) Stop() int { return c.stop }

// Step returns the matching preference.
func (c Cardinality) Step() Step { return c.step }

// coerceBound converts a range-like bound to an int, mapping nil to the
// given default.
func coerceBound(v any, absent int) (int, error) {
	if v == nil {
		return absent, nil
	}
	return cast.ToIntE(v)
}

// render produces the quantifier suffix for a validated range.
func render(start, stop int, step Step) string {
	var b strings.Builder

	switch start {
	case 0:
		switch stop {
		case 1:
			b.WriteString("?")
		case Unbounded:
			b.WriteString("*")
		default:
			fmt.Fprintf(&b, "{,%d}", stop)
		}
	case 1:
		switch stop {
		case 1:
			// exactly one: the empty suffix
		case Unbounded:
			b.WriteString("+")
		default:
			fmt.Fprintf(&b, "{1,%d}", stop)
		}
	default:
		switch stop {
		case start:
			fmt.Fprintf(&b, "{%d}", start)
		case Unbounded:
			fmt.Fprintf(&b, "{%d,}", start)
		default:
			fmt.Fprintf(&b, "{%d,%d}", start, stop)
		}
	}

	if start != stop && step == Lazy {
		b.WriteString("?")
	}

	return b.String()
}
