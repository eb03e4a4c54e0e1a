package gamelist

import "fmt"

// Range is a set of player counts: an inclusive interval, either end of which
// may be unbounded, restricted to multiples of a step. "2..6 even" is the
// range {2, 4, 6}. Bounds are rounded inward to the step when a Range is
// built, so the stored bounds are always members of the set (unless the
// range is empty).
type Range struct {
	low, high       int
	hasLow, hasHigh bool
	multipleOf      int
}

// NewRange returns the counts from low to high inclusive that are multiples
// of multipleOf.
func NewRange(low, high, multipleOf int) *Range {
	return &Range{
		low:        roundLow(low, multipleOf),
		high:       roundHigh(high, multipleOf),
		hasLow:     true,
		hasHigh:    true,
		multipleOf: multipleOf,
	}
}

// AtLeast returns the counts from low upward that are multiples of multipleOf.
func AtLeast(low, multipleOf int) *Range {
	return &Range{
		low:        roundLow(low, multipleOf),
		hasLow:     true,
		multipleOf: multipleOf,
	}
}

// Empty reports whether no count at all is in the range.
func (r *Range) Empty() bool {
	return r.hasLow && r.hasHigh && r.low > r.high
}

// Contains reports whether n is in the range.
func (r *Range) Contains(n int) bool {
	if r.hasLow && n < r.low {
		return false
	}
	if r.hasHigh && n > r.high {
		return false
	}
	return posMod(n, r.multipleOf) == 0
}

func (r *Range) String() string {
	if r.Empty() {
		return "none"
	}
	var s string
	switch {
	case !r.hasLow && !r.hasHigh:
		s = "any"
	case !r.hasLow:
		s = fmt.Sprintf("up to %d", r.high)
	case !r.hasHigh:
		s = fmt.Sprintf("%d+", r.low)
	case r.low == r.high:
		// A single count needs no step suffix.
		return fmt.Sprintf("%d", r.low)
	default:
		s = fmt.Sprintf("%d..%d", r.low, r.high)
	}
	switch r.multipleOf {
	case 1:
		return s
	case 2:
		return s + " even"
	default:
		return fmt.Sprintf("%s multiple of %d", s, r.multipleOf)
	}
}

// Simplified intersects r with the bounds every game implicitly has (at least
// implicitLow players, at most implicitHigh when non-nil) and then drops any
// bound that only restates an implicit one, so String renders "4+" rather
// than "4..12" when the game maxes out at 12 anyway. A range squeezed down to
// one count or below collapses to a plain interval with no step.
func (r *Range) Simplified(implicitLow int, implicitHigh *int) *Range {
	m := r.multipleOf
	implicitLow = roundLow(implicitLow, m)

	low := implicitLow
	if r.hasLow && r.low > low {
		low = r.low
	}

	var high int
	hasHigh := false
	if implicitHigh != nil {
		high, hasHigh = roundHigh(*implicitHigh, m), true
	}
	if r.hasHigh && (!hasHigh || r.high < high) {
		high, hasHigh = r.high, true
	}

	if hasHigh && low >= high {
		return NewRange(low, high, 1)
	}

	out := &Range{multipleOf: m}
	if low != implicitLow {
		out.low, out.hasLow = low, true
	}
	if hasHigh && !(implicitHigh != nil && high == roundHigh(*implicitHigh, m)) {
		out.high, out.hasHigh = high, true
	}
	return out
}

// roundLow rounds up and roundHigh rounds down to the nearest multiple of m,
// keeping constructed bounds inside the range they describe.
func roundLow(low, m int) int {
	return low + posMod(-low, m)
}

func roundHigh(high, m int) int {
	return high - posMod(high, m)
}

// posMod is the remainder of a/m normalized to [0, m), regardless of the
// sign of a.
func posMod(a, m int) int {
	return (a%m + m) % m
}
