package gamelist

import "testing"

func intp(n int) *int { return &n }

func TestRangeString(t *testing.T) {
	tests := []struct {
		name string
		r    *Range
		want string
	}{
		{"plain interval", NewRange(2, 6, 1), "2..6"},
		{"single count", NewRange(3, 3, 1), "3"},
		{"single even count keeps no suffix", NewRange(4, 4, 2), "4"},
		{"unbounded above", AtLeast(3, 1), "3+"},
		{"unbounded above even", AtLeast(2, 2), "2+ even"},
		{"even interval", NewRange(2, 6, 2), "2..6 even"},
		{"other step", NewRange(3, 9, 3), "3..9 multiple of 3"},
		{"bounds rounded inward to step", NewRange(3, 9, 2), "4..8"},
		{"empty", NewRange(5, 3, 1), "none"},
		{"rounded into empty", NewRange(3, 3, 2), "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	tests := []struct {
		name string
		r    *Range
		n    int
		want bool
	}{
		{"inside", NewRange(2, 6, 1), 4, true},
		{"low bound", NewRange(2, 6, 1), 2, true},
		{"high bound", NewRange(2, 6, 1), 6, true},
		{"below", NewRange(2, 6, 1), 1, false},
		{"above", NewRange(2, 6, 1), 7, false},
		{"even member", NewRange(2, 8, 2), 4, true},
		{"odd excluded by step", NewRange(2, 8, 2), 5, false},
		{"unbounded above", AtLeast(3, 1), 1000, true},
		{"unbounded above lower limit", AtLeast(3, 1), 2, false},
		{"empty contains nothing", NewRange(5, 3, 1), 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.n); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestRangeEmpty(t *testing.T) {
	if NewRange(3, 3, 1).Empty() {
		t.Error("single-count range reported empty")
	}
	if !NewRange(5, 3, 1).Empty() {
		t.Error("inverted range not reported empty")
	}
	if AtLeast(3, 1).Empty() {
		t.Error("unbounded range reported empty")
	}
}

func TestRangeSimplified(t *testing.T) {
	tests := []struct {
		name         string
		r            *Range
		implicitLow  int
		implicitHigh *int
		want         string
	}{
		{
			"high matching the cap is dropped",
			NewRange(2, 12, 1), 1, intp(12), "2+",
		},
		{
			"low matching the floor is dropped",
			NewRange(1, 6, 1), 1, intp(12), "up to 6",
		},
		{
			"both bounds kept when tighter",
			NewRange(3, 6, 1), 1, intp(12), "3..6",
		},
		{
			"both bounds dropped",
			NewRange(2, 10, 2), 1, intp(10), "any even",
		},
		{
			"no cap keeps explicit high",
			NewRange(2, 8, 1), 1, nil, "2..8",
		},
		{
			"unbounded above stays unbounded without a cap",
			AtLeast(2, 1), 1, nil, "2+",
		},
		{
			"squeezed to one count drops the step",
			NewRange(6, 10, 2), 1, intp(6), "6",
		},
		{
			"squeezed to nothing",
			NewRange(8, 12, 1), 1, intp(4), "none",
		},
		{
			"cap tightens an unbounded range",
			AtLeast(4, 1), 1, intp(6), "4+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Simplified(tt.implicitLow, tt.implicitHigh)
			if got.String() != tt.want {
				t.Errorf("simplified %q = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestSimplifiedKeepsMembership(t *testing.T) {
	// Dropping a bound that restates the cap widens String output but the
	// counts inside the cap must test the same before and after.
	r := NewRange(2, 6, 2)
	s := r.Simplified(1, intp(6))
	for n := 1; n <= 6; n++ {
		if r.Contains(n) != s.Contains(n) {
			t.Errorf("membership of %d changed: %v vs %v", n, r.Contains(n), s.Contains(n))
		}
	}
}
