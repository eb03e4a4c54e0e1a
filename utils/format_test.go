package utils

import (
	"reflect"
	"testing"
)

func TestJoinWithConjunction(t *testing.T) {
	tests := []struct {
		name        string
		items       []string
		conjunction string
		want        string
	}{
		{"single item", []string{"Alice"}, "and", "Alice"},
		{"two items", []string{"Alice", "Bob"}, "and", "Alice and Bob"},
		{"three items oxford comma", []string{"A", "B", "C"}, "and", "A, B, and C"},
		{"four items", []string{"A", "B", "C", "D"}, "or", "A, B, C, or D"},
		{"two items or", []string{"Chess", "Go"}, "or", "Chess or Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinWithConjunction(tt.items, tt.conjunction)
			if got != tt.want {
				t.Errorf("JoinWithConjunction(%v, %q) = %q, want %q", tt.items, tt.conjunction, got, tt.want)
			}
		})
	}
}

func TestJoinWithConjunctionPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty items")
		}
	}()
	JoinWithConjunction(nil, "and")
}

func TestDedupPreserveOrder(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		got := DedupPreserveOrder([]int{5, 3, 5, 7, 3, 5})
		want := []int{5, 3, 7}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DedupPreserveOrder = %v, want %v", got, want)
		}
	})

	t.Run("strings", func(t *testing.T) {
		got := DedupPreserveOrder([]string{"b", "a", "b", "c", "a"})
		want := []string{"b", "a", "c"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DedupPreserveOrder = %v, want %v", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got := DedupPreserveOrder([]string{})
		if len(got) != 0 {
			t.Errorf("DedupPreserveOrder of empty slice = %v, want empty", got)
		}
	})
}
