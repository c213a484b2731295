// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package link

import (
	"strings"
	"testing"
)

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "dune", "dune", 100},
		{"case insensitive", "DUNE", "dune", 100},
		{"shorter contained in longer", "Hobbit", "The Hobbit", 100},
		{"embellished subtitle", "The Hobbit", "The Hobbit: There and Back Again", 100},
		{"both empty", "", "", 100},
		{"one empty", "", "dune", 0},
		{"disjoint", "aaaa", "zzzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartialRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("PartialRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Argument order must not matter.
			if got := PartialRatio(tt.b, tt.a); got != tt.want {
				t.Errorf("PartialRatio(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

// TestPartialRatioThresholdBoundary pins the scores either side of the match
// threshold. With equal-length strings there is a single window, and tail
// substitutions with a letter absent from the base string cost exactly one
// edit each: 20 changed characters out of 100 scores 80, 21 scores 79.
func TestPartialRatioThresholdBoundary(t *testing.T) {
	base := strings.Repeat("a", 100)
	twentyOff := strings.Repeat("a", 80) + strings.Repeat("z", 20)
	twentyOneOff := strings.Repeat("a", 79) + strings.Repeat("z", 21)

	if got := PartialRatio(base, twentyOff); got != 80 {
		t.Errorf("20/100 substitutions: score = %d, want 80", got)
	}
	if got := PartialRatio(base, twentyOneOff); got != 79 {
		t.Errorf("21/100 substitutions: score = %d, want 79", got)
	}

	if Threshold != 80 {
		t.Fatalf("Threshold = %d, want 80", Threshold)
	}
	if !(PartialRatio(base, twentyOff) >= Threshold) {
		t.Error("score 80 must clear the threshold")
	}
	if PartialRatio(base, twentyOneOff) >= Threshold {
		t.Error("score 79 must not clear the threshold")
	}
}
