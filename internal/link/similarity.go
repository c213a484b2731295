// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package link

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PartialRatio scores how much of the shorter string's content appears in
// the longer one, on a 0-100 scale. Both inputs are lower-cased first. A
// window the length of the shorter string slides across the longer; each
// window is scored by Levenshtein distance and the best window wins. The
// substring orientation is deliberate: titles and reviews from different
// platforms are routinely truncated or embellished, and a full edit-distance
// ratio would punish that.
//
// Two empty strings score 100; an empty string against a non-empty one
// scores 0.
func PartialRatio(a, b string) int {
	short := []rune(strings.ToLower(a))
	long := []rune(strings.ToLower(b))
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	pattern := string(short)
	best := 0
	for i := 0; i+len(short) <= len(long); i++ {
		window := string(long[i : i+len(short)])
		dist := fuzzy.LevenshteinDistance(pattern, window)
		score := 100 * (len(short) - dist) / len(short)
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}
