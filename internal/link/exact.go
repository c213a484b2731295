// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package link

import "github.com/pdiddy/bookvault/pkg/types"

// ExactMatch inner-joins the two collections on ISBN equality. Records with
// an empty ISBN are excluded from the join. Duplicate ISBN values produce
// one pair per combination; no deduplication happens here.
//
// The unmatched returns hold every record of a side whose ISBN is empty or
// did not appear in the join result, so a keyed record with no partner on
// the other side still comes back as unmatched.
func ExactMatch(goodreads, storygraph []types.Book) (pairs []types.MatchedPair, unmatchedGR, unmatchedSG []types.Book) {
	sgByISBN := make(map[string][]types.Book)
	for _, sg := range storygraph {
		if sg.HasISBN() {
			sgByISBN[sg.ISBN] = append(sgByISBN[sg.ISBN], sg)
		}
	}

	joined := make(map[string]struct{})
	for _, gr := range goodreads {
		if !gr.HasISBN() {
			continue
		}
		for _, sg := range sgByISBN[gr.ISBN] {
			pairs = append(pairs, types.MatchedPair{
				Goodreads:  gr,
				StoryGraph: sg,
				Method:     types.MatchExact,
			})
			joined[gr.ISBN] = struct{}{}
		}
	}

	for _, gr := range goodreads {
		if _, ok := joined[gr.ISBN]; ok && gr.HasISBN() {
			continue
		}
		unmatchedGR = append(unmatchedGR, gr)
	}
	for _, sg := range storygraph {
		if _, ok := joined[sg.ISBN]; ok && sg.HasISBN() {
			continue
		}
		unmatchedSG = append(unmatchedSG, sg)
	}

	return pairs, unmatchedGR, unmatchedSG
}
