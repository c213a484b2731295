// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package link

import (
	"context"

	"github.com/pdiddy/bookvault/pkg/types"
)

// Threshold is the minimum PartialRatio score for a field to count as
// matching. The value is fixed, not configuration.
const Threshold = 80

// fuzzyMatch scans every (storygraph, goodreads) combination of the records
// left over from the exact phase. A pair is emitted when title and author
// both match, or failing that when the reviews match. Matching a record does
// not remove it from the scan: one record may appear in several pairs, and
// all candidates are surfaced.
//
// The scan is a full Cartesian product, O(n*m) similarity calls. Unmatched
// sets are small in practice (books missing an ISBN), so the cost is
// acceptable; ctx is checked once per outer row so a run over unexpectedly
// large inputs can be cancelled.
func (e *Engine) fuzzyMatch(ctx context.Context, unmatchedGR, unmatchedSG []types.Book) ([]types.MatchedPair, []bool, []bool, error) {
	var pairs []types.MatchedPair
	grUsed := make([]bool, len(unmatchedGR))
	sgUsed := make([]bool, len(unmatchedSG))

	for si, sg := range unmatchedSG {
		if err := ctx.Err(); err != nil {
			return nil, nil, nil, err
		}
		for gi, gr := range unmatchedGR {
			titleMatch := sg.Title != "" && gr.Title != "" &&
				PartialRatio(sg.Title, gr.Title) >= Threshold
			reviewMatch := sg.Review != "" && gr.Review != "" &&
				PartialRatio(sg.Review, gr.Review) >= Threshold
			authorMatch := anyAuthorMatch(sg.Authors, gr.Authors)

			e.log.Debug().
				Str("story_graph_title", sg.Title).
				Str("goodreads_title", gr.Title).
				Bool("title_match", titleMatch).
				Bool("author_match", authorMatch).
				Bool("review_match", reviewMatch).
				Msg("fuzzy candidate")

			if (titleMatch && authorMatch) || reviewMatch {
				pairs = append(pairs, types.MatchedPair{
					Goodreads:  gr,
					StoryGraph: sg,
					Method:     types.MatchFuzzy,
				})
				grUsed[gi] = true
				sgUsed[si] = true
			}
		}
	}

	return pairs, grUsed, sgUsed, nil
}

// anyAuthorMatch reports whether any cross pair of author names scores at or
// above the threshold. One shared author is enough; co-authors and
// contributors on either side do not have to line up. Empty lists never
// match.
func anyAuthorMatch(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if PartialRatio(x, y) >= Threshold {
				return true
			}
		}
	}
	return false
}
