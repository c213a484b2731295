// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package link decides which records from the two catalogs describe the
// same book. Linkage runs in two phases: an exact inner join on ISBN, then
// a fuzzy scan of the leftovers comparing title, authors, and review with
// PartialRatio.
package link

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdiddy/bookvault/pkg/types"
)

// Result holds one linkage run's output. Exact pairs come first in Pairs,
// fuzzy pairs after, in discovery order. The unmatched slices account for
// every input record that landed in no pair at all.
type Result struct {
	Pairs []types.MatchedPair

	UnmatchedGoodreads  []types.Book
	UnmatchedStoryGraph []types.Book

	// Exact and Fuzzy count the pairs contributed by each phase.
	Exact int
	Fuzzy int
}

// Engine links two normalized collections. It keeps no state between runs;
// the only field is the logger handed in at construction.
type Engine struct {
	log zerolog.Logger
}

// NewEngine returns an Engine that logs through log.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// Link runs the exact phase, then the fuzzy phase on the leftovers, and
// concatenates the two match sets. Calling it twice with the same inputs
// yields the same Result.
func (e *Engine) Link(ctx context.Context, goodreads, storygraph []types.Book) (Result, error) {
	exact, unGR, unSG := ExactMatch(goodreads, storygraph)
	e.log.Info().
		Int("pairs", len(exact)).
		Int("unmatched_goodreads", len(unGR)).
		Int("unmatched_storygraph", len(unSG)).
		Msg("exact phase complete")

	fuzzyPairs, grUsed, sgUsed, err := e.fuzzyMatch(ctx, unGR, unSG)
	if err != nil {
		return Result{}, err
	}
	e.log.Info().Int("pairs", len(fuzzyPairs)).Msg("fuzzy phase complete")

	res := Result{
		Pairs: append(exact, fuzzyPairs...),
		Exact: len(exact),
		Fuzzy: len(fuzzyPairs),
	}
	for i, b := range unGR {
		if !grUsed[i] {
			res.UnmatchedGoodreads = append(res.UnmatchedGoodreads, b)
		}
	}
	for i, b := range unSG {
		if !sgUsed[i] {
			res.UnmatchedStoryGraph = append(res.UnmatchedStoryGraph, b)
		}
	}

	return res, nil
}
