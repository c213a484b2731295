// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package link

import (
	"testing"

	"github.com/pdiddy/bookvault/pkg/types"
)

func grBook(isbn, title string) types.Book {
	return types.Book{Source: types.SourceGoodreads, ISBN: isbn, Title: title}
}

func sgBook(isbn, title string) types.Book {
	return types.Book{Source: types.SourceStoryGraph, ISBN: isbn, Title: title}
}

func TestExactMatchCompleteness(t *testing.T) {
	gr := []types.Book{grBook("111", "Dune"), grBook("", "Keyless"), grBook("333", "Solo")}
	sg := []types.Book{sgBook("111", "Dune"), sgBook("222", "Other")}

	pairs, unGR, unSG := ExactMatch(gr, sg)

	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	p := pairs[0]
	if p.Goodreads.ISBN != "111" || p.StoryGraph.ISBN != "111" {
		t.Errorf("joined ISBNs = %q/%q, want 111/111", p.Goodreads.ISBN, p.StoryGraph.ISBN)
	}
	if p.Method != types.MatchExact {
		t.Errorf("method = %q, want exact", p.Method)
	}

	// Keyless and unshared-key records come back as unmatched.
	if len(unGR) != 2 {
		t.Errorf("unmatched goodreads = %d, want 2", len(unGR))
	}
	if len(unSG) != 1 || unSG[0].ISBN != "222" {
		t.Errorf("unmatched storygraph = %v, want the 222 record", unSG)
	}
}

// TestExactMatchDuplicateKeys checks the Cartesian join semantics: a key
// present twice on one side pairs with every opposite record holding it.
func TestExactMatchDuplicateKeys(t *testing.T) {
	gr := []types.Book{grBook("111", "Dune"), grBook("111", "Dune (reissue)")}
	sg := []types.Book{sgBook("111", "Dune")}

	pairs, unGR, unSG := ExactMatch(gr, sg)

	if len(pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(pairs))
	}
	if len(unGR) != 0 || len(unSG) != 0 {
		t.Errorf("unmatched = %d/%d, want 0/0", len(unGR), len(unSG))
	}
}

func TestExactMatchEmptyKeyedSubset(t *testing.T) {
	gr := []types.Book{grBook("", "A"), grBook("", "B")}
	sg := []types.Book{sgBook("111", "C")}

	pairs, unGR, unSG := ExactMatch(gr, sg)

	if len(pairs) != 0 {
		t.Fatalf("pairs = %d, want 0", len(pairs))
	}
	if len(unGR) != 2 || len(unSG) != 1 {
		t.Errorf("unmatched = %d/%d, want 2/1", len(unGR), len(unSG))
	}
}

// TestExactMatchPartition checks that every input record is accounted for:
// it either carries a key that appears in the join result, or it is listed
// as unmatched.
func TestExactMatchPartition(t *testing.T) {
	gr := []types.Book{
		grBook("111", "A"), grBook("111", "A dup"), grBook("222", "B"),
		grBook("", "C"), grBook("999", "D"),
	}
	sg := []types.Book{sgBook("111", "A"), sgBook("333", "E")}

	pairs, unGR, unSG := ExactMatch(gr, sg)

	joined := make(map[string]bool)
	for _, p := range pairs {
		joined[p.Goodreads.ISBN] = true
	}

	matchedGR := 0
	for _, b := range gr {
		if b.HasISBN() && joined[b.ISBN] {
			matchedGR++
		}
	}
	if matchedGR+len(unGR) != len(gr) {
		t.Errorf("goodreads partition broken: %d matched + %d unmatched != %d total",
			matchedGR, len(unGR), len(gr))
	}

	matchedSG := 0
	for _, b := range sg {
		if b.HasISBN() && joined[b.ISBN] {
			matchedSG++
		}
	}
	if matchedSG+len(unSG) != len(sg) {
		t.Errorf("storygraph partition broken: %d matched + %d unmatched != %d total",
			matchedSG, len(unSG), len(sg))
	}
}
