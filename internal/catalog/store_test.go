// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookvault/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.CatalogConfig{
		Path: filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testPairs() []types.MatchedPair {
	return []types.MatchedPair{
		{
			Goodreads: types.Book{
				Source: types.SourceGoodreads, ISBN: "9780441013593",
				Title: "Dune", Authors: []string{"Frank Herbert"},
				Shelves: []string{"sci-fi"}, Rating: "5",
			},
			StoryGraph: types.Book{
				Source: types.SourceStoryGraph, ISBN: "9780441013593",
				Title: "Dune", Authors: []string{"Frank Herbert"},
				ReadStatus: "read", Rating: "4.5",
				Tags: []string{"favorites"},
			},
			Method: types.MatchExact,
		},
		{
			Goodreads: types.Book{
				Source: types.SourceGoodreads,
				Title:  "Emma", Authors: []string{"Jane Austen"},
			},
			StoryGraph: types.Book{
				Source: types.SourceStoryGraph,
				Title:  "Emma", Authors: []string{"Jane Austen"},
				ReadStatus: "to-read",
			},
			Method: types.MatchFuzzy,
		},
	}
}

func TestRebuildAndQueryAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Rebuild(ctx, testPairs()))

	rows, err := s.Query(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by title.
	assert.Equal(t, "Dune", rows[0].Title)
	assert.Equal(t, "9780441013593", rows[0].ISBN)
	assert.Equal(t, "Frank Herbert", rows[0].Authors)
	assert.Equal(t, "sci-fi, favorites", rows[0].Shelves)
	assert.Equal(t, "exact", rows[0].MatchMethod)
	assert.Equal(t, "Emma", rows[1].Title)
	assert.Equal(t, "fuzzy", rows[1].MatchMethod)
}

func TestRebuildReplacesPreviousRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Rebuild(ctx, testPairs()))
	require.NoError(t, s.Rebuild(ctx, testPairs()[:1]))

	rows, err := s.Query(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0].Title)
}

func TestQueryFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Rebuild(ctx, testPairs()))

	cases := []struct {
		name string
		opts QueryOptions
		want []string
	}{
		{"by title substring", QueryOptions{Title: "un"}, []string{"Dune"}},
		{"by author", QueryOptions{Author: "Austen"}, []string{"Emma"}},
		{"by shelf", QueryOptions{Shelf: "favorites"}, []string{"Dune"}},
		{"by method", QueryOptions{Method: "fuzzy"}, []string{"Emma"}},
		{"no match", QueryOptions{Title: "Hobbit"}, nil},
		{"combined", QueryOptions{Title: "Dune", Method: "fuzzy"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := s.Query(ctx, tc.opts)
			require.NoError(t, err)
			var titles []string
			for _, r := range rows {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tc.want, titles)
		})
	}
}

func TestQueryResultCap(t *testing.T) {
	s, err := NewStore(types.CatalogConfig{
		Path:       filepath.Join(t.TempDir(), "catalog.db"),
		MaxResults: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Rebuild(ctx, testPairs()))

	rows, err := s.Query(ctx, QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
