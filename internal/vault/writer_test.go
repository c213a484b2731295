// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookvault/pkg/types"
)

func dunePair() types.MatchedPair {
	return types.MatchedPair{
		Goodreads: types.Book{
			Source:   types.SourceGoodreads,
			ID:       "234225",
			Filename: "Dune - 234225.md",
			ISBN:     "9780441013593",
			Title:    "Dune",
			Authors:  []string{"Frank Herbert"},
			Shelves:  []string{"read", "sci-fi"},
			Series:   "Dune",
		},
		StoryGraph: types.Book{
			Source:     types.SourceStoryGraph,
			ISBN:       "9780441013593",
			Title:      "Dune",
			Authors:    []string{"Frank Herbert"},
			ReadStatus: "read",
			Tags:       []string{"classics"},
		},
		Method: types.MatchExact,
	}
}

func TestWriteCombined(t *testing.T) {
	dir := t.TempDir()

	// Seed the single-source notes the combined note supersedes.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, goodreadsDir), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, storygraphDir), 0o755))
	grNote := filepath.Join(dir, goodreadsDir, "Dune - 234225.md")
	sgNote := filepath.Join(dir, storygraphDir, "Dune.md")
	require.NoError(t, os.WriteFile(grNote, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(sgNote, []byte("old"), 0o644))

	var out bytes.Buffer
	sum, err := NewWriter(types.VaultConfig{Dir: dir}).WriteCombined([]types.MatchedPair{dunePair()}, &out)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Combined)
	assert.Equal(t, 2, sum.Deleted)
	assert.Equal(t, 1, sum.Authors)
	assert.Equal(t, 1, sum.Series)
	// read, sci-fi, classics
	assert.Equal(t, 3, sum.Shelves)

	data, err := os.ReadFile(filepath.Join(dir, combinedDir, "Dune.md"))
	require.NoError(t, err)
	note := string(data)
	assert.Contains(t, note, "goodreads_title: Dune")
	assert.Contains(t, note, "story_graph_title: Dune")
	assert.Contains(t, note, "match_method: exact")

	assert.NoFileExists(t, grNote)
	assert.NoFileExists(t, sgNote)

	assert.FileExists(t, filepath.Join(dir, authorsDir, "Frank Herbert.md"))
	assert.FileExists(t, filepath.Join(dir, seriesDir, "Dune.md"))
	assert.FileExists(t, filepath.Join(dir, shelvesDir, "sci-fi.md"))

	idx, err := os.ReadFile(filepath.Join(dir, authorsDir, "Frank Herbert.md"))
	require.NoError(t, err)
	assert.Contains(t, string(idx), `contains(string(shelves), "Frank Herbert")`)

	// Stats header precedes the table query.
	assert.Contains(t, string(idx), "````dataviewjs")
	assert.Contains(t, string(idx), `dv.func.contains(String(p.shelves), "Frank Herbert")`)
	assert.Contains(t, string(idx), "Percent Read: ${percentRead}%")
}

func TestWriteCombinedDivergentTitles(t *testing.T) {
	dir := t.TempDir()
	pair := dunePair()
	pair.StoryGraph.Title = "Dune: Deluxe Edition"

	var out bytes.Buffer
	_, err := NewWriter(types.VaultConfig{Dir: dir}).WriteCombined([]types.MatchedPair{pair}, &out)
	require.NoError(t, err)

	// Reconciliation keeps the common pre-colon form.
	assert.FileExists(t, filepath.Join(dir, combinedDir, "Dune.md"))
}

func TestWriteCombinedMissingSupersededNotes(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	sum, err := NewWriter(types.VaultConfig{Dir: dir}).WriteCombined([]types.MatchedPair{dunePair()}, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Deleted)
	assert.Equal(t, 1, sum.Combined)
}

func TestWriteCombinedEmpty(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	sum, err := NewWriter(types.VaultConfig{Dir: dir}).WriteCombined(nil, &out)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}
