// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package goodreads

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookvault/pkg/types"
)

const duneNote = `---
title: Dune
author: "[[Authors/Frank Herbert]]"
isbn: "9780441013593"
id: 234225
rating: 5
avgRating: 4.25
pages: 412
dateAdded: 2020-01-14
dateRead: 2020-02-01
series: Dune
shelves:
  - "[[Shelves/read]]"
  - "[[Shelves/sci-fi]]"
review: A desert planet, a spice, and a prophecy.
---

Body text is ignored.
`

func TestParseNote(t *testing.T) {
	book, err := ParseNote("Dune - 234225.md", []byte(duneNote))
	require.NoError(t, err)

	assert.Equal(t, types.SourceGoodreads, book.Source)
	assert.Equal(t, "234225", book.ID)
	assert.Equal(t, "Dune - 234225.md", book.Filename)
	assert.Equal(t, "9780441013593", book.ISBN)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, []string{"Frank Herbert"}, book.Authors)
	assert.Equal(t, []string{"read", "sci-fi"}, book.Shelves)
	assert.Equal(t, "5", book.Rating)
	assert.Equal(t, "4.25", book.AvgRating)
	assert.Equal(t, "412", book.Pages)
	assert.Equal(t, "A desert planet, a spice, and a prophecy.", book.Review)
}

func TestParseNoteAuthorList(t *testing.T) {
	note := `---
id: 99
title: Good Omens
author:
  - "[[Authors/Terry Pratchett]]"
  - "[[Authors/Neil Gaiman]]"
---
`
	book, err := ParseNote("Good Omens - 99.md", []byte(note))
	require.NoError(t, err)
	assert.Equal(t, []string{"Terry Pratchett", "Neil Gaiman"}, book.Authors)
}

func TestParseNoteErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no front matter", "just a markdown body\n"},
		{"unclosed front matter", "---\ntitle: Oops\n"},
		{"missing id", "---\ntitle: Anonymous\n---\n"},
		{"invalid yaml", "---\ntitle: [unterminated\n---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNote("x.md", []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dune - 234225.md"), []byte(duneNote), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"), []byte("no front matter"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a note"), 0o644))

	var out bytes.Buffer
	books, err := ReadDir(types.GoodreadsConfig{Dir: dir}, &out)
	require.NoError(t, err)

	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Contains(t, out.String(), "broken.md")
}

func TestReadDirMissing(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadDir(types.GoodreadsConfig{Dir: filepath.Join(t.TempDir(), "nope")}, &out)
	assert.Error(t, err)
}

func TestReadDirEmpty(t *testing.T) {
	var out bytes.Buffer
	books, err := ReadDir(types.GoodreadsConfig{Dir: t.TempDir()}, &out)
	require.NoError(t, err)
	assert.Empty(t, books)
}
