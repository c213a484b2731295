// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package goodreads reads the per-book markdown notes that Booksidian
// exports into the vault and normalizes their YAML front matter into Book
// records.
package goodreads

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookvault/pkg/types"
)

const frontMatterDelim = "---"

// ReadDir parses every .md note in the configured directory into a Book.
// Notes without front matter, with malformed YAML, or without an id field
// are skipped with a warning line on w; one bad note never aborts the run.
// A missing directory is an error.
func ReadDir(cfg types.GoodreadsConfig, w io.Writer) ([]types.Book, error) {
	dir := cfg.Dir
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading notes directory %s: %w", dir, err)
	}

	var books []types.Book
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read note %s: %v\n", entry.Name(), err)
			continue
		}

		book, err := ParseNote(entry.Name(), data)
		if err != nil {
			fmt.Fprintf(w, "skipped: %s (%v)\n", entry.Name(), err)
			continue
		}
		books = append(books, book)
	}

	return books, nil
}

// ParseNote extracts the front matter from one note and normalizes it. The
// note must open with a "---" fence, carry valid YAML up to the closing
// fence, and include an id field.
func ParseNote(filename string, data []byte) (types.Book, error) {
	fm, ok := frontMatter(data)
	if !ok {
		return types.Book{}, fmt.Errorf("no front matter")
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(fm), &raw); err != nil {
		return types.Book{}, fmt.Errorf("parsing front matter: %w", err)
	}

	id := asString(raw["id"])
	if id == "" {
		return types.Book{}, fmt.Errorf("missing id")
	}

	book := types.Book{
		Source:        types.SourceGoodreads,
		ID:            id,
		Filename:      filename,
		ISBN:          asString(raw["isbn"]),
		Title:         asString(raw["title"]),
		Review:        asString(raw["review"]),
		Rating:        asString(raw["rating"]),
		AvgRating:     asString(raw["avgRating"]),
		Pages:         asString(raw["pages"]),
		DatePublished: asString(raw["datePublished"]),
		DateAdded:     asString(raw["dateAdded"]),
		DateRead:      asString(raw["dateRead"]),
		Series:        asString(raw["series"]),
	}

	// Booksidian writes authors and shelves as wiki links
	// ("[[Authors/Frank Herbert]]"); strip the decoration. A scalar author
	// becomes a singleton list.
	for _, a := range asStringList(raw["author"]) {
		book.Authors = append(book.Authors, stripWikiLink(a, "Authors/"))
	}
	for _, s := range asStringList(raw["shelves"]) {
		book.Shelves = append(book.Shelves, stripWikiLink(s, "Shelves/"))
	}

	return book, nil
}

// frontMatter returns the YAML between the opening and closing "---" fences.
// The opening fence must be the first line of the note.
func frontMatter(data []byte) (string, bool) {
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() || strings.TrimRight(sc.Text(), "\r") != frontMatterDelim {
		return "", false
	}

	var b strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimRight(line, "\r") == frontMatterDelim {
			return b.String(), true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return "", false
}

// stripWikiLink removes bracket decoration and the given folder prefix from
// a vault link, leaving the bare name.
func stripWikiLink(s, prefix string) string {
	s = strings.ReplaceAll(s, "[", "")
	s = strings.ReplaceAll(s, "]", "")
	s = strings.ReplaceAll(s, prefix, "")
	return strings.TrimSpace(s)
}

// asString renders a loosely typed YAML scalar as a string. Numbers keep
// their source form as closely as possible; nil becomes "".
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		// yaml resolves bare dates like 2020-01-14 into timestamps.
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// asStringList resolves a scalar-or-list YAML field to a list of strings.
// A scalar is wrapped into a singleton; nil yields nil.
func asStringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := asString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}
