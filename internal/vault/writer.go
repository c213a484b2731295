// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault maintains the Obsidian vault downstream of linkage: it
// writes one combined note per matched pair, deletes the superseded
// single-source notes, and rebuilds the per-author, per-series, and
// per-shelf index notes.
package vault

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookvault/pkg/types"
)

// Vault subdirectories.
const (
	combinedDir   = "Combined"
	goodreadsDir  = "Goodreads"
	storygraphDir = "StoryGraph"
	authorsDir    = "Authors"
	seriesDir     = "Series"
	shelvesDir    = "Shelves"
)

// indexNote is the body of every index note: empty tracking front matter, a
// dataviewjs header computing book and read counts, and a vault query over
// the combined notes. Authors, series, and shelf notes differ only in the
// substituted name, so one template serves all three.
const indexNote = "---\n" +
	"tsg_last_checked:\n" +
	"tsg_count:\n" +
	"gr_last_checked:\n" +
	"gr_count:\n" +
	"---\n\n" +
	"````dataviewjs\n" +
	"let bookCount = dv.pages('\"Combined\"').where((p) => dv.func.contains(String(p.shelves), \"{{ . }}\")).length\n" +
	"let readCount = dv.pages('\"Combined\"').where((p) => dv.func.contains(String(p.shelves), \"{{ . }}\") && dv.func.contains(String(p.shelves), 'Shelves/read')).length\n" +
	"const percentRead = dv.func.round((readCount / bookCount) * 100, 2)\n" +
	"\n" +
	"dv.header(2, `Books: ${bookCount}, Read: ${readCount}, Percent Read: ${percentRead}%`)\n" +
	"````\n\n" +
	"```dataview\n" +
	"TABLE isbn, datePublished, dateAdded, dateRead, avgRating, rating, pages, shelves, series\n" +
	"FROM \"Combined\"\n" +
	"WHERE contains(string(shelves), \"{{ . }}\")=true\n" +
	"SORT series ASC\n" +
	"```\n"

var indexTemplate = template.Must(template.New("index").Parse(indexNote))

// Summary counts what one vault update produced.
type Summary struct {
	Combined int
	Deleted  int
	Authors  int
	Series   int
	Shelves  int
}

// Writer updates a vault directory from matched pairs.
type Writer struct {
	dir string
}

// NewWriter returns a Writer over the configured vault root.
func NewWriter(cfg types.VaultConfig) *Writer {
	return &Writer{dir: cfg.Dir}
}

// WriteCombined writes one combined note per pair into Combined/, deletes
// the superseded Goodreads and StoryGraph notes, and rebuilds the index
// notes from the distinct authors, series, and shelf tags seen across all
// pairs. Progress lines go to w.
func (v *Writer) WriteCombined(pairs []types.MatchedPair, w io.Writer) (Summary, error) {
	for _, dir := range []string{combinedDir, authorsDir, seriesDir, shelvesDir} {
		if err := os.MkdirAll(filepath.Join(v.dir, dir), 0o755); err != nil {
			return Summary{}, fmt.Errorf("creating vault directory %s: %w", dir, err)
		}
	}

	var sum Summary
	authors := make(map[string]struct{})
	series := make(map[string]struct{})
	shelves := make(map[string]struct{})

	for _, pair := range pairs {
		title := pair.StoryGraph.Title
		if pair.Goodreads.Title != pair.StoryGraph.Title {
			title = ReconcileTitle(pair.Goodreads.Title, pair.StoryGraph.Title)
		}

		path := filepath.Join(v.dir, combinedDir, noteFilename(title))
		if err := writeNote(path, types.Merge(pair)); err != nil {
			return sum, err
		}
		sum.Combined++
		fmt.Fprintf(w, "combined: %s\n", noteFilename(title))

		sum.Deleted += v.deleteSuperseded(pair)

		collect(authors, pair.Goodreads.Authors...)
		collect(authors, pair.StoryGraph.Authors...)
		collect(series, pair.Goodreads.Series)
		collect(shelves, pair.StoryGraph.ReadStatus)
		collect(shelves, pair.Goodreads.Shelves...)
		collect(shelves, pair.StoryGraph.Tags...)
	}

	var err error
	if sum.Authors, err = v.writeIndexNotes(authorsDir, authors); err != nil {
		return sum, err
	}
	if sum.Series, err = v.writeIndexNotes(seriesDir, series); err != nil {
		return sum, err
	}
	if sum.Shelves, err = v.writeIndexNotes(shelvesDir, shelves); err != nil {
		return sum, err
	}

	fmt.Fprintf(w, "vault updated: %d combined, %d superseded notes removed\n",
		sum.Combined, sum.Deleted)
	return sum, nil
}

// deleteSuperseded removes the single-source notes a combined note
// replaces. Notes already gone are not an error.
func (v *Writer) deleteSuperseded(pair types.MatchedPair) int {
	deleted := 0

	grNote := pair.Goodreads.Filename
	if grNote == "" {
		grNote = fmt.Sprintf("%s - %s.md", pair.Goodreads.Title, pair.Goodreads.ID)
	}
	if removeIfPresent(filepath.Join(v.dir, goodreadsDir, grNote)) {
		deleted++
	}

	sgNote := noteFilename(pair.StoryGraph.Title)
	if removeIfPresent(filepath.Join(v.dir, storygraphDir, sgNote)) {
		deleted++
	}

	return deleted
}

func (v *Writer) writeIndexNotes(dir string, names map[string]struct{}) (int, error) {
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		var b strings.Builder
		if err := indexTemplate.Execute(&b, name); err != nil {
			return 0, fmt.Errorf("rendering index note %s: %w", name, err)
		}
		path := filepath.Join(v.dir, dir, noteFilename(name))
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return 0, fmt.Errorf("writing index note %s: %w", name, err)
		}
	}
	return len(sorted), nil
}

// writeNote writes a combined note: YAML front matter only, fenced.
func writeNote(path string, rec types.MergedRecord) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling note %s: %w", path, err)
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing note: %w", err)
	}
	return nil
}

// noteFilename turns a title into a vault-safe markdown filename. Path
// separators would escape the vault directory.
func noteFilename(title string) string {
	title = strings.ReplaceAll(title, "/", "-")
	return title + ".md"
}

func removeIfPresent(path string) bool {
	return os.Remove(path) == nil
}

func collect(set map[string]struct{}, values ...string) {
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
}
