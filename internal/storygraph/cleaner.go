// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package storygraph cleans a StoryGraph export CSV into Book records:
// source column headers are renamed to canonical fields, comma-delimited
// text fields become lists, and the compound content-warning column is
// decomposed into severity buckets.
package storygraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/bookvault/pkg/types"
)

// Export column headers, as StoryGraph writes them.
const (
	colTitle         = "Title"
	colAuthors       = "Authors"
	colContributors  = "Contributors"
	colISBN          = "ISBN/UID"
	colFormat        = "Format"
	colReadStatus    = "Read Status"
	colDateAdded     = "Date Added"
	colLastDateRead  = "Last Date Read"
	colDatesRead     = "Dates Read"
	colReadCount     = "Read Count"
	colMoods         = "Moods"
	colPace          = "Pace"
	colDriver        = "Character- or Plot-Driven?"
	colDevelopment   = "Strong Character Development?"
	colLoveable      = "Loveable Characters?"
	colDiverse       = "Diverse Characters?"
	colFlawed        = "Flawed Characters?"
	colRating        = "Star Rating"
	colReview        = "Review"
	colWarnings      = "Content Warnings"
	colWarningsDesc  = "Content Warning Description"
	colTags          = "Tags"
	colOwned         = "Owned?"
)

// CleanFile parses the configured export file. Progress and row warnings
// go to w.
func CleanFile(cfg types.StoryGraphConfig, w io.Writer) ([]types.Book, error) {
	path := cfg.File
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export %s: %w", path, err)
	}
	defer f.Close()

	books, err := Clean(f, w)
	if err != nil {
		return nil, fmt.Errorf("cleaning export %s: %w", path, err)
	}
	return books, nil
}

// Clean parses export CSV data from r into Book records, one per row.
// Missing columns yield zero values rather than errors; a malformed row is
// skipped with a warning on w.
func Clean(r io.Reader, w io.Writer) ([]types.Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	var books []types.Book
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(w, "warning: skipping row %d: %v\n", line, err)
			continue
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		readCount, _ := strconv.Atoi(field(colReadCount))

		books = append(books, types.Book{
			Source:                     types.SourceStoryGraph,
			Title:                      field(colTitle),
			Authors:                    splitList(field(colAuthors)),
			Contributors:               splitList(field(colContributors)),
			ISBN:                       field(colISBN),
			Format:                     field(colFormat),
			ReadStatus:                 field(colReadStatus),
			DateAdded:                  field(colDateAdded),
			DateRead:                   field(colDatesRead),
			LastDateRead:               field(colLastDateRead),
			ReadCount:                  readCount,
			Moods:                      splitList(field(colMoods)),
			Pace:                       field(colPace),
			Driver:                     field(colDriver),
			CharactersDevelopment:      field(colDevelopment),
			CharactersLoveable:         field(colLoveable),
			CharactersDiverse:          field(colDiverse),
			CharactersFlawed:           field(colFlawed),
			Rating:                     field(colRating),
			Review:                     field(colReview),
			ContentWarnings:            parseContentWarnings(field(colWarnings)),
			ContentWarningsDescription: field(colWarningsDesc),
			Tags:                       splitList(field(colTags)),
			Owned:                      field(colOwned),
		})
	}

	fmt.Fprintf(w, "cleaned %d rows\n", len(books))
	return books, nil
}

// splitList splits a comma-delimited multi-value field into trimmed
// entries. An empty field yields nil.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parseContentWarnings decomposes the compound export field
// ("Graphic: war, gore; Moderate: cursing; Minor: bugs") into the three
// severity buckets. Unknown severity labels are dropped.
func parseContentWarnings(s string) types.ContentWarnings {
	var cw types.ContentWarnings
	for _, segment := range strings.Split(s, ";") {
		segment = strings.ReplaceAll(segment, "\n", "")
		segment = strings.ReplaceAll(segment, "\r", "")
		label, values, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		list := splitList(values)
		switch strings.TrimSpace(label) {
		case "Graphic":
			cw.Graphic = append(cw.Graphic, list...)
		case "Moderate":
			cw.Moderate = append(cw.Moderate, list...)
		case "Minor":
			cw.Minor = append(cw.Minor, list...)
		}
	}
	return cw
}
