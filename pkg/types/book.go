// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Source identifies which catalog a record came from.
type Source string

const (
	SourceGoodreads  Source = "goodreads"
	SourceStoryGraph Source = "storygraph"
)

// ContentWarnings holds the StoryGraph content warnings split by severity.
// The export carries them as one compound text field; the cleaner decomposes
// it into these three lists.
type ContentWarnings struct {
	Graphic  []string `json:"graphic,omitempty" yaml:"graphic,omitempty"`
	Moderate []string `json:"moderate,omitempty" yaml:"moderate,omitempty"`
	Minor    []string `json:"minor,omitempty" yaml:"minor,omitempty"`
}

// IsZero reports whether no warnings are present at any severity.
func (c ContentWarnings) IsZero() bool {
	return len(c.Graphic) == 0 && len(c.Moderate) == 0 && len(c.Minor) == 0
}

// Book is one normalized catalog record. Both readers produce this shape:
// field names are canonical, scalar-or-list source fields are resolved to
// lists, and absent values are zero values. The linkage engine consumes only
// ISBN, Title, Authors, and Review; the remaining fields ride along into the
// merged output.
type Book struct {
	// Source is the catalog of origin.
	Source Source `json:"source" yaml:"source"`

	// ID is the source-native identifier (the Goodreads numeric id for
	// notes; empty for StoryGraph rows, which have no stable id).
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Filename is the note file the record was read from (Goodreads only).
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// ISBN is the external identifier used for exact matching. Empty when
	// the source did not record one.
	ISBN string `json:"isbn,omitempty" yaml:"isbn,omitempty"`

	// Title is the book title as the source spells it.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors lists the authors. Always a list: a scalar author field is
	// wrapped into a singleton at normalization time.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Review is the free-text review note.
	Review string `json:"review,omitempty" yaml:"review,omitempty"`

	// Rating is the user's star rating, kept as the source's text form.
	Rating string `json:"rating,omitempty" yaml:"rating,omitempty"`

	DateAdded string `json:"date_added,omitempty" yaml:"date_added,omitempty"`
	DateRead  string `json:"date_read,omitempty" yaml:"date_read,omitempty"`

	// Goodreads note fields.
	Shelves       []string `json:"shelves,omitempty" yaml:"shelves,omitempty"`
	Series        string   `json:"series,omitempty" yaml:"series,omitempty"`
	AvgRating     string   `json:"avg_rating,omitempty" yaml:"avg_rating,omitempty"`
	Pages         string   `json:"pages,omitempty" yaml:"pages,omitempty"`
	DatePublished string   `json:"date_published,omitempty" yaml:"date_published,omitempty"`

	// StoryGraph export fields.
	Contributors               []string        `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	Format                     string          `json:"format,omitempty" yaml:"format,omitempty"`
	ReadStatus                 string          `json:"read_status,omitempty" yaml:"read_status,omitempty"`
	ReadCount                  int             `json:"read_count,omitempty" yaml:"read_count,omitempty"`
	LastDateRead               string          `json:"last_date_read,omitempty" yaml:"last_date_read,omitempty"`
	Moods                      []string        `json:"moods,omitempty" yaml:"moods,omitempty"`
	Pace                       string          `json:"pace,omitempty" yaml:"pace,omitempty"`
	Driver                     string          `json:"driver,omitempty" yaml:"driver,omitempty"`
	CharactersDevelopment      string          `json:"characters_development,omitempty" yaml:"characters_development,omitempty"`
	CharactersLoveable         string          `json:"characters_loveable,omitempty" yaml:"characters_loveable,omitempty"`
	CharactersDiverse          string          `json:"characters_diverse,omitempty" yaml:"characters_diverse,omitempty"`
	CharactersFlawed           string          `json:"characters_flawed,omitempty" yaml:"characters_flawed,omitempty"`
	ContentWarnings            ContentWarnings `json:"content_warnings,omitempty" yaml:"content_warnings,omitempty"`
	ContentWarningsDescription string          `json:"content_warnings_description,omitempty" yaml:"content_warnings_description,omitempty"`
	Tags                       []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Owned                      string          `json:"owned,omitempty" yaml:"owned,omitempty"`
}

// HasISBN reports whether the record carries a usable exact-match key.
func (b Book) HasISBN() bool {
	return b.ISBN != ""
}

// MatchMethod records which linkage phase produced a pair.
type MatchMethod string

const (
	MatchExact MatchMethod = "exact"
	MatchFuzzy MatchMethod = "fuzzy"
)

// MatchedPair joins one record from each source. Fields stay separated by
// side; output writers namespace them (goodreads_*, story_graph_*) when the
// pair is flattened.
type MatchedPair struct {
	Goodreads  Book        `json:"goodreads" yaml:"goodreads"`
	StoryGraph Book        `json:"story_graph" yaml:"story_graph"`
	Method     MatchMethod `json:"match_method" yaml:"match_method"`
}
