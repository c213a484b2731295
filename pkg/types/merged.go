// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MergedRecord is the flat, namespaced form of a MatchedPair: every field
// from both sides under a goodreads_ or story_graph_ prefix, plus the match
// provenance. This is the shape written to the JSON-lines merged output and
// to combined note front matter.
type MergedRecord struct {
	GoodreadsID            string   `json:"goodreads_id,omitempty" yaml:"goodreads_id,omitempty"`
	GoodreadsFilename      string   `json:"goodreads_filename,omitempty" yaml:"goodreads_filename,omitempty"`
	GoodreadsISBN          string   `json:"goodreads_isbn,omitempty" yaml:"goodreads_isbn,omitempty"`
	GoodreadsTitle         string   `json:"goodreads_title,omitempty" yaml:"goodreads_title,omitempty"`
	GoodreadsAuthors       []string `json:"goodreads_authors,omitempty" yaml:"goodreads_authors,omitempty"`
	GoodreadsReview        string   `json:"goodreads_review,omitempty" yaml:"goodreads_review,omitempty"`
	GoodreadsRating        string   `json:"goodreads_rating,omitempty" yaml:"goodreads_rating,omitempty"`
	GoodreadsAvgRating     string   `json:"goodreads_avg_rating,omitempty" yaml:"goodreads_avg_rating,omitempty"`
	GoodreadsPages         string   `json:"goodreads_pages,omitempty" yaml:"goodreads_pages,omitempty"`
	GoodreadsDatePublished string   `json:"goodreads_date_published,omitempty" yaml:"goodreads_date_published,omitempty"`
	GoodreadsDateAdded     string   `json:"goodreads_date_added,omitempty" yaml:"goodreads_date_added,omitempty"`
	GoodreadsDateRead      string   `json:"goodreads_date_read,omitempty" yaml:"goodreads_date_read,omitempty"`
	GoodreadsShelves       []string `json:"goodreads_shelves,omitempty" yaml:"goodreads_shelves,omitempty"`
	GoodreadsSeries        string   `json:"goodreads_series,omitempty" yaml:"goodreads_series,omitempty"`

	StoryGraphISBN            string   `json:"story_graph_isbn,omitempty" yaml:"story_graph_isbn,omitempty"`
	StoryGraphTitle           string   `json:"story_graph_title,omitempty" yaml:"story_graph_title,omitempty"`
	StoryGraphAuthors         []string `json:"story_graph_authors,omitempty" yaml:"story_graph_authors,omitempty"`
	StoryGraphContributors    []string `json:"story_graph_contributors,omitempty" yaml:"story_graph_contributors,omitempty"`
	StoryGraphFormat          string   `json:"story_graph_format,omitempty" yaml:"story_graph_format,omitempty"`
	StoryGraphReadStatus      string   `json:"story_graph_read_status,omitempty" yaml:"story_graph_read_status,omitempty"`
	StoryGraphReadCount       int      `json:"story_graph_read_count,omitempty" yaml:"story_graph_read_count,omitempty"`
	StoryGraphDateAdded       string   `json:"story_graph_date_added,omitempty" yaml:"story_graph_date_added,omitempty"`
	StoryGraphDatesRead       string   `json:"story_graph_dates_read,omitempty" yaml:"story_graph_dates_read,omitempty"`
	StoryGraphLastDateRead    string   `json:"story_graph_last_date_read,omitempty" yaml:"story_graph_last_date_read,omitempty"`
	StoryGraphMoods           []string `json:"story_graph_moods,omitempty" yaml:"story_graph_moods,omitempty"`
	StoryGraphPace            string   `json:"story_graph_pace,omitempty" yaml:"story_graph_pace,omitempty"`
	StoryGraphDriver          string   `json:"story_graph_driver,omitempty" yaml:"story_graph_driver,omitempty"`
	StoryGraphCharDevelopment string   `json:"story_graph_characters_development,omitempty" yaml:"story_graph_characters_development,omitempty"`
	StoryGraphCharLoveable    string   `json:"story_graph_characters_loveable,omitempty" yaml:"story_graph_characters_loveable,omitempty"`
	StoryGraphCharDiverse     string   `json:"story_graph_characters_diverse,omitempty" yaml:"story_graph_characters_diverse,omitempty"`
	StoryGraphCharFlawed      string   `json:"story_graph_characters_flawed,omitempty" yaml:"story_graph_characters_flawed,omitempty"`
	StoryGraphRating          string   `json:"story_graph_rating,omitempty" yaml:"story_graph_rating,omitempty"`
	StoryGraphReview          string   `json:"story_graph_review,omitempty" yaml:"story_graph_review,omitempty"`
	StoryGraphCWGraphic       []string `json:"story_graph_content_warnings_graphic,omitempty" yaml:"story_graph_content_warnings_graphic,omitempty"`
	StoryGraphCWModerate      []string `json:"story_graph_content_warnings_moderate,omitempty" yaml:"story_graph_content_warnings_moderate,omitempty"`
	StoryGraphCWMinor         []string `json:"story_graph_content_warnings_minor,omitempty" yaml:"story_graph_content_warnings_minor,omitempty"`
	StoryGraphCWDescription   string   `json:"story_graph_content_warnings_description,omitempty" yaml:"story_graph_content_warnings_description,omitempty"`
	StoryGraphTags            []string `json:"story_graph_tags,omitempty" yaml:"story_graph_tags,omitempty"`
	StoryGraphOwned           string   `json:"story_graph_owned,omitempty" yaml:"story_graph_owned,omitempty"`

	MatchMethod MatchMethod `json:"match_method" yaml:"match_method"`
}

// Merge flattens a MatchedPair into its namespaced output form.
func Merge(p MatchedPair) MergedRecord {
	gr, sg := p.Goodreads, p.StoryGraph
	return MergedRecord{
		GoodreadsID:            gr.ID,
		GoodreadsFilename:      gr.Filename,
		GoodreadsISBN:          gr.ISBN,
		GoodreadsTitle:         gr.Title,
		GoodreadsAuthors:       gr.Authors,
		GoodreadsReview:        gr.Review,
		GoodreadsRating:        gr.Rating,
		GoodreadsAvgRating:     gr.AvgRating,
		GoodreadsPages:         gr.Pages,
		GoodreadsDatePublished: gr.DatePublished,
		GoodreadsDateAdded:     gr.DateAdded,
		GoodreadsDateRead:      gr.DateRead,
		GoodreadsShelves:       gr.Shelves,
		GoodreadsSeries:        gr.Series,

		StoryGraphISBN:            sg.ISBN,
		StoryGraphTitle:           sg.Title,
		StoryGraphAuthors:         sg.Authors,
		StoryGraphContributors:    sg.Contributors,
		StoryGraphFormat:          sg.Format,
		StoryGraphReadStatus:      sg.ReadStatus,
		StoryGraphReadCount:       sg.ReadCount,
		StoryGraphDateAdded:       sg.DateAdded,
		StoryGraphDatesRead:       sg.DateRead,
		StoryGraphLastDateRead:    sg.LastDateRead,
		StoryGraphMoods:           sg.Moods,
		StoryGraphPace:            sg.Pace,
		StoryGraphDriver:          sg.Driver,
		StoryGraphCharDevelopment: sg.CharactersDevelopment,
		StoryGraphCharLoveable:    sg.CharactersLoveable,
		StoryGraphCharDiverse:     sg.CharactersDiverse,
		StoryGraphCharFlawed:      sg.CharactersFlawed,
		StoryGraphRating:          sg.Rating,
		StoryGraphReview:          sg.Review,
		StoryGraphCWGraphic:       sg.ContentWarnings.Graphic,
		StoryGraphCWModerate:      sg.ContentWarnings.Moderate,
		StoryGraphCWMinor:         sg.ContentWarnings.Minor,
		StoryGraphCWDescription:   sg.ContentWarningsDescription,
		StoryGraphTags:            sg.Tags,
		StoryGraphOwned:           sg.Owned,

		MatchMethod: p.Method,
	}
}
