package types

// GoodreadsConfig holds settings for reading the Goodreads notes directory.
type GoodreadsConfig struct {
	// Dir is the directory of per-book markdown notes (Booksidian output).
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// StoryGraphConfig holds settings for cleaning the StoryGraph export.
type StoryGraphConfig struct {
	// File is the path to the StoryGraph export CSV.
	File string `json:"file" yaml:"file" mapstructure:"file"`
}

// VaultConfig holds settings for the vault writer.
type VaultConfig struct {
	// Dir is the vault root. It contains the Combined, Goodreads,
	// StoryGraph, Authors, Series, and Shelves subdirectories.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// CatalogConfig holds settings for the SQLite catalog.
type CatalogConfig struct {
	// Path is the catalog database file (default "catalog.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults caps query output (default 50).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// PipelineConfig groups all stage configurations. This is the shape of the
// bookvault.yaml config file.
type PipelineConfig struct {
	Goodreads  GoodreadsConfig  `json:"goodreads" yaml:"goodreads" mapstructure:"goodreads"`
	StoryGraph StoryGraphConfig `json:"storygraph" yaml:"storygraph" mapstructure:"storygraph"`
	Vault      VaultConfig      `json:"vault" yaml:"vault" mapstructure:"vault"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
}
