package config

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // One human-readable line per result
	JSON                     // JSON document
	PGN                      // Portable Game Notation (selfplay only)
)

// String returns the name of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case PGN:
		return "pgn"
	}
	return "unknown"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the output format
	Format OutputFormat

	// ShowBoard prints the board diagram after each position or game
	ShowBoard bool

	// IncludeStats adds node counts and timings to results
	IncludeStats bool

	// Event and Site fill the PGN tag roster
	Event string
	Site  string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
		Event:  "marble-chess selfplay",
		Site:   "?",
	}
}
