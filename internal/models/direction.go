package models

// Direction groups the patterns of a line sharing a direction code.
type Direction struct {
	ID       int       `json:"id"`
	Label    string    `json:"label"`
	Patterns []Pattern `json:"-"`
}

// DirectionEntry is the API view of a Direction.
type DirectionEntry struct {
	ID         int      `json:"id"`
	Label      string   `json:"label"`
	PatternIDs []string `json:"patternIds"`
}

// LineEntry is the API view of a line with its classified directions.
type LineEntry struct {
	Line       Line             `json:"line"`
	Directions []DirectionEntry `json:"directions"`
}

func NewLineEntry(line Line, directions []Direction) LineEntry {
	entries := make([]DirectionEntry, 0, len(directions))
	for _, d := range directions {
		ids := make([]string, 0, len(d.Patterns))
		for _, p := range d.Patterns {
			ids = append(ids, p.ID)
		}
		entries = append(entries, DirectionEntry{ID: d.ID, Label: d.Label, PatternIDs: ids})
	}
	return LineEntry{Line: line, Directions: entries}
}
