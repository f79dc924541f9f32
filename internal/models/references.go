package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Lines    []LineReference `json:"lines"`
	Patterns []PatternEntry  `json:"patterns"`
}

// LineReference is the display subset of a Line attached to responses.
type LineReference struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Lines:    []LineReference{},
		Patterns: []PatternEntry{},
	}
}

// NewLineReferences creates references holding a single line.
func NewLineReferences(line Line) ReferencesModel {
	refs := NewEmptyReferences()
	refs.Lines = append(refs.Lines, line.Reference())
	return refs
}
