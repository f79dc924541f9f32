package models

// Line is a public-transit line as published by the catalog.
type Line struct {
	ID         string   `json:"id"`
	ShortName  string   `json:"shortName"`
	LongName   string   `json:"longName"`
	Color      string   `json:"color"`
	TextColor  string   `json:"textColor"`
	PatternIDs []string `json:"patternIds"`
}

// DisplayName returns the short name, or the id when the line has none.
func (l Line) DisplayName() string {
	if l.ShortName != "" {
		return l.ShortName
	}
	return l.ID
}

func (l Line) Reference() LineReference {
	return LineReference{
		ID:        l.ID,
		ShortName: l.ShortName,
		LongName:  l.LongName,
		Color:     l.Color,
		TextColor: l.TextColor,
	}
}
