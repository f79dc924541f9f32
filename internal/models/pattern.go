package models

import "sort"

// PathStop is one stop visit along a pattern path.
// Lat and Lon are nil when the catalog did not publish coordinates.
type PathStop struct {
	StopID       string   `json:"stopId"`
	StopName     string   `json:"stopName"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	StopSequence int      `json:"stopSequence"`
}

// HasCoordinates reports whether both coordinates are present.
func (s PathStop) HasCoordinates() bool {
	return s.Lat != nil && s.Lon != nil
}

// Pattern is a routing variant of a line for one direction.
type Pattern struct {
	ID          string     `json:"id"`
	LineID      string     `json:"lineId"`
	Headsign    string     `json:"headsign"`
	DirectionID int        `json:"directionId"`
	ShapeID     string     `json:"shapeId"`
	Path        []PathStop `json:"path"`
	Trips       []Trip     `json:"trips"`
}

// DisplayName returns the headsign, or the id when the pattern has none.
func (p Pattern) DisplayName() string {
	if p.Headsign != "" {
		return p.Headsign
	}
	return p.ID
}

// LastStop returns the path stop with the highest sequence number.
func (p Pattern) LastStop() (PathStop, bool) {
	if len(p.Path) == 0 {
		return PathStop{}, false
	}
	last := p.Path[0]
	for _, stop := range p.Path[1:] {
		if stop.StopSequence > last.StopSequence {
			last = stop
		}
	}
	return last, true
}

// OrderedPath returns a copy of the path sorted by stop sequence.
func (p Pattern) OrderedPath() []PathStop {
	path := make([]PathStop, len(p.Path))
	copy(path, p.Path)
	sort.SliceStable(path, func(i, j int) bool {
		return path[i].StopSequence < path[j].StopSequence
	})
	return path
}

// PatternEntry is the API view of a pattern, without its trips.
type PatternEntry struct {
	ID          string     `json:"id"`
	LineID      string     `json:"lineId"`
	Headsign    string     `json:"headsign"`
	DirectionID int        `json:"directionId"`
	ShapeID     string     `json:"shapeId"`
	TripCount   int        `json:"tripCount"`
	Path        []PathStop `json:"path"`
}

func NewPatternEntry(p Pattern) PatternEntry {
	return PatternEntry{
		ID:          p.ID,
		LineID:      p.LineID,
		Headsign:    p.Headsign,
		DirectionID: p.DirectionID,
		ShapeID:     p.ShapeID,
		TripCount:   len(p.Trips),
		Path:        p.OrderedPath(),
	}
}
