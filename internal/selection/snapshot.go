// Package selection holds the user's current choice of line, direction,
// service date and pattern as an immutable snapshot.
package selection

import (
	"net/url"

	"linetrack.dev/internal/models"
	"linetrack.dev/internal/schedule"
)

const (
	ParamLine            = "line"
	ParamActivePatternID = "active_pattern_id"
)

// Snapshot is a value: the With* methods return modified copies and never
// touch the receiver. Patterns is shared between copies and must not be mutated.
type Snapshot struct {
	Line      models.Line
	Patterns  []models.Pattern
	Direction int
	Date      string
	PatternID string
}

// NewSnapshot selects the first direction with patterns and its first pattern.
func NewSnapshot(line models.Line, patterns []models.Pattern, date string) Snapshot {
	s := Snapshot{
		Line:      line,
		Patterns:  patterns,
		Direction: models.DirectionOutbound,
		Date:      date,
	}
	if len(schedule.PatternsForDirection(patterns, models.DirectionOutbound)) == 0 &&
		len(schedule.PatternsForDirection(patterns, models.DirectionInbound)) > 0 {
		s.Direction = models.DirectionInbound
	}
	s.PatternID = s.firstPatternID()
	return s
}

func (s Snapshot) firstPatternID() string {
	for _, p := range s.Patterns {
		if p.DirectionID == s.Direction {
			return p.ID
		}
	}
	return ""
}

// WithDirection switches direction and resets the active pattern to the
// first pattern of the new direction.
func (s Snapshot) WithDirection(directionID int) Snapshot {
	if directionID != models.DirectionInbound {
		directionID = models.DirectionOutbound
	}
	if directionID == s.Direction {
		return s
	}
	s.Direction = directionID
	s.PatternID = s.firstPatternID()
	return s
}

func (s Snapshot) WithDate(date string) Snapshot {
	s.Date = date
	return s
}

// WithPattern activates a pattern of the line, following it into its
// direction. Unknown ids leave the snapshot unchanged.
func (s Snapshot) WithPattern(patternID string) Snapshot {
	for _, p := range s.Patterns {
		if p.ID == patternID {
			s.Direction = p.DirectionID
			s.PatternID = p.ID
			return s
		}
	}
	return s
}

// Itinerary resolves the trips of the selected direction on the selected date.
func (s Snapshot) Itinerary() models.ResolvedItinerary {
	return schedule.Resolve(s.Patterns, s.Direction, s.Date)
}

func (s Snapshot) Directions() []models.Direction {
	return schedule.ClassifyDirections(s.Patterns)
}

// DirectionLabel is the inferred destination of the selected direction.
func (s Snapshot) DirectionLabel() string {
	return schedule.DirectionLabel(s.Patterns, s.Direction)
}

func (s Snapshot) ActivePattern() (models.Pattern, bool) {
	for _, p := range s.Patterns {
		if p.ID == s.PatternID {
			return p, true
		}
	}
	return models.Pattern{}, false
}

// QueryParams encodes the navigation state: the line and the active pattern.
func (s Snapshot) QueryParams() url.Values {
	values := url.Values{}
	if ref := s.Line.DisplayName(); ref != "" {
		values.Set(ParamLine, ref)
	}
	if s.PatternID != "" {
		values.Set(ParamActivePatternID, s.PatternID)
	}
	return values
}

// Query is navigation state read back from query parameters.
type Query struct {
	Line      string
	PatternID string
}

func ParseQuery(values url.Values) Query {
	return Query{
		Line:      values.Get(ParamLine),
		PatternID: values.Get(ParamActivePatternID),
	}
}
