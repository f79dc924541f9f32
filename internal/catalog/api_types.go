package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"linetrack.dev/internal/models"
)

type apiLine struct {
	ID        string   `json:"id"`
	ShortName string   `json:"short_name"`
	LongName  string   `json:"long_name"`
	Color     string   `json:"color"`
	TextColor string   `json:"text_color"`
	Patterns  []string `json:"patterns"`
}

func (l apiLine) toModel() models.Line {
	return models.Line{
		ID:         l.ID,
		ShortName:  l.ShortName,
		LongName:   l.LongName,
		Color:      l.Color,
		TextColor:  l.TextColor,
		PatternIDs: l.Patterns,
	}
}

type apiStop struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Lat  flexFloat `json:"lat"`
	Lon  flexFloat `json:"lon"`
}

type apiPathStop struct {
	Stop         apiStop `json:"stop"`
	StopSequence int     `json:"stop_sequence"`
}

type apiScheduleEntry struct {
	ArrivalTime  string `json:"arrival_time"`
	StopID       string `json:"stop_id"`
	StopSequence int    `json:"stop_sequence"`
}

type apiTrip struct {
	ID       string             `json:"id"`
	Dates    []string           `json:"dates"`
	Schedule []apiScheduleEntry `json:"schedule"`
}

type apiPattern struct {
	ID        string        `json:"id"`
	LineID    string        `json:"line_id"`
	Headsign  string        `json:"headsign"`
	Direction int           `json:"direction"`
	ShapeID   string        `json:"shape_id"`
	Path      []apiPathStop `json:"path"`
	Trips     []apiTrip     `json:"trips"`
}

func (p apiPattern) toModel() models.Pattern {
	pattern := models.Pattern{
		ID:          p.ID,
		LineID:      p.LineID,
		Headsign:    p.Headsign,
		DirectionID: p.Direction,
		ShapeID:     p.ShapeID,
		Path:        make([]models.PathStop, 0, len(p.Path)),
		Trips:       make([]models.Trip, 0, len(p.Trips)),
	}
	for _, ps := range p.Path {
		pattern.Path = append(pattern.Path, models.PathStop{
			StopID:       ps.Stop.ID,
			StopName:     ps.Stop.Name,
			Lat:          ps.Stop.Lat.value,
			Lon:          ps.Stop.Lon.value,
			StopSequence: ps.StopSequence,
		})
	}
	for _, t := range p.Trips {
		trip := models.Trip{
			ID:       t.ID,
			Dates:    t.Dates,
			Schedule: make([]models.ScheduleEntry, 0, len(t.Schedule)),
		}
		for _, s := range t.Schedule {
			trip.Schedule = append(trip.Schedule, models.ScheduleEntry{
				ArrivalTime:  s.ArrivalTime,
				StopID:       s.StopID,
				StopSequence: s.StopSequence,
			})
		}
		pattern.Trips = append(pattern.Trips, trip)
	}
	return pattern
}

type apiShape struct {
	ShapeID string `json:"shape_id"`
	GeoJSON struct {
		Geometry struct {
			Type        string       `json:"type"`
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"geojson"`
}

func (s apiShape) toModel(id string) models.Shape {
	shapeID := s.ShapeID
	if shapeID == "" {
		shapeID = id
	}
	return models.Shape{
		ID:          shapeID,
		Coordinates: s.GeoJSON.Geometry.Coordinates,
	}
}

// flexFloat decodes a coordinate published either as a JSON number or as a
// string. Empty strings and null decode to a nil value.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		f.value = nil
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			f.value = nil
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	f.value = &v
	return nil
}
