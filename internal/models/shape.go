package models

// Shape is the polyline geometry of a pattern as (longitude, latitude) pairs.
type Shape struct {
	ID          string       `json:"id"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// ShapeEntry represents a shape entry for the API response
type ShapeEntry struct {
	ID     string `json:"id"`
	Points string `json:"points"`
	Length int    `json:"length"`
	Levels string `json:"levels"`
}
