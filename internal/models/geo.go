package models

// CoordinatePoint is a (lat, lon) pair in the axis order used by encoders.
type CoordinatePoint struct {
	Lat float64
	Lon float64
}

// PointFromShape swaps a (lon, lat) shape coordinate into a CoordinatePoint.
func PointFromShape(c [2]float64) CoordinatePoint {
	return CoordinatePoint{Lat: c[1], Lon: c[0]}
}

// Edge is an undirected segment between two points.
type Edge struct {
	A CoordinatePoint
	B CoordinatePoint
}

func NewEdge(a, b CoordinatePoint) Edge {
	if ComparePoints(a, b) <= 0 {
		return Edge{A: a, B: b}
	}
	return Edge{A: b, B: a}
}

func ComparePoints(a, b CoordinatePoint) int {
	switch {
	case a.Lat < b.Lat:
		return -1
	case a.Lat > b.Lat:
		return 1
	case a.Lon < b.Lon:
		return -1
	case a.Lon > b.Lon:
		return 1
	}
	return 0
}
