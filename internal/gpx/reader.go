package gpx

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Document is the subset of a GPX file produced by Serialize.
type Document struct {
	XMLName   xml.Name   `xml:"gpx"`
	Version   string     `xml:"version,attr"`
	Creator   string     `xml:"creator,attr"`
	Name      string     `xml:"metadata>name"`
	Waypoints []Waypoint `xml:"wpt"`
	Tracks    []Track    `xml:"trk"`
}

type Waypoint struct {
	Lat         float64 `xml:"lat,attr"`
	Lon         float64 `xml:"lon,attr"`
	Name        string  `xml:"name"`
	Description string  `xml:"desc"`
}

type Track struct {
	Name     string    `xml:"name"`
	Segments []Segment `xml:"trkseg"`
}

type Segment struct {
	Points []Point `xml:"trkpt"`
}

type Point struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
}

// PointCount returns the number of track points across all tracks.
func (d Document) PointCount() int {
	n := 0
	for _, t := range d.Tracks {
		for _, s := range t.Segments {
			n += len(s.Points)
		}
	}
	return n
}

// Parse decodes a GPX document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("error parsing GPX document: %w", err)
	}
	return doc, nil
}
