package gpx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"linetrack.dev/internal/models"
)

const (
	// Namespace is the GPX 1.1 schema namespace.
	Namespace = "http://www.topografix.com/GPX/1/1"

	DefaultCreator = "linetrack"
)

// Options controls what Serialize writes.
type Options struct {
	IncludeStops bool
	Creator      string
}

// Serialize renders the pattern and its shape as a GPX document.
// Stops lacking either coordinate are skipped. Coordinates are not validated.
func Serialize(pattern models.Pattern, shape models.Shape, opts Options) []byte {
	creator := opts.Creator
	if creator == "" {
		creator = DefaultCreator
	}
	name := pattern.DisplayName()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<gpx version="1.1" creator="`)
	writeEscaped(&b, creator)
	b.WriteString(`" xmlns="` + Namespace + `">` + "\n")

	b.WriteString("  <metadata><name>")
	writeEscaped(&b, name)
	b.WriteString("</name></metadata>\n")

	if opts.IncludeStops {
		for _, stop := range pattern.OrderedPath() {
			if !stop.HasCoordinates() {
				continue
			}
			writeWaypoint(&b, stop)
		}
	}

	b.WriteString("  <trk>\n")
	b.WriteString("    <name>")
	writeEscaped(&b, fmt.Sprintf("%s (%s)", name, models.DefaultDirectionLabel(pattern.DirectionID)))
	b.WriteString("</name>\n")
	b.WriteString("    <trkseg>\n")
	for _, c := range shape.Coordinates {
		b.WriteString(`      <trkpt lat="`)
		b.WriteString(formatCoordinate(c[1]))
		b.WriteString(`" lon="`)
		b.WriteString(formatCoordinate(c[0]))
		b.WriteString(`"></trkpt>` + "\n")
	}
	b.WriteString("    </trkseg>\n")
	b.WriteString("  </trk>\n")
	b.WriteString("</gpx>\n")

	return []byte(b.String())
}

func writeWaypoint(b *strings.Builder, stop models.PathStop) {
	b.WriteString(`  <wpt lat="`)
	b.WriteString(formatCoordinate(*stop.Lat))
	b.WriteString(`" lon="`)
	b.WriteString(formatCoordinate(*stop.Lon))
	b.WriteString(`"><name>`)
	writeEscaped(b, stop.StopName)
	b.WriteString("</name><desc>Stop Sequence: ")
	b.WriteString(strconv.Itoa(stop.StopSequence))
	b.WriteString("</desc></wpt>\n")
}

// FileName returns the download name for a pattern export.
func FileName(line models.Line, pattern models.Pattern) string {
	return fmt.Sprintf("%s_%s.gpx", line.DisplayName(), pattern.ID)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeEscaped writes s as XML character data. Invalid UTF-8 and characters
// outside the XML range are replaced with U+FFFD.
func writeEscaped(b *strings.Builder, s string) {
	// strings.Builder writes never fail.
	_ = xml.EscapeText(b, []byte(s))
}
