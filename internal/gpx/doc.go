// Package gpx writes a pattern's geometry and stops as a GPX 1.1 track file
// and reads such files back.
//
// The writer emits a fixed layout: document metadata naming the pattern, one
// optional waypoint per stop, and a single track with a single segment holding
// one point per shape coordinate. Shape coordinates arrive as (lon, lat) and
// are written as lat/lon attributes.
package gpx
