package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"linetrack.dev/internal/gpx"
)

func inspect(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("inspect takes exactly one GPX file")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	doc, err := gpx.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprintf(stdout, "name:      %s\n", doc.Name)
	fmt.Fprintf(stdout, "creator:   %s\n", doc.Creator)
	fmt.Fprintf(stdout, "waypoints: %d\n", len(doc.Waypoints))
	for _, t := range doc.Tracks {
		fmt.Fprintf(stdout, "track:     %s\n", t.Name)
	}
	fmt.Fprintf(stdout, "points:    %d\n", doc.PointCount())
	return nil
}
