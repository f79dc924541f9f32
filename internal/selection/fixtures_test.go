package selection

import (
	"linetrack.dev/internal/catalog"
	"linetrack.dev/internal/models"
)

func stop(id, name string, seq int) models.PathStop {
	lat, lon := 38.7, -9.1
	return models.PathStop{StopID: id, StopName: name, Lat: &lat, Lon: &lon, StopSequence: seq}
}

func trip(id, start string, dates ...string) models.Trip {
	return models.Trip{
		ID:       id,
		Dates:    dates,
		Schedule: []models.ScheduleEntry{{ArrivalTime: start, StopID: "S1", StopSequence: 1}},
	}
}

// newTestCatalog returns line 1001 with two outbound patterns and one inbound,
// and line 1002 with a single inbound pattern.
func newTestCatalog() *catalog.Mock {
	m := catalog.NewMock()
	m.MockAddLine(models.Line{ID: "L1001", ShortName: "1001", LongName: "Alfragide - Reboleira"})
	m.MockAddLine(models.Line{ID: "L1002", ShortName: "1002"})

	m.MockAddPattern(models.Pattern{
		ID: "1001_0_1", LineID: "L1001", Headsign: "Reboleira", DirectionID: 0, ShapeID: "SH1",
		Path:  []models.PathStop{stop("S1", "Alfragide", 1), stop("S2", "Reboleira", 2)},
		Trips: []models.Trip{trip("T1", "08:00:00", "20240101"), trip("T2", "07:00:00", "20240101")},
	})
	m.MockAddPattern(models.Pattern{
		ID: "1001_0_2", LineID: "L1001", Headsign: "Amadora", DirectionID: 0, ShapeID: "SH2",
		Path:  []models.PathStop{stop("S1", "Alfragide", 1), stop("S3", "Amadora", 2)},
		Trips: []models.Trip{trip("T3", "09:00:00", "20240105")},
	})
	m.MockAddPattern(models.Pattern{
		ID: "1001_1_1", LineID: "L1001", Headsign: "Alfragide", DirectionID: 1, ShapeID: "SH3",
		Path:  []models.PathStop{stop("S2", "Reboleira", 1), stop("S1", "Alfragide", 2)},
		Trips: []models.Trip{trip("T4", "10:00:00", "20240101")},
	})
	m.MockAddPattern(models.Pattern{
		ID: "1002_1_1", LineID: "L1002", DirectionID: 1,
		Path:  []models.PathStop{stop("S9", "Queluz", 1)},
		Trips: []models.Trip{trip("T9", "06:00:00", "20240101")},
	})

	m.MockAddShape(models.Shape{ID: "SH1", Coordinates: [][2]float64{{-9.1, 38.7}, {-9.2, 38.8}}})
	m.MockAddShape(models.Shape{ID: "SH2", Coordinates: [][2]float64{{-9.3, 38.9}}})
	return m
}
