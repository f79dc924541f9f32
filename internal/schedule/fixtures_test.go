package schedule

import (
	"fmt"

	"linetrack.dev/internal/models"
)

func pathTo(names ...string) []models.PathStop {
	path := make([]models.PathStop, 0, len(names))
	for i, name := range names {
		path = append(path, models.PathStop{
			StopID:       fmt.Sprintf("s%d", i+1),
			StopName:     name,
			StopSequence: i + 1,
		})
	}
	return path
}

func trip(id, start string, dates ...string) models.Trip {
	return models.Trip{
		ID:    id,
		Dates: dates,
		Schedule: []models.ScheduleEntry{
			{ArrivalTime: start, StopID: "s1", StopSequence: 1},
			{ArrivalTime: "23:59:59", StopID: "s2", StopSequence: 2},
		},
	}
}

func tripsN(prefix string, n int, dates ...string) []models.Trip {
	trips := make([]models.Trip, 0, n)
	for i := 0; i < n; i++ {
		trips = append(trips, trip(fmt.Sprintf("%s-%d", prefix, i), fmt.Sprintf("%02d:00:00", 6+i), dates...))
	}
	return trips
}
