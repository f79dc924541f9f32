package schedule

import (
	"sort"

	"linetrack.dev/internal/models"
)

// OrderTrips returns the entries sorted by start time.
// Times compare as HH:MM:SS strings, so extended hours (25:10:00) sort after
// same-day times. Equal start times keep their input order.
func OrderTrips(entries []models.ItineraryEntry) []models.ItineraryEntry {
	ordered := make([]models.ItineraryEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartTime < ordered[j].StartTime
	})
	return ordered
}
