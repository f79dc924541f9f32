package schedule

import (
	"sort"

	"linetrack.dev/internal/models"
)

// Resolve selects the trips of a direction that run on the requested date.
//
// When nothing runs on that exact date, the latest available date not after the
// request is used instead, or the earliest available date when every date lies
// in the future. Dates are compared as fixed-width YYYYMMDD strings.
func Resolve(patterns []models.Pattern, directionID int, date string) models.ResolvedItinerary {
	selected := PatternsForDirection(patterns, directionID)

	result := models.ResolvedItinerary{
		DirectionID:   directionID,
		RequestedDate: date,
		ServiceDate:   date,
	}

	entries := tripsOnDate(selected, date)
	if len(entries) > 0 {
		result.Entries = OrderTrips(entries)
		return result
	}

	fallback, ok := FallbackDate(AvailableDates(selected), date)
	if !ok {
		return result
	}

	result.Fallback = true
	result.ServiceDate = fallback
	result.Entries = OrderTrips(tripsOnDate(selected, fallback))
	return result
}

// AvailableDates returns the sorted union of service dates across all trips.
func AvailableDates(patterns []models.Pattern) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, p := range patterns {
		for _, t := range p.Trips {
			for _, d := range t.Dates {
				if !seen[d] {
					seen[d] = true
					dates = append(dates, d)
				}
			}
		}
	}
	sort.Strings(dates)
	return dates
}

// FallbackDate picks the latest date not after the request, or the earliest
// date when none qualifies. available must be sorted ascending.
func FallbackDate(available []string, date string) (string, bool) {
	if len(available) == 0 {
		return "", false
	}

	// first index strictly after the requested date
	idx := sort.Search(len(available), func(i int) bool {
		return available[i] > date
	})
	if idx > 0 {
		return available[idx-1], true
	}
	return available[0], true
}

func tripsOnDate(patterns []models.Pattern, date string) []models.ItineraryEntry {
	var entries []models.ItineraryEntry
	for _, p := range patterns {
		for _, t := range p.Trips {
			if !t.RunsOn(date) {
				continue
			}
			start, ok := t.StartTime()
			if !ok {
				continue
			}
			entries = append(entries, models.ItineraryEntry{
				Trip:      t,
				Pattern:   p,
				StartTime: start,
			})
		}
	}
	return entries
}
