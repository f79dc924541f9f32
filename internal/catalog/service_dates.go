package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/jamespfennell/gtfs"

	"linetrack.dev/internal/models"
)

// serviceDates expands a GTFS service into its sorted YYYYMMDD dates:
// the weekday pattern between start and end date, plus added dates,
// minus removed dates.
func serviceDates(svc *gtfs.Service) []string {
	if svc == nil {
		return nil
	}

	set := make(map[string]struct{})
	if !svc.StartDate.IsZero() && !svc.EndDate.IsZero() {
		start := truncateDay(svc.StartDate)
		end := truncateDay(svc.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if runsOnWeekday(svc, d.Weekday()) {
				set[d.Format(models.ServiceDateLayout)] = struct{}{}
			}
		}
	}
	for _, d := range svc.AddedDates {
		set[d.Format(models.ServiceDateLayout)] = struct{}{}
	}
	for _, d := range svc.RemovedDates {
		delete(set, d.Format(models.ServiceDateLayout))
	}

	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func runsOnWeekday(svc *gtfs.Service, day time.Weekday) bool {
	switch day {
	case time.Monday:
		return svc.Monday
	case time.Tuesday:
		return svc.Tuesday
	case time.Wednesday:
		return svc.Wednesday
	case time.Thursday:
		return svc.Thursday
	case time.Friday:
		return svc.Friday
	case time.Saturday:
		return svc.Saturday
	case time.Sunday:
		return svc.Sunday
	}
	return false
}

// formatStopTime renders an offset from service-day midnight as HH:MM:SS.
// Hours may exceed 23 for trips running past midnight.
func formatStopTime(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
