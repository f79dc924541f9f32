package models

// ScheduleEntry is a scheduled arrival at one stop of a trip.
type ScheduleEntry struct {
	ArrivalTime  string `json:"arrivalTime"`
	StopID       string `json:"stopId"`
	StopSequence int    `json:"stopSequence"`
}

// Trip is one scheduled run of a pattern.
type Trip struct {
	ID       string          `json:"id"`
	Dates    []string        `json:"dates"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// RunsOn reports whether the date is in the trip's service-date set.
func (t Trip) RunsOn(date string) bool {
	for _, d := range t.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// StartTime returns the first scheduled arrival time.
func (t Trip) StartTime() (string, bool) {
	if len(t.Schedule) == 0 {
		return "", false
	}
	return t.Schedule[0].ArrivalTime, true
}
