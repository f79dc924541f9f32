package models

// SelectionEntry is the API view of a restored navigation state.
type SelectionEntry struct {
	LineID          string `json:"lineId"`
	DirectionID     int    `json:"directionId"`
	DirectionLabel  string `json:"directionLabel"`
	Date            string `json:"date"`
	ActivePatternID string `json:"activePatternId"`
	Query           string `json:"query"`
}
