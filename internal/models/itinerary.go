package models

// ItineraryEntry pairs a running trip with its pattern and start time.
type ItineraryEntry struct {
	Trip      Trip    `json:"-"`
	Pattern   Pattern `json:"-"`
	StartTime string  `json:"startTime"`
}

// ResolvedItinerary is the set of trips running on a direction and date.
type ResolvedItinerary struct {
	DirectionID   int              `json:"directionId"`
	RequestedDate string           `json:"requestedDate"`
	ServiceDate   string           `json:"serviceDate"`
	Fallback      bool             `json:"fallback"`
	Entries       []ItineraryEntry `json:"-"`
}

// HasService reports whether any trip was resolved.
func (r ResolvedItinerary) HasService() bool {
	return len(r.Entries) > 0
}

// ItineraryRow is the API view of one itinerary entry.
type ItineraryRow struct {
	TripID    string `json:"tripId"`
	PatternID string `json:"patternId"`
	Headsign  string `json:"headsign"`
	StartTime string `json:"startTime"`
}

// ItineraryResponse is the API view of a ResolvedItinerary.
type ItineraryResponse struct {
	LineID         string         `json:"lineId"`
	DirectionID    int            `json:"directionId"`
	DirectionLabel string         `json:"directionLabel"`
	RequestedDate  string         `json:"requestedDate"`
	ServiceDate    string         `json:"serviceDate"`
	Fallback       bool           `json:"fallback"`
	NoService      bool           `json:"noService"`
	Trips          []ItineraryRow `json:"trips"`
}

func NewItineraryResponse(lineID, label string, it ResolvedItinerary) ItineraryResponse {
	rows := make([]ItineraryRow, 0, len(it.Entries))
	for _, e := range it.Entries {
		rows = append(rows, ItineraryRow{
			TripID:    e.Trip.ID,
			PatternID: e.Pattern.ID,
			Headsign:  e.Pattern.DisplayName(),
			StartTime: e.StartTime,
		})
	}
	return ItineraryResponse{
		LineID:         lineID,
		DirectionID:    it.DirectionID,
		DirectionLabel: label,
		RequestedDate:  it.RequestedDate,
		ServiceDate:    it.ServiceDate,
		Fallback:       it.Fallback,
		NoService:      !it.HasService(),
		Trips:          rows,
	}
}
