package restapi

import (
	"net/http"

	"linetrack.dev/internal/models"
	"linetrack.dev/internal/utils"
)

func (api *RestAPI) itineraryHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lineRef := utils.ExtractIDFromParams(r, "line")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateID(lineRef); err != nil {
		fieldErrors["line"] = append(fieldErrors["line"], err.Error())
	}
	direction, err := utils.ParseDirection(query.Get("direction"))
	if err != nil {
		fieldErrors["direction"] = append(fieldErrors["direction"], err.Error())
	}
	date := query.Get("date")
	if err := utils.ValidateServiceDate(date); err != nil {
		fieldErrors["date"] = append(fieldErrors["date"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snap, ok := api.loadSelection(w, r, lineRef, date)
	if !ok {
		return
	}
	snap = snap.WithDirection(direction)

	entry := models.NewItineraryResponse(snap.Line.ID, snap.DirectionLabel(), snap.Itinerary())
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewLineReferences(snap.Line)))
}
