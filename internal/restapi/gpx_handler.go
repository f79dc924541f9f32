package restapi

import (
	"net/http"

	"linetrack.dev/internal/gpx"
	"linetrack.dev/internal/models"
	"linetrack.dev/internal/utils"
)

func (api *RestAPI) gpxHandler(w http.ResponseWriter, r *http.Request) {
	lineRef := utils.ExtractIDFromParams(r, "line")
	patternID := utils.ExtractIDFromParams(r, "pattern")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateID(lineRef); err != nil {
		fieldErrors["line"] = append(fieldErrors["line"], err.Error())
	}
	if err := utils.ValidateID(patternID); err != nil {
		fieldErrors["pattern"] = append(fieldErrors["pattern"], err.Error())
	}
	includeStops, err := utils.ParseBoolParam(r.URL.Query().Get("stops"))
	if err != nil {
		fieldErrors["stops"] = append(fieldErrors["stops"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snap, ok := api.loadSelection(w, r, lineRef, "")
	if !ok {
		return
	}
	snap = snap.WithPattern(patternID)
	pattern, ok := snap.ActivePattern()
	if !ok || pattern.ID != patternID {
		api.sendNotFound(w, r)
		return
	}

	// A pattern without geometry still exports its name and stops.
	shape, _ := api.Catalog.Shape(r.Context(), pattern.ShapeID)
	if shape.ID == "" {
		shape = models.Shape{ID: pattern.ShapeID}
	}

	body := gpx.Serialize(pattern, shape, gpx.Options{
		IncludeStops: includeStops,
		Creator:      api.Config.Creator,
	})
	api.sendGPX(w, r, gpx.FileName(snap.Line, pattern), body)
}
