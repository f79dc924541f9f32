package restapi

import (
	"errors"
	"net/http"

	"linetrack.dev/internal/models"
	"linetrack.dev/internal/selection"
	"linetrack.dev/internal/utils"
)

// selectionHandler rebuilds navigation state from the line and
// active_pattern_id query parameters and echoes the canonical form.
func (api *RestAPI) selectionHandler(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := selection.ParseQuery(values)
	date := values.Get("date")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateID(q.Line); err != nil {
		fieldErrors[selection.ParamLine] = append(fieldErrors[selection.ParamLine], err.Error())
	}
	if q.PatternID != "" {
		if err := utils.ValidateID(q.PatternID); err != nil {
			fieldErrors[selection.ParamActivePatternID] = append(fieldErrors[selection.ParamActivePatternID], err.Error())
		}
	}
	if err := utils.ValidateServiceDate(date); err != nil {
		fieldErrors["date"] = append(fieldErrors["date"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snap, err := selection.Restore(r.Context(), api.Catalog, q, utils.ServiceDateOrToday(date, api.now()))
	if errors.Is(err, selection.ErrUnknownLine) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.SelectionEntry{
		LineID:          snap.Line.ID,
		DirectionID:     snap.Direction,
		DirectionLabel:  snap.DirectionLabel(),
		Date:            snap.Date,
		ActivePatternID: snap.PatternID,
		Query:           snap.QueryParams().Encode(),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, patternReferences(snap.Line, snap.Patterns)))
}
