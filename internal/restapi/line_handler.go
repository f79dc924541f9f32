package restapi

import (
	"errors"
	"net/http"

	"linetrack.dev/internal/models"
	"linetrack.dev/internal/selection"
	"linetrack.dev/internal/utils"
)

// loadSelection resolves a line reference from the path into a snapshot,
// writing the error response itself when it fails.
func (api *RestAPI) loadSelection(w http.ResponseWriter, r *http.Request, lineRef, date string) (selection.Snapshot, bool) {
	snap, err := selection.Load(r.Context(), api.Catalog, lineRef, utils.ServiceDateOrToday(date, api.now()))
	if errors.Is(err, selection.ErrUnknownLine) {
		api.sendNotFound(w, r)
		return selection.Snapshot{}, false
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return selection.Snapshot{}, false
	}
	return snap, true
}

func patternReferences(line models.Line, patterns []models.Pattern) models.ReferencesModel {
	refs := models.NewLineReferences(line)
	for _, p := range patterns {
		refs.Patterns = append(refs.Patterns, models.NewPatternEntry(p))
	}
	return refs
}

func (api *RestAPI) lineHandler(w http.ResponseWriter, r *http.Request) {
	lineRef := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(lineRef); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	snap, ok := api.loadSelection(w, r, lineRef, "")
	if !ok {
		return
	}

	entry := models.NewLineEntry(snap.Line, snap.Directions())
	api.sendResponse(w, r, models.NewEntryResponse(entry, patternReferences(snap.Line, snap.Patterns)))
}
