package restapi

import (
	"net/http"

	"linetrack.dev/internal/models"
	"linetrack.dev/internal/utils"
)

func (api *RestAPI) patternHandler(w http.ResponseWriter, r *http.Request) {
	patternID := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(patternID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	patterns := api.Catalog.Patterns(r.Context(), []string{patternID})
	if len(patterns) == 0 {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewPatternEntry(patterns[0]), models.NewEmptyReferences()))
}
