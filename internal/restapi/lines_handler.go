package restapi

import (
	"net/http"

	"linetrack.dev/internal/models"
)

func (api *RestAPI) linesHandler(w http.ResponseWriter, r *http.Request) {
	lines := api.Catalog.Lines(r.Context())
	if lines == nil {
		lines = []models.Line{}
	}

	api.sendResponse(w, r, models.NewListResponse(lines, models.NewEmptyReferences()))
}
