package restapi

import (
	"net/http"

	"linetrack.dev/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewOKResponse(map[string]string{"status": "ok"}))
}
