package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/models"
)

const gpxContentType = "application/gpx+xml"

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusNotFound, "resource not found")
}

// sendGPX writes a track file as a download named filename.
func (api *RestAPI) sendGPX(w http.ResponseWriter, r *http.Request, filename string, body []byte) {
	w.Header().Set("Content-Type", gpxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if _, err := w.Write(body); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write gpx response", err)
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
