package restapi

import (
	"encoding/json"
	"net/http"

	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/models"
)

// errorEnvelope is the data-less response body used for failures.
type errorEnvelope struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, code int, text string) {
	setJSONResponseType(&w)
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(errorEnvelope{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	})
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode error response", err)
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response for a missing or unknown key
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		logging.Component("http_server"))
	api.sendError(w, r, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		Code        int                 `json:"code"`
		CurrentTime int64               `json:"currentTime"`
		Text        string              `json:"text"`
		Version     int                 `json:"version"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		Code:        http.StatusBadRequest,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "invalid request",
		Version:     2,
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode validation error response", err)
	}
}
