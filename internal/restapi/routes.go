package restapi

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) validateAPIKey(finalHandler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/lines.json", api.validateAPIKey(api.linesHandler))
	router.Handler(http.MethodGet, "/api/lines/:id", api.validateAPIKey(api.lineHandler))
	router.Handler(http.MethodGet, "/api/itinerary/:line", api.validateAPIKey(api.itineraryHandler))
	router.Handler(http.MethodGet, "/api/patterns/:id", api.validateAPIKey(api.patternHandler))
	router.Handler(http.MethodGet, "/api/shapes/:id", api.validateAPIKey(api.shapesHandler))
	router.Handler(http.MethodGet, "/api/gpx/:line/:pattern", api.validateAPIKey(api.gpxHandler))
	router.Handler(http.MethodGet, "/api/selection", api.validateAPIKey(api.selectionHandler))
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.HandleMethodNotAllowed = true
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.sendError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// Handler returns the routed API wrapped in the middleware stack.
// Each extra function can register additional routes on the same router.
func (api *RestAPI) Handler(extra ...func(*httprouter.Router)) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	for _, register := range extra {
		register(router)
	}

	logger := api.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = router
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(logger)(handler)
	return api.WithSecurityHeaders(handler)
}
