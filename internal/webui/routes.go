package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"linetrack.dev/internal/app"
	"linetrack.dev/internal/appconf"
)

// WebUI serves HTML debugging pages over the application's catalog.
type WebUI struct {
	*app.Application
}

// SetWebUIRoutes registers the debug pages. They are never served in production.
func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	if webUI.Config.Env == appconf.Production {
		return
	}
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
