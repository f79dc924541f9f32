package restapi

import (
	"time"

	"linetrack.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware

	// now is the clock used for default service dates.
	now func() time.Time
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
		now:         time.Now,
	}
}

// Shutdown releases background resources held by the middleware.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
