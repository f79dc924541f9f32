package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"linetrack.dev/internal/models"
)

const noKey = "__no_key__"

// RateLimitMiddleware provides per-API-key rate limiting
type RateLimitMiddleware struct {
	limiters    map[string]*rate.Limiter
	mu          sync.RWMutex
	rateLimit   rate.Limit
	burstSize   int
	cleanupTick *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
	exemptKeys  map[string]bool
}

// NewRateLimitMiddleware creates a new rate limiting middleware allowing
// ratePerSecond requests per interval for each API key, with an equal burst.
// A rate of zero or less disables limiting.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration, exemptKeys ...string) *RateLimitMiddleware {
	rateLimit := rate.Inf
	burst := ratePerSecond
	if ratePerSecond > 0 {
		rateLimit = rate.Every(interval / time.Duration(ratePerSecond))
	} else {
		burst = 1
	}

	rl := &RateLimitMiddleware{
		limiters:    make(map[string]*rate.Limiter),
		rateLimit:   rateLimit,
		burstSize:   burst,
		cleanupTick: time.NewTicker(5 * time.Minute),
		done:        make(chan struct{}),
		exemptKeys:  make(map[string]bool, len(exemptKeys)),
	}
	for _, k := range exemptKeys {
		rl.exemptKeys[k] = true
	}

	go rl.cleanup()

	return rl
}

// getLimiter gets or creates a rate limiter for the given API key
func (rl *RateLimitMiddleware) getLimiter(apiKey string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[apiKey]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := rl.limiters[apiKey]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[apiKey] = limiter

	return limiter
}

// Handler wraps next with the limit.
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.URL.Query().Get("key")
		if apiKey == "" {
			apiKey = noKey
		}

		if rl.rateLimit == rate.Inf || rl.exemptKeys[apiKey] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(apiKey).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	retryAfter := time.Duration(float64(time.Second) / float64(rl.rateLimit))
	seconds := int(retryAfter.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	response := models.NewResponse(http.StatusTooManyRequests, map[string]interface{}{
		"entry":      nil,
		"references": models.NewEmptyReferences(),
	}, "Rate limit exceeded. Please try again later.")

	_ = json.NewEncoder(w).Encode(response)
}

// cleanup periodically drops limiters that are back at full burst
func (rl *RateLimitMiddleware) cleanup() {
	for {
		select {
		case <-rl.done:
			return
		case <-rl.cleanupTick.C:
			rl.mu.Lock()
			for key, limiter := range rl.limiters {
				if limiter.Tokens() >= float64(rl.burstSize) {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop stops the cleanup goroutine
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
}
