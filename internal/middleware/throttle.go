package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"schoolsite/internal/apperr"
)

// ThrottleConfig names one rate-limit bucket: a logical scope (orders,
// reviews, merch) with its own per-minute threshold. The throttle is
// advisory only; it rejects excess requests, it is not a correctness
// mechanism.
type ThrottleConfig struct {
	Scope     string
	PerMinute int
	Burst     int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Throttle limits requests per (scope, client IP) with a token bucket.
// Entries unseen for a while are pruned on the fly.
func Throttle(cfg ThrottleConfig) echo.MiddlewareFunc {
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.PerMinute
	}
	limit := rate.Limit(float64(cfg.PerMinute) / 60.0)

	var (
		mu        sync.Mutex
		visitors  = make(map[string]*visitor)
		lastPrune = time.Now()
	)

	const idle = 10 * time.Minute

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			mu.Lock()
			if time.Since(lastPrune) > idle {
				for k, v := range visitors {
					if time.Since(v.lastSeen) > idle {
						delete(visitors, k)
					}
				}
				lastPrune = time.Now()
			}

			v, ok := visitors[key]
			if !ok {
				v = &visitor{limiter: rate.NewLimiter(limit, cfg.Burst)}
				visitors[key] = v
			}
			v.lastSeen = time.Now()
			allowed := v.limiter.Allow()
			mu.Unlock()

			if !allowed {
				return errorJSON(c, http.StatusTooManyRequests, apperr.CodeRateLimited, "too many requests")
			}
			return next(c)
		}
	}
}
