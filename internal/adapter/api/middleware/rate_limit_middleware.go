package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shuddhify/internal/infrastructure/ratelimit"
	"shuddhify/pkg/errors"
	"shuddhify/pkg/logger"
	"shuddhify/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the given action per authenticated user. Must run after
// Authenticate so the uid is present.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok || uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			allowed, wait := m.limiter.Allow(uid, action)
			if !allowed {
				logger.Warn("rate limit hit: user=%s action=%s retry_in=%s", uid, action, wait)
				return response.Error(c, errors.New(
					"TOO_MANY_REQUESTS",
					"Rate limit exceeded, slow down",
					http.StatusTooManyRequests,
					nil,
				))
			}

			return next(c)
		}
	}
}
