package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"saunie/internal/shared/utils/response"
	"saunie/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Middleware applies the limiter to every route it wraps
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limitType := getRateLimitType(c.Request.Method, c.FullPath())
		if limitType == RateLimitTypeHealth {
			c.Next()
			return
		}

		clientIP := getClientIP(c)

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// Fail open: a Redis outage must not take the console down with it
			logger.GetDefault().ErrorWithContext(c.Request.Context(), "Rate limit check failed", err,
				map[string]interface{}{"ip": clientIP, "type": string(limitType)})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			logger.GetDefault().LogRateLimitExceeded(c.Request.Context(), clientIP, c.FullPath())
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getRateLimitType classifies a route by its registered path
func getRateLimitType(method, path string) RateLimitType {
	switch {
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"):
		return RateLimitTypeHealth

	case strings.Contains(path, "/dashboard"):
		return RateLimitTypeAnalytics

	// Seat map reads and book/cancel
	case strings.Contains(path, "/book"),
		strings.HasSuffix(path, "/seats"):
		return RateLimitTypeBooking

	case strings.Contains(path, "/trips"),
		strings.Contains(path, "/patrons"):
		if method == http.MethodGet {
			return RateLimitTypePublic
		}
		return RateLimitTypeAdmin

	default:
		return RateLimitTypeDefault
	}
}

// extracts real client IP
func getClientIP(c *gin.Context) string {
	if xForwardedFor := c.GetHeader("X-Forwarded-For"); xForwardedFor != "" {
		ip := strings.TrimSpace(strings.Split(xForwardedFor, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xRealIP := c.GetHeader("X-Real-IP"); xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return ip
}
