package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   RateLimitType
	}{
		{http.MethodGet, "/health", RateLimitTypeHealth},
		{http.MethodGet, "/api/v1/dashboard/stats", RateLimitTypeAnalytics},
		{http.MethodPost, "/api/v1/trips/:id/book", RateLimitTypeBooking},
		{http.MethodDelete, "/api/v1/trips/:id/book/:seatNumber", RateLimitTypeBooking},
		{http.MethodGet, "/api/v1/trips/:id/seats", RateLimitTypeBooking},
		{http.MethodGet, "/api/v1/trips", RateLimitTypePublic},
		{http.MethodPut, "/api/v1/patrons/:id", RateLimitTypeAdmin},
		{http.MethodGet, "/swagger/*any", RateLimitTypeDefault},
	}
	for _, tt := range tests {
		if got := getRateLimitType(tt.method, tt.path); got != tt.want {
			t.Errorf("getRateLimitType(%s %s) = %s, want %s", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestIsAllowedWithoutRedis(t *testing.T) {
	rl := NewRateLimiter(nil, &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		BookingRequests: 5,
	})
	res, err := rl.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeBooking)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Allowed || res.Limit != 5 || res.Remaining != 5 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestWhitelist(t *testing.T) {
	rl := NewRateLimiter(nil, &Config{Enabled: true, WhitelistedIPs: []string{"127.0.0.1"}})
	if !rl.isWhitelisted("127.0.0.1") || rl.isWhitelisted("10.0.0.2") {
		t.Error("whitelist lookup mismatch")
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.168.1.9:5555"

	if got := getClientIP(c); got != "192.168.1.9" {
		t.Errorf("remote addr ip = %q", got)
	}

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := getClientIP(c); got != "203.0.113.7" {
		t.Errorf("forwarded ip = %q", got)
	}
}
