package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/dto"
)

// DefaultRateLimit is used when a non-positive limit is configured.
const DefaultRateLimit = 60

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// rateLimiter is an in-memory fixed-window counter keyed by client IP.
//
// Each upstream analysis costs one Alpha Vantage call, so the limiter also
// protects the provider quota shared by every client.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   int
	window  time.Duration
	now     func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = time.Minute
	}
	return &rateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// allow counts one request for ip and reports whether it is within the limit.
func (l *rateLimiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[ip]
	if !ok || now.Sub(cl.windowStart) >= l.window {
		cl = &client{windowStart: now}
		l.clients[ip] = cl
	}
	cl.count++

	// drop idle clients so the map does not grow without bound
	if len(l.clients) > 1024 {
		for k, v := range l.clients {
			if now.Sub(v.windowStart) >= l.window {
				delete(l.clients, k)
			}
		}
	}
	return cl.count <= l.limit
}

// RateLimiter limits each client IP to perMinute requests per minute.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"message": "rate limit exceeded", "timestamp": "..."}
func RateLimiter(perMinute int) gin.HandlerFunc {
	return rateLimit(newRateLimiter(perMinute, time.Minute))
}

func rateLimit(l *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
