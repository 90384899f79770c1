package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
)

const (
	visitorTTL             = 3 * time.Minute
	visitorCleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorRegistry holds one token bucket per client IP. Entries idle for
// longer than visitorTTL are evicted so the map does not grow without
// bound.
type visitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

func newVisitorRegistry(r rate.Limit, burst int) *visitorRegistry {
	return &visitorRegistry{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
	}
}

func (reg *visitorRegistry) get(ip string) *rate.Limiter {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	v, exists := reg.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(reg.rate, reg.burst)}
		reg.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (reg *visitorRegistry) evict(olderThan time.Time) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for ip, v := range reg.visitors {
		if v.lastSeen.Before(olderThan) {
			delete(reg.visitors, ip)
		}
	}
}

// RateLimiter applies a per-client-IP token bucket across the API group.
func RateLimiter(r rate.Limit, burst int) gin.HandlerFunc {
	registry := newVisitorRegistry(r, burst)

	go func() {
		for range time.Tick(visitorCleanupInterval) {
			registry.evict(time.Now().Add(-visitorTTL))
		}
	}()

	return func(c *gin.Context) {
		if !registry.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apierrors.CreateError(apierrors.MsgTooManyRequests, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}
