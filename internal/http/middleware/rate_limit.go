package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an IP may stay quiet before its bucket is dropped.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters holds one token bucket per client IP.
type ipLimiters struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	every     rate.Limit
	burst     int
	lastPrune time.Time
}

func newIPLimiters(every rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		limiters: make(map[string]*ipLimiter),
		every:    every,
		burst:    burst,
	}
}

func (s *ipLimiters) get(ip string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastPrune) >= limiterIdleTTL {
		s.pruneLocked(now.Add(-limiterIdleTTL))
		s.lastPrune = now
	}

	l, ok := s.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(s.every, s.burst)}
		s.limiters[ip] = l
	}
	l.lastSeen = now
	return l.limiter
}

// pruneLocked drops buckets not used since cutoff. Caller holds mu.
func (s *ipLimiters) pruneLocked(cutoff time.Time) int {
	n := 0
	for ip, l := range s.limiters {
		if l.lastSeen.Before(cutoff) {
			delete(s.limiters, ip)
			n++
		}
	}
	return n
}

func (s *ipLimiters) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimit allows perMinute requests per client IP, bursting up to perMinute.
// A non-positive perMinute disables the limit.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := newIPLimiters(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip, time.Now()).Allow() {
			logrus.WithFields(logrus.Fields{"ip": ip, "request_id": GetRequestID(c)}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many uploads, try again later",
				"code":       "rate_limited",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
