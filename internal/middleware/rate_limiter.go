package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/verumrexo/tip-harmony/internal/apierror"

	"github.com/gin-gonic/gin"
)

// ── Login rate limiter ────────────────────────────────────────────────────────
// A four-digit shared PIN is trivially brute-forceable, so login attempts
// are capped aggressively.

type ipEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*ipEntry)
	loginMapMu sync.Mutex
)

// LoginRateLimiter limits PIN attempts to 10 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		loginMapMu.Lock()
		entry, exists := loginMap[ip]
		if !exists {
			entry = &ipEntry{}
			loginMap[ip] = entry
		}
		loginMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(time.Minute)
		}

		entry.count++
		if entry.count > 10 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many PIN attempts, try again in a minute"))
			return
		}
		c.Next()
	}
}

// ── General API rate limiter ──────────────────────────────────────────────────

type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	apiRateMap   = make(map[string]*rateEntry)
	apiRateMapMu sync.Mutex
)

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		apiRateMapMu.Lock()
		entry, exists := apiRateMap[ip]
		if !exists {
			entry = &rateEntry{}
			apiRateMap[ip] = entry
		}
		apiRateMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, slow down"))
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically removes expired entries from both rate limiter maps so IPs
// that never return don't accumulate forever.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		loginMapMu.Lock()
		for ip, entry := range loginMap {
			if now.After(entry.windowEnd) {
				delete(loginMap, ip)
			}
		}
		loginMapMu.Unlock()

		apiRateMapMu.Lock()
		for ip, entry := range apiRateMap {
			if now.After(entry.windowEnd) {
				delete(apiRateMap, ip)
			}
		}
		apiRateMapMu.Unlock()
	}
}
