package server

import (
	"sync"
	"time"
)

// RateLimiter enforces a fixed number of requests per minute per client.
type RateLimiter struct {
	mu        sync.Mutex
	perMinute int
	clients   map[string]*clientWindow
}

// clientWindow tracks one client's current minute window.
type clientWindow struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		clients:   make(map[string]*clientWindow),
	}
}

// Allow reports whether the client may make another request now.
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cw, ok := rl.clients[clientID]
	if !ok || now.Sub(cw.windowStart) >= time.Minute {
		rl.clients[clientID] = &clientWindow{count: 1, windowStart: now}
		rl.evictStale(now)
		return true
	}
	if cw.count >= rl.perMinute {
		return false
	}
	cw.count++
	return true
}

// evictStale drops windows more than two minutes old so the map stays
// bounded. Called with the lock held.
func (rl *RateLimiter) evictStale(now time.Time) {
	for id, cw := range rl.clients {
		if now.Sub(cw.windowStart) >= 2*time.Minute {
			delete(rl.clients, id)
		}
	}
}
