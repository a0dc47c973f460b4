package otp

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// refillWindow is the time an idle bucket needs to fill up completely again.
const refillWindow = time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key. Buckets idle for a full refill
// window are dropped, since a fresh bucket behaves the same.
type KeyedLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewKeyedLimiter allows perMinute events per key, all of which may be spent at once
func NewKeyedLimiter(perMinute int) *KeyedLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &KeyedLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(refillWindow / time.Duration(perMinute)),
		burst:    perMinute,
		now:      time.Now,
	}
}

// Allow reports whether an event for key may happen now
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= refillWindow {
		l.sweep(now)
	}

	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// sweep drops buckets not used within the last refill window; callers hold mu
func (l *KeyedLimiter) sweep(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= refillWindow {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// Len returns the number of tracked keys
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
