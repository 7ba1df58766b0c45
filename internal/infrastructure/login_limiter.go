package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter throttles login attempts per client key (the remote IP).
// Registration and task routes are not limited; only the bcrypt-heavy
// login path needs it.
type LoginLimiter struct {
	mutex   sync.Mutex
	entries map[string]*limiterEntry
	rate    rate.Limit
	burst   int
}

func NewLoginLimiter(perSecond float64, burst int) *LoginLimiter {
	l := &LoginLimiter{
		entries: make(map[string]*limiterEntry),
		rate:    rate.Limit(perSecond),
		burst:   burst,
	}
	go l.cleanupStaleEntries()
	return l
}

func (l *LoginLimiter) Allow(key string) bool {
	l.mutex.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = time.Now()
	l.mutex.Unlock()

	return entry.limiter.Allow()
}

func (l *LoginLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-1 * time.Hour)
		l.mutex.Lock()
		for key, entry := range l.entries {
			if entry.lastSeen.Before(cutoff) {
				delete(l.entries, key)
			}
		}
		l.mutex.Unlock()
	}
}
