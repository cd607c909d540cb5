package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRateLimiter keeps one token bucket per identity. Buckets idle for
// longer than expiration are dropped by a background sweep.
type UserRateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*entry
	limit      rate.Limit
	burst      int
	expiration time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

// New creates a limiter allowing ratePerSecond requests with the given burst.
func New(ratePerSecond float64, burst int, expiration time.Duration) *UserRateLimiter {
	url := &UserRateLimiter{
		limiters:   make(map[string]*entry),
		limit:      rate.Limit(ratePerSecond),
		burst:      burst,
		expiration: expiration,
		stop:       make(chan struct{}),
	}
	go url.sweep()
	return url
}

func (url *UserRateLimiter) Allow(identity string) bool {
	url.mu.Lock()
	e, ok := url.limiters[identity]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(url.limit, url.burst)}
		url.limiters[identity] = e
	}
	e.lastSeen = time.Now()
	url.mu.Unlock()

	return e.limiter.Allow()
}

func (url *UserRateLimiter) sweep() {
	ticker := time.NewTicker(url.expiration)
	defer ticker.Stop()
	for {
		select {
		case <-url.stop:
			return
		case now := <-ticker.C:
			url.mu.Lock()
			for id, e := range url.limiters {
				if now.Sub(e.lastSeen) >= url.expiration {
					delete(url.limiters, id)
				}
			}
			url.mu.Unlock()
		}
	}
}

// Len returns the number of tracked identities.
func (url *UserRateLimiter) Len() int {
	url.mu.Lock()
	defer url.mu.Unlock()
	return len(url.limiters)
}

// Stop ends the background sweep. Safe to call more than once.
func (url *UserRateLimiter) Stop() {
	url.stopOnce.Do(func() { close(url.stop) })
}
