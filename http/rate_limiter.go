package http

import (
	"sync"
	"time"
)

const (
	staleBucketAfter = 1 * time.Hour
	sweepInterval    = 30 * time.Minute
)

type bucket struct {
	tokens   int
	refilled time.Time
}

// RateLimiter is a per-client token bucket protecting the quote
// endpoints. Each client gets capacity requests per window; idle
// buckets are evicted by a background sweep.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*bucket
	done     chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*bucket),
		done:     make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for client, b := range r.buckets {
		if now.Sub(b.refilled) > staleBucketAfter {
			delete(r.buckets, client)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.done)
}

// Allow consumes one token for the client, refilling the bucket once
// per window.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b, ok := r.buckets[client]
	if !ok {
		r.buckets[client] = &bucket{
			tokens:   r.capacity - 1,
			refilled: now,
		}
		return true
	}

	if now.Sub(b.refilled) >= r.window {
		b.tokens = r.capacity
		b.refilled = now
	}

	if b.tokens <= 0 {
		return false
	}

	b.tokens--
	return true
}
