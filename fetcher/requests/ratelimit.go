package requests

import (
	"context"
	"sync"
	"time"
)

// Window is a single limit constraint: at most Count requests every Interval.
type Window struct {
	Count    int
	Interval time.Duration
}

// Single window state.
type limitWindow struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*limitWindow
	mu      sync.Mutex
	now     func() time.Time
}

// Create a instance of the rate limiter.
// Windows with a non positive count or interval are ignored.
func NewRateLimiter(windows ...Window) *RateLimiter {
	r := &RateLimiter{now: time.Now}
	for _, w := range windows {
		if w.Count <= 0 || w.Interval <= 0 {
			continue
		}
		r.windows = append(r.windows, &limitWindow{
			limit:         w.Count,
			resetInterval: w.Interval,
			lastReset:     r.now(),
		})
	}
	return r
}

// Reset the count of every window whose interval elapsed.
func (r *RateLimiter) resetCounts(now time.Time) {
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the windows are on their limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// tryAcquire takes a slot if possible, otherwise returns how long until the next reset.
func (r *RateLimiter) tryAcquire() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.resetCounts(now)

	if r.checkLimits() {
		r.incrementCounts()
		return true, 0
	}

	// See how many time till the slowest limited window resets.
	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}
		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return false, waitTime
}

// Wait until a request can be made or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		ok, waitTime := r.tryAcquire()
		if ok {
			return nil
		}

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
