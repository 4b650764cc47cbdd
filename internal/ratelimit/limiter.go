package ratelimit

import (
	"sync"
	"time"
)

// Package ratelimit bounds the rate of sensitive public actions per
// (action, client identity) pair with a sliding window. State is
// process-local and resets on restart; there is no cross-process
// coordination.

type key struct {
	action   string
	identity string
}

// Limiter is a mutex-guarded sliding-window counter. Each bucket prunes
// lazily on access; a full sweep dropping idle buckets runs at most once
// per sweep interval, piggybacked on calls, so identities that stop
// making requests are eventually reclaimed.
type Limiter struct {
	mu      sync.Mutex
	buckets map[key][]time.Time

	now           func() time.Time
	sweepInterval time.Duration
	lastSweep     time.Time
	// maxBucketAge is the horizon beyond which an untouched bucket is
	// reclaimed by the sweep. It must be at least as large as the widest
	// window callers use.
	maxBucketAge time.Duration

	rejected uint64
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock injects a time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithSweepInterval overrides how often the idle-bucket sweep may run.
func WithSweepInterval(d time.Duration) Option {
	return func(l *Limiter) { l.sweepInterval = d }
}

// New creates a Limiter.
func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets:       make(map[key][]time.Time),
		now:           time.Now,
		sweepInterval: 5 * time.Minute,
		maxBucketAge:  10 * time.Minute,
	}
	for _, o := range opts {
		o(l)
	}
	l.lastSweep = l.now()
	return l
}

// Allow records one call for (action, identity) if fewer than limit
// calls happened within the trailing window, and reports whether the
// call is admitted. A rejected call records nothing.
func (l *Limiter) Allow(action, identity string, limit int, window time.Duration) bool {
	now := l.now()
	k := key{action: action, identity: identity}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeSweep(now)

	bucket := l.buckets[k]
	kept := bucket[:0]
	for _, t := range bucket {
		if now.Sub(t) <= window {
			kept = append(kept, t)
		}
	}

	if len(kept) >= limit {
		l.buckets[k] = kept
		l.rejected++
		return false
	}

	l.buckets[k] = append(kept, now)
	return true
}

// Rejected reports how many calls have been rejected since startup.
func (l *Limiter) Rejected() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rejected
}

// maybeSweep drops buckets whose newest timestamp is older than the
// bucket-age horizon. Caller must hold the lock.
func (l *Limiter) maybeSweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.sweepInterval {
		return
	}
	l.lastSweep = now
	for k, bucket := range l.buckets {
		if len(bucket) == 0 || now.Sub(bucket[len(bucket)-1]) > l.maxBucketAge {
			delete(l.buckets, k)
		}
	}
}

// size reports the number of tracked buckets, for tests.
func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
