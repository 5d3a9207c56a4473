package strava

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Default Strava read limits, overridden by response headers:
// 100 requests per 15 minutes, 1000 per day.
const (
	defaultShortLimit = 100
	defaultDailyLimit = 1000
	shortWindow       = 15 * time.Minute
	minInterval       = 150 * time.Millisecond
)

// RateLimiter manages Strava API rate limits
type RateLimiter struct {
	mu sync.Mutex

	// 15-minute window
	shortLimit    int
	shortUsage    int
	shortResetsAt time.Time

	// Daily window, resets at midnight UTC
	dailyLimit    int
	dailyUsage    int
	dailyResetsAt time.Time

	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a new rate limiter with Strava's limits
func NewRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		shortLimit:    defaultShortLimit,
		shortResetsAt: now.Add(shortWindow),
		dailyLimit:    defaultDailyLimit,
		dailyResetsAt: nextMidnight(now),
		minInterval:   minInterval,
	}
}

// Wait blocks until a request can be made without exceeding rate limits
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := time.Now()
		if now.After(r.shortResetsAt) {
			r.shortUsage = 0
			r.shortResetsAt = now.Add(shortWindow)
		}
		if now.After(r.dailyResetsAt) {
			r.dailyUsage = 0
			r.dailyResetsAt = nextMidnight(now)
		}

		var wait time.Duration
		switch {
		case r.dailyUsage >= r.dailyLimit:
			wait = r.dailyResetsAt.Sub(now)
		case r.shortUsage >= r.shortLimit:
			wait = r.shortResetsAt.Sub(now)
		case now.Sub(r.lastRequest) < r.minInterval:
			wait = r.minInterval - now.Sub(r.lastRequest)
		}

		if wait <= 0 {
			break
		}

		// Drop the lock while sleeping so Status stays responsive
		r.mu.Unlock()
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			r.mu.Lock()
			return ctx.Err()
		}
		r.mu.Lock()
	}

	r.shortUsage++
	r.dailyUsage++
	r.lastRequest = time.Now()

	return nil
}

// UpdateFromHeaders updates rate limit state from Strava response headers.
// Strava returns e.g. X-RateLimit-Limit: "100,1000" and X-RateLimit-Usage: "34,512".
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if short, daily, ok := parsePair(h.Get("X-RateLimit-Usage")); ok {
		r.shortUsage, r.dailyUsage = short, daily
	}
	if short, daily, ok := parsePair(h.Get("X-RateLimit-Limit")); ok {
		r.shortLimit, r.dailyLimit = short, daily
	}
}

// Status returns current rate limit status
func (r *RateLimiter) Status() (shortRemaining, dailyRemaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shortLimit - r.shortUsage, r.dailyLimit - r.dailyUsage
}

func parsePair(header string) (short, daily int, ok bool) {
	parts := strings.Split(header, ",")
	if len(parts) < 2 {
		return 0, 0, false
	}
	short, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	daily, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return short, daily, true
}

func nextMidnight(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
}
