package ratelimit

import "time"

// Limit describes one rate limit window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// RateLimiter answers whether a keyed action may proceed.
type RateLimiter interface {
	Allow(key string, limit Limit) (bool, error)
	Reset(key string) error
}
