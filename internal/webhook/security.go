// Package webhook verifies inbound voice-platform deliveries before they
// reach the interpreter: application id, request age, per-user rate limit,
// and replay dedup (platforms redeliver a request when the first response
// times out, and a redelivered AddProduct must not insert twice).
package webhook

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Validator validates webhook requests.
type Validator struct {
	config      Config
	seen        *expirable.LRU[string, struct{}]
	rateLimiter *rateLimiter
}

func NewValidator(config Config) *Validator {
	dedupSize := config.DedupSize
	if dedupSize <= 0 {
		dedupSize = 1000
	}
	return &Validator{
		config:      config,
		seen:        expirable.NewLRU[string, struct{}](dedupSize, nil, 10*time.Minute),
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// ValidateApplication checks the envelope's application id against the
// configured skill id.
func (v *Validator) ValidateApplication(appID string) error {
	if v.config.AppID == "" {
		return nil
	}
	if appID != v.config.AppID {
		return fmt.Errorf("unexpected application id %q", appID)
	}
	return nil
}

// ValidateTimestamp rejects requests older than the configured tolerance.
func (v *Validator) ValidateTimestamp(ts time.Time) error {
	if v.config.TimestampTolerance <= 0 || ts.IsZero() {
		return nil
	}
	if age := time.Since(ts); age > v.config.TimestampTolerance {
		return fmt.Errorf("request too old: %s", age.Round(time.Second))
	}
	return nil
}

// CheckRateLimit enforces the per-user rate limit.
func (v *Validator) CheckRateLimit(userID string) error {
	return v.rateLimiter.Allow(userID)
}

// SeenBefore reports whether requestID was already processed, recording it
// either way. Empty ids are never deduplicated.
func (v *Validator) SeenBefore(requestID string) bool {
	if requestID == "" {
		return false
	}
	if _, ok := v.seen.Get(requestID); ok {
		return true
	}
	v.seen.Add(requestID, struct{}{})
	return false
}

// rateLimiter keeps one token bucket per user with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max 1000 unique users
			nil,           // no eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
