package webhook

import "time"

// Config holds inbound webhook verification settings.
type Config struct {
	AppID              string        // expected application id; empty disables the check
	TimestampTolerance time.Duration // max inbound request age; zero disables the check
	RateLimitPerMin    int           // max requests per user per minute
	DedupSize          int           // replay-cache capacity
}
