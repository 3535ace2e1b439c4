package webhook

import (
	"testing"
	"time"
)

func TestValidateApplication(t *testing.T) {
	v := NewValidator(Config{AppID: "skill-1"})
	if err := v.ValidateApplication("skill-1"); err != nil {
		t.Errorf("matching app id rejected: %v", err)
	}
	if err := v.ValidateApplication("other"); err == nil {
		t.Error("mismatched app id accepted")
	}

	open := NewValidator(Config{})
	if err := open.ValidateApplication("anything"); err != nil {
		t.Errorf("empty configured app id must disable the check: %v", err)
	}
}

func TestValidateTimestamp(t *testing.T) {
	v := NewValidator(Config{TimestampTolerance: time.Minute})
	if err := v.ValidateTimestamp(time.Now()); err != nil {
		t.Errorf("fresh request rejected: %v", err)
	}
	if err := v.ValidateTimestamp(time.Now().Add(-2 * time.Minute)); err == nil {
		t.Error("stale request accepted")
	}
	if err := v.ValidateTimestamp(time.Time{}); err != nil {
		t.Errorf("zero timestamp must be skipped: %v", err)
	}
}

func TestSeenBefore(t *testing.T) {
	v := NewValidator(Config{DedupSize: 10})
	if v.SeenBefore("r-1") {
		t.Error("first delivery flagged as replay")
	}
	if !v.SeenBefore("r-1") {
		t.Error("redelivery not flagged as replay")
	}
	if v.SeenBefore("r-2") {
		t.Error("distinct request id flagged as replay")
	}
	if v.SeenBefore("") || v.SeenBefore("") {
		t.Error("empty request ids must never be deduplicated")
	}
}

func TestRateLimit(t *testing.T) {
	v := NewValidator(Config{RateLimitPerMin: 10})

	// Burst is requestsPerMin/10 = 1, so the second immediate call trips.
	if err := v.CheckRateLimit("u-1"); err != nil {
		t.Fatalf("first request limited: %v", err)
	}
	if err := v.CheckRateLimit("u-1"); err == nil {
		t.Error("burst exceeded but not limited")
	}
	// Other users are unaffected.
	if err := v.CheckRateLimit("u-2"); err != nil {
		t.Errorf("independent user limited: %v", err)
	}
}
