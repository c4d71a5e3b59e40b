package showcase

import (
	"testing"
	"time"
)

func TestSearchLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewSearchLimiter(2, 200*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second request to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third request to be blocked")
	}
}

func TestSearchLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewSearchLimiter(1, 150*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected second request to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Allow(ip) {
		t.Fatalf("expected request after window to be allowed")
	}
}

func TestSearchLimiterIsPerIP(t *testing.T) {
	limiter := NewSearchLimiter(1, 200*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestSearchLimiterDisabled(t *testing.T) {
	limiter := NewSearchLimiter(0, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if !limiter.Allow("203.0.113.40") {
			t.Fatalf("request %d blocked with limiting disabled", i)
		}
	}
}

func TestSearchLimiterStopIsIdempotent(t *testing.T) {
	limiter := NewSearchLimiter(1, time.Millisecond)
	limiter.Stop()
	limiter.Stop()
}
