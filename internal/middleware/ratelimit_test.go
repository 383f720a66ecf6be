package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	l := NewInMemoryRateLimiter(2, time.Minute)
	if !l.Allow("1.2.3.4") {
		t.Fatal("first request should pass")
	}
	if !l.Allow("1.2.3.4") {
		t.Fatal("second request should pass")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("third request should be blocked")
	}
	if !l.Allow("5.6.7.8") {
		t.Fatal("different key should not be affected")
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	l := NewInMemoryRateLimiter(1, 20*time.Millisecond)
	if !l.Allow("1.2.3.4") {
		t.Fatal("first request should pass")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("second request inside window should be blocked")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow("1.2.3.4") {
		t.Fatal("request after window should pass")
	}
}
