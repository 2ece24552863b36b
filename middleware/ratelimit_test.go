package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterAllowsUnderLimit(t *testing.T) {
	rl := NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"))
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other IPs have their own window.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestIPRateLimiterWindowExpiry(t *testing.T) {
	rl := NewIPRateLimiter(1, 10*time.Millisecond)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}
