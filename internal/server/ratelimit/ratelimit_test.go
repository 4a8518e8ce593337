package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		Routes:        DefaultRouteLimits(),
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/auth/register", "POST")
		assert.True(t, allowed, "request %d", i)
	}
	allowed, info := l.Allow("1.2.3.4", "/auth/register", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ExportRouteStrictest(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	path := "/cvs/abc123/export/pdf"
	granted := 0
	for i := 0; i < 10; i++ {
		if allowed, _ := l.Allow("1.2.3.4", path, "POST"); allowed {
			granted++
		}
	}
	assert.Equal(t, 3, granted)
}

func TestLimiter_ClientsIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("1.1.1.1", "/auth/register", "POST")
	}
	allowed, _ := l.Allow("1.1.1.1", "/auth/register", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/auth/register", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/auth/register", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/auth/register", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("10.0.0.2", "/health", "POST")
	assert.False(t, allowed)
}

func TestMatchRoute_PrefixMatching(t *testing.T) {
	routes := DefaultRouteLimits()

	rule := matchRoute("/cvs/7f3a/versions", "POST", routes)
	require.NotNil(t, rule)
	assert.Equal(t, "/cvs/", rule.Path)

	assert.Nil(t, matchRoute("/templates", "GET", routes))
}

func TestLimiter_Refills(t *testing.T) {
	cfg := testConfig()
	cfg.Routes = []RouteLimit{{Path: "/fast", Method: "GET", Limit: 600, Window: time.Minute, Burst: 1}}
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("c", "/fast", "GET")
	require.True(t, allowed)
	allowed, _ = l.Allow("c", "/fast", "GET")
	require.False(t, allowed)

	// 10 tokens per second; one returns in ~100ms.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if allowed, _ = l.Allow("c", "/fast", "GET"); allowed {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("bucket did not refill before %v", deadline)
}
