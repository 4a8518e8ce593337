package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RouteLimit is the rate limit rule for one route. Path supports prefix
// matching when it ends with "/".
type RouteLimit struct {
	Path   string
	Method string
	Limit  int // requests per window; <= 0 means unlimited
	Window time.Duration
	Burst  int // burst capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Routes          []RouteLimit
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		Routes:          DefaultRouteLimits(),
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		Routes:          DefaultRouteLimits(),
	}
}

// DefaultRouteLimits returns the per-route rules. PDF export runs a browser
// per request and gets the strictest tier; auth endpoints are limited to slow
// credential stuffing.
func DefaultRouteLimits() []RouteLimit {
	return []RouteLimit{
		{Path: "/cvs/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/cvs/", Method: "PUT", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/cvs/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		{Path: "/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		{Path: "/assist/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
	}
}

// exportRouteLimit matches POST /cvs/{id}/export/pdf, which the prefix rules
// above would otherwise treat as a plain write.
var exportRouteLimit = RouteLimit{Limit: 12, Window: time.Minute, Burst: 3}

func matchRoute(path, method string, routes []RouteLimit) *RouteLimit {
	if path == "/health" && method == "GET" {
		return &RouteLimit{Limit: 0}
	}
	if method == "POST" && strings.HasPrefix(path, "/cvs/") && strings.HasSuffix(path, "/export/pdf") {
		rule := exportRouteLimit
		return &rule
	}

	for i := range routes {
		if routes[i].Path == path && routes[i].Method == method {
			return &routes[i]
		}
	}
	for i := range routes {
		rule := &routes[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
