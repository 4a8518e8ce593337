package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds the signing secret and lifetime for session tokens.
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// defaultTokenTTLHours keeps an editing session alive for a working day.
const defaultTokenTTLHours = 24

// NewJWTConfig reads JWT_SECRET (required) and JWT_TTL_HOURS (default 24)
// from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	ttlHours := defaultTokenTTLHours
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS: %v", err)
		}
		ttlHours = parsed
	}
	if ttlHours < 1 {
		return nil, fmt.Errorf("JWT_TTL_HOURS must be at least 1 hour, got: %d", ttlHours)
	}

	return &JWTConfig{
		Secret:   secret,
		TokenTTL: time.Duration(ttlHours) * time.Hour,
	}, nil
}
