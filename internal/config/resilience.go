package config

import (
	"fmt"
	"time"
)

// Retry configuration constants
const (
	// Roster read retry configuration
	StoreReadMaxAttempts       = 3
	StoreReadInitialWait       = 500 * time.Millisecond
	StoreReadMaxWait           = 5 * time.Second
	StoreReadBackoffMultiplier = 2.0
	StoreReadTimeout           = 30 * time.Second

	// Roster write retry configuration
	StoreWriteMaxAttempts       = 3
	StoreWriteInitialWait       = 1 * time.Second
	StoreWriteMaxWait           = 10 * time.Second
	StoreWriteBackoffMultiplier = 2.0
	StoreWriteTimeout           = 30 * time.Second
)

// RetryConfig defines retry behavior for operations
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration
}

// Validate rejects retry settings that would never attempt or never stop
func (c RetryConfig) Validate() error {
	switch {
	case c.MaxAttempts <= 0:
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	case c.InitialWait < 0:
		return fmt.Errorf("initial wait must not be negative, got %v", c.InitialWait)
	case c.MaxWait < c.InitialWait:
		return fmt.Errorf("max wait %v is below initial wait %v", c.MaxWait, c.InitialWait)
	case c.Multiplier <= 0:
		return fmt.Errorf("multiplier must be positive, got %f", c.Multiplier)
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// ResilienceConfig contains all retry configurations
type ResilienceConfig struct {
	StoreRead  RetryConfig
	StoreWrite RetryConfig
}

// DefaultResilienceConfig provides sensible defaults
var DefaultResilienceConfig = ResilienceConfig{
	StoreRead: RetryConfig{
		MaxAttempts: StoreReadMaxAttempts,
		InitialWait: StoreReadInitialWait,
		MaxWait:     StoreReadMaxWait,
		Multiplier:  StoreReadBackoffMultiplier,
		Timeout:     StoreReadTimeout,
	},
	StoreWrite: RetryConfig{
		MaxAttempts: StoreWriteMaxAttempts,
		InitialWait: StoreWriteInitialWait,
		MaxWait:     StoreWriteMaxWait,
		Multiplier:  StoreWriteBackoffMultiplier,
		Timeout:     StoreWriteTimeout,
	},
}
