// Package ratelimit bounds login attempts per client key using Redis
// counters with store-managed expiry. The limiter is a defense-in-depth
// layer: when Redis is unreachable it fails open so an infrastructure
// incident can never lock out legitimate logins.
package ratelimit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptsKeyPrefix = "login_attempts:"
	blockKeyPrefix    = "login_block:"
)

// Config holds the limiter thresholds and windows.
type Config struct {
	// MaxAttempts is the number of failures within Window that triggers a block.
	MaxAttempts int
	// Window is the TTL of the attempt counter.
	Window time.Duration
	// BlockDuration is how long a key stays blocked once the threshold is hit.
	BlockDuration time.Duration
	// StoreTimeout bounds each Redis round trip; on expiry the call fails open.
	StoreTimeout time.Duration
}

// DefaultConfig returns the default limiter thresholds.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   5,
		Window:        15 * time.Minute,
		BlockDuration: 15 * time.Minute,
		StoreTimeout:  500 * time.Millisecond,
	}
}

// Limiter is a Redis-backed login attempt limiter. State lives entirely in
// the store: every check re-reads it, so concurrent requests across processes
// see one shared counter.
type Limiter struct {
	client *redis.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a limiter on top of the given Redis client.
func New(client *redis.Client, cfg Config, logger *slog.Logger) *Limiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	if cfg.BlockDuration <= 0 {
		cfg.BlockDuration = DefaultConfig().BlockDuration
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultConfig().StoreTimeout
	}

	return &Limiter{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Allow reports whether a login attempt for the given key may proceed.
// A key with no record is allowed; a blocked key or a counter at the
// threshold is denied. Any store failure fails open: the incident is logged
// and the attempt is allowed.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.StoreTimeout)
	defer cancel()

	_, err := l.client.Get(ctx, blockKeyPrefix+key).Result()
	if err == nil {
		return false
	}
	if !errors.Is(err, redis.Nil) {
		return l.failOpen(ctx, key, err)
	}

	count, err := l.client.Get(ctx, attemptsKeyPrefix+key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true
		}
		return l.failOpen(ctx, key, err)
	}

	return count < int64(l.cfg.MaxAttempts)
}

// RecordFailure atomically increments the attempt counter for the key and
// blocks the key once the counter reaches the threshold. Store failures are
// logged and swallowed: a limiter write must never fail the login flow
// around it.
func (l *Limiter) RecordFailure(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.StoreTimeout)
	defer cancel()

	count, err := l.client.Incr(ctx, attemptsKeyPrefix+key).Result()
	if err != nil {
		l.logStoreError(ctx, "record login failure", key, err)
		return
	}

	// First failure creates the counter; attach the window TTL exactly once
	// so the window is fixed rather than sliding.
	if count == 1 {
		if err := l.client.Expire(ctx, attemptsKeyPrefix+key, l.cfg.Window).Err(); err != nil {
			l.logStoreError(ctx, "set attempt window", key, err)
		}
	}

	if count >= int64(l.cfg.MaxAttempts) {
		if err := l.client.Set(ctx, blockKeyPrefix+key, 1, l.cfg.BlockDuration).Err(); err != nil {
			l.logStoreError(ctx, "set login block", key, err)
			return
		}
		l.logger.WarnContext(ctx, "login key blocked",
			slog.String("key", key),
			slog.Int64("attempts", count),
			slog.Duration("block_duration", l.cfg.BlockDuration),
		)
	}
}

// RecordSuccess clears the attempt counter and block for the key so
// legitimate intermittent failures do not accumulate toward a block.
// Failure to clear is non-fatal.
func (l *Limiter) RecordSuccess(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.StoreTimeout)
	defer cancel()

	if err := l.client.Del(ctx, attemptsKeyPrefix+key, blockKeyPrefix+key).Err(); err != nil {
		l.logStoreError(ctx, "reset login attempts", key, err)
	}
}

// failOpen is the single audit point for the availability-over-enforcement
// policy: a store outage admits the attempt instead of propagating the error.
func (l *Limiter) failOpen(ctx context.Context, key string, err error) bool {
	l.logger.ErrorContext(ctx, "rate limit store unavailable, failing open",
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
	return true
}

func (l *Limiter) logStoreError(ctx context.Context, op, key string, err error) {
	l.logger.ErrorContext(ctx, "rate limit store write failed",
		slog.String("op", op),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}
