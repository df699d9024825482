// Package windowstore holds the ephemeral per-rule rolling state the
// detectors evaluate against. Entries self-expire via TTL and are never
// written to durable storage.
package windowstore

import (
	"context"
	"time"

	"github.com/kakaon/fraud-service/internal/models"
)

// Store is the shared window-state interface every detector uses. All
// consumer instances pointed at the same backend observe the same windows.
type Store interface {
	// Exists reports whether a scalar flag key is present.
	Exists(ctx context.Context, key string) (bool, error)
	// Set writes a scalar flag with a TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// HGet reads one hash field; returns "" without error when absent.
	HGet(ctx context.Context, key, field string) (string, error)
	// HSet writes one hash field.
	HSet(ctx context.Context, key, field, value string) error
	// Push appends an event to a rolling list and refreshes its TTL.
	Push(ctx context.Context, key string, event models.PaymentEvent, ttl time.Duration) error
	// Range returns every event currently held under key, oldest first as
	// pushed. Filtering by event time is the caller's job.
	Range(ctx context.Context, key string) ([]models.PaymentEvent, error)
}
