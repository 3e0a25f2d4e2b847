package ports

import (
	"context"
	"time"

	"transfer-workflow-service/internal/core/domain"
)

// PinHintStore persists the "a PIN exists" session hint. The hint avoids
// re-prompting setup on every page load; it is a cache, never an
// authorization decision; the literal digits are demanded at submission
// time regardless.
type PinHintStore interface {
	// Get returns (hasPin, known). known is false when no hint is stored.
	Get(ctx context.Context, userID string) (bool, bool, error)
	Set(ctx context.Context, userID string, hasPin bool, ttl time.Duration) error
	Clear(ctx context.Context, userID string) error
}

// AttemptRepository records transfer submission attempts for audit.
// Writes are best-effort; a failed insert is logged, never surfaced.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *domain.TransferAttempt) error
}
