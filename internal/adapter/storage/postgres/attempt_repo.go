package postgres

import (
	"context"
	"time"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
)

type attemptRepo struct {
	pool Pool
}

// NewAttemptRepository creates a PostgreSQL-backed AttemptRepository.
func NewAttemptRepository(pool Pool) ports.AttemptRepository {
	return &attemptRepo{pool: pool}
}

func (r *attemptRepo) Create(ctx context.Context, attempt *domain.TransferAttempt) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO transfer_attempts (id, session_id, user_id, from_account_id, destination, transfer_type, amount, outcome, error_code, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		attempt.ID, attempt.SessionID, attempt.UserID, attempt.FromAccountID,
		attempt.Destination, string(attempt.TransferType), attempt.Amount,
		string(attempt.Outcome), attempt.ErrorCode, attempt.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	return err
}
