package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttemptOutcome classifies how a submission attempt ended.
type AttemptOutcome string

const (
	AttemptSubmitted AttemptOutcome = "SUBMITTED"
	AttemptStepUp    AttemptOutcome = "STEP_UP"
	AttemptFailed    AttemptOutcome = "FAILED"
)

// TransferAttempt is an audit record of one submission attempt. The PIN is
// deliberately absent.
type TransferAttempt struct {
	ID            uuid.UUID       `json:"id"`
	SessionID     uuid.UUID       `json:"session_id"`
	UserID        string          `json:"user_id"`
	FromAccountID string          `json:"from_account_id"`
	Destination   string          `json:"destination"`
	TransferType  TransferType    `json:"transfer_type"`
	Amount        decimal.Decimal `json:"amount"`
	Outcome       AttemptOutcome  `json:"outcome"`
	ErrorCode     string          `json:"error_code,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
