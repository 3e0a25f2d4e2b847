package ports

import (
	"context"
	"time"

	"transfer-workflow-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenService validates the platform session tokens presented to the
// workflow API. The same raw token is forwarded to the backend ledger as
// the bearer credential.
type TokenService interface {
	Generate(userID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	UserID string
}

// FormPatch carries partial form updates; nil fields are untouched.
type FormPatch struct {
	TransferType        *domain.TransferType `json:"transfer_type,omitempty"`
	Amount              *string              `json:"amount,omitempty"`
	FromAccountID       *string              `json:"from_account_id,omitempty"`
	ToInternalAccountID *string              `json:"to_internal_account_id,omitempty"`
	AccountHolderName   *string              `json:"account_holder_name,omitempty"`
	RoutingCode         *string              `json:"routing_code,omitempty"`
	AccountNumber       *string              `json:"account_number,omitempty"`
	AccountType         *domain.AccountType  `json:"account_type,omitempty"`
	Memo                *string              `json:"memo,omitempty"`
}

// WorkflowSnapshot is the externally visible state of one workflow session.
type WorkflowSnapshot struct {
	ID              uuid.UUID               `json:"id"`
	State           domain.WorkflowState    `json:"state"`
	PinState        domain.PinState         `json:"pin_state"`
	Form            domain.TransferForm     `json:"form"`
	Summary         domain.TransferSummary  `json:"summary"`
	BankName        string                  `json:"bank_name,omitempty"`
	ResolvingBank   bool                    `json:"resolving_bank"`
	Verifying       bool                    `json:"verifying"`
	VerifiedAccount *domain.VerifiedAccount `json:"verified_account,omitempty"`
	Accounts        []domain.Account        `json:"accounts"`
	Limits          domain.TransferLimits   `json:"limits"`
	Loaded          bool                    `json:"loaded"`
	FieldErrors     map[string]string       `json:"field_errors,omitempty"`
	Result          *domain.TransferResult  `json:"result,omitempty"`
	LastError       string                  `json:"last_error,omitempty"`
}

// WorkflowManager hosts transfer workflow sessions. Every operation is
// scoped to the owning user; a session ID belonging to another user is
// reported as not found.
type WorkflowManager interface {
	Create(ctx context.Context, userID, bearer string) (*WorkflowSnapshot, error)
	Get(id uuid.UUID, userID string) (*WorkflowSnapshot, error)
	UpdateForm(id uuid.UUID, userID string, patch FormPatch) (*WorkflowSnapshot, error)
	QuickAmounts(id uuid.UUID, userID string) ([]decimal.Decimal, error)
	OpenReview(id uuid.UUID, userID string) (*WorkflowSnapshot, error)
	CancelReview(id uuid.UUID, userID string) (*WorkflowSnapshot, error)
	Confirm(ctx context.Context, id uuid.UUID, userID, pin string) (*WorkflowSnapshot, error)
	SetupPIN(ctx context.Context, id uuid.UUID, userID, pin, confirm string) (*WorkflowSnapshot, error)
	Close(id uuid.UUID, userID string) error
}
