package ports

import (
	"context"

	"transfer-workflow-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// AccountClient reads the user's accounts and transfer limits from the
// backend ledger. The bearer token is passed through per call.
type AccountClient interface {
	ListAccounts(ctx context.Context, bearer string) ([]domain.Account, error)
	Profile(ctx context.Context, bearer string) (*domain.TransferLimits, error)
}

// RoutingInfo is the directory's answer for a routing number.
type RoutingInfo struct {
	Valid         bool   `json:"valid"`
	RoutingNumber string `json:"routingNumber"`
	BankName      string `json:"bankName"`
	Internal      bool   `json:"internal"`
	Source        string `json:"source"`
	ErrorMessage  string `json:"error,omitempty"`
}

// RoutingDirectory resolves a routing number to a bank identity.
// Implementations return an error only for transport failures; a routing
// number the directory does not know comes back with Valid=false.
type RoutingDirectory interface {
	Lookup(ctx context.Context, bearer, routingNumber string) (*RoutingInfo, error)
}

// PayeeVerifier resolves a destination account number at an identified bank
// to a verified payee profile.
type PayeeVerifier interface {
	Verify(ctx context.Context, bearer, routingNumber, accountNumber string) (*domain.VerifiedAccount, error)
}

// TransferRequest is the submission payload sent to the backend. PIN digits
// travel with the request and are never stored.
type TransferRequest struct {
	FromAccountID   string
	ToAccountNumber string
	ToRoutingNumber string
	Amount          decimal.Decimal
	Description     string
	PIN             string
}

// TransferResponse is the backend's answer to a submitted transfer.
type TransferResponse struct {
	TransferID     string
	StepUpRequired bool
}

// TransferClient submits transfers and manages the transaction PIN.
// Submit maps upstream failures into the apperror taxonomy: HTTP 423 means
// the PIN is locked, 401/403 mean the PIN was rejected, transport failures
// are retryable NET errors.
type TransferClient interface {
	Submit(ctx context.Context, bearer string, req TransferRequest) (*TransferResponse, error)
	SetPIN(ctx context.Context, bearer, accountID, pin, currentPin string) error
}
