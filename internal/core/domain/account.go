package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a bank account.
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

// Account is a read-mostly replica of a ledger account owned by the backend.
// The orchestrator may mutate Balance optimistically after a confirmed
// transfer; any wholesale refresh supersedes those mutations.
type Account struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   AccountType     `json:"account_type"`
	RoutingNumber string          `json:"routing_number,omitempty"`
	PINRequired   bool            `json:"pin_required"`
}

// TransferLimits tracks the rolling daily transfer allowance.
type TransferLimits struct {
	DailyLimit       decimal.Decimal `json:"daily_limit"`
	RemainingToday   decimal.Decimal `json:"remaining_today"`
	SpentToday       decimal.Decimal `json:"spent_today"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	Currency         string          `json:"currency"`
}

// ApplySpend records a successful transfer against today's allowance.
// RemainingToday never goes below zero.
func (l *TransferLimits) ApplySpend(amount decimal.Decimal) {
	l.SpentToday = l.SpentToday.Add(amount)
	remaining := l.DailyLimit.Sub(l.SpentToday)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	l.RemainingToday = remaining
}
