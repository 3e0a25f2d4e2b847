package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// TransferType distinguishes movement between the user's own accounts from
// movement to an account at another bank.
type TransferType string

const (
	TransferTypeInternal TransferType = "internal"
	TransferTypeExternal TransferType = "external"
)

var routingCodeRe = regexp.MustCompile(`^[0-9]{9}$`)

// ValidRoutingCode reports whether code passes the structural check: exactly
// nine digits and not the all-zeros placeholder. Codes failing this check
// must never reach the directory lookup.
func ValidRoutingCode(code string) bool {
	return routingCodeRe.MatchString(code) && code != "000000000"
}

var pinRe = regexp.MustCompile(`^[0-9]{4,6}$`)

// ValidPIN reports whether pin is a 4-6 digit numeric code.
func ValidPIN(pin string) bool {
	return pinRe.MatchString(pin)
}

// TransferForm holds the user-entered transfer details. The internal and
// external field sets are mutually exclusive; SetType clears whichever set
// no longer applies.
type TransferForm struct {
	TransferType        TransferType `json:"transfer_type"`
	AmountText          string       `json:"amount"`
	FromAccountID       string       `json:"from_account_id"`
	ToInternalAccountID string       `json:"to_internal_account_id,omitempty"`
	AccountHolderName   string       `json:"account_holder_name,omitempty"`
	RoutingCode         string       `json:"routing_code,omitempty"`
	BankName            string       `json:"bank_name,omitempty"`
	AccountNumber       string       `json:"account_number,omitempty"`
	AccountType         AccountType  `json:"account_type,omitempty"`
	Memo                string       `json:"memo,omitempty"`
}

// SetType switches the transfer type and resets the fields exclusive to the
// previous type. Invariant: no stale external fields survive a switch to
// internal and vice versa.
func (f *TransferForm) SetType(t TransferType) {
	if f.TransferType == t {
		return
	}
	f.TransferType = t
	switch t {
	case TransferTypeInternal:
		f.AccountHolderName = ""
		f.RoutingCode = ""
		f.BankName = ""
		f.AccountNumber = ""
		f.AccountType = ""
	case TransferTypeExternal:
		f.ToInternalAccountID = ""
	}
}

// Amount parses the amount text. ok is false for empty, malformed, or
// non-positive input.
func (f *TransferForm) Amount() (decimal.Decimal, bool) {
	if f.AmountText == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(f.AmountText)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// VerifiedAccount is the resolved destination identity a transfer is
// reviewed and submitted against.
type VerifiedAccount struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email,omitempty"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	Currency      string `json:"currency"`
	RoutingNumber string `json:"routing_number"`
}

// MatchesForm reports whether this identity is still fresh for the given
// form. A transfer must never be submitted against a VerifiedAccount whose
// account number differs from the current form field.
func (v *VerifiedAccount) MatchesForm(f *TransferForm) bool {
	return v != nil &&
		v.AccountNumber == f.AccountNumber &&
		v.BankName == f.BankName
}

// TransferSummary is derived from the form on every amount or type change.
type TransferSummary struct {
	Amount         decimal.Decimal `json:"amount"`
	Fee            decimal.Decimal `json:"fee"`
	Total          decimal.Decimal `json:"total"`
	ProcessingTime string          `json:"processing_time"`
}

// TransferResult is the outcome of a submitted transfer.
type TransferResult struct {
	TransferID     string `json:"transfer_id,omitempty"`
	StepUpRequired bool   `json:"step_up_required"`
	Message        string `json:"message"`
}
