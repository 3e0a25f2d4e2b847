package service

import (
	"transfer-workflow-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// FeePolicy holds the per-type fee rates and processing-time labels.
type FeePolicy struct {
	InternalRate   decimal.Decimal
	ExternalRate   decimal.Decimal
	InternalTiming string
	ExternalTiming string
}

// NewFeePolicy builds a FeePolicy from config rates.
func NewFeePolicy(internalRate, externalRate float64, internalTiming, externalTiming string) FeePolicy {
	return FeePolicy{
		InternalRate:   decimal.NewFromFloat(internalRate),
		ExternalRate:   decimal.NewFromFloat(externalRate),
		InternalTiming: internalTiming,
		ExternalTiming: externalTiming,
	}
}

// Rate returns the fee rate for a transfer type.
func (p FeePolicy) Rate(t domain.TransferType) decimal.Decimal {
	if t == domain.TransferTypeExternal {
		return p.ExternalRate
	}
	return p.InternalRate
}

// Timing returns the processing-time label for a transfer type.
func (p FeePolicy) Timing(t domain.TransferType) string {
	if t == domain.TransferTypeExternal {
		return p.ExternalTiming
	}
	return p.InternalTiming
}

// ComputeSummary derives the fee breakdown for the entered amount. It is
// pure and runs on every amount or type change; invalid, empty, or
// non-positive input yields the zero summary.
func ComputeSummary(amountText string, t domain.TransferType, policy FeePolicy) domain.TransferSummary {
	summary := domain.TransferSummary{
		Amount:         decimal.Zero,
		Fee:            decimal.Zero,
		Total:          decimal.Zero,
		ProcessingTime: policy.Timing(t),
	}

	form := domain.TransferForm{AmountText: amountText}
	amount, ok := form.Amount()
	if !ok {
		return summary
	}

	fee := amount.Mul(policy.Rate(t)).Round(2)
	summary.Amount = amount
	summary.Fee = fee
	summary.Total = amount.Add(fee)
	return summary
}

// MaxTransferable is the ceiling offered to quick-amount shortcuts and used
// in validation: the largest amount whose total (amount plus fee) still
// fits the balance, capped by the remaining daily limit.
func MaxTransferable(balance, remainingDaily, rate decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	byBalance := balance.DivRound(one.Add(rate), 8).RoundDown(2)
	ceiling := decimal.Min(remainingDaily, byBalance)
	if ceiling.IsNegative() {
		return decimal.Zero
	}
	return ceiling
}

// QuickAmountFractions are the shortcut steps offered against the maximum
// transferable amount.
var QuickAmountFractions = []decimal.Decimal{
	decimal.NewFromFloat(0.25),
	decimal.NewFromFloat(0.5),
	decimal.NewFromFloat(0.75),
	decimal.NewFromInt(1),
}

// QuickAmounts returns the shortcut amounts for the given ceiling, rounded
// down to cents. Fractions that round to zero are dropped.
func QuickAmounts(max decimal.Decimal) []decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(QuickAmountFractions))
	for _, f := range QuickAmountFractions {
		a := max.Mul(f).RoundDown(2)
		if a.IsPositive() {
			amounts = append(amounts, a)
		}
	}
	return amounts
}
