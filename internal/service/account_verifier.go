package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// VerifyState is a point-in-time view of the verifier.
type VerifyState struct {
	AccountNumber string
	Pending       bool
	Verified      *domain.VerifiedAccount
	Err           *apperror.AppError
}

// AccountVerifier debounces destination-account edits and verifies the
// payee against the bank ledger. Verification only arms once the routing
// code has resolved to a bank and the account number reaches the minimum
// length; any edit invalidates a previous result immediately, so a stale
// green check can never survive a keystroke.
type AccountVerifier struct {
	verifier ports.PayeeVerifier
	debounce time.Duration
	minLen   int
	log      zerolog.Logger

	mu    sync.Mutex
	timer *time.Timer
	token uint64
	state VerifyState
}

// NewAccountVerifier creates a verifier with the given quiet period and
// minimum account-number length.
func NewAccountVerifier(verifier ports.PayeeVerifier, debounce time.Duration, minLen int, log zerolog.Logger) *AccountVerifier {
	return &AccountVerifier{verifier: verifier, debounce: debounce, minLen: minLen, log: log}
}

// Observe registers the latest destination inputs. bankResolved reports
// whether the routing resolver currently holds a bank for routingCode;
// without it the verifier stays idle.
func (v *AccountVerifier) Observe(ctx context.Context, bearer, routingCode, accountNumber string, bankResolved bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.token++
	v.stopTimerLocked()
	v.state = VerifyState{AccountNumber: accountNumber}

	if !bankResolved || len(accountNumber) < v.minLen {
		return
	}

	token := v.token
	v.state.Pending = true
	v.timer = time.AfterFunc(v.debounce, func() {
		v.verify(ctx, bearer, routingCode, accountNumber, token)
	})
}

func (v *AccountVerifier) verify(ctx context.Context, bearer, routingCode, accountNumber string, token uint64) {
	account, err := v.verifier.Verify(ctx, bearer, routingCode, accountNumber)

	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.token {
		return
	}
	v.state.Pending = false
	if ctx.Err() != nil {
		return
	}

	switch {
	case err != nil:
		v.log.Warn().Err(err).Msg("payee verification failed")
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			v.state.Err = appErr.WithField("accountNumber")
		} else {
			v.state.Err = apperror.ErrUpstreamUnavailable(err).WithField("accountNumber")
		}
	case account == nil:
		v.state.Err = apperror.ErrAccountNotVerified().WithField("accountNumber")
	default:
		v.state.Verified = account
	}
}

// Reset clears all verifier state and stops any pending work.
func (v *AccountVerifier) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.token++
	v.stopTimerLocked()
	v.state = VerifyState{}
}

// State returns the current verifier state.
func (v *AccountVerifier) State() VerifyState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *AccountVerifier) stopTimerLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
