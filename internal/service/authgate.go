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

// AuthorizationGate tracks whether the user has a transaction PIN and walks
// the per-attempt entry states. It holds only the boolean "a PIN exists"
// hint; the digits themselves pass straight through to the ledger at setup
// and submission time and are never retained.
type AuthorizationGate struct {
	hints     ports.PinHintStore
	transfers ports.TransferClient
	hintTTL   time.Duration
	log       zerolog.Logger

	mu    sync.Mutex
	state domain.PinState
}

// NewAuthorizationGate creates a gate in the unset state. Call Bootstrap to
// load the actual PIN status.
func NewAuthorizationGate(hints ports.PinHintStore, transfers ports.TransferClient, hintTTL time.Duration, log zerolog.Logger) *AuthorizationGate {
	return &AuthorizationGate{
		hints:     hints,
		transfers: transfers,
		hintTTL:   hintTTL,
		log:       log,
		state:     domain.PinUnset,
	}
}

// Bootstrap resolves the initial PIN state. Only the hint store attests that
// a PIN already exists; the account flags say a PIN is mandatory for
// transfers, not that one has been registered. When the ledger mandates a
// PIN and nothing attests one exists, the gate opens on the setup prompt so
// the user registers digits before any review.
func (g *AuthorizationGate) Bootstrap(ctx context.Context, userID string, accounts []domain.Account) {
	hasPin, known, err := g.hints.Get(ctx, userID)
	if err != nil {
		g.log.Warn().Err(err).Msg("pin hint read failed")
		known = false
	}

	required := false
	for _, a := range accounts {
		if a.PINRequired {
			required = true
			break
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case known && hasPin:
		g.state = domain.PinSet
	case required:
		g.state = domain.PinSetupPrompted
	default:
		g.state = domain.PinUnset
	}
}

// State returns the current gate state.
func (g *AuthorizationGate) State() domain.PinState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// PromptSetup moves the gate into the setup prompt. Fails unless no PIN is
// set.
func (g *AuthorizationGate) PromptSetup() error {
	return g.transition(domain.PinSetupPrompted)
}

// SetupPIN validates and registers a new transaction PIN with the ledger.
// The digits are forwarded once and dropped; on success the hint is
// refreshed and the gate lands in the set state.
func (g *AuthorizationGate) SetupPIN(ctx context.Context, userID, bearer, accountID, pin, confirm string) error {
	if !domain.ValidPIN(pin) {
		return apperror.ErrInvalidPinFormat().WithField("pin")
	}
	if pin != confirm {
		return apperror.ErrPinMismatch().WithField("confirmPin")
	}

	g.mu.Lock()
	if g.state != domain.PinSetupPrompted && g.state != domain.PinUnset {
		from := g.state
		g.mu.Unlock()
		return apperror.ErrIllegalTransition(string(from), string(domain.PinSet))
	}
	g.mu.Unlock()

	if err := g.transfers.SetPIN(ctx, bearer, accountID, pin, ""); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperror.ErrUpstreamUnavailable(err)
	}

	if err := g.hints.Set(ctx, userID, true, g.hintTTL); err != nil {
		g.log.Warn().Err(err).Msg("pin hint write failed after setup")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = domain.PinSet
	return nil
}

// RequireEntry arms the gate for a submission attempt. Fresh digits are
// demanded on every attempt, whatever the previous outcome was.
func (g *AuthorizationGate) RequireEntry() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == domain.PinUnset || g.state == domain.PinSetupPrompted {
		return apperror.ErrPinSetupRequired()
	}
	if !domain.CanTransitionPin(g.state, domain.PinEntryRequired) {
		return apperror.ErrIllegalTransition(string(g.state), string(domain.PinEntryRequired))
	}
	g.state = domain.PinEntryRequired
	return nil
}

// Authorized records a successful PIN check for the current attempt.
func (g *AuthorizationGate) Authorized() error {
	return g.transition(domain.PinAuthorized)
}

// Denied records a rejected or locked PIN for the current attempt. The hint
// is kept: a locked PIN still exists.
func (g *AuthorizationGate) Denied() error {
	return g.transition(domain.PinDenied)
}

// Rearm returns the gate to the set state after an attempt concludes.
func (g *AuthorizationGate) Rearm() error {
	return g.transition(domain.PinSet)
}

func (g *AuthorizationGate) transition(to domain.PinState) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !domain.CanTransitionPin(g.state, to) {
		return apperror.ErrIllegalTransition(string(g.state), string(to))
	}
	g.state = to
	return nil
}
