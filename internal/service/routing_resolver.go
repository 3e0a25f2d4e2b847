package service

import (
	"context"
	"sync"
	"time"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// RoutingState is a point-in-time view of the resolver.
type RoutingState struct {
	Code     string
	BankName string
	Pending  bool
	Err      *apperror.AppError
}

// RoutingResolver debounces routing-code edits and resolves the latest code
// against the bank directory. Each Observe supersedes any pending timer and
// any in-flight lookup: responses carry the token captured at dispatch and
// are discarded when a newer edit has bumped it.
type RoutingResolver struct {
	dir      ports.RoutingDirectory
	debounce time.Duration
	log      zerolog.Logger

	// onResolved, if set, fires after a successful resolution, outside the
	// resolver lock.
	onResolved func(bankName string)

	mu    sync.Mutex
	timer *time.Timer
	token uint64
	state RoutingState
}

// NewRoutingResolver creates a resolver with the given quiet period.
func NewRoutingResolver(dir ports.RoutingDirectory, debounce time.Duration, log zerolog.Logger) *RoutingResolver {
	return &RoutingResolver{dir: dir, debounce: debounce, log: log}
}

// OnResolved registers a hook fired on each successful resolution.
func (r *RoutingResolver) OnResolved(fn func(bankName string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onResolved = fn
}

// Observe registers the latest routing code. Structurally invalid codes
// fail locally and never reach the network; valid ones arm the debounce
// timer. Any prior result or error is cleared immediately.
func (r *RoutingResolver) Observe(ctx context.Context, bearer, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.token++
	r.stopTimerLocked()
	r.state = RoutingState{Code: code}

	if code == "" {
		return
	}
	if !domain.ValidRoutingCode(code) {
		r.state.Err = apperror.ErrInvalidRoutingFormat().WithField("routingCode")
		return
	}

	token := r.token
	r.state.Pending = true
	r.timer = time.AfterFunc(r.debounce, func() {
		r.lookup(ctx, bearer, code, token)
	})
}

func (r *RoutingResolver) lookup(ctx context.Context, bearer, code string, token uint64) {
	info, err := r.dir.Lookup(ctx, bearer, code)

	r.mu.Lock()
	if token != r.token {
		// A newer edit superseded this lookup.
		r.mu.Unlock()
		return
	}
	r.state.Pending = false
	if ctx.Err() != nil {
		// Session closed while the lookup was in flight: suppress silently.
		r.mu.Unlock()
		return
	}

	var resolved string
	switch {
	case err != nil:
		r.log.Warn().Err(err).Str("routing_code", code).Msg("bank directory lookup failed")
		r.state.Err = apperror.ErrBankLookupUnavailable(err).WithField("routingCode")
	case info == nil || !info.Valid:
		r.state.Err = apperror.ErrBankNotFound().WithField("routingCode")
	default:
		r.state.BankName = info.BankName
		resolved = info.BankName
	}
	hook := r.onResolved
	r.mu.Unlock()

	if resolved != "" && hook != nil {
		hook(resolved)
	}
}

// Reset clears all resolver state and stops any pending work. Used when the
// transfer type leaves external and on session close.
func (r *RoutingResolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token++
	r.stopTimerLocked()
	r.state = RoutingState{}
}

// State returns the current resolver state.
func (r *RoutingResolver) State() RoutingState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *RoutingResolver) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
