package service

import (
	"context"
	"sync"
	"time"

	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Dependencies bundles the outbound ports a workflow session needs.
type Dependencies struct {
	Accounts  ports.AccountClient
	Directory ports.RoutingDirectory
	Verifier  ports.PayeeVerifier
	Transfers ports.TransferClient
	Hints     ports.PinHintStore
	Attempts  ports.AttemptRepository
}

// Options tunes session behavior.
type Options struct {
	RoutingDebounce  time.Duration
	VerifyDebounce   time.Duration
	MinAccountNumber int
	SessionTTL       time.Duration
	PinHintTTL       time.Duration
	Policy           FeePolicy
}

// SessionManager hosts the live workflow sessions in memory and evicts the
// idle ones. Sessions are keyed by random UUID and owned by exactly one
// user: a lookup with the wrong user reports not-found, never forbidden, so
// session IDs cannot be probed.
type SessionManager struct {
	deps Dependencies
	opts Options
	log  zerolog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Workflow

	stopJanitor chan struct{}
	janitorDone chan struct{}
}

var _ ports.WorkflowManager = (*SessionManager)(nil)

// NewSessionManager creates the manager and starts the idle-eviction
// janitor. Call Stop on shutdown.
func NewSessionManager(deps Dependencies, opts Options, log zerolog.Logger) *SessionManager {
	m := &SessionManager{
		deps:        deps,
		opts:        opts,
		log:         log,
		sessions:    make(map[uuid.UUID]*Workflow),
		stopJanitor: make(chan struct{}),
		janitorDone: make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Create opens a new workflow session for the user and loads accounts,
// limits, and the PIN status.
func (m *SessionManager) Create(ctx context.Context, userID, bearer string) (*ports.WorkflowSnapshot, error) {
	wf := newWorkflow(uuid.New(), userID, bearer, m.deps, m.opts, m.log)
	wf.load(ctx)

	m.mu.Lock()
	m.sessions[wf.id] = wf
	m.mu.Unlock()

	m.log.Info().Str("session_id", wf.id.String()).Msg("workflow session created")
	return wf.Snapshot(), nil
}

// Get returns the session snapshot.
func (m *SessionManager) Get(id uuid.UUID, userID string) (*ports.WorkflowSnapshot, error) {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	return wf.Snapshot(), nil
}

// UpdateForm applies a partial form edit to the session.
func (m *SessionManager) UpdateForm(id uuid.UUID, userID string, patch ports.FormPatch) (*ports.WorkflowSnapshot, error) {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	return wf.UpdateForm(patch)
}

// QuickAmounts returns the shortcut amounts for the session's current form.
func (m *SessionManager) QuickAmounts(id uuid.UUID, userID string) ([]decimal.Decimal, error) {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	return wf.QuickAmounts()
}

// OpenReview freezes the form for review.
func (m *SessionManager) OpenReview(id uuid.UUID, userID string) (*ports.WorkflowSnapshot, error) {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	return wf.OpenReview()
}

// CancelReview returns the session to editing.
func (m *SessionManager) CancelReview(id uuid.UUID, userID string) (*ports.WorkflowSnapshot, error) {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	return wf.CancelReview()
}

// Confirm runs one submission attempt with the entered PIN.
func (m *SessionManager) Confirm(ctx context.Context, id uuid.UUID, userID, pin string) (*ports.WorkflowSnapshot, error) {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	return wf.Confirm(pin)
}

// SetupPIN registers a transaction PIN for the session's user.
func (m *SessionManager) SetupPIN(ctx context.Context, id uuid.UUID, userID, pin, confirm string) (*ports.WorkflowSnapshot, error) {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	return wf.SetupPIN(pin, confirm)
}

// Close tears down the session and cancels its in-flight work.
func (m *SessionManager) Close(id uuid.UUID, userID string) error {
	wf, err := m.lookup(id, userID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	wf.Close()
	m.log.Info().Str("session_id", id.String()).Msg("workflow session closed")
	return nil
}

// Stop halts the janitor and closes every live session.
func (m *SessionManager) Stop() {
	close(m.stopJanitor)
	<-m.janitorDone

	m.mu.Lock()
	sessions := make([]*Workflow, 0, len(m.sessions))
	for _, wf := range m.sessions {
		sessions = append(sessions, wf)
	}
	m.sessions = make(map[uuid.UUID]*Workflow)
	m.mu.Unlock()

	for _, wf := range sessions {
		wf.Close()
	}
}

func (m *SessionManager) lookup(id uuid.UUID, userID string) (*Workflow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wf, ok := m.sessions[id]
	if !ok || wf.userID != userID {
		return nil, apperror.ErrSessionNotFound()
	}
	return wf, nil
}

func (m *SessionManager) janitor() {
	defer close(m.janitorDone)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopJanitor:
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *SessionManager) evictIdle() {
	cutoff := time.Now().Add(-m.opts.SessionTTL)

	m.mu.Lock()
	var expired []*Workflow
	for id, wf := range m.sessions {
		if wf.idleSince().Before(cutoff) {
			expired = append(expired, wf)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, wf := range expired {
		wf.Close()
		m.log.Info().Str("session_id", wf.id.String()).Msg("idle workflow session evicted")
	}
}
