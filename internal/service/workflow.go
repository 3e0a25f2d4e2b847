package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Workflow is one user's transfer session: the form, the derived summary,
// the debounced resolvers, the PIN gate, and the single enumerated state
// that decides which operations are legal right now. All mutations go
// through the session mutex; background resolver results re-enter through
// hooks that take the same mutex.
type Workflow struct {
	id     uuid.UUID
	userID string
	bearer string

	// ctx lives as long as the session; closing the session cancels every
	// in-flight lookup and submission spawned from it.
	ctx    context.Context
	cancel context.CancelFunc

	policy    FeePolicy
	resolver  *RoutingResolver
	verifier  *AccountVerifier
	gate      *AuthorizationGate
	cache     *LimitsCache
	transfers ports.TransferClient
	attempts  ports.AttemptRepository
	log       zerolog.Logger

	mu       sync.Mutex
	state    domain.WorkflowState
	form     domain.TransferForm
	reviewed *domain.VerifiedAccount
	result   *domain.TransferResult
	lastErr  *apperror.AppError
	valErrs  map[string]string
	touched  time.Time
}

func newWorkflow(id uuid.UUID, userID, bearer string, deps Dependencies, opts Options, log zerolog.Logger) *Workflow {
	ctx, cancel := context.WithCancel(context.Background())
	wf := &Workflow{
		id:        id,
		userID:    userID,
		bearer:    bearer,
		ctx:       ctx,
		cancel:    cancel,
		policy:    opts.Policy,
		resolver:  NewRoutingResolver(deps.Directory, opts.RoutingDebounce, log),
		verifier:  NewAccountVerifier(deps.Verifier, opts.VerifyDebounce, opts.MinAccountNumber, log),
		gate:      NewAuthorizationGate(deps.Hints, deps.Transfers, opts.PinHintTTL, log),
		cache:     NewLimitsCache(deps.Accounts, log),
		transfers: deps.Transfers,
		attempts:  deps.Attempts,
		log:       log,
		state:     domain.StateEditing,
		form:      domain.TransferForm{TransferType: domain.TransferTypeInternal},
		touched:   time.Now(),
	}
	wf.resolver.OnResolved(wf.bankResolved)
	return wf
}

// bankResolved runs on the resolver goroutine once a routing code maps to a
// bank: it stamps the bank name into the form and arms the verifier with
// the inputs current at that moment.
func (w *Workflow) bankResolved(bankName string) {
	w.mu.Lock()
	if w.resolver.State().Code != w.form.RoutingCode {
		w.mu.Unlock()
		return
	}
	w.form.BankName = bankName
	routing, account := w.form.RoutingCode, w.form.AccountNumber
	w.mu.Unlock()

	w.verifier.Observe(w.ctx, w.bearer, routing, account, true)
}

// load fetches accounts and limits and bootstraps the PIN gate. Called once
// at session creation; a failure leaves the session usable but unloaded.
func (w *Workflow) load(ctx context.Context) {
	if err := w.cache.Refresh(ctx, w.bearer); err != nil {
		w.log.Warn().Err(err).Str("session_id", w.id.String()).Msg("initial account load failed")
		return
	}
	accounts, _, _ := w.cache.Snapshot()
	w.gate.Bootstrap(ctx, w.userID, accounts)
}

// UpdateForm applies a partial edit. Edits are only legal while editing;
// an open review must be cancelled first.
func (w *Workflow) UpdateForm(patch ports.FormPatch) (*ports.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touched = time.Now()

	if w.state != domain.StateEditing && w.state != domain.StateFailed {
		return nil, apperror.ErrIllegalTransition(string(w.state), string(domain.StateEditing))
	}
	if w.state == domain.StateFailed {
		// An edit after a failure reopens the form.
		w.state = domain.StateEditing
		w.lastErr = nil
		w.result = nil
		w.reviewed = nil
	}
	// Any edit restarts validation from scratch.
	w.valErrs = nil

	if patch.TransferType != nil && *patch.TransferType != w.form.TransferType {
		w.form.SetType(*patch.TransferType)
		w.resolver.Reset()
		w.verifier.Reset()
		w.reviewed = nil
	}
	if patch.Amount != nil {
		w.form.AmountText = *patch.Amount
	}
	if patch.FromAccountID != nil {
		w.form.FromAccountID = *patch.FromAccountID
	}
	if patch.ToInternalAccountID != nil {
		w.form.ToInternalAccountID = *patch.ToInternalAccountID
	}
	if patch.AccountHolderName != nil {
		w.form.AccountHolderName = *patch.AccountHolderName
	}
	if patch.AccountType != nil {
		w.form.AccountType = *patch.AccountType
	}
	if patch.Memo != nil {
		w.form.Memo = *patch.Memo
	}

	if patch.RoutingCode != nil && *patch.RoutingCode != w.form.RoutingCode {
		w.form.RoutingCode = *patch.RoutingCode
		// The bank identity belongs to the old code.
		w.form.BankName = ""
		w.resolver.Observe(w.ctx, w.bearer, w.form.RoutingCode)
		w.verifier.Observe(w.ctx, w.bearer, w.form.RoutingCode, w.form.AccountNumber, false)
	}
	if patch.AccountNumber != nil && *patch.AccountNumber != w.form.AccountNumber {
		w.form.AccountNumber = *patch.AccountNumber
		w.verifier.Observe(w.ctx, w.bearer, w.form.RoutingCode, w.form.AccountNumber, w.form.BankName != "")
	}

	return w.snapshotLocked(), nil
}

// QuickAmounts returns the shortcut amounts for the current source account
// and transfer type.
func (w *Workflow) QuickAmounts() ([]decimal.Decimal, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touched = time.Now()

	if !w.cache.Loaded() {
		return nil, apperror.ErrSessionNotReady()
	}
	account, ok := w.cache.Account(w.form.FromAccountID)
	if !ok {
		return nil, apperror.Validation("Select a source account first").WithField("fromAccountId")
	}
	_, limits, _ := w.cache.Snapshot()
	ceiling := MaxTransferable(account.Balance, limits.RemainingToday, w.policy.Rate(w.form.TransferType))
	return QuickAmounts(ceiling), nil
}

// OpenReview validates the form and freezes the destination identity for
// review. Validation failures keep the session editing and are reported
// per field in the snapshot.
func (w *Workflow) OpenReview() (*ports.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touched = time.Now()

	if !domain.CanTransition(w.state, domain.StateReview) {
		return nil, apperror.ErrIllegalTransition(string(w.state), string(domain.StateReview))
	}
	if !w.cache.Loaded() {
		return nil, apperror.ErrSessionNotReady()
	}
	// A pending PIN setup blocks review: the user must register a
	// transaction PIN before any transfer can be reviewed.
	if st := w.gate.State(); st == domain.PinUnset || st == domain.PinSetupPrompted {
		return nil, apperror.ErrPinSetupRequired()
	}
	if errs := w.validateLocked(); len(errs) > 0 {
		// Keep the per-field messages visible on the next snapshot.
		w.valErrs = errs
		return nil, apperror.ErrValidationFailed()
	}

	reviewed, err := w.reviewIdentityLocked()
	if err != nil {
		return nil, err
	}
	w.reviewed = reviewed
	w.valErrs = nil
	w.state = domain.StateReview
	return w.snapshotLocked(), nil
}

// reviewIdentityLocked builds the destination identity the review screen
// shows and the submission will run against.
func (w *Workflow) reviewIdentityLocked() (*domain.VerifiedAccount, error) {
	if w.form.TransferType == domain.TransferTypeInternal {
		dest, ok := w.cache.Account(w.form.ToInternalAccountID)
		if !ok {
			return nil, apperror.Validation("Select a destination account").WithField("toInternalAccountId")
		}
		_, limits, _ := w.cache.Snapshot()
		return &domain.VerifiedAccount{
			FullName:      "Own account",
			AccountNumber: dest.AccountNumber,
			BankName:      "Same bank",
			Currency:      limits.Currency,
			RoutingNumber: dest.RoutingNumber,
		}, nil
	}

	vs := w.verifier.State()
	if vs.Pending {
		return nil, apperror.ErrVerificationStale().WithField("accountNumber")
	}
	if vs.Verified == nil || !vs.Verified.MatchesForm(&w.form) {
		return nil, apperror.ErrAccountNotVerified().WithField("accountNumber")
	}
	verified := *vs.Verified
	return &verified, nil
}

// CancelReview returns an open review (or a failed attempt) to editing.
// The form survives; the frozen identity does not.
func (w *Workflow) CancelReview() (*ports.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touched = time.Now()

	if !domain.CanTransition(w.state, domain.StateEditing) {
		return nil, apperror.ErrIllegalTransition(string(w.state), string(domain.StateEditing))
	}
	w.state = domain.StateEditing
	w.reviewed = nil
	w.lastErr = nil
	w.result = nil
	return w.snapshotLocked(), nil
}

// Confirm runs one submission attempt with the PIN digits entered for this
// attempt. The digits go straight into the upstream request and are gone
// when it returns. A second Confirm while one is in flight is rejected, as
// is any confirm from a state that cannot legally authorize.
func (w *Workflow) Confirm(pin string) (*ports.WorkflowSnapshot, error) {
	w.mu.Lock()
	w.touched = time.Now()

	if w.state == domain.StateSubmitting || w.state == domain.StateAuthorizing {
		w.mu.Unlock()
		return nil, apperror.ErrSubmissionInFlight()
	}
	if !domain.CanTransition(w.state, domain.StateAuthorizing) {
		from := w.state
		w.mu.Unlock()
		return nil, apperror.ErrIllegalTransition(string(from), string(domain.StateAuthorizing))
	}
	w.state = domain.StateAuthorizing
	w.lastErr = nil

	if err := w.authorizeLocked(pin); err != nil {
		w.state = domain.StateReview
		w.mu.Unlock()
		return nil, err
	}

	req := ports.TransferRequest{
		FromAccountID: w.form.FromAccountID,
		Description:   w.form.Memo,
		PIN:           pin,
	}
	req.Amount, _ = w.form.Amount()
	if w.form.TransferType == domain.TransferTypeInternal {
		dest, _ := w.cache.Account(w.form.ToInternalAccountID)
		req.ToAccountNumber = dest.AccountNumber
		req.ToRoutingNumber = dest.RoutingNumber
	} else {
		req.ToAccountNumber = w.reviewed.AccountNumber
		req.ToRoutingNumber = w.reviewed.RoutingNumber
	}
	summary := ComputeSummary(w.form.AmountText, w.form.TransferType, w.policy)

	w.state = domain.StateSubmitting
	w.mu.Unlock()

	// The session context governs the submission: closing the session is
	// the only thing that cancels it.
	resp, err := w.transfers.Submit(w.ctx, w.bearer, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		return w.submissionFailedLocked(req, err)
	}
	return w.submissionSucceededLocked(req, summary, resp), nil
}

// authorizeLocked gates one attempt: PIN format, PIN existence, identity
// freshness, then balance and daily limit.
func (w *Workflow) authorizeLocked(pin string) error {
	if !domain.ValidPIN(pin) {
		return apperror.ErrInvalidPinFormat().WithField("pin")
	}
	if err := w.gate.RequireEntry(); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.CodePinSetupRequired && w.gate.State() == domain.PinUnset {
			// Steer the gate into the setup prompt so the snapshot tells
			// the client what to do next.
			if perr := w.gate.PromptSetup(); perr != nil {
				w.log.Debug().Err(perr).Msg("pin setup prompt skipped")
			}
		}
		return err
	}

	if w.form.TransferType == domain.TransferTypeExternal {
		if w.reviewed == nil || !w.reviewed.MatchesForm(&w.form) {
			w.rearmGate()
			return apperror.ErrVerificationStale().WithField("accountNumber")
		}
	}

	amount, ok := w.form.Amount()
	if !ok {
		w.rearmGate()
		return apperror.ErrInvalidAmount().WithField("amount")
	}
	total := ComputeSummary(w.form.AmountText, w.form.TransferType, w.policy).Total

	source, ok := w.cache.Account(w.form.FromAccountID)
	if !ok {
		w.rearmGate()
		return apperror.Validation("Select a source account first").WithField("fromAccountId")
	}
	_, limits, _ := w.cache.Snapshot()

	if total.GreaterThan(source.Balance) {
		w.rearmGate()
		return apperror.ErrInsufficientBalance(source.Balance.StringFixed(2)).WithField("amount")
	}
	if amount.GreaterThan(limits.RemainingToday) {
		w.rearmGate()
		return apperror.ErrDailyLimitExceeded(limits.RemainingToday.StringFixed(2)).WithField("amount")
	}
	return nil
}

func (w *Workflow) rearmGate() {
	if err := w.gate.Rearm(); err != nil {
		w.log.Debug().Err(err).Msg("pin gate rearm skipped")
	}
}

func (w *Workflow) submissionFailedLocked(req ports.TransferRequest, err error) (*ports.WorkflowSnapshot, error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.ErrUpstreamUnavailable(err)
	}

	switch appErr.Code {
	case apperror.CodePinIncorrect, apperror.CodePinLocked:
		if gerr := w.gate.Denied(); gerr != nil {
			w.log.Debug().Err(gerr).Msg("pin gate deny skipped")
		}
	}
	w.rearmGate()

	w.state = domain.StateFailed
	w.lastErr = appErr
	w.log.Warn().
		Str("session_id", w.id.String()).
		Str("error_code", appErr.Code).
		Msg("transfer submission failed")

	w.auditAttempt(req, domain.AttemptFailed, appErr.Code)
	return w.snapshotLocked(), appErr
}

func (w *Workflow) submissionSucceededLocked(req ports.TransferRequest, summary domain.TransferSummary, resp *ports.TransferResponse) *ports.WorkflowSnapshot {
	if err := w.gate.Authorized(); err != nil {
		w.log.Debug().Err(err).Msg("pin gate authorize skipped")
	}
	w.rearmGate()

	outcome := domain.AttemptSubmitted
	result := &domain.TransferResult{Message: "Transfer submitted"}
	if resp != nil {
		result.TransferID = resp.TransferID
		if resp.StepUpRequired {
			result.StepUpRequired = true
			result.Message = "Additional verification required to complete this transfer"
			outcome = domain.AttemptStepUp
		}
	}

	toInternal := ""
	if w.form.TransferType == domain.TransferTypeInternal {
		toInternal = w.form.ToInternalAccountID
	}
	w.cache.ApplyTransfer(w.form.FromAccountID, toInternal, summary.Amount, summary.Total)

	w.state = domain.StateSucceeded
	w.result = result
	w.log.Info().
		Str("session_id", w.id.String()).
		Str("transfer_id", result.TransferID).
		Bool("step_up", result.StepUpRequired).
		Msg("transfer submitted")

	w.auditAttempt(req, outcome, "")
	return w.snapshotLocked()
}

// auditAttempt records the attempt off the hot path. The write is
// best-effort: audit must never fail a transfer.
func (w *Workflow) auditAttempt(req ports.TransferRequest, outcome domain.AttemptOutcome, errorCode string) {
	attempt := &domain.TransferAttempt{
		ID:            uuid.New(),
		SessionID:     w.id,
		UserID:        w.userID,
		FromAccountID: req.FromAccountID,
		Destination:   req.ToAccountNumber,
		TransferType:  w.form.TransferType,
		Amount:        req.Amount,
		Outcome:       outcome,
		ErrorCode:     errorCode,
		CreatedAt:     time.Now(),
	}
	log := w.log
	repo := w.attempts
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Create(ctx, attempt); err != nil {
			log.Error().Err(err).Str("session_id", attempt.SessionID.String()).Msg("attempt audit write failed")
		}
	}()
}

// SetupPIN registers a transaction PIN mid-workflow. The source account (or
// the first account when none is chosen) anchors the PIN upstream.
func (w *Workflow) SetupPIN(pin, confirm string) (*ports.WorkflowSnapshot, error) {
	w.mu.Lock()
	w.touched = time.Now()
	accountID := w.form.FromAccountID
	if accountID == "" {
		if accounts, _, _ := w.cache.Snapshot(); len(accounts) > 0 {
			accountID = accounts[0].ID
		}
	}
	w.mu.Unlock()

	if accountID == "" {
		return nil, apperror.ErrSessionNotReady()
	}

	if w.gate.State() == domain.PinUnset {
		if err := w.gate.PromptSetup(); err != nil {
			return nil, err
		}
	}
	if err := w.gate.SetupPIN(w.ctx, w.userID, w.bearer, accountID, pin, confirm); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked(), nil
}

// Snapshot returns the externally visible session state.
func (w *Workflow) Snapshot() *ports.WorkflowSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workflow) snapshotLocked() *ports.WorkflowSnapshot {
	accounts, limits, loaded := w.cache.Snapshot()
	rs := w.resolver.State()
	vs := w.verifier.State()

	snap := &ports.WorkflowSnapshot{
		ID:            w.id,
		State:         w.state,
		PinState:      w.gate.State(),
		Form:          w.form,
		Summary:       ComputeSummary(w.form.AmountText, w.form.TransferType, w.policy),
		BankName:      w.form.BankName,
		ResolvingBank: rs.Pending,
		Verifying:     vs.Pending,
		Accounts:      accounts,
		Limits:        limits,
		Loaded:        loaded,
		Result:        w.result,
	}
	if w.state == domain.StateReview || w.state == domain.StateFailed {
		snap.VerifiedAccount = w.reviewed
	} else if vs.Verified != nil {
		verified := *vs.Verified
		snap.VerifiedAccount = &verified
	}
	if w.lastErr != nil {
		snap.LastError = w.lastErr.Message
	}

	errs := w.fieldErrorsLocked(rs, vs)
	if len(errs) > 0 {
		snap.FieldErrors = errs
	}
	return snap
}

// fieldErrorsLocked merges resolver and verifier failures with local format
// checks into the per-field error map.
func (w *Workflow) fieldErrorsLocked(rs RoutingState, vs VerifyState) map[string]string {
	errs := make(map[string]string)
	if rs.Err != nil {
		errs[rs.Err.Field] = rs.Err.Message
	}
	if vs.Err != nil {
		errs[vs.Err.Field] = vs.Err.Message
	}
	if w.form.AmountText != "" {
		if _, ok := w.form.Amount(); !ok {
			errs["amount"] = apperror.ErrInvalidAmount().Message
		}
	}
	// Messages from the last rejected review stay visible until the form
	// changes. Live failures above win on the same field.
	for field, msg := range w.valErrs {
		if _, ok := errs[field]; !ok {
			errs[field] = msg
		}
	}
	return errs
}

// validateLocked checks everything review requires. Returns one message per
// offending field.
func (w *Workflow) validateLocked() map[string]string {
	errs := make(map[string]string)

	if _, ok := w.form.Amount(); !ok {
		errs["amount"] = apperror.ErrInvalidAmount().Message
	}
	if w.form.FromAccountID == "" {
		errs["fromAccountId"] = "Select a source account"
	} else if _, ok := w.cache.Account(w.form.FromAccountID); !ok {
		errs["fromAccountId"] = "Unknown source account"
	}

	switch w.form.TransferType {
	case domain.TransferTypeInternal:
		if w.form.ToInternalAccountID == "" {
			errs["toInternalAccountId"] = "Select a destination account"
		} else if w.form.ToInternalAccountID == w.form.FromAccountID {
			errs["toInternalAccountId"] = "Source and destination must differ"
		}
	case domain.TransferTypeExternal:
		if w.form.AccountHolderName == "" {
			errs["accountHolderName"] = "Enter the account holder's name"
		}
		if !domain.ValidRoutingCode(w.form.RoutingCode) {
			errs["routingCode"] = apperror.ErrInvalidRoutingFormat().Message
		} else if w.form.BankName == "" {
			errs["routingCode"] = "Bank not yet identified"
		}
		vs := w.verifier.State()
		if vs.Verified == nil || !vs.Verified.MatchesForm(&w.form) {
			errs["accountNumber"] = apperror.ErrAccountNotVerified().Message
		}
		if w.form.AccountType == "" {
			errs["accountType"] = "Select an account type"
		}
	}

	// Limits are checked against the optimistic cache before review opens
	// and re-checked against fresh data at confirm time.
	if _, taken := errs["amount"]; !taken && errs["fromAccountId"] == "" {
		if amount, ok := w.form.Amount(); ok {
			source, _ := w.cache.Account(w.form.FromAccountID)
			_, limits, _ := w.cache.Snapshot()
			total := ComputeSummary(w.form.AmountText, w.form.TransferType, w.policy).Total
			if total.GreaterThan(source.Balance) {
				errs["amount"] = apperror.ErrInsufficientBalance(source.Balance.StringFixed(2)).Message
			} else if amount.GreaterThan(limits.RemainingToday) {
				errs["amount"] = apperror.ErrDailyLimitExceeded(limits.RemainingToday.StringFixed(2)).Message
			}
		}
	}
	return errs
}

// Close tears the session down: every pending lookup and in-flight
// submission sees the cancelled context.
func (w *Workflow) Close() {
	w.cancel()
	w.resolver.Reset()
	w.verifier.Reset()
}

func (w *Workflow) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.touched
}
