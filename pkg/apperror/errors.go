package apperror

import (
	"fmt"
	"net/http"
)

// Stable error codes returned to clients.
const (
	CodeInvalidAmount         = "FMT_001"
	CodeInvalidRoutingFormat  = "FMT_002"
	CodeInvalidPinFormat      = "FMT_003"
	CodePinMismatch           = "FMT_004"
	CodeBankNotFound          = "RES_001"
	CodeBankLookupUnavailable = "RES_002"
	CodeAccountNotVerified    = "RES_003"
	CodeVerificationStale     = "RES_004"
	CodeInsufficientBalance   = "LIM_001"
	CodeDailyLimitExceeded    = "LIM_002"
	CodePinSetupRequired      = "AUTH_001"
	CodePinIncorrect          = "AUTH_002"
	CodePinLocked             = "AUTH_003"
	CodeInvalidToken          = "AUTH_004"
	CodeIllegalTransition     = "WF_001"
	CodeSubmissionInFlight    = "WF_002"
	CodeSessionNotFound       = "WF_003"
	CodeSessionNotReady       = "WF_004"
	CodeValidationFailed      = "WF_005"
	CodeUpstreamUnavailable   = "NET_001"
	CodeTransferRejected      = "NET_002"
	CodeInternal              = "SYS_001"
	CodeBadRequest            = "FMT_000"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Field      string `json:"field,omitempty"` // Form field this error is scoped to, if any
	Err        error  `json:"-"`               // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithField returns a copy of the error scoped to a form field.
func (e *AppError) WithField(field string) *AppError {
	dup := *e
	dup.Field = field
	return &dup
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Format errors (FMT): caught locally, never reach the network ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be a positive number", http.StatusBadRequest)
}

func ErrInvalidRoutingFormat() *AppError {
	return New(CodeInvalidRoutingFormat, "Routing number must be 9 digits", http.StatusBadRequest)
}

func ErrInvalidPinFormat() *AppError {
	return New(CodeInvalidPinFormat, "PIN must be 4-6 digits", http.StatusBadRequest)
}

func ErrPinMismatch() *AppError {
	return New(CodePinMismatch, "PIN and confirmation do not match", http.StatusBadRequest)
}

// ---- Resolution errors (RES): per-field, block review ----

func ErrBankNotFound() *AppError {
	return New(CodeBankNotFound, "No bank found for this routing number", http.StatusNotFound)
}

func ErrBankLookupUnavailable(err error) *AppError {
	return Wrap(CodeBankLookupUnavailable, "Bank directory is unreachable, try again", http.StatusBadGateway, err)
}

func ErrAccountNotVerified() *AppError {
	return New(CodeAccountNotVerified, "Destination account could not be verified", http.StatusNotFound)
}

func ErrVerificationStale() *AppError {
	return New(CodeVerificationStale, "Destination details changed, verification pending", http.StatusConflict)
}

// ---- Limit errors (LIM) ----

func ErrInsufficientBalance(available string) *AppError {
	return New(CodeInsufficientBalance, fmt.Sprintf("Amount plus fee exceeds available balance of %s", available), http.StatusUnprocessableEntity)
}

func ErrDailyLimitExceeded(remaining string) *AppError {
	return New(CodeDailyLimitExceeded, fmt.Sprintf("Amount exceeds remaining daily limit of %s", remaining), http.StatusUnprocessableEntity)
}

// ---- Authorization errors (AUTH) ----

func ErrPinSetupRequired() *AppError {
	return New(CodePinSetupRequired, "A transaction PIN must be set before transferring", http.StatusForbidden)
}

func ErrPinIncorrect() *AppError {
	return New(CodePinIncorrect, "Incorrect PIN", http.StatusUnauthorized)
}

func ErrPinLocked(message string) *AppError {
	if message == "" {
		message = "PIN is locked after too many attempts"
	}
	return New(CodePinLocked, message, http.StatusLocked)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired session token", http.StatusUnauthorized)
}

// ---- Workflow errors (WF): illegal transitions, reentrancy ----

func ErrIllegalTransition(from, to string) *AppError {
	return New(CodeIllegalTransition, fmt.Sprintf("Cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrSubmissionInFlight() *AppError {
	return New(CodeSubmissionInFlight, "A submission is already in progress", http.StatusConflict)
}

func ErrSessionNotFound() *AppError {
	return New(CodeSessionNotFound, "Workflow session not found or expired", http.StatusNotFound)
}

func ErrSessionNotReady() *AppError {
	return New(CodeSessionNotReady, "Accounts are still loading", http.StatusConflict)
}

func ErrValidationFailed() *AppError {
	return New(CodeValidationFailed, "Transfer details are incomplete or invalid", http.StatusUnprocessableEntity)
}

// ---- Network/transport errors (NET): retryable, no automatic retry ----

func ErrUpstreamUnavailable(err error) *AppError {
	return Wrap(CodeUpstreamUnavailable, "Bank service is unreachable, please try again", http.StatusBadGateway, err)
}

func ErrTransferRejected(message string) *AppError {
	if message == "" {
		message = "Transfer was rejected"
	}
	return New(CodeTransferRejected, message, http.StatusUnprocessableEntity)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}
