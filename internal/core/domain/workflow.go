package domain

// WorkflowState is the single enumerated state of a transfer workflow.
// Illegal transitions are rejected rather than silently tolerated, so the
// flags-gone-inconsistent failure mode of multi-boolean flows cannot occur.
type WorkflowState string

const (
	StateEditing     WorkflowState = "EDITING"
	StateReview      WorkflowState = "REVIEW"
	StateAuthorizing WorkflowState = "AUTHORIZING"
	StateSubmitting  WorkflowState = "SUBMITTING"
	StateSucceeded   WorkflowState = "SUCCEEDED"
	StateFailed      WorkflowState = "FAILED"
)

// workflowTransitions lists every legal state transition.
var workflowTransitions = map[WorkflowState][]WorkflowState{
	StateEditing:     {StateReview},
	StateReview:      {StateEditing, StateAuthorizing},
	StateAuthorizing: {StateReview, StateSubmitting, StateFailed},
	StateSubmitting:  {StateSucceeded, StateFailed},
	// FAILED keeps the review context: the user may retry authorization or
	// fall back to editing without re-entering the form.
	StateFailed: {StateAuthorizing, StateEditing},
}

// CanTransition reports whether moving from one workflow state to another
// is legal.
func CanTransition(from, to WorkflowState) bool {
	for _, next := range workflowTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the workflow has reached its final state.
// FAILED is not terminal: retry is allowed.
func (s WorkflowState) IsTerminal() bool {
	return s == StateSucceeded
}

// PinState is the state of the authorization gate.
type PinState string

const (
	PinUnset         PinState = "NO_PIN_SET"
	PinSetupPrompted PinState = "PIN_SETUP_PROMPTED"
	PinSet           PinState = "PIN_SET"
	PinEntryRequired PinState = "PIN_ENTRY_REQUIRED"
	PinAuthorized    PinState = "AUTHORIZED"
	PinDenied        PinState = "DENIED"
)

var pinTransitions = map[PinState][]PinState{
	PinUnset:         {PinSetupPrompted},
	PinSetupPrompted: {PinSet, PinUnset},
	PinSet:           {PinEntryRequired},
	PinEntryRequired: {PinAuthorized, PinDenied, PinSet},
	// AUTHORIZED and DENIED are per-attempt outcomes; the gate re-arms.
	PinAuthorized: {PinSet, PinEntryRequired},
	PinDenied:     {PinEntryRequired, PinSet},
}

// CanTransitionPin reports whether a PIN gate transition is legal.
func CanTransitionPin(from, to PinState) bool {
	for _, next := range pinTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
