package dto

// UpdateFormRequest is the request body for partial form edits. Nil fields
// are left untouched.
type UpdateFormRequest struct {
	TransferType        *string `json:"transfer_type,omitempty" binding:"omitempty,oneof=internal external"`
	Amount              *string `json:"amount,omitempty"`
	FromAccountID       *string `json:"from_account_id,omitempty"`
	ToInternalAccountID *string `json:"to_internal_account_id,omitempty"`
	AccountHolderName   *string `json:"account_holder_name,omitempty" binding:"omitempty,max=100"`
	RoutingCode         *string `json:"routing_code,omitempty" binding:"omitempty,max=9"`
	AccountNumber       *string `json:"account_number,omitempty" binding:"omitempty,max=20"`
	AccountType         *string `json:"account_type,omitempty" binding:"omitempty,oneof=CHECKING SAVINGS"`
	Memo                *string `json:"memo,omitempty" binding:"omitempty,max=200"`
}

// ConfirmRequest carries the PIN digits for one submission attempt. The
// digits are forwarded upstream and never stored or logged.
type ConfirmRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// SetupPinRequest is the request body for registering a transaction PIN.
type SetupPinRequest struct {
	PIN        string `json:"pin" binding:"required"`
	ConfirmPin string `json:"confirm_pin" binding:"required"`
}
