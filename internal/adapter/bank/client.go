// Package bank is the outbound HTTP adapter for the upstream banking
// backend. One Client implements every outbound port; the caller's bearer
// token is forwarded per request and never stored.
package bank

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Client talks to the banking backend over REST.
type Client struct {
	// read retries idempotent lookups; write never retries, a transfer
	// submission must reach the ledger at most once per confirm.
	read  *resty.Client
	write *resty.Client
	log   zerolog.Logger
}

var (
	_ ports.AccountClient    = (*Client)(nil)
	_ ports.RoutingDirectory = (*Client)(nil)
	_ ports.PayeeVerifier    = (*Client)(nil)
	_ ports.TransferClient   = (*Client)(nil)
)

// NewClient creates a banking backend client.
func NewClient(baseURL string, timeout time.Duration, retryCount int, log zerolog.Logger) *Client {
	read := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetHeader("Accept", "application/json")
	write := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{read: read, write: write, log: log}
}

type accountDTO struct {
	ID            string `json:"id"`
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
	AccountType   string `json:"account_type"`
	RoutingNumber string `json:"routing_number"`
	PINRequired   bool   `json:"pin_required"`
}

type profileDTO struct {
	DailyLimit       string `json:"daily_limit"`
	RemainingToday   string `json:"remaining_today"`
	SpentToday       string `json:"spent_today"`
	AvailableBalance string `json:"available_balance"`
	Currency         string `json:"currency"`
}

type verifiedAccountDTO struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	Currency      string `json:"currency"`
	RoutingNumber string `json:"routing_number"`
}

type transferResponseDTO struct {
	TransferID     string `json:"transfer_id"`
	StepUpRequired bool   `json:"step_up_required"`
}

type errorDTO struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorDTO) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// ListAccounts returns the user's accounts.
func (c *Client) ListAccounts(ctx context.Context, bearer string) ([]domain.Account, error) {
	var out []accountDTO
	resp, err := c.read.R().
		SetContext(ctx).
		SetAuthToken(bearer).
		SetResult(&out).
		Get("/accounts")
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable(err)
	}
	if resp.IsError() {
		return nil, c.statusError(resp)
	}

	accounts := make([]domain.Account, 0, len(out))
	for _, dto := range out {
		balance, err := decimal.NewFromString(dto.Balance)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("account %s: bad balance %q", dto.ID, dto.Balance))
		}
		accounts = append(accounts, domain.Account{
			ID:            dto.ID,
			AccountNumber: dto.AccountNumber,
			Balance:       balance,
			AccountType:   domain.AccountType(dto.AccountType),
			RoutingNumber: dto.RoutingNumber,
			PINRequired:   dto.PINRequired,
		})
	}
	return accounts, nil
}

// Profile returns the user's transfer limits.
func (c *Client) Profile(ctx context.Context, bearer string) (*domain.TransferLimits, error) {
	var out profileDTO
	resp, err := c.read.R().
		SetContext(ctx).
		SetAuthToken(bearer).
		SetResult(&out).
		Get("/me")
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable(err)
	}
	if resp.IsError() {
		return nil, c.statusError(resp)
	}

	limits := &domain.TransferLimits{Currency: out.Currency}
	for _, f := range []struct {
		text string
		dst  *decimal.Decimal
	}{
		{out.DailyLimit, &limits.DailyLimit},
		{out.RemainingToday, &limits.RemainingToday},
		{out.SpentToday, &limits.SpentToday},
		{out.AvailableBalance, &limits.AvailableBalance},
	} {
		d, err := decimal.NewFromString(f.text)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("bad limit value %q", f.text))
		}
		*f.dst = d
	}
	return limits, nil
}

// Lookup resolves a routing number against the bank directory. An unknown
// routing number is a Valid=false answer, not an error.
func (c *Client) Lookup(ctx context.Context, bearer, routingNumber string) (*ports.RoutingInfo, error) {
	var out ports.RoutingInfo
	resp, err := c.read.R().
		SetContext(ctx).
		SetAuthToken(bearer).
		SetQueryParam("routingNumber", routingNumber).
		SetResult(&out).
		Get("/api/v1/routing/lookup")
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable(err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return &ports.RoutingInfo{Valid: false, RoutingNumber: routingNumber}, nil
	}
	if resp.IsError() {
		return nil, c.statusError(resp)
	}
	return &out, nil
}

// Verify resolves a destination account at an identified bank. An unknown
// account comes back as (nil, nil).
func (c *Client) Verify(ctx context.Context, bearer, routingNumber, accountNumber string) (*domain.VerifiedAccount, error) {
	var out verifiedAccountDTO
	resp, err := c.read.R().
		SetContext(ctx).
		SetAuthToken(bearer).
		SetBody(map[string]string{
			"routing_number": routingNumber,
			"account_number": accountNumber,
		}).
		SetResult(&out).
		Post("/accounts/verify")
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable(err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, c.statusError(resp)
	}
	return &domain.VerifiedAccount{
		FullName:      out.FullName,
		Email:         out.Email,
		AccountNumber: out.AccountNumber,
		BankName:      out.BankName,
		Currency:      out.Currency,
		RoutingNumber: out.RoutingNumber,
	}, nil
}

// Submit sends one transfer to the ledger. Never retried.
func (c *Client) Submit(ctx context.Context, bearer string, req ports.TransferRequest) (*ports.TransferResponse, error) {
	var out transferResponseDTO
	var apiErr errorDTO
	resp, err := c.write.R().
		SetContext(ctx).
		SetAuthToken(bearer).
		SetBody(map[string]any{
			"from_account_id":   req.FromAccountID,
			"to_account_number": req.ToAccountNumber,
			"to_routing_number": req.ToRoutingNumber,
			"amount":            req.Amount.String(),
			"description":       req.Description,
			"pin":               req.PIN,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/transfers")
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable(err)
	}
	if resp.IsError() {
		return nil, c.submitError(resp, apiErr)
	}
	return &ports.TransferResponse{
		TransferID:     out.TransferID,
		StepUpRequired: out.StepUpRequired,
	}, nil
}

// SetPIN registers or changes the transaction PIN on an account.
func (c *Client) SetPIN(ctx context.Context, bearer, accountID, pin, currentPin string) error {
	body := map[string]string{"pin": pin}
	if currentPin != "" {
		body["current_pin"] = currentPin
	}
	var apiErr errorDTO
	resp, err := c.write.R().
		SetContext(ctx).
		SetAuthToken(bearer).
		SetBody(body).
		SetError(&apiErr).
		Post(fmt.Sprintf("/accounts/%s/set-pin", accountID))
	if err != nil {
		return apperror.ErrUpstreamUnavailable(err)
	}
	if resp.IsError() {
		return c.submitError(resp, apiErr)
	}
	return nil
}

// submitError maps PIN-bearing write failures. 423 means the PIN is locked
// upstream; 401/403 mean the digits were wrong.
func (c *Client) submitError(resp *resty.Response, apiErr errorDTO) error {
	switch resp.StatusCode() {
	case http.StatusLocked:
		return apperror.ErrPinLocked(apiErr.text())
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperror.ErrPinIncorrect()
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return apperror.ErrUpstreamUnavailable(fmt.Errorf("upstream status %d", resp.StatusCode()))
		}
		return apperror.ErrTransferRejected(apiErr.text())
	}
}

func (c *Client) statusError(resp *resty.Response) error {
	c.log.Warn().
		Int("status", resp.StatusCode()).
		Str("url", resp.Request.URL).
		Msg("bank backend returned error status")
	if resp.StatusCode() == http.StatusUnauthorized {
		return apperror.ErrInvalidToken()
	}
	return apperror.ErrUpstreamUnavailable(fmt.Errorf("upstream status %d", resp.StatusCode()))
}
