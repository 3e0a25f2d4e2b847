package bank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, 0, zerolog.Nop())
}

func assertClientError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestClient_ListAccounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":             "a1",
				"account_number": "1000001",
				"balance":        "500.00",
				"account_type":   "CHECKING",
				"routing_number": "999000111",
				"pin_required":   true,
			},
		})
	})

	accounts, err := client.ListAccounts(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "a1", accounts[0].ID)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, accounts[0].PINRequired)
}

func TestClient_Profile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"daily_limit":       "2000.00",
			"remaining_today":   "1500.00",
			"spent_today":       "500.00",
			"available_balance": "1700.00",
			"currency":          "USD",
		})
	})

	limits, err := client.Profile(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.True(t, limits.RemainingToday.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "USD", limits.Currency)
}

func TestClient_Lookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/routing/lookup", r.URL.Path)
		assert.Equal(t, "123456789", r.URL.Query().Get("routingNumber"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"valid":         true,
			"routingNumber": "123456789",
			"bankName":      "First National",
			"internal":      false,
			"source":        "directory",
		})
	})

	info, err := client.Lookup(context.Background(), "tok-1", "123456789")
	require.NoError(t, err)
	assert.True(t, info.Valid)
	assert.Equal(t, "First National", info.BankName)
}

func TestClient_LookupUnknownRouting(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	info, err := client.Lookup(context.Background(), "tok-1", "123456789")
	require.NoError(t, err)
	assert.False(t, info.Valid)
}

func TestClient_Verify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/verify", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "555000111", body["account_number"])
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"full_name":      "Jordan Smith",
			"account_number": "555000111",
			"bank_name":      "First National",
			"routing_number": "123456789",
			"currency":       "USD",
		})
	})

	account, err := client.Verify(context.Background(), "tok-1", "123456789", "555000111")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "Jordan Smith", account.FullName)
}

func TestClient_VerifyNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	account, err := client.Verify(context.Background(), "tok-1", "123456789", "555000111")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestClient_Submit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfers", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "300", body["amount"])
		assert.Equal(t, "1234", body["pin"])
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"transfer_id":      "tx-1",
			"step_up_required": false,
		})
	})

	resp, err := client.Submit(context.Background(), "tok-1", ports.TransferRequest{
		FromAccountID:   "a1",
		ToAccountNumber: "1000002",
		Amount:          decimal.NewFromInt(300),
		PIN:             "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", resp.TransferID)
}

func TestClient_SubmitPinLocked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusLocked)
		json.NewEncoder(w).Encode(map[string]string{"message": "PIN locked for 15 minutes"})
	})

	_, err := client.Submit(context.Background(), "tok-1", ports.TransferRequest{PIN: "1234"})
	assertClientError(t, err, apperror.CodePinLocked)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PIN locked for 15 minutes", appErr.Message)
	assert.Equal(t, http.StatusLocked, appErr.HTTPStatus)
}

func TestClient_SubmitPinIncorrect(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := client.Submit(context.Background(), "tok-1", ports.TransferRequest{PIN: "9999"})
		assertClientError(t, err, apperror.CodePinIncorrect)
	}
}

func TestClient_SubmitRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "Account frozen"})
	})

	_, err := client.Submit(context.Background(), "tok-1", ports.TransferRequest{PIN: "1234"})
	assertClientError(t, err, apperror.CodeTransferRejected)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Account frozen", appErr.Message)
}

func TestClient_SubmitUpstreamDown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := client.Submit(context.Background(), "tok-1", ports.TransferRequest{PIN: "1234"})
	assertClientError(t, err, apperror.CodeUpstreamUnavailable)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, 0, zerolog.Nop())
	_, err := client.ListAccounts(context.Background(), "tok-1")
	assertClientError(t, err, apperror.CodeUpstreamUnavailable)
}

func TestClient_SetPIN(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/a1/set-pin", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "1234", body["pin"])
		_, hasCurrent := body["current_pin"]
		assert.False(t, hasCurrent)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SetPIN(context.Background(), "tok-1", "a1", "1234", ""))
}

func TestClient_ExpiredSessionToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := client.ListAccounts(context.Background(), "tok-1")
	assertClientError(t, err, apperror.CodeInvalidToken)
}
