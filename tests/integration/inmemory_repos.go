package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
)

// --- In-Memory Attempt Repo ---

type inMemoryAttemptRepo struct {
	mu       sync.Mutex
	attempts []*domain.TransferAttempt
}

func newInMemoryAttemptRepo() *inMemoryAttemptRepo {
	return &inMemoryAttemptRepo{}
}

var _ ports.AttemptRepository = (*inMemoryAttemptRepo)(nil)

func (r *inMemoryAttemptRepo) Create(ctx context.Context, attempt *domain.TransferAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *inMemoryAttemptRepo) All() []*domain.TransferAttempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.TransferAttempt, len(r.attempts))
	copy(out, r.attempts)
	return out
}

// --- Fake Banking Backend ---

// fakeBank simulates the upstream banking backend over HTTP: two own
// accounts, one known external routing number with one verifiable payee,
// and a PIN that locks after three consecutive wrong entries.
type fakeBank struct {
	mu          sync.Mutex
	pin         string
	wrongPins   int
	lookups     int
	verifies    int
	submissions int
	submitDelay chan struct{} // when non-nil, /transfers blocks until closed
	server      *httptest.Server
}

const (
	fakeRoutingNumber = "021000021"
	fakeBankName      = "First National"
	fakePayeeNumber   = "12345678"
)

func newFakeBank() *fakeBank {
	f := &fakeBank{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /accounts", f.handleAccounts)
	mux.HandleFunc("GET /me", f.handleProfile)
	mux.HandleFunc("GET /api/v1/routing/lookup", f.handleLookup)
	mux.HandleFunc("POST /accounts/verify", f.handleVerify)
	mux.HandleFunc("POST /transfers", f.handleSubmit)
	mux.HandleFunc("POST /accounts/", f.handleSetPIN)
	f.server = httptest.NewServer(mux)
	return f
}

func (f *fakeBank) close() { f.server.Close() }

func (f *fakeBank) url() string { return f.server.URL }

func (f *fakeBank) setPin(pin string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pin = pin
}

func (f *fakeBank) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups
}

// holdSubmissions makes /transfers block until the returned release func is
// called.
func (f *fakeBank) holdSubmissions() (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.submitDelay = ch
	f.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.submitDelay = nil
			f.mu.Unlock()
			close(ch)
		})
	}
}

func (f *fakeBank) submissionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submissions
}

func (f *fakeBank) handleAccounts(w http.ResponseWriter, r *http.Request) {
	// pin_required flags that transfers from the account demand a PIN. It
	// says nothing about whether the user has registered one.
	writeJSON(w, http.StatusOK, []map[string]any{
		{
			"id":             "acct-1",
			"account_number": "1000001",
			"balance":        "500.00",
			"account_type":   "CHECKING",
			"routing_number": "999999999",
			"pin_required":   true,
		},
		{
			"id":             "acct-2",
			"account_number": "1000002",
			"balance":        "1200.00",
			"account_type":   "SAVINGS",
			"routing_number": "999999999",
			"pin_required":   true,
		},
	})
}

func (f *fakeBank) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"daily_limit":       "2000.00",
		"remaining_today":   "2000.00",
		"spent_today":       "0.00",
		"available_balance": "1700.00",
		"currency":          "USD",
	})
}

func (f *fakeBank) handleLookup(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.lookups++
	f.mu.Unlock()

	if r.URL.Query().Get("routingNumber") != fakeRoutingNumber {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "unknown routing number"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":         true,
		"routingNumber": fakeRoutingNumber,
		"bankName":      fakeBankName,
		"internal":      false,
		"source":        "directory",
	})
}

func (f *fakeBank) handleVerify(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.verifies++
	f.mu.Unlock()

	var body struct {
		RoutingNumber string `json:"routing_number"`
		AccountNumber string `json:"account_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad body"})
		return
	}
	if body.RoutingNumber != fakeRoutingNumber || body.AccountNumber != fakePayeeNumber {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "account not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"full_name":      "Jordan Reyes",
		"email":          "jordan@example.com",
		"account_number": fakePayeeNumber,
		"bank_name":      fakeBankName,
		"currency":       "USD",
		"routing_number": fakeRoutingNumber,
	})
}

func (f *fakeBank) handleSubmit(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	delay := f.submitDelay
	f.mu.Unlock()
	if delay != nil {
		<-delay
	}

	var body struct {
		PIN    string `json:"pin"`
		Amount string `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pin == "" || body.PIN != f.pin {
		f.wrongPins++
		if f.wrongPins >= 3 {
			writeJSON(w, http.StatusLocked, map[string]any{"message": "PIN locked for 15 minutes"})
			return
		}
		writeJSON(w, http.StatusForbidden, map[string]any{"message": "incorrect PIN"})
		return
	}
	f.wrongPins = 0
	f.submissions++
	writeJSON(w, http.StatusOK, map[string]any{
		"transfer_id":      "tx-0001",
		"step_up_required": false,
	})
}

func (f *fakeBank) handleSetPIN(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/set-pin") {
		http.NotFound(w, r)
		return
	}
	var body struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad body"})
		return
	}
	f.mu.Lock()
	f.pin = body.PIN
	f.wrongPins = 0
	f.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
