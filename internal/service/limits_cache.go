package service

import (
	"context"
	"sync"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LimitsCache is the session's replica of accounts and transfer limits. It
// refreshes wholesale from the ledger and accepts exactly one kind of local
// mutation: recording a confirmed transfer. Optimistic values are
// authoritative until the next Refresh replaces them.
type LimitsCache struct {
	client ports.AccountClient
	log    zerolog.Logger

	mu       sync.Mutex
	accounts []domain.Account
	limits   domain.TransferLimits
	loaded   bool
}

// NewLimitsCache creates an empty cache; call Refresh to load it.
func NewLimitsCache(client ports.AccountClient, log zerolog.Logger) *LimitsCache {
	return &LimitsCache{client: client, log: log}
}

// Refresh replaces the cached accounts and limits with the ledger's current
// answer. Partial results are discarded: either both calls succeed or the
// cache keeps its previous contents.
func (c *LimitsCache) Refresh(ctx context.Context, bearer string) error {
	accounts, err := c.client.ListAccounts(ctx, bearer)
	if err != nil {
		return apperror.ErrUpstreamUnavailable(err)
	}
	limits, err := c.client.Profile(ctx, bearer)
	if err != nil {
		return apperror.ErrUpstreamUnavailable(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = accounts
	if limits != nil {
		c.limits = *limits
	}
	c.loaded = true
	return nil
}

// Loaded reports whether the cache holds ledger data.
func (c *LimitsCache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Snapshot returns copies of the cached accounts and limits.
func (c *LimitsCache) Snapshot() ([]domain.Account, domain.TransferLimits, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	accounts := make([]domain.Account, len(c.accounts))
	copy(accounts, c.accounts)
	return accounts, c.limits, c.loaded
}

// Account returns the cached account with the given ID.
func (c *LimitsCache) Account(id string) (domain.Account, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

// ApplyTransfer records a confirmed transfer: the source balance drops by
// amount plus fee, an internal destination gains the amount, and today's
// spend grows by the amount. This is the only local mutation the cache
// accepts.
func (c *LimitsCache) ApplyTransfer(fromAccountID, toInternalAccountID string, amount, total decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.accounts {
		switch c.accounts[i].ID {
		case fromAccountID:
			c.accounts[i].Balance = c.accounts[i].Balance.Sub(total)
		case toInternalAccountID:
			if toInternalAccountID != "" {
				c.accounts[i].Balance = c.accounts[i].Balance.Add(amount)
			}
		}
	}
	c.limits.ApplySpend(amount)
	c.limits.AvailableBalance = c.limits.AvailableBalance.Sub(total)
	if c.limits.AvailableBalance.IsNegative() {
		c.limits.AvailableBalance = decimal.Zero
	}
}
