package service

import (
	"context"
	"errors"
	"testing"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports/mocks"
	"transfer-workflow-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupCache(t *testing.T) (*LimitsCache, *mocks.MockAccountClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockAccountClient(ctrl)
	return NewLimitsCache(client, zerolog.Nop()), client
}

func testAccounts() []domain.Account {
	return []domain.Account{
		{ID: "a1", AccountNumber: "1000001", Balance: decimal.NewFromInt(500), AccountType: domain.AccountTypeChecking},
		{ID: "a2", AccountNumber: "1000002", Balance: decimal.NewFromInt(1200), AccountType: domain.AccountTypeSavings},
	}
}

func testLimits() *domain.TransferLimits {
	return &domain.TransferLimits{
		DailyLimit:       decimal.NewFromInt(2000),
		RemainingToday:   decimal.NewFromInt(2000),
		SpentToday:       decimal.Zero,
		AvailableBalance: decimal.NewFromInt(1700),
		Currency:         "USD",
	}
}

func TestLimitsCache_Refresh(t *testing.T) {
	cache, client := setupCache(t)
	client.EXPECT().ListAccounts(gomock.Any(), "bearer").Return(testAccounts(), nil)
	client.EXPECT().Profile(gomock.Any(), "bearer").Return(testLimits(), nil)

	require.False(t, cache.Loaded())
	require.NoError(t, cache.Refresh(context.Background(), "bearer"))

	accounts, limits, loaded := cache.Snapshot()
	assert.True(t, loaded)
	assert.Len(t, accounts, 2)
	assert.True(t, limits.DailyLimit.Equal(decimal.NewFromInt(2000)))
}

func TestLimitsCache_RefreshFailureKeepsPrevious(t *testing.T) {
	cache, client := setupCache(t)
	client.EXPECT().ListAccounts(gomock.Any(), "bearer").Return(testAccounts(), nil)
	client.EXPECT().Profile(gomock.Any(), "bearer").Return(testLimits(), nil)
	require.NoError(t, cache.Refresh(context.Background(), "bearer"))

	client.EXPECT().ListAccounts(gomock.Any(), "bearer").Return(nil, errors.New("boom"))
	err := cache.Refresh(context.Background(), "bearer")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUpstreamUnavailable, appErr.Code)

	accounts, _, loaded := cache.Snapshot()
	assert.True(t, loaded)
	assert.Len(t, accounts, 2)
}

func TestLimitsCache_Account(t *testing.T) {
	cache, client := setupCache(t)
	client.EXPECT().ListAccounts(gomock.Any(), "bearer").Return(testAccounts(), nil)
	client.EXPECT().Profile(gomock.Any(), "bearer").Return(testLimits(), nil)
	require.NoError(t, cache.Refresh(context.Background(), "bearer"))

	a, ok := cache.Account("a2")
	require.True(t, ok)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(1200)))

	_, ok = cache.Account("missing")
	assert.False(t, ok)
}

func TestLimitsCache_ApplyTransfer_Internal(t *testing.T) {
	cache, client := setupCache(t)
	client.EXPECT().ListAccounts(gomock.Any(), "bearer").Return(testAccounts(), nil)
	client.EXPECT().Profile(gomock.Any(), "bearer").Return(testLimits(), nil)
	require.NoError(t, cache.Refresh(context.Background(), "bearer"))

	// $300 internal transfer, no fee: source drops, destination gains.
	cache.ApplyTransfer("a1", "a2", decimal.NewFromInt(300), decimal.NewFromInt(300))

	from, _ := cache.Account("a1")
	to, _ := cache.Account("a2")
	assert.True(t, from.Balance.Equal(decimal.NewFromInt(200)), "got %s", from.Balance)
	assert.True(t, to.Balance.Equal(decimal.NewFromInt(1500)), "got %s", to.Balance)

	_, limits, _ := cache.Snapshot()
	assert.True(t, limits.SpentToday.Equal(decimal.NewFromInt(300)))
	assert.True(t, limits.RemainingToday.Equal(decimal.NewFromInt(1700)))
}

func TestLimitsCache_ApplyTransfer_ExternalWithFee(t *testing.T) {
	cache, client := setupCache(t)
	client.EXPECT().ListAccounts(gomock.Any(), "bearer").Return(testAccounts(), nil)
	client.EXPECT().Profile(gomock.Any(), "bearer").Return(testLimits(), nil)
	require.NoError(t, cache.Refresh(context.Background(), "bearer"))

	// $200 external at 1.5%: source drops by 203, limit spend is the amount.
	cache.ApplyTransfer("a1", "", decimal.NewFromInt(200), decimal.NewFromInt(203))

	from, _ := cache.Account("a1")
	assert.True(t, from.Balance.Equal(decimal.NewFromInt(297)), "got %s", from.Balance)

	_, limits, _ := cache.Snapshot()
	assert.True(t, limits.SpentToday.Equal(decimal.NewFromInt(200)))
	assert.True(t, limits.AvailableBalance.Equal(decimal.NewFromInt(1497)))
}

func TestLimitsCache_RefreshSupersedesOptimisticState(t *testing.T) {
	cache, client := setupCache(t)
	client.EXPECT().ListAccounts(gomock.Any(), "bearer").
		DoAndReturn(func(context.Context, string) ([]domain.Account, error) {
			return testAccounts(), nil
		}).Times(2)
	client.EXPECT().Profile(gomock.Any(), "bearer").
		DoAndReturn(func(context.Context, string) (*domain.TransferLimits, error) {
			return testLimits(), nil
		}).Times(2)

	require.NoError(t, cache.Refresh(context.Background(), "bearer"))
	cache.ApplyTransfer("a1", "", decimal.NewFromInt(100), decimal.NewFromInt(100))

	// A wholesale refresh replaces the optimistic numbers entirely.
	require.NoError(t, cache.Refresh(context.Background(), "bearer"))
	from, _ := cache.Account("a1")
	assert.True(t, from.Balance.Equal(decimal.NewFromInt(500)))
}
