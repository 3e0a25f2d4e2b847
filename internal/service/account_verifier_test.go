package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports/mocks"
	"transfer-workflow-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupVerifier(t *testing.T) (*AccountVerifier, *mocks.MockPayeeVerifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pv := mocks.NewMockPayeeVerifier(ctrl)
	return NewAccountVerifier(pv, testDebounce, 8, zerolog.Nop()), pv
}

func waitVerified(t *testing.T, v *AccountVerifier) VerifyState {
	t.Helper()
	require.Eventually(t, func() bool {
		return !v.State().Pending
	}, time.Second, time.Millisecond)
	return v.State()
}

func TestAccountVerifier_VerifiesAfterQuietPeriod(t *testing.T) {
	v, pv := setupVerifier(t)
	pv.EXPECT().Verify(gomock.Any(), "token", "123456789", "555000111").
		Return(&domain.VerifiedAccount{AccountNumber: "555000111", FullName: "J. Doe", BankName: "First National"}, nil)

	v.Observe(context.Background(), "token", "123456789", "555000111", true)
	require.True(t, v.State().Pending)

	state := waitVerified(t, v)
	require.NotNil(t, state.Verified)
	assert.Equal(t, "J. Doe", state.Verified.FullName)
	assert.Nil(t, state.Err)
}

func TestAccountVerifier_IdleUntilBankResolved(t *testing.T) {
	v, _ := setupVerifier(t)

	v.Observe(context.Background(), "token", "123456789", "555000111", false)
	state := v.State()
	assert.False(t, state.Pending)
	assert.Nil(t, state.Verified)
	assert.Nil(t, state.Err)
}

func TestAccountVerifier_IdleBelowMinLength(t *testing.T) {
	v, _ := setupVerifier(t)

	v.Observe(context.Background(), "token", "123456789", "5550001", true)
	assert.False(t, v.State().Pending)
}

func TestAccountVerifier_EditInvalidatesResult(t *testing.T) {
	v, pv := setupVerifier(t)
	pv.EXPECT().Verify(gomock.Any(), "token", "123456789", "555000111").
		Return(&domain.VerifiedAccount{AccountNumber: "555000111", FullName: "J. Doe"}, nil)

	ctx := context.Background()
	v.Observe(ctx, "token", "123456789", "555000111", true)
	state := waitVerified(t, v)
	require.NotNil(t, state.Verified)

	// A single keystroke drops the green check before any new lookup runs.
	v.Observe(ctx, "token", "123456789", "5550001", true)
	assert.Nil(t, v.State().Verified)
	assert.False(t, v.State().Pending)
}

func TestAccountVerifier_NotFound(t *testing.T) {
	v, pv := setupVerifier(t)
	pv.EXPECT().Verify(gomock.Any(), "token", "123456789", "555000111").
		Return(nil, nil)

	v.Observe(context.Background(), "token", "123456789", "555000111", true)
	state := waitVerified(t, v)
	require.NotNil(t, state.Err)
	assert.Equal(t, apperror.CodeAccountNotVerified, state.Err.Code)
	assert.Equal(t, "accountNumber", state.Err.Field)
}

func TestAccountVerifier_TransportFailure(t *testing.T) {
	v, pv := setupVerifier(t)
	pv.EXPECT().Verify(gomock.Any(), "token", "123456789", "555000111").
		Return(nil, errors.New("dial tcp: connection refused"))

	v.Observe(context.Background(), "token", "123456789", "555000111", true)
	state := waitVerified(t, v)
	require.NotNil(t, state.Err)
	assert.Equal(t, apperror.CodeUpstreamUnavailable, state.Err.Code)
}

func TestAccountVerifier_AppErrorPassesThrough(t *testing.T) {
	v, pv := setupVerifier(t)
	pv.EXPECT().Verify(gomock.Any(), "token", "123456789", "555000111").
		Return(nil, apperror.ErrAccountNotVerified())

	v.Observe(context.Background(), "token", "123456789", "555000111", true)
	state := waitVerified(t, v)
	require.NotNil(t, state.Err)
	assert.Equal(t, apperror.CodeAccountNotVerified, state.Err.Code)
	assert.Equal(t, "accountNumber", state.Err.Field)
}

func TestAccountVerifier_StaleResponseDiscarded(t *testing.T) {
	v, pv := setupVerifier(t)

	release := make(chan struct{})
	pv.EXPECT().Verify(gomock.Any(), "token", "123456789", "555000111").
		DoAndReturn(func(context.Context, string, string, string) (*domain.VerifiedAccount, error) {
			<-release
			return &domain.VerifiedAccount{AccountNumber: "555000111", FullName: "Stale"}, nil
		})
	pv.EXPECT().Verify(gomock.Any(), "token", "123456789", "555000222").
		Return(&domain.VerifiedAccount{AccountNumber: "555000222", FullName: "Fresh"}, nil)

	ctx := context.Background()
	v.Observe(ctx, "token", "123456789", "555000111", true)
	time.Sleep(3 * testDebounce)
	v.Observe(ctx, "token", "123456789", "555000222", true)
	close(release)

	require.Eventually(t, func() bool {
		s := v.State()
		return s.Verified != nil && s.Verified.FullName == "Fresh"
	}, time.Second, time.Millisecond)

	time.Sleep(3 * testDebounce)
	assert.Equal(t, "Fresh", v.State().Verified.FullName)
}

func TestAccountVerifier_Reset(t *testing.T) {
	v, pv := setupVerifier(t)
	pv.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	v.Observe(context.Background(), "token", "123456789", "555000111", true)
	v.Reset()

	state := v.State()
	assert.Empty(t, state.AccountNumber)
	assert.False(t, state.Pending)
	time.Sleep(3 * testDebounce)
	assert.Nil(t, v.State().Verified)
}
