package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/internal/core/ports/mocks"
	"transfer-workflow-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDebounce = 10 * time.Millisecond

func setupResolver(t *testing.T) (*RoutingResolver, *mocks.MockRoutingDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockRoutingDirectory(ctrl)
	return NewRoutingResolver(dir, testDebounce, zerolog.Nop()), dir
}

func waitResolved(t *testing.T, r *RoutingResolver) RoutingState {
	t.Helper()
	require.Eventually(t, func() bool {
		return !r.State().Pending
	}, time.Second, time.Millisecond)
	return r.State()
}

func TestRoutingResolver_ResolvesAfterQuietPeriod(t *testing.T) {
	r, dir := setupResolver(t)
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		Return(&ports.RoutingInfo{Valid: true, BankName: "First National"}, nil)

	r.Observe(context.Background(), "token", "123456789")
	require.True(t, r.State().Pending)

	state := waitResolved(t, r)
	assert.Equal(t, "First National", state.BankName)
	assert.Nil(t, state.Err)
}

func TestRoutingResolver_InvalidFormatFailsLocally(t *testing.T) {
	r, _ := setupResolver(t)

	for _, code := range []string{"12345", "12345678a", "000000000"} {
		r.Observe(context.Background(), "token", code)
		state := r.State()
		assert.False(t, state.Pending, "code %q must not arm the timer", code)
		require.NotNil(t, state.Err, "code %q", code)
		assert.Equal(t, apperror.CodeInvalidRoutingFormat, state.Err.Code)
		assert.Equal(t, "routingCode", state.Err.Field)
	}
}

func TestRoutingResolver_EmptyCodeClearsState(t *testing.T) {
	r, dir := setupResolver(t)
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		Return(&ports.RoutingInfo{Valid: true, BankName: "First National"}, nil)

	r.Observe(context.Background(), "token", "123456789")
	waitResolved(t, r)

	r.Observe(context.Background(), "token", "")
	state := r.State()
	assert.Empty(t, state.BankName)
	assert.Nil(t, state.Err)
	assert.False(t, state.Pending)
}

func TestRoutingResolver_RapidEditsSingleLookup(t *testing.T) {
	r, dir := setupResolver(t)
	// Only the final code survives the quiet period.
	dir.EXPECT().Lookup(gomock.Any(), "token", "987654321").
		Return(&ports.RoutingInfo{Valid: true, BankName: "Last Bank Standing"}, nil)

	ctx := context.Background()
	r.Observe(ctx, "token", "123456789")
	r.Observe(ctx, "token", "111111111")
	r.Observe(ctx, "token", "987654321")

	state := waitResolved(t, r)
	assert.Equal(t, "Last Bank Standing", state.BankName)
}

func TestRoutingResolver_StaleResponseDiscarded(t *testing.T) {
	r, dir := setupResolver(t)

	release := make(chan struct{})
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		DoAndReturn(func(context.Context, string, string) (*ports.RoutingInfo, error) {
			<-release
			return &ports.RoutingInfo{Valid: true, BankName: "Stale Bank"}, nil
		})
	dir.EXPECT().Lookup(gomock.Any(), "token", "987654321").
		Return(&ports.RoutingInfo{Valid: true, BankName: "Fresh Bank"}, nil)

	ctx := context.Background()
	r.Observe(ctx, "token", "123456789")
	time.Sleep(3 * testDebounce) // first lookup is now in flight, blocked
	r.Observe(ctx, "token", "987654321")
	close(release)

	require.Eventually(t, func() bool {
		return r.State().BankName == "Fresh Bank"
	}, time.Second, time.Millisecond)

	// The stale response must never overwrite the fresh one.
	time.Sleep(3 * testDebounce)
	assert.Equal(t, "Fresh Bank", r.State().BankName)
}

func TestRoutingResolver_BankNotFound(t *testing.T) {
	r, dir := setupResolver(t)
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		Return(&ports.RoutingInfo{Valid: false}, nil)

	r.Observe(context.Background(), "token", "123456789")
	state := waitResolved(t, r)
	require.NotNil(t, state.Err)
	assert.Equal(t, apperror.CodeBankNotFound, state.Err.Code)
	assert.Empty(t, state.BankName)
}

func TestRoutingResolver_LookupFailureIsRecoverable(t *testing.T) {
	r, dir := setupResolver(t)
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		Return(nil, errors.New("dial tcp: connection refused"))
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		Return(&ports.RoutingInfo{Valid: true, BankName: "First National"}, nil)

	ctx := context.Background()
	r.Observe(ctx, "token", "123456789")
	state := waitResolved(t, r)
	require.NotNil(t, state.Err)
	assert.Equal(t, apperror.CodeBankLookupUnavailable, state.Err.Code)

	// A fresh edit retries and clears the failure.
	r.Observe(ctx, "token", "123456789")
	state = waitResolved(t, r)
	assert.Nil(t, state.Err)
	assert.Equal(t, "First National", state.BankName)
}

func TestRoutingResolver_CancelledContextSuppressesResult(t *testing.T) {
	r, dir := setupResolver(t)
	ctx, cancel := context.WithCancel(context.Background())

	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		DoAndReturn(func(context.Context, string, string) (*ports.RoutingInfo, error) {
			cancel()
			return &ports.RoutingInfo{Valid: true, BankName: "First National"}, nil
		})

	r.Observe(ctx, "token", "123456789")
	state := waitResolved(t, r)
	assert.Empty(t, state.BankName)
	assert.Nil(t, state.Err)
}

func TestRoutingResolver_OnResolvedHook(t *testing.T) {
	r, dir := setupResolver(t)
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		Return(&ports.RoutingInfo{Valid: true, BankName: "First National"}, nil)

	resolved := make(chan string, 1)
	r.OnResolved(func(bankName string) { resolved <- bankName })

	r.Observe(context.Background(), "token", "123456789")
	select {
	case name := <-resolved:
		assert.Equal(t, "First National", name)
	case <-time.After(time.Second):
		t.Fatal("hook never fired")
	}
}

func TestRoutingResolver_Reset(t *testing.T) {
	r, dir := setupResolver(t)
	dir.EXPECT().Lookup(gomock.Any(), "token", "123456789").
		Return(&ports.RoutingInfo{Valid: true, BankName: "First National"}, nil).
		AnyTimes()

	r.Observe(context.Background(), "token", "123456789")
	r.Reset()

	state := r.State()
	assert.Empty(t, state.Code)
	assert.False(t, state.Pending)

	// Nothing resolves after a reset.
	time.Sleep(3 * testDebounce)
	assert.Empty(t, r.State().BankName)
}
