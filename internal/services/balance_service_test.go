package services

import (
	"context"
	"testing"
	"time"

	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/rewards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_CreditInvalidatesCache(t *testing.T) {
	f := newFixture(t, rewards.DefaultPolicy())
	require.NoError(t, fakeUsers{f.ledger}.EnsureExists(context.Background(), "u1"))
	require.NoError(t, f.store.SetInt("balance:u1", 5, time.Hour))

	balance, err := f.balances.Credit(context.Background(), "u1", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), balance)

	_, err = f.store.GetInt("balance:u1")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	balance, err = f.balances.GetBalance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(30), balance)
}

func TestBalanceService_ReadAfterCreditIsFresh(t *testing.T) {
	f := newFixture(t, rewards.DefaultPolicy())
	require.NoError(t, fakeUsers{f.ledger}.EnsureExists(context.Background(), "u1"))

	_, err := f.balances.Credit(context.Background(), "u1", 10)
	require.NoError(t, err)

	balance, err := f.balances.GetBalance(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, int64(10), balance)

	_, err = f.balances.Credit(context.Background(), "u1", 7)
	require.NoError(t, err)

	balance, err = f.balances.GetBalance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(17), balance)
}

func TestBalanceService_GetBalanceReadsThrough(t *testing.T) {
	f := newFixture(t, rewards.DefaultPolicy())
	require.NoError(t, fakeUsers{f.ledger}.EnsureExists(context.Background(), "u1"))
	f.ledger.users["u1"].TokenBalance = 120

	balance, err := f.balances.GetBalance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(120), balance)

	cached, err := f.store.GetInt("balance:u1")
	require.NoError(t, err)
	assert.Equal(t, int64(120), cached)
}

func TestBalanceService_UnknownUser(t *testing.T) {
	f := newFixture(t, rewards.DefaultPolicy())

	_, err := f.balances.GetBalance(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
