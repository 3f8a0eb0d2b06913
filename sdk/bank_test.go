package sdk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grant_ledger/sdk"
)

func TestMemoryBankSend(t *testing.T) {
	bank := sdk.NewMemoryBank()
	ctx := context.Background()

	require.NoError(t, bank.Send(ctx, sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{sdk.NewCoin("inj", 100)}}))
	require.NoError(t, bank.Send(ctx, sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{sdk.NewCoin("inj", 50)}}))
	assert.Equal(t, "150", bank.Balance("treasury", "inj").String())
	assert.True(t, bank.Balance("treasury", "atom").IsZero())
	assert.Len(t, bank.Sends(), 2)

	err := bank.Send(ctx, sdk.BankSend{Amount: []sdk.Coin{sdk.NewCoin("inj", 1)}})
	require.ErrorIs(t, err, sdk.ErrEmptyRecipient)
}

func TestMemoryBankOverflowIsAtomic(t *testing.T) {
	bank := sdk.NewMemoryBank()
	ctx := context.Background()
	require.NoError(t, bank.Send(ctx, sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{{Denom: "inj", Amount: sdk.MaxAmount()}}}))

	err := bank.Send(ctx, sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{sdk.NewCoin("atom", 5), sdk.NewCoin("inj", 1)}})
	require.ErrorIs(t, err, sdk.ErrOverflow)
	assert.True(t, bank.Balance("treasury", "atom").IsZero())
	assert.Len(t, bank.Sends(), 1)
}

func TestMemoryBankHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sdk.NewMemoryBank().Send(ctx, sdk.BankSend{ToAddress: "treasury"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryBankCanSendDoesNotCredit(t *testing.T) {
	bank := sdk.NewMemoryBank()
	require.NoError(t, bank.CanSend(sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{sdk.NewCoin("inj", 7)}}))
	assert.True(t, bank.Balance("treasury", "inj").IsZero())
	assert.Empty(t, bank.Sends())

	require.ErrorIs(t, bank.CanSend(sdk.BankSend{Amount: []sdk.Coin{sdk.NewCoin("inj", 1)}}), sdk.ErrEmptyRecipient)

	require.NoError(t, bank.Send(context.Background(), sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{{Denom: "inj", Amount: sdk.MaxAmount()}}}))
	require.ErrorIs(t, bank.CanSend(sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{sdk.NewCoin("inj", 1)}}), sdk.ErrOverflow)
	require.NoError(t, bank.CanSend(sdk.BankSend{ToAddress: "treasury", Amount: []sdk.Coin{sdk.NewCoin("atom", 1)}}))
}
