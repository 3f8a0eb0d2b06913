package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grant_ledger/contract"
	"grant_ledger/sdk"
	"grant_ledger/store"
)

const creator = "creator"

// setupLedgerTest returns a ledger initialized with admin1 and admin2, created by creator.
func setupLedgerTest(t *testing.T) (*contract.Ledger, *store.Memory) {
	t.Helper()
	st := store.NewMemory("")
	l := contract.New(st, sdk.DefaultValidator())
	_, err := l.Initialize(sdk.NewEnv(creator), []string{"admin1", "admin2"})
	require.NoError(t, err)
	return l, st
}

func inj(n uint64) sdk.Coin { return sdk.NewCoin("inj", n) }

func amounts(ns ...uint64) []sdk.Amount {
	out := make([]sdk.Amount, len(ns))
	for i, n := range ns {
		out[i] = sdk.NewAmount(n)
	}
	return out
}

// vote runs a batch vote and requires it to succeed.
func vote(t *testing.T, l *contract.Ledger, voter string, coin sdk.Coin, ids []uint64, amts []sdk.Amount) *sdk.Response {
	t.Helper()
	resp, err := l.BatchVote(sdk.NewEnv(sdk.Address(voter), coin), ids, amts)
	require.NoError(t, err)
	return resp
}

func requireTotal(t *testing.T, b contract.Balances, denom string, want uint64) {
	t.Helper()
	require.Contains(t, b, denom)
	require.Equal(t, sdk.NewAmount(want).String(), b[denom].String())
}
