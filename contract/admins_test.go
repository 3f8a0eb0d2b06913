package contract_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grant_ledger/contract"
	"grant_ledger/sdk"
	"grant_ledger/store"
)

func TestInitialize(t *testing.T) {
	l, _ := setupLedgerTest(t)

	admins, err := l.AdminList()
	require.NoError(t, err)
	assert.Equal(t, []sdk.Address{"admin1", "admin2"}, admins)

	round, err := l.CurrentRoundID()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), round)

	beneficiary, err := l.Beneficiary()
	require.NoError(t, err)
	assert.Equal(t, sdk.Address(creator), beneficiary)
}

func TestInitializeSortsAndCollapsesAdmins(t *testing.T) {
	l := contract.New(store.NewMemory(""), nil)
	_, err := l.Initialize(sdk.NewEnv(creator), []string{"zeta", "alpha", "zeta"})
	require.NoError(t, err)

	admins, err := l.AdminList()
	require.NoError(t, err)
	assert.Equal(t, []sdk.Address{"alpha", "zeta"}, admins)
}

func TestInitializeTwiceFails(t *testing.T) {
	l, _ := setupLedgerTest(t)
	_, err := l.Initialize(sdk.NewEnv("intruder"), []string{"intruder"})
	require.ErrorIs(t, err, contract.ErrAlreadyInitialized)

	admins, err := l.AdminList()
	require.NoError(t, err)
	assert.NotContains(t, admins, sdk.Address("intruder"))
}

func TestInitializeRejectsEmptyAdminList(t *testing.T) {
	l := contract.New(store.NewMemory(""), nil)
	_, err := l.Initialize(sdk.NewEnv(creator), nil)
	require.ErrorIs(t, err, contract.ErrNoAdmins)
}

func TestInitializeInvalidAddressIsAtomic(t *testing.T) {
	st := store.NewMemory("")
	l := contract.New(st, nil)
	_, err := l.Initialize(sdk.NewEnv(creator), []string{"admin1", "Not An Address"})
	require.ErrorIs(t, err, contract.ErrInvalidAddress)

	assert.Equal(t, 0, st.Len())
	_, err = l.CurrentRoundID()
	require.ErrorIs(t, err, contract.ErrNotFound)
	admins, err := l.AdminList()
	require.NoError(t, err)
	assert.Empty(t, admins)
}

func TestAddMember(t *testing.T) {
	l, _ := setupLedgerTest(t)

	resp, err := l.AddMember(sdk.NewEnv("admin1"), "admin3")
	require.NoError(t, err)
	assert.Equal(t, contract.ActionAddMember, resp.Action())
	require.Len(t, resp.Events, 1)
	assert.Equal(t, contract.EventAdminAdded, resp.Events[0].Type)
	addr, ok := resp.Events[0].Attr("addr")
	require.True(t, ok)
	assert.Equal(t, "admin3", addr)

	admins, err := l.AdminList()
	require.NoError(t, err)
	assert.Equal(t, []sdk.Address{"admin1", "admin2", "admin3"}, admins)

	// the new admin can act right away
	_, err = l.AddMember(sdk.NewEnv("admin3"), "admin4")
	require.NoError(t, err)
}

func TestAddMemberFailures(t *testing.T) {
	l, _ := setupLedgerTest(t)

	_, err := l.AddMember(sdk.NewEnv("user1"), "user2")
	require.ErrorIs(t, err, contract.ErrUnauthorized)
	var unauthorized *contract.UnauthorizedError
	require.True(t, errors.As(err, &unauthorized))
	assert.Equal(t, sdk.Address("user1"), unauthorized.Sender)

	_, err = l.AddMember(sdk.NewEnv("admin1"), "admin2")
	require.ErrorIs(t, err, contract.ErrDuplicateAdmin)
	var dup *contract.DuplicateAdminError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, sdk.Address("admin2"), dup.Address)

	_, err = l.AddMember(sdk.NewEnv("admin1"), "x")
	require.ErrorIs(t, err, contract.ErrInvalidAddress)

	admins, err := l.AdminList()
	require.NoError(t, err)
	assert.Equal(t, []sdk.Address{"admin1", "admin2"}, admins)
}

func TestSetBeneficiary(t *testing.T) {
	l, _ := setupLedgerTest(t)

	_, err := l.SetBeneficiary(sdk.NewEnv("user1"), "user1")
	require.ErrorIs(t, err, contract.ErrUnauthorized)

	_, err = l.SetBeneficiary(sdk.NewEnv("admin2"), "bad address")
	require.ErrorIs(t, err, contract.ErrInvalidAddress)

	resp, err := l.SetBeneficiary(sdk.NewEnv("admin2"), "treasury")
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "set_beneficiary|addr:treasury", resp.Events[0].String())

	// same value again is accepted
	_, err = l.SetBeneficiary(sdk.NewEnv("admin1"), "treasury")
	require.NoError(t, err)

	got, err := l.Beneficiary()
	require.NoError(t, err)
	assert.Equal(t, sdk.Address("treasury"), got)
}

func TestEndRound(t *testing.T) {
	l, _ := setupLedgerTest(t)

	_, err := l.EndRound(sdk.NewEnv("user1"))
	require.ErrorIs(t, err, contract.ErrUnauthorized)

	for closed := uint64(1); closed <= 3; closed++ {
		resp, err := l.EndRound(sdk.NewEnv("admin1"))
		require.NoError(t, err)
		assert.Equal(t, contract.ActionEndRound, resp.Action())
		require.Len(t, resp.Events, 1)
		roundID, ok := resp.Events[0].Attr("round_id")
		require.True(t, ok)
		assert.Equal(t, contract.UInt64ToString(closed), roundID)
	}

	round, err := l.CurrentRoundID()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), round)
}

func TestAdminOperationsBeforeInitialize(t *testing.T) {
	l := contract.New(store.NewMemory(""), nil)

	_, err := l.AddMember(sdk.NewEnv("admin1"), "admin2")
	require.ErrorIs(t, err, contract.ErrUnauthorized)
	_, err = l.EndRound(sdk.NewEnv("admin1"))
	require.ErrorIs(t, err, contract.ErrUnauthorized)
	_, err = l.CurrentRoundID()
	require.ErrorIs(t, err, contract.ErrNotFound)
	_, err = l.Beneficiary()
	require.ErrorIs(t, err, contract.ErrNotFound)
}

func TestInitializeRejectsMalformedCreator(t *testing.T) {
	st := store.NewMemory("")
	l := contract.New(st, nil)
	_, err := l.Initialize(sdk.NewEnv(""), []string{"admin1"})
	require.ErrorIs(t, err, contract.ErrInvalidAddress)
	assert.Equal(t, 0, st.Len())

	_, err = l.Initialize(sdk.NewEnv("Creator"), []string{"admin1"})
	require.ErrorIs(t, err, contract.ErrInvalidAddress)
	assert.Equal(t, 0, st.Len())
}
