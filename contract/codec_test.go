package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grant_ledger/sdk"
)

func TestBalancesEncodingIsCanonical(t *testing.T) {
	a := Balances{"inj": sdk.NewAmount(5), "atom": sdk.MaxAmount()}
	b := Balances{"atom": sdk.MaxAmount(), "inj": sdk.NewAmount(5)}
	assert.Equal(t, EncodeBalances(a), EncodeBalances(b))

	got, err := DecodeBalances(EncodeBalances(a))
	require.NoError(t, err)
	assert.Equal(t, a.Denoms(), got.Denoms())
	assert.True(t, got["atom"].Equal(sdk.MaxAmount()))
	assert.Equal(t, "5", got["inj"].String())
}

func TestDecodeBalancesRejectsGarbage(t *testing.T) {
	enc := EncodeBalances(Balances{"inj": sdk.NewAmount(1)})

	_, err := DecodeBalances(enc[:len(enc)-1])
	assert.Error(t, err)
	_, err = DecodeBalances(append(append([]byte{}, enc...), 0x00))
	assert.Error(t, err)
	_, err = DecodeBalances(nil)
	assert.Error(t, err)
	_, err = DecodeBalances([]byte{0x05, 0x01})
	assert.Error(t, err)
}

func TestKeysOrderNumerically(t *testing.T) {
	// big-endian ids keep 2 before 256 under byte ordering
	assert.Less(t, projectKey(1, 2), projectKey(1, 256))
	assert.Less(t, projectKey(1, 99), projectKey(2, 0))

	id, ok := projectIDFromKey(projectKey(7, 42))
	require.True(t, ok)
	assert.Equal(t, uint64(42), id)
	_, ok = projectIDFromKey(voteKey(7, 42, "user1"))
	assert.False(t, ok)

	assert.True(t, len(voteKey(1, 1, "user1")) == 17+len("user1"))
	assert.Equal(t, roundProjectsPrefix(3), projectKey(3, 0)[:9])
}
