package sdk_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grant_ledger/sdk"
)

const maxU128 = "340282366920938463463374607431768211455"

func TestParseAmount(t *testing.T) {
	a, err := sdk.ParseAmount("160000")
	require.NoError(t, err)
	assert.Equal(t, "160000", a.String())

	a, err = sdk.ParseAmount(maxU128)
	require.NoError(t, err)
	assert.True(t, a.Equal(sdk.MaxAmount()))

	_, err = sdk.ParseAmount("340282366920938463463374607431768211456")
	require.ErrorIs(t, err, sdk.ErrOverflow)

	for _, bad := range []string{"", "-1", "1.5", " 1", "0x10", "1e3"} {
		_, err := sdk.ParseAmount(bad)
		assert.ErrorIs(t, err, sdk.ErrInvalidAmountFormat, bad)
	}
}

func TestAmountAddFailsClosed(t *testing.T) {
	sum, err := sdk.NewAmount(100).Add(sdk.NewAmount(50))
	require.NoError(t, err)
	assert.Equal(t, "150", sum.String())

	_, err = sdk.MaxAmount().Add(sdk.NewAmount(1))
	require.ErrorIs(t, err, sdk.ErrOverflow)

	sum, err = sdk.MaxAmount().Add(sdk.Amount{})
	require.NoError(t, err)
	assert.Equal(t, maxU128, sum.String())
}

func TestAmountBytesAndJSON(t *testing.T) {
	a := sdk.MustParseAmount("123456789012345678901234567890")
	assert.True(t, sdk.AmountFromBytes16(a.Bytes16()).Equal(a))
	assert.Equal(t, -1, sdk.NewAmount(1).Cmp(a))

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"123456789012345678901234567890"`, string(data))

	var back sdk.Amount
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(a))
	assert.Error(t, json.Unmarshal([]byte(`12`), &back))
}
