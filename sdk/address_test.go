package sdk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grant_ledger/sdk"
)

func TestDefaultValidator(t *testing.T) {
	v := sdk.DefaultValidator()
	for _, ok := range []string{"admin1", "user_2", "hive:tibfox", "inj1qy9t.x-z"} {
		addr, err := v.Validate(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, addr.String())
	}
	for _, bad := range []string{"", "ab", "Admin1", "user 1", "user/1", strings.Repeat("a", 91)} {
		_, err := v.Validate(bad)
		assert.ErrorIs(t, err, sdk.ErrInvalidAddress, bad)
	}
}

func TestPrefixedValidator(t *testing.T) {
	v := sdk.BasicValidator{Prefix: "inj1", MinLength: 10, MaxLength: 64}

	_, err := v.Validate("inj1abcdefgh")
	require.NoError(t, err)

	_, err = v.Validate("cosmos1abcdefgh")
	require.ErrorIs(t, err, sdk.ErrInvalidAddress)
	_, err = v.Validate("inj1abc")
	require.ErrorIs(t, err, sdk.ErrInvalidAddress)
}
