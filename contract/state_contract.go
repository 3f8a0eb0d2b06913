package contract

import (
	"fmt"

	"grant_ledger/sdk"
)

// -----------------------------------------------------------------------------
// Ledger Configuration State
// -----------------------------------------------------------------------------

// isInitialized is true once the round counter exists.
func isInitialized(st sdk.State) (bool, error) {
	_, ok, err := st.Get(roundKey())
	return ok, err
}

func loadBeneficiary(st sdk.State) (sdk.Address, error) {
	raw, ok, err := st.Get(beneficiaryKey())
	if err != nil {
		return "", err
	}
	if !ok || raw == "" {
		return "", fmt.Errorf("%w: beneficiary", ErrNotFound)
	}
	return sdk.Address(raw), nil
}

func saveBeneficiary(st sdk.State, addr sdk.Address) error {
	return st.Set(beneficiaryKey(), addr.String())
}
