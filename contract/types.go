package contract

import "grant_ledger/sdk"

// Balances maps a denomination to the cumulative amount contributed in it.
type Balances map[string]sdk.Amount

// Clone copies the map so callers never alias stored state.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Get returns the amount for denom, zero when absent.
func (b Balances) Get(denom string) sdk.Amount {
	return b[denom]
}
