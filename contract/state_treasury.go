package contract

import (
	"fmt"

	"grant_ledger/sdk"
)

// loadBalances decodes the balances stored under key. The second result is false
// when nothing was ever recorded there.
func loadBalances(st sdk.State, key string) (Balances, bool, error) {
	raw, ok, err := st.Get(key)
	if err != nil {
		return nil, false, err
	}
	if !ok || raw == "" {
		return nil, false, nil
	}
	b, err := DecodeBalances([]byte(raw))
	if err != nil {
		return nil, false, fmt.Errorf("decode balances %x: %w", key, err)
	}
	return b, true, nil
}

func saveBalances(st sdk.State, key string, b Balances) error {
	return st.Set(key, string(EncodeBalances(b)))
}

// addFunds credits amount in denom to the balances under key, creating the entry
// when absent. Overflow leaves the stored value untouched.
func addFunds(st sdk.State, key, denom string, amount sdk.Amount) error {
	current, _, err := loadBalances(st, key)
	if err != nil {
		return err
	}
	next := current.Clone()
	sum, err := next.Get(denom).Add(amount)
	if err != nil {
		return fmt.Errorf("credit %s: %w", denom, err)
	}
	next[denom] = sum
	return saveBalances(st, key, next)
}
