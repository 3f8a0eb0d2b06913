package contract

import "grant_ledger/sdk"

// The admin set only stores membership; the value is a fixed marker.
const adminMarker = "1"

func isAdmin(st sdk.State, addr sdk.Address) (bool, error) {
	_, ok, err := st.Get(adminKey(addr))
	return ok, err
}

func saveAdmin(st sdk.State, addr sdk.Address) error {
	return st.Set(adminKey(addr), adminMarker)
}

// loadAdmins walks the admin prefix, which yields addresses in ascending order.
func loadAdmins(st sdk.State) ([]sdk.Address, error) {
	prefix := adminPrefix()
	var out []sdk.Address
	err := st.Iterate(prefix, func(key, _ string) error {
		out = append(out, sdk.Address(key[len(prefix):]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// requireAdmin fails with an UnauthorizedError unless addr is in the admin set.
func requireAdmin(st sdk.State, addr sdk.Address) error {
	ok, err := isAdmin(st, addr)
	if err != nil {
		return err
	}
	if !ok {
		return &UnauthorizedError{Sender: addr}
	}
	return nil
}
