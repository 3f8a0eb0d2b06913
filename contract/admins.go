package contract

import "grant_ledger/sdk"

// -----------------------------------------------------------------------------
// Admin Operations
// -----------------------------------------------------------------------------

// AddMember lets an existing admin grow the admin set.
// Example payload: l.AddMember(sdk.NewEnv("admin1"), "admin3")
func (l *Ledger) AddMember(env sdk.Env, admin string) (*sdk.Response, error) {
	return l.transact(func(st sdk.State) (*sdk.Response, error) {
		if err := requireAdmin(st, env.Sender); err != nil {
			return nil, err
		}
		addr, err := l.validator.Validate(admin)
		if err != nil {
			return nil, err
		}
		exists, err := isAdmin(st, addr)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &DuplicateAdminError{Address: addr}
		}
		if err := saveAdmin(st, addr); err != nil {
			return nil, err
		}
		return sdk.NewResponse().
			AddAttribute(AttrAction, ActionAddMember).
			AddEvent(adminAddedEvent(addr)), nil
	})
}

// SetBeneficiary overwrites the payout address, even with the same value.
// Example payload: l.SetBeneficiary(sdk.NewEnv("admin1"), "treasury")
func (l *Ledger) SetBeneficiary(env sdk.Env, address string) (*sdk.Response, error) {
	return l.transact(func(st sdk.State) (*sdk.Response, error) {
		if err := requireAdmin(st, env.Sender); err != nil {
			return nil, err
		}
		addr, err := l.validator.Validate(address)
		if err != nil {
			return nil, err
		}
		if err := saveBeneficiary(st, addr); err != nil {
			return nil, err
		}
		return sdk.NewResponse().
			AddAttribute(AttrAction, ActionSetBeneficiary).
			AddEvent(setBeneficiaryEvent(addr)), nil
	})
}

// EndRound closes the active round and opens the next one. Empty rounds may be
// closed too.
func (l *Ledger) EndRound(env sdk.Env) (*sdk.Response, error) {
	return l.transact(func(st sdk.State) (*sdk.Response, error) {
		if err := requireAdmin(st, env.Sender); err != nil {
			return nil, err
		}
		round, err := loadRound(st)
		if err != nil {
			return nil, err
		}
		if round == ^uint64(0) {
			return nil, ErrOverflow
		}
		if err := saveRound(st, round+1); err != nil {
			return nil, err
		}
		return sdk.NewResponse().
			AddAttribute(AttrAction, ActionEndRound).
			AddEvent(endRoundEvent(round)), nil
	})
}
