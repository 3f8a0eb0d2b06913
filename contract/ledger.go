// Package contract holds the funding ledger: the admin set, the beneficiary, the round
// counter, and the per project and per voter contribution totals. Every mutating call
// runs against a buffered txState and only reaches the store when it fully succeeds.
package contract

import (
	"fmt"

	"grant_ledger/sdk"
)

// Ledger is the state machine. It is not safe for concurrent mutation; the host
// runtime serializes calls.
type Ledger struct {
	state     sdk.State
	validator sdk.Validator
	preCommit func(resp *sdk.Response) error
}

// New wires a ledger onto a store. A nil validator falls back to sdk.DefaultValidator.
func New(state sdk.State, validator sdk.Validator) *Ledger {
	if validator == nil {
		validator = sdk.DefaultValidator()
	}
	return &Ledger{state: state, validator: validator}
}

// Validator exposes the address rules the ledger applies.
func (l *Ledger) Validator() sdk.Validator { return l.validator }

// SetPreCommit installs a last check on a successful response. An error from fn
// discards the call like any other failure.
func (l *Ledger) SetPreCommit(fn func(resp *sdk.Response) error) { l.preCommit = fn }

// transact runs fn against a fresh overlay and commits only when fn and the
// pre-commit check succeed.
func (l *Ledger) transact(fn func(st sdk.State) (*sdk.Response, error)) (*sdk.Response, error) {
	tx := newTxState(l.state)
	resp, err := fn(tx)
	if err != nil {
		return nil, err
	}
	if l.preCommit != nil {
		if err := l.preCommit(resp); err != nil {
			return nil, err
		}
	}
	if err := tx.commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return resp, nil
}

// -----------------------------------------------------------------------------
// Initialization
// -----------------------------------------------------------------------------

// Initialize validates and stores the admin list, opens round 1 and makes the caller
// the beneficiary. It may only run once.
// Example payload: l.Initialize(sdk.NewEnv("creator"), []string{"admin1", "admin2"})
func (l *Ledger) Initialize(env sdk.Env, admins []string) (*sdk.Response, error) {
	return l.transact(func(st sdk.State) (*sdk.Response, error) {
		done, err := isInitialized(st)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, ErrAlreadyInitialized
		}
		if len(admins) == 0 {
			return nil, ErrNoAdmins
		}
		for _, raw := range admins {
			addr, err := l.validator.Validate(raw)
			if err != nil {
				return nil, err
			}
			// repeated entries in the initial list collapse into one member
			if err := saveAdmin(st, addr); err != nil {
				return nil, err
			}
		}
		if err := saveRound(st, FirstRoundID); err != nil {
			return nil, err
		}
		beneficiary, err := l.validator.Validate(env.Sender.String())
		if err != nil {
			return nil, err
		}
		if err := saveBeneficiary(st, beneficiary); err != nil {
			return nil, err
		}
		return sdk.NewResponse(), nil
	})
}
