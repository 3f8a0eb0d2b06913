package contract

import (
	"fmt"

	"grant_ledger/sdk"
)

// -----------------------------------------------------------------------------
// Queries
// -----------------------------------------------------------------------------

// AdminList returns every admin in ascending address order.
func (l *Ledger) AdminList() ([]sdk.Address, error) {
	return loadAdmins(l.state)
}

// CurrentRoundID fails with ErrNotFound until Initialize ran.
func (l *Ledger) CurrentRoundID() (uint64, error) {
	return loadRound(l.state)
}

// Beneficiary returns the address that receives batch vote funds.
func (l *Ledger) Beneficiary() (sdk.Address, error) {
	return loadBeneficiary(l.state)
}

// ProjectTotals returns the per denomination totals of a project in a round.
// Example payload: l.ProjectTotals(1, 7)
func (l *Ledger) ProjectTotals(round, project uint64) (Balances, error) {
	b, ok, err := loadBalances(l.state, projectKey(round, project))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: project %d in round %d", ErrNotFound, project, round)
	}
	return b, nil
}

// VoterContribution returns what voter gave to a project in a round.
// Example payload: l.VoterContribution(1, 7, "user1")
func (l *Ledger) VoterContribution(round, project uint64, voter string) (Balances, error) {
	addr, err := l.validator.Validate(voter)
	if err != nil {
		return nil, err
	}
	b, ok, err := loadBalances(l.state, voteKey(round, project, addr))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s on project %d in round %d", ErrNotFound, addr, project, round)
	}
	return b, nil
}

// RoundProjects lists the ids of every project funded in round, ascending. A round
// nobody voted in yields an empty list.
func (l *Ledger) RoundProjects(round uint64) ([]uint64, error) {
	ids := []uint64{}
	err := l.state.Iterate(roundProjectsPrefix(round), func(key, _ string) error {
		id, ok := projectIDFromKey(key)
		if !ok {
			return fmt.Errorf("corrupt project key %x", key)
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
