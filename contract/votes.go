package contract

import (
	"fmt"

	"grant_ledger/sdk"
)

// -----------------------------------------------------------------------------
// Voting
// -----------------------------------------------------------------------------

// BatchVote splits the attached coin across projects of the active round. The i-th
// project receives the i-th amount, repeated project ids accumulate, and the amounts
// must add up to exactly what was attached. On success the whole coin is forwarded
// to the beneficiary through a BankSend message.
// Example payload: l.BatchVote(sdk.NewEnv("user1", sdk.NewCoin("inj", 150)), []uint64{1, 1}, []sdk.Amount{sdk.NewAmount(100), sdk.NewAmount(50)})
func (l *Ledger) BatchVote(env sdk.Env, projectIDs []uint64, amounts []sdk.Amount) (*sdk.Response, error) {
	coin, err := sdk.OneCoin(env.Funds)
	if err != nil {
		return nil, err
	}
	if len(projectIDs) != len(amounts) {
		return nil, fmt.Errorf("%w: %d project ids, %d amounts", ErrLengthMismatch, len(projectIDs), len(amounts))
	}
	voter, err := l.validator.Validate(env.Sender.String())
	if err != nil {
		return nil, err
	}

	return l.transact(func(st sdk.State) (*sdk.Response, error) {
		// one round for the whole batch
		round, err := loadRound(st)
		if err != nil {
			return nil, err
		}

		var total sdk.Amount
		for i, projectID := range projectIDs {
			amount := amounts[i]
			total, err = total.Add(amount)
			if err != nil {
				return nil, fmt.Errorf("sum of vote amounts: %w", err)
			}
			if err := addFunds(st, projectKey(round, projectID), coin.Denom, amount); err != nil {
				return nil, fmt.Errorf("project %d: %w", projectID, err)
			}
			if err := addFunds(st, voteKey(round, projectID, voter), coin.Denom, amount); err != nil {
				return nil, fmt.Errorf("project %d voter %s: %w", projectID, voter, err)
			}
		}

		if !total.Equal(coin.Amount) {
			return nil, &InvalidAmountError{Expected: total, Actual: coin.Amount}
		}

		beneficiary, err := loadBeneficiary(st)
		if err != nil {
			return nil, err
		}
		return sdk.NewResponse().
			AddMessage(sdk.BankSend{ToAddress: beneficiary, Amount: []sdk.Coin{coin}}).
			AddAttribute(AttrAction, ActionBatchVote).
			AddEvent(batchVoteEvent(voter, round, projectIDs, amounts, coin.Denom)), nil
	})
}
