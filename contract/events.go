package contract

import "grant_ledger/sdk"

// adminAddedEvent tells indexers a new address joined the admin set.
func adminAddedEvent(addr sdk.Address) sdk.Event {
	return sdk.NewEvent(EventAdminAdded).AddAttribute("addr", addr.String())
}

func setBeneficiaryEvent(addr sdk.Address) sdk.Event {
	return sdk.NewEvent(EventSetBeneficiary).AddAttribute("addr", addr.String())
}

// endRoundEvent carries the id of the round that was just closed.
func endRoundEvent(closed uint64) sdk.Event {
	return sdk.NewEvent(EventEndRound).AddAttribute("round_id", UInt64ToString(closed))
}

// batchVoteEvent keeps the raw project/amount lists so the whole vote can be replayed
// from logs only.
func batchVoteEvent(voter sdk.Address, round uint64, projectIDs []uint64, amounts []sdk.Amount, denom string) sdk.Event {
	return sdk.NewEvent(EventBatchVote).
		AddAttribute("sender", voter.String()).
		AddAttribute("round_id", UInt64ToString(round)).
		AddAttribute("projects", UInt64SliceToString(projectIDs)).
		AddAttribute("amounts", AmountSliceToString(amounts)).
		AddAttribute("denom", denom)
}
