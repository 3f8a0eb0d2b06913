package contract

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kAdmin marks admin set entries: kAdmin|address -> "1".
	kAdmin byte = 0x01
	// kBeneficiary holds the single beneficiary address.
	kBeneficiary byte = 0x02
	// kRound holds the active round id as decimal text.
	kRound byte = 0x03
	// kProject stores per project totals: kProject|round|project -> encoded balances.
	kProject byte = 0x10
	// kVote stores per voter totals: kVote|round|project|voter -> encoded balances.
	kVote byte = 0x11
)

// FirstRoundID is the round opened by Initialize.
const FirstRoundID uint64 = 1

// -----------------------------------------------------------------------------
// Response Attributes and Event Types
// -----------------------------------------------------------------------------

const (
	AttrAction = "action"

	ActionAddMember      = "add_member"
	ActionSetBeneficiary = "set_beneficiary"
	ActionBatchVote      = "batch_vote"
	ActionEndRound       = "end_round"

	EventAdminAdded     = "admin_added"
	EventSetBeneficiary = "set_beneficiary"
	EventBatchVote      = "batch_vote"
	EventEndRound       = "end_round"
)
