package host

import (
	"errors"

	"grant_ledger/contract"
	"grant_ledger/sdk"
)

var (
	// ErrUnknownMessage means the payload named no known variant, or more than one.
	ErrUnknownMessage = errors.New("unknown message")
	// ErrDecode wraps payloads that are not valid JSON for the message type.
	ErrDecode = errors.New("decode message")
)

// InstantiateMsg seeds the admin set.
// Example payload: {"admins":["admin1","admin2"]}
type InstantiateMsg struct {
	Admins []string `json:"admins"`
}

// ExecuteMsg carries exactly one of its variants.
// Example payload: {"batch_vote":{"project_ids":[1,2],"amounts":["100","50"]}}
type ExecuteMsg struct {
	AddMember      *AddMemberMsg      `json:"add_member,omitempty"`
	SetBeneficiary *SetBeneficiaryMsg `json:"set_beneficiary,omitempty"`
	EndRound       *EndRoundMsg       `json:"end_round,omitempty"`
	BatchVote      *BatchVoteMsg      `json:"batch_vote,omitempty"`
}

type AddMemberMsg struct {
	Admin string `json:"admin"`
}

type SetBeneficiaryMsg struct {
	Address string `json:"address"`
}

type EndRoundMsg struct{}

// BatchVoteMsg pairs project ids and amounts by position. Amounts travel as decimal
// strings since they may exceed 64 bits.
type BatchVoteMsg struct {
	ProjectIDs []uint64     `json:"project_ids"`
	Amounts    []sdk.Amount `json:"amounts"`
}

// Action names the variant for logs and returns ErrUnknownMessage unless exactly one
// variant is set.
func (m ExecuteMsg) Action() (string, error) {
	var action string
	n := 0
	if m.AddMember != nil {
		action, n = contract.ActionAddMember, n+1
	}
	if m.SetBeneficiary != nil {
		action, n = contract.ActionSetBeneficiary, n+1
	}
	if m.EndRound != nil {
		action, n = contract.ActionEndRound, n+1
	}
	if m.BatchVote != nil {
		action, n = contract.ActionBatchVote, n+1
	}
	if n != 1 {
		return "", ErrUnknownMessage
	}
	return action, nil
}

// QueryMsg carries exactly one of its variants.
// Example payload: {"project":{"round_id":1,"project_id":7}}
type QueryMsg struct {
	AdminList     *AdminListQuery     `json:"admin_list,omitempty"`
	RoundID       *RoundIDQuery       `json:"round_id,omitempty"`
	Project       *ProjectQuery       `json:"project,omitempty"`
	ProjectVoter  *ProjectVoterQuery  `json:"project_voter,omitempty"`
	Beneficiary   *BeneficiaryQuery   `json:"beneficiary,omitempty"`
	RoundProjects *RoundProjectsQuery `json:"round_projects,omitempty"`
}

type AdminListQuery struct{}

type RoundIDQuery struct{}

type BeneficiaryQuery struct{}

type ProjectQuery struct {
	RoundID   uint64 `json:"round_id"`
	ProjectID uint64 `json:"project_id"`
}

type ProjectVoterQuery struct {
	RoundID   uint64 `json:"round_id"`
	ProjectID uint64 `json:"project_id"`
	Voter     string `json:"voter"`
}

type RoundProjectsQuery struct {
	RoundID uint64 `json:"round_id"`
}

func (m QueryMsg) variants() int {
	n := 0
	for _, set := range []bool{
		m.AdminList != nil, m.RoundID != nil, m.Project != nil,
		m.ProjectVoter != nil, m.Beneficiary != nil, m.RoundProjects != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// -----------------------------------------------------------------------------
// Query Replies
// -----------------------------------------------------------------------------

type AdminListResponse struct {
	Admins []string `json:"admins"`
}

type BeneficiaryResponse struct {
	Beneficiary string `json:"beneficiary"`
}

type RoundProjectsResponse struct {
	ProjectIDs []uint64 `json:"project_ids"`
}

// BalancesResponse renders ledger totals as {"denom":"amount"}.
type BalancesResponse contract.Balances

// Result is what Instantiate and Execute hand back: the tx id plus the ledger response.
type Result struct {
	TxID     string        `json:"tx_id"`
	Response *sdk.Response `json:"response"`
}
