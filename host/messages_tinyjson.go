package host

import (
	"fmt"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"grant_ledger/contract"
	"grant_ledger/sdk"
)

// -----------------------------------------------------------------------------
// Shared Decoders
// -----------------------------------------------------------------------------

// objectStart opens an object and reports false for a JSON null.
func objectStart(in *jlexer.Lexer) bool {
	if in.IsNull() {
		in.Skip()
		return false
	}
	in.Delim('{')
	return true
}

// decodeEmpty accepts {} and ignores any fields inside.
func decodeEmpty(in *jlexer.Lexer) {
	if !objectStart(in) {
		return
	}
	for !in.IsDelim('}') {
		_ = in.UnsafeFieldName(false)
		in.WantColon()
		in.SkipRecursive()
		in.WantComma()
	}
	in.Delim('}')
}

func decodeStrings(in *jlexer.Lexer) []string {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	out := []string{}
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, string(in.String()))
		in.WantComma()
	}
	in.Delim(']')
	return out
}

func decodeUint64s(in *jlexer.Lexer) []uint64 {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	out := []uint64{}
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, in.Uint64())
		in.WantComma()
	}
	in.Delim(']')
	return out
}

// decodeAmounts reads a list of decimal strings.
func decodeAmounts(in *jlexer.Lexer) []sdk.Amount {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	out := []sdk.Amount{}
	in.Delim('[')
	for !in.IsDelim(']') {
		raw := in.String()
		amt, err := sdk.ParseAmount(raw)
		if err != nil {
			in.AddError(fmt.Errorf("amount %q: %w", raw, err))
		}
		out = append(out, amt)
		in.WantComma()
	}
	in.Delim(']')
	return out
}

// -----------------------------------------------------------------------------
// Shared Encoders
// -----------------------------------------------------------------------------

func encodeStrings(out *jwriter.Writer, vals []string) {
	out.RawByte('[')
	for i, v := range vals {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(v)
	}
	out.RawByte(']')
}

func encodeUint64s(out *jwriter.Writer, vals []uint64) {
	out.RawByte('[')
	for i, v := range vals {
		if i > 0 {
			out.RawByte(',')
		}
		out.Uint64(v)
	}
	out.RawByte(']')
}

func encodeAttributes(out *jwriter.Writer, attrs []sdk.Attribute) {
	out.RawByte('[')
	for i, a := range attrs {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"key":`)
		out.String(a.Key)
		out.RawString(`,"value":`)
		out.String(a.Value)
		out.RawByte('}')
	}
	out.RawByte(']')
}

func encodeCoins(out *jwriter.Writer, coins []sdk.Coin) {
	out.RawByte('[')
	for i, c := range coins {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"denom":`)
		out.String(c.Denom)
		out.RawString(`,"amount":`)
		out.String(c.Amount.String())
		out.RawByte('}')
	}
	out.RawByte(']')
}

func encodeResponse(out *jwriter.Writer, r *sdk.Response) {
	if r == nil {
		out.RawString("null")
		return
	}
	out.RawString(`{"attributes":`)
	encodeAttributes(out, r.Attributes)
	out.RawString(`,"events":[`)
	for i, e := range r.Events {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"type":`)
		out.String(e.Type)
		out.RawString(`,"attributes":`)
		encodeAttributes(out, e.Attributes)
		out.RawByte('}')
	}
	out.RawString(`],"messages":[`)
	for i, m := range r.Messages {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"bank_send":{"to_address":`)
		out.String(m.ToAddress.String())
		out.RawString(`,"amount":`)
		encodeCoins(out, m.Amount)
		out.RawString(`}}`)
	}
	out.RawString(`]}`)
}

// -----------------------------------------------------------------------------
// InstantiateMsg
// -----------------------------------------------------------------------------

func (v *InstantiateMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if objectStart(in) {
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "admins":
				v.Admins = decodeStrings(in)
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	}
	if isTopLevel {
		in.Consumed()
	}
}

func (v InstantiateMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"admins":`)
	encodeStrings(out, v.Admins)
	out.RawByte('}')
}

// -----------------------------------------------------------------------------
// ExecuteMsg
// -----------------------------------------------------------------------------

func (v *ExecuteMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if objectStart(in) {
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			// a null variant counts as absent
			if in.IsNull() {
				in.Skip()
				in.WantComma()
				continue
			}
			switch key {
			case "add_member":
				v.AddMember = &AddMemberMsg{}
				v.AddMember.decode(in)
			case "set_beneficiary":
				v.SetBeneficiary = &SetBeneficiaryMsg{}
				v.SetBeneficiary.decode(in)
			case "end_round":
				v.EndRound = &EndRoundMsg{}
				decodeEmpty(in)
			case "batch_vote":
				v.BatchVote = &BatchVoteMsg{}
				v.BatchVote.decode(in)
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	}
	if isTopLevel {
		in.Consumed()
	}
}

func (v ExecuteMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	switch {
	case v.AddMember != nil:
		out.RawString(`"add_member":{"admin":`)
		out.String(v.AddMember.Admin)
		out.RawByte('}')
	case v.SetBeneficiary != nil:
		out.RawString(`"set_beneficiary":{"address":`)
		out.String(v.SetBeneficiary.Address)
		out.RawByte('}')
	case v.EndRound != nil:
		out.RawString(`"end_round":{}`)
	case v.BatchVote != nil:
		out.RawString(`"batch_vote":{"project_ids":`)
		encodeUint64s(out, v.BatchVote.ProjectIDs)
		out.RawString(`,"amounts":[`)
		for i, a := range v.BatchVote.Amounts {
			if i > 0 {
				out.RawByte(',')
			}
			out.String(a.String())
		}
		out.RawString(`]}`)
	}
	out.RawByte('}')
}

func (v *AddMemberMsg) decode(in *jlexer.Lexer) {
	if !objectStart(in) {
		return
	}
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "admin":
			v.Admin = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v *SetBeneficiaryMsg) decode(in *jlexer.Lexer) {
	if !objectStart(in) {
		return
	}
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "address":
			v.Address = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v *BatchVoteMsg) decode(in *jlexer.Lexer) {
	if !objectStart(in) {
		return
	}
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "project_ids":
			v.ProjectIDs = decodeUint64s(in)
		case "amounts":
			v.Amounts = decodeAmounts(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// -----------------------------------------------------------------------------
// QueryMsg
// -----------------------------------------------------------------------------

func (v *QueryMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if objectStart(in) {
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			// a null variant counts as absent
			if in.IsNull() {
				in.Skip()
				in.WantComma()
				continue
			}
			switch key {
			case "admin_list":
				v.AdminList = &AdminListQuery{}
				decodeEmpty(in)
			case "round_id":
				v.RoundID = &RoundIDQuery{}
				decodeEmpty(in)
			case "beneficiary":
				v.Beneficiary = &BeneficiaryQuery{}
				decodeEmpty(in)
			case "project":
				v.Project = &ProjectQuery{}
				v.Project.decode(in)
			case "project_voter":
				v.ProjectVoter = &ProjectVoterQuery{}
				v.ProjectVoter.decode(in)
			case "round_projects":
				v.RoundProjects = &RoundProjectsQuery{}
				v.RoundProjects.decode(in)
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	}
	if isTopLevel {
		in.Consumed()
	}
}

func (v *ProjectQuery) decode(in *jlexer.Lexer) {
	if !objectStart(in) {
		return
	}
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "round_id":
			v.RoundID = in.Uint64()
		case "project_id":
			v.ProjectID = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v *ProjectVoterQuery) decode(in *jlexer.Lexer) {
	if !objectStart(in) {
		return
	}
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "round_id":
			v.RoundID = in.Uint64()
		case "project_id":
			v.ProjectID = in.Uint64()
		case "voter":
			v.Voter = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v *RoundProjectsQuery) decode(in *jlexer.Lexer) {
	if !objectStart(in) {
		return
	}
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "round_id":
			v.RoundID = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// -----------------------------------------------------------------------------
// Replies
// -----------------------------------------------------------------------------

func (v AdminListResponse) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"admins":`)
	encodeStrings(out, v.Admins)
	out.RawByte('}')
}

func (v *AdminListResponse) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if objectStart(in) {
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "admins":
				v.Admins = decodeStrings(in)
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	}
	if isTopLevel {
		in.Consumed()
	}
}

func (v BeneficiaryResponse) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"beneficiary":`)
	out.String(v.Beneficiary)
	out.RawByte('}')
}

func (v RoundProjectsResponse) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"project_ids":`)
	encodeUint64s(out, v.ProjectIDs)
	out.RawByte('}')
}

// MarshalTinyJSON writes denominations in ascending order.
func (v BalancesResponse) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	for i, denom := range contract.Balances(v).Denoms() {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(denom)
		out.RawByte(':')
		out.String(v[denom].String())
	}
	out.RawByte('}')
}

func (v *BalancesResponse) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if objectStart(in) {
		out := BalancesResponse{}
		for !in.IsDelim('}') {
			denom := string(in.String())
			in.WantColon()
			raw := in.String()
			amt, err := sdk.ParseAmount(raw)
			if err != nil {
				in.AddError(fmt.Errorf("amount %q: %w", raw, err))
			}
			out[denom] = amt
			in.WantComma()
		}
		in.Delim('}')
		*v = out
	}
	if isTopLevel {
		in.Consumed()
	}
}

func (v Result) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"tx_id":`)
	out.String(v.TxID)
	out.RawString(`,"response":`)
	encodeResponse(out, v.Response)
	out.RawByte('}')
}

// encodeUint64 renders a bare number reply.
func encodeUint64(n uint64) []byte {
	w := jwriter.Writer{}
	w.Uint64(n)
	data, _ := w.BuildBytes()
	return data
}
