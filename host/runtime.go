// Package host runs JSON encoded instantiate, execute and query messages against the
// ledger, one at a time, and settles the bank transfers of committed calls.
package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/CosmWasm/tinyjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"grant_ledger/contract"
	"grant_ledger/sdk"
)

// Runtime owns a ledger and serializes every call into it.
type Runtime struct {
	mu     sync.Mutex
	ledger *contract.Ledger
	bank   sdk.Bank
	log    zerolog.Logger
}

// New binds a runtime to a store. A nil bank leaves transfer messages unsettled in
// the returned response.
func New(state sdk.State, validator sdk.Validator, bank sdk.Bank, log zerolog.Logger) *Runtime {
	r := &Runtime{
		ledger: contract.New(state, validator),
		bank:   bank,
		log:    log,
	}
	r.ledger.SetPreCommit(r.checkSettlement)
	return r
}

// SettlementError means the ledger committed but a transfer of the response was
// refused afterwards. The call must not be resubmitted; the Result returned next to
// this error is the committed one.
type SettlementError struct {
	To  sdk.Address
	Err error
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("settle transfer to %s: %v", e.To, e.Err)
}

func (e *SettlementError) Unwrap() error { return e.Err }

// Ledger exposes the underlying state machine for direct queries.
func (r *Runtime) Ledger() *contract.Ledger { return r.ledger }

// Instantiate decodes an InstantiateMsg and initializes the ledger.
// Example payload: {"admins":["admin1","admin2"]}
func (r *Runtime) Instantiate(ctx context.Context, env sdk.Env, raw []byte) (*Result, error) {
	var msg InstantiateMsg
	if err := tinyjson.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return r.invoke(ctx, env, "instantiate", func(env sdk.Env) (*sdk.Response, error) {
		return r.ledger.Initialize(env, msg.Admins)
	})
}

// Execute decodes an ExecuteMsg and dispatches it.
// Example payload: {"end_round":{}}
func (r *Runtime) Execute(ctx context.Context, env sdk.Env, raw []byte) (*Result, error) {
	var msg ExecuteMsg
	if err := tinyjson.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	action, err := msg.Action()
	if err != nil {
		return nil, err
	}
	return r.invoke(ctx, env, action, func(env sdk.Env) (*sdk.Response, error) {
		switch {
		case msg.AddMember != nil:
			return r.ledger.AddMember(env, msg.AddMember.Admin)
		case msg.SetBeneficiary != nil:
			return r.ledger.SetBeneficiary(env, msg.SetBeneficiary.Address)
		case msg.EndRound != nil:
			return r.ledger.EndRound(env)
		default:
			return r.ledger.BatchVote(env, msg.BatchVote.ProjectIDs, msg.BatchVote.Amounts)
		}
	})
}

// invoke runs fn under the runtime lock. The ledger commits inside fn, so
// cancellation is only honoured before that point. Transfers are dry-run before
// the commit; a committed call that still fails to settle returns its Result
// together with a *SettlementError.
func (r *Runtime) invoke(ctx context.Context, env sdk.Env, action string, fn func(sdk.Env) (*sdk.Response, error)) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if env.TxID == "" {
		env.TxID = uuid.NewString()
	}
	log := r.log.With().
		Str("tx", env.TxID).
		Str("sender", env.Sender.String()).
		Str("action", action).
		Logger()

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Msg("invocation cancelled")
		return nil, err
	}
	if _, err := r.ledger.Validator().Validate(env.Sender.String()); err != nil {
		log.Warn().Err(err).Msg("invalid sender")
		return nil, err
	}

	log.Debug().Int("funds", len(env.Funds)).Msg("invoke")
	resp, err := fn(env)
	if err != nil {
		log.Warn().Err(err).Msg("invocation failed")
		return nil, err
	}
	for _, ev := range resp.Events {
		log.Debug().Str("event", ev.String()).Msg("event")
	}

	res := &Result{TxID: env.TxID, Response: resp}
	if err := r.settle(context.WithoutCancel(ctx), log, resp.Messages); err != nil {
		return res, err
	}
	return res, nil
}

// checkSettlement runs before the ledger commits so a transfer the bank would
// refuse rolls the whole call back.
func (r *Runtime) checkSettlement(resp *sdk.Response) error {
	if r.bank == nil {
		return nil
	}
	for _, m := range resp.Messages {
		if err := r.bank.CanSend(m); err != nil {
			return fmt.Errorf("transfer to %s: %w", m.ToAddress, err)
		}
	}
	return nil
}

func (r *Runtime) settle(ctx context.Context, log zerolog.Logger, msgs []sdk.BankSend) error {
	if r.bank == nil {
		return nil
	}
	for _, m := range msgs {
		if err := r.bank.Send(ctx, m); err != nil {
			log.Error().Err(err).Str("to", m.ToAddress.String()).Msg("settlement failed after commit")
			return &SettlementError{To: m.ToAddress, Err: err}
		}
		for _, c := range m.Amount {
			log.Info().Str("to", m.ToAddress.String()).Str("coin", c.String()).Msg("settled")
		}
	}
	return nil
}

// Query decodes a QueryMsg and returns the JSON encoded answer.
// Example payload: {"project_voter":{"round_id":1,"project_id":1,"voter":"user1"}}
func (r *Runtime) Query(ctx context.Context, raw []byte) ([]byte, error) {
	var msg QueryMsg
	if err := tinyjson.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if msg.variants() != 1 {
		return nil, ErrUnknownMessage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case msg.AdminList != nil:
		admins, err := r.ledger.AdminList()
		if err != nil {
			return nil, err
		}
		reply := AdminListResponse{Admins: make([]string, 0, len(admins))}
		for _, a := range admins {
			reply.Admins = append(reply.Admins, a.String())
		}
		return tinyjson.Marshal(reply)
	case msg.RoundID != nil:
		round, err := r.ledger.CurrentRoundID()
		if err != nil {
			return nil, err
		}
		return encodeUint64(round), nil
	case msg.Project != nil:
		totals, err := r.ledger.ProjectTotals(msg.Project.RoundID, msg.Project.ProjectID)
		if err != nil {
			return nil, err
		}
		return tinyjson.Marshal(BalancesResponse(totals))
	case msg.ProjectVoter != nil:
		q := msg.ProjectVoter
		totals, err := r.ledger.VoterContribution(q.RoundID, q.ProjectID, q.Voter)
		if err != nil {
			return nil, err
		}
		return tinyjson.Marshal(BalancesResponse(totals))
	case msg.Beneficiary != nil:
		addr, err := r.ledger.Beneficiary()
		if err != nil {
			return nil, err
		}
		return tinyjson.Marshal(BeneficiaryResponse{Beneficiary: addr.String()})
	default:
		ids, err := r.ledger.RoundProjects(msg.RoundProjects.RoundID)
		if err != nil {
			return nil, err
		}
		return tinyjson.Marshal(RoundProjectsResponse{ProjectIDs: ids})
	}
}
