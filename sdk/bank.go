package sdk

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrEmptyRecipient is returned when a send has no destination.
var ErrEmptyRecipient = errors.New("send without recipient")

// Bank settles the transfer instructions of a committed invocation. CanSend is
// the dry run the runtime asks before the ledger commits; a send that passed
// CanSend must not fail for the same balances.
type Bank interface {
	CanSend(msg BankSend) error
	Send(ctx context.Context, msg BankSend) error
}

// MemoryBank credits recipients in memory and keeps the settled sends in order.
// It does not model the payer side; custody of attached funds belongs to the host.
type MemoryBank struct {
	mu       sync.Mutex
	balances map[Address]map[string]Amount
	sends    []BankSend
}

func NewMemoryBank() *MemoryBank {
	return &MemoryBank{balances: map[Address]map[string]Amount{}}
}

// CanSend reports whether Send would accept msg right now, without crediting.
func (b *MemoryBank) CanSend(msg BankSend) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := b.credited(msg)
	return err
}

// Send credits every coin of msg to its recipient. Nothing is credited if any coin
// would overflow the recipient balance.
func (b *MemoryBank) Send(ctx context.Context, msg BankSend) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := b.credited(msg)
	if err != nil {
		return err
	}
	b.balances[msg.ToAddress] = next
	b.sends = append(b.sends, msg)
	return nil
}

// credited computes the recipient balances after msg. Callers hold b.mu.
func (b *MemoryBank) credited(msg BankSend) (map[string]Amount, error) {
	if msg.ToAddress == "" {
		return nil, ErrEmptyRecipient
	}
	current := b.balances[msg.ToAddress]
	next := make(map[string]Amount, len(current)+len(msg.Amount))
	for denom, amt := range current {
		next[denom] = amt
	}
	for _, coin := range msg.Amount {
		sum, err := next[coin.Denom].Add(coin.Amount)
		if err != nil {
			return nil, fmt.Errorf("credit %s: %w", msg.ToAddress, err)
		}
		next[coin.Denom] = sum
	}
	return next, nil
}

// Balance returns what addr has received in denom.
func (b *MemoryBank) Balance(addr Address, denom string) Amount {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[addr][denom]
}

// Sends returns a copy of every settled send.
func (b *MemoryBank) Sends() []BankSend {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BankSend, len(b.sends))
	copy(out, b.sends)
	return out
}
