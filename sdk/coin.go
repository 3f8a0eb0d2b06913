package sdk

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoFunds means the call carried no coin, or only a zero coin.
	ErrNoFunds = errors.New("no funds sent")
	// ErrMultipleDenoms means the call carried more than one denomination.
	ErrMultipleDenoms = errors.New("sent more than one denomination")
	// ErrInvalidCoin reports a malformed "<amount><denom>" string.
	ErrInvalidCoin = errors.New("invalid coin")
)

// Coin is an amount of a single denomination attached to a call or sent by the bank.
type Coin struct {
	Denom  string `json:"denom"`
	Amount Amount `json:"amount"`
}

// NewCoin is a shorthand for fixtures.
// Example payload: sdk.NewCoin("inj", 160000)
func NewCoin(denom string, amount uint64) Coin {
	return Coin{Denom: denom, Amount: NewAmount(amount)}
}

// String returns the compact "160000inj" form.
func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// ParseCoin reads the compact "<amount><denom>" form.
// Example payload: sdk.ParseCoin("160000inj")
func ParseCoin(s string) (Coin, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return Coin{}, fmt.Errorf("%w: %q", ErrInvalidCoin, s)
	}
	amount, err := ParseAmount(s[:i])
	if err != nil {
		return Coin{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoin, s, err)
	}
	denom := s[i:]
	if !isDenom(denom) {
		return Coin{}, fmt.Errorf("%w: bad denom %q", ErrInvalidCoin, denom)
	}
	return Coin{Denom: denom, Amount: amount}, nil
}

// ParseCoins reads a comma separated coin list; the empty string is no coins.
// Example payload: sdk.ParseCoins("10inj,5atom")
func ParseCoins(s string) ([]Coin, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Coin, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCoin(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// OneCoin enforces "exactly one non-zero denomination" on the attached funds.
func OneCoin(funds []Coin) (Coin, error) {
	switch len(funds) {
	case 0:
		return Coin{}, ErrNoFunds
	case 1:
		if funds[0].Amount.IsZero() {
			return Coin{}, ErrNoFunds
		}
		return funds[0], nil
	default:
		return Coin{}, ErrMultipleDenoms
	}
}

func isDenom(s string) bool {
	if len(s) < 2 || len(s) > 128 {
		return false
	}
	if s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '/' || c == ':' || c == '.' || c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}
