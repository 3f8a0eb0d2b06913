package sdk

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
)

// AmountBits is the width of every stored amount. Values above 2^128-1 are rejected.
const AmountBits = 128

var (
	// ErrOverflow reports an addition or parse that would leave the 128 bit range.
	ErrOverflow = errors.New("amount overflow")
	// ErrInvalidAmountFormat reports amount text that is not an unsigned decimal.
	ErrInvalidAmountFormat = errors.New("invalid amount format")
)

// Amount is an unsigned 128 bit token quantity. The zero value is zero.
type Amount struct {
	v uint256.Int
}

// NewAmount lifts a uint64 into an Amount.
// Example payload: sdk.NewAmount(160000)
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// ParseAmount reads an unsigned decimal string.
// Example payload: sdk.ParseAmount("340282366920938463463374607431768211455")
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty", ErrInvalidAmountFormat)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, s)
		}
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	if v.BitLen() > AmountBits {
		return Amount{}, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return Amount{v: *v}, nil
}

// MustParseAmount is ParseAmount for constants in tests and fixtures.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MaxAmount returns 2^128-1.
func MaxAmount() Amount {
	var a Amount
	a.v.SetAllOne()
	a.v.Rsh(&a.v, 256-AmountBits)
	return a
}

// Add returns a+b, failing closed once the sum needs more than 128 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	var out Amount
	if _, overflow := out.v.AddOverflow(&a.v, &b.v); overflow || out.v.BitLen() > AmountBits {
		return Amount{}, fmt.Errorf("%w: %s + %s", ErrOverflow, a, b)
	}
	return out, nil
}

func (a Amount) IsZero() bool { return a.v.IsZero() }

// Cmp returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int { return a.v.Cmp(&b.v) }

func (a Amount) Equal(b Amount) bool { return a.v.Eq(&b.v) }

// String renders the decimal form used in events and JSON.
func (a Amount) String() string { return a.v.Dec() }

// Bytes16 is the fixed width big-endian form used by the storage codec.
func (a Amount) Bytes16() [16]byte {
	full := a.v.Bytes32()
	var out [16]byte
	copy(out[:], full[16:])
	return out
}

// AmountFromBytes16 is the inverse of Bytes16.
func AmountFromBytes16(b [16]byte) Amount {
	var a Amount
	a.v.SetBytes(b[:])
	return a
}

// MarshalJSON encodes the amount as a decimal string, like Uint128 on cosmos chains.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts the quoted decimal form.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmountFormat, data)
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
