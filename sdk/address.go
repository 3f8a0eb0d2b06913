package sdk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAddress is returned by validators for malformed account strings.
var ErrInvalidAddress = errors.New("invalid address")

type Address string

// String returns the literal representation (like dora1abc) of the address.
// Example payload: sdk.Address("admin1").String()
func (a Address) String() string {
	return string(a)
}

// Validator turns caller supplied strings into canonical addresses.
type Validator interface {
	Validate(raw string) (Address, error)
}

const (
	DefaultMinAddressLength = 3
	DefaultMaxAddressLength = 90
)

// BasicValidator accepts lower case account strings of bounded length, optionally
// scoped to a chain prefix (like "dora1" or "inj1").
type BasicValidator struct {
	Prefix    string
	MinLength int
	MaxLength int
}

// DefaultValidator accepts any canonical account string without prefix checks.
func DefaultValidator() BasicValidator {
	return BasicValidator{
		MinLength: DefaultMinAddressLength,
		MaxLength: DefaultMaxAddressLength,
	}
}

// Validate rejects anything that is not already in canonical form, so two spellings
// of the same account can never end up as different admins or voters.
// Example payload: sdk.DefaultValidator().Validate("user1")
func (v BasicValidator) Validate(raw string) (Address, error) {
	minLen, maxLen := v.MinLength, v.MaxLength
	if minLen <= 0 {
		minLen = DefaultMinAddressLength
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxAddressLength
	}
	if len(raw) < minLen {
		return "", fmt.Errorf("%w: %q too short", ErrInvalidAddress, raw)
	}
	if len(raw) > maxLen {
		return "", fmt.Errorf("%w: %q too long", ErrInvalidAddress, raw)
	}
	if v.Prefix != "" && !strings.HasPrefix(raw, v.Prefix) {
		return "", fmt.Errorf("%w: %q lacks prefix %q", ErrInvalidAddress, raw, v.Prefix)
	}
	for i := 0; i < len(raw); i++ {
		if !isAddressChar(raw[i]) {
			return "", fmt.Errorf("%w: %q has illegal character %q", ErrInvalidAddress, raw, raw[i])
		}
	}
	return Address(raw), nil
}

func isAddressChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == ':' || c == '.' || c == '_' || c == '-':
		return true
	}
	return false
}
