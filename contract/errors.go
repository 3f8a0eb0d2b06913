package contract

import (
	"errors"
	"fmt"

	"grant_ledger/sdk"
)

var (
	// ErrUnauthorized is returned when a non-admin calls an admin operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidAddress aliases the sdk validation error so callers only import one package.
	ErrInvalidAddress = sdk.ErrInvalidAddress
	ErrDuplicateAdmin = errors.New("duplicate admin")
	// ErrNotFound covers missing ledger entries, missing round and missing beneficiary.
	ErrNotFound = errors.New("not found")
	// ErrInvalidAmount means the attached funds do not equal the sum of the vote amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	ErrOverflow      = sdk.ErrOverflow

	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNoAdmins           = errors.New("admin list is empty")
	ErrLengthMismatch     = errors.New("project ids and amounts differ in length")
	ErrNoFunds            = sdk.ErrNoFunds
	ErrMultipleDenoms     = sdk.ErrMultipleDenoms
)

// UnauthorizedError names the caller that was refused.
type UnauthorizedError struct {
	Sender sdk.Address
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s is not an admin", e.Sender)
}

func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// DuplicateAdminError names the address that is already in the admin set.
type DuplicateAdminError struct {
	Address sdk.Address
}

func (e *DuplicateAdminError) Error() string {
	return fmt.Sprintf("duplicate admin: %s", e.Address)
}

func (e *DuplicateAdminError) Is(target error) bool { return target == ErrDuplicateAdmin }

// InvalidAmountError carries both sides of the failed reconciliation. Expected is the
// sum of the vote amounts, Actual is the attached coin amount.
type InvalidAmountError struct {
	Expected sdk.Amount
	Actual   sdk.Amount
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: expected %s, actual %s", e.Expected, e.Actual)
}

func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }
