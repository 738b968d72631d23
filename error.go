package banksim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrUnknownAccountType = errors.New("unknown account type")
	ErrLoanDisabled       = errors.New("loan feature is disabled")
	ErrNotLoanAccount     = errors.New("not a loan account")
	ErrTransferNotAllowed = errors.New("account type cannot transfer")
)

type ErrNotFound struct {
	Number int64
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("account %d not found", e.Number)
}

// ErrBadInput marks console input that failed to parse or validate.
// Field names the prompt it came from.
type ErrBadInput struct {
	Field string
}

func (e ErrBadInput) Error() string {
	return fmt.Sprintf("invalid input for %s", e.Field)
}
