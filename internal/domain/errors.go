package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business outcome, never a crash. The machine is
// always left in a well-defined state after one of these is returned.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidIntent         = "INVALID_INTENT"
	ErrCodePinMismatch           = "PIN_MISMATCH"
	ErrCodeAccountNotFound       = "ACCOUNT_NOT_FOUND"
	ErrCodeCardNotFound          = "CARD_NOT_FOUND"
	ErrCodeInsufficientBalance   = "INSUFFICIENT_BALANCE"
	ErrCodeInsufficientCash      = "INSUFFICIENT_CASH"
	ErrCodeUnrepresentableAmount = "UNREPRESENTABLE_AMOUNT"
	ErrCodeInvalidAmount         = "INVALID_AMOUNT"
	ErrCodeInvalidOperation      = "INVALID_OPERATION"
	ErrCodeCardRetained          = "CARD_RETAINED"
	ErrCodeDuplicateAccount      = "DUPLICATE_ACCOUNT"
	ErrCodeDuplicateCard         = "DUPLICATE_CARD"
)

func NewInvalidIntentError(intent, state string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidIntent,
		Message: fmt.Sprintf("%s is not valid while the machine is in %s", intent, state),
	}
}

func NewPinMismatchError() *DomainError {
	return &DomainError{
		Code:    ErrCodePinMismatch,
		Message: "incorrect PIN",
	}
}

func NewAccountNotFoundError(number string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("account %s not found", number),
	}
}

func NewCardNotFoundError(number string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCardNotFound,
		Message: fmt.Sprintf("card %s not found", number),
	}
}

func NewInsufficientBalanceError(amount, balance int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientBalance,
		Message: fmt.Sprintf("cannot withdraw %d: account balance is %d", amount, balance),
	}
}

func NewInsufficientCashError(amount int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientCash,
		Message: fmt.Sprintf("the machine does not hold %d in cash", amount),
	}
}

func NewUnrepresentableAmountError(amount int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnrepresentableAmount,
		Message: fmt.Sprintf("cannot dispense exactly %d with the available notes", amount),
	}
}

func NewInvalidAmountError(amount int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %d", amount),
	}
}

func NewInvalidOperationError(op string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidOperation,
		Message: fmt.Sprintf("unknown operation %q", op),
	}
}

func NewCardRetainedError(attempts int) *DomainError {
	return &DomainError{
		Code:    ErrCodeCardRetained,
		Message: fmt.Sprintf("card retained after %d failed PIN attempts", attempts),
	}
}

func NewDuplicateAccountError(number string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateAccount,
		Message: fmt.Sprintf("account %s already registered", number),
	}
}

func NewDuplicateCardError(number string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateCard,
		Message: fmt.Sprintf("card %s already registered", number),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
