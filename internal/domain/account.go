package domain

import "errors"

// Account holds a balance in whole currency units. The balance never goes
// negative: Withdraw checks funds and applies the debit in one step with its
// single caller.
type Account struct {
	number  string
	balance int64
}

func NewAccount(number string, balance int64) (*Account, error) {
	if number == "" {
		return nil, errors.New("account number is required")
	}
	if balance < 0 {
		return nil, errors.New("opening balance cannot be negative")
	}
	return &Account{number: number, balance: balance}, nil
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Balance() int64 {
	return a.balance
}

func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return NewInvalidAmountError(amount)
	}
	if amount > a.balance {
		return NewInsufficientBalanceError(amount, a.balance)
	}
	a.balance -= amount
	return nil
}

func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return NewInvalidAmountError(amount)
	}
	a.balance += amount
	return nil
}
