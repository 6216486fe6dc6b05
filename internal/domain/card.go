// Package domain holds the ATM's core entities: cards, accounts, the cash
// inventory and the per-session context the state machine mutates.
package domain

import (
	"errors"
	"fmt"
)

// PinLength is the number of digits a card PIN must have.
const PinLength = 4

// Card is the immutable credential binding a PIN to an account number.
// Identity is the card number.
type Card struct {
	number        string
	pin           string
	accountNumber string
}

func NewCard(number, pin, accountNumber string) (*Card, error) {
	if number == "" {
		return nil, errors.New("card number is required")
	}
	if accountNumber == "" {
		return nil, errors.New("account number is required")
	}
	if len(pin) != PinLength {
		return nil, fmt.Errorf("PIN must be %d digits", PinLength)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return nil, errors.New("PIN must be numeric")
		}
	}
	return &Card{number: number, pin: pin, accountNumber: accountNumber}, nil
}

func (c *Card) Number() string {
	return c.number
}

func (c *Card) AccountNumber() string {
	return c.accountNumber
}

// ValidatePIN compares the submitted PIN against the stored one by equality.
func (c *Card) ValidatePIN(pin string) bool {
	return c.pin == pin
}
