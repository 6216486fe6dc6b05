package domain

import "strings"

// Operation is the action a cardholder can run against the loaded account.
type Operation string

const (
	OpWithdraw       Operation = "WITHDRAW"
	OpBalanceInquiry Operation = "BALANCE_INQUIRY"
)

// ParseOperation maps harness input onto the closed operation set.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WITHDRAW":
		return OpWithdraw, nil
	case "BALANCE", "BALANCE_INQUIRY":
		return OpBalanceInquiry, nil
	default:
		return "", NewInvalidOperationError(s)
	}
}
