package machine

import (
	"errors"

	"github.com/DanielPopoola/atm-teller/internal/domain"
)

// ConfirmTransaction executes the selected operation. A balance inquiry
// always completes and ends the session. A withdrawal runs a gate sequence
// where the first failing gate aborts with no mutation; the account debit
// and the inventory decrement commit together or not at all. Business
// declines hold the machine in Transaction so the amount can be retried.
func (m *Machine) ConfirmTransaction(amount int64) (*Result, error) {
	if m.state == StateHasCard {
		// Confirming before any operation was chosen aborts the session:
		// the card comes back and the machine returns to rest.
		state := m.state
		m.endSession()
		return nil, domain.NewInvalidIntentError(intentConfirmTransaction, state.String())
	}
	if m.state != StateTransaction {
		return nil, domain.NewInvalidIntentError(intentConfirmTransaction, m.state.String())
	}

	switch m.session.Operation() {
	case domain.OpBalanceInquiry:
		return m.reportBalance()
	case domain.OpWithdraw:
		return m.withdraw(amount)
	default:
		return nil, domain.NewInvalidIntentError(intentConfirmTransaction, m.state.String())
	}
}

func (m *Machine) reportBalance() (*Result, error) {
	balance := m.session.Account().Balance()
	m.record(domain.OpBalanceInquiry, 0, balance, nil, journalOutcomeOK)
	m.logger.Info("balance reported", "balance", balance)
	m.endSession()
	return &Result{Event: EventBalanceReported, State: m.state, Balance: balance}, nil
}

func (m *Machine) withdraw(amount int64) (*Result, error) {
	account := m.session.Account()

	if amount <= 0 {
		return nil, domain.NewInvalidAmountError(amount)
	}

	if amount > account.Balance() {
		err := domain.NewInsufficientBalanceError(amount, account.Balance())
		m.record(domain.OpWithdraw, amount, account.Balance(), nil, err.Code)
		m.logger.Warn("withdrawal declined", "amount", amount, "reason", err.Code)
		return nil, err
	}

	if !m.inventory.HasSufficientCash(amount) {
		err := domain.NewInsufficientCashError(amount)
		m.record(domain.OpWithdraw, amount, account.Balance(), nil, err.Code)
		m.logger.Warn("withdrawal declined", "amount", amount, "reason", err.Code)
		return nil, err
	}

	if err := account.Withdraw(amount); err != nil {
		return nil, err
	}

	dispensed, err := m.inventory.Dispense(amount)
	if err != nil {
		// The debit happened but the note mix cannot produce the exact
		// amount: credit it back so the account and the inventory agree.
		if depositErr := account.Deposit(amount); depositErr != nil {
			m.logger.Error("rollback failed", "amount", amount, "error", depositErr)
			return nil, depositErr
		}
		var code string
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			code = domainErr.Code
		}
		m.record(domain.OpWithdraw, amount, account.Balance(), nil, code)
		m.logger.Warn("withdrawal rolled back", "amount", amount, "reason", code)
		return nil, err
	}

	balance := account.Balance()
	m.record(domain.OpWithdraw, amount, balance, dispensed, journalOutcomeOK)
	m.logger.Info("cash dispensed", "amount", amount, "balance", balance)
	m.endSession()
	return &Result{Event: EventCashDispensed, State: m.state, Balance: balance, Dispensed: dispensed}, nil
}
