package machine

import "github.com/DanielPopoola/atm-teller/internal/domain"

// SelectOperation advances the session toward a transaction. The same intent
// serves three states: from HasCard it opens PIN entry, from PinValidation
// it checks the submitted PIN and loads the account, and from
// SelectOperation it locks the operation in and arms the transaction.
func (m *Machine) SelectOperation(op domain.Operation, pin string) (*Result, error) {
	switch m.state {
	case StateHasCard:
		m.state = StatePinValidation
		m.logger.Info("awaiting PIN")
		return &Result{Event: EventPinRequested, State: m.state}, nil

	case StatePinValidation:
		return m.validatePin(op, pin)

	case StateSelectOperation:
		if err := validOperation(op); err != nil {
			return nil, err
		}
		m.session.SetOperation(op)
		m.state = StateTransaction
		m.logger.Info("operation selected", "operation", op)
		return &Result{Event: EventTransactionReady, State: m.state}, nil

	default:
		return nil, domain.NewInvalidIntentError(intentSelectOperation, m.state.String())
	}
}

func (m *Machine) validatePin(op domain.Operation, pin string) (*Result, error) {
	card := m.session.Card()

	if !card.ValidatePIN(pin) {
		failures := m.session.RecordPinFailure()
		m.logger.Warn("PIN mismatch", "card_number", card.Number(), "failures", failures)

		if m.maxPinAttempts > 0 && failures >= m.maxPinAttempts {
			m.endSession()
			m.logger.Warn("card retained", "card_number", card.Number())
			return nil, domain.NewCardRetainedError(failures)
		}
		return nil, domain.NewPinMismatchError()
	}

	account, err := m.accounts.Account(card.AccountNumber())
	if err != nil {
		// The card references an account the registry does not know.
		// Nothing was loaded; the session ends and the card comes back.
		m.endSession()
		m.logger.Error("account not found", "account_number", card.AccountNumber())
		return nil, err
	}

	if err := validOperation(op); err != nil {
		return nil, err
	}

	m.session.SetAccount(account)
	m.session.SetOperation(op)
	m.state = StateSelectOperation
	m.logger.Info("PIN accepted", "card_number", card.Number(), "operation", op)
	return &Result{Event: EventOperationChosen, State: m.state}, nil
}

func validOperation(op domain.Operation) error {
	switch op {
	case domain.OpWithdraw, domain.OpBalanceInquiry:
		return nil
	default:
		return domain.NewInvalidOperationError(string(op))
	}
}
