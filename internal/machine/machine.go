// Package machine implements the ATM session state machine and its
// transactional cash-dispensing engine. The machine consumes intents from a
// harness (console, HTTP, test driver) and produces outcome notifications;
// it never captures input or renders output itself.
package machine

import (
	"errors"
	"log/slog"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/DanielPopoola/atm-teller/internal/journal"
)

const journalOutcomeOK = journal.OutcomeOK

// AccountLookup resolves account numbers against the bank-side registry.
type AccountLookup interface {
	Account(number string) (*domain.Account, error)
}

// Machine owns the current state, the session context and the cash
// inventory. It is single-threaded by contract: callers that introduce
// concurrency (an HTTP listener, say) serialize at their own boundary.
type Machine struct {
	accounts  AccountLookup
	inventory *domain.CashInventory
	session   *domain.Session
	state     State

	// maxPinAttempts > 0 retains the card after that many consecutive PIN
	// failures; 0 allows unlimited retries.
	maxPinAttempts int

	journal *journal.Journal
	logger  *slog.Logger
}

type Option func(*Machine)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

func WithJournal(j *journal.Journal) Option {
	return func(m *Machine) { m.journal = j }
}

func WithMaxPinAttempts(n int) Option {
	return func(m *Machine) { m.maxPinAttempts = n }
}

func New(accounts AccountLookup, inventory *domain.CashInventory, opts ...Option) *Machine {
	m := &Machine{
		accounts:  accounts,
		inventory: inventory,
		session:   domain.NewSession(),
		state:     StateIdle,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State reports the machine's current state.
func (m *Machine) State() State {
	return m.state
}

// Balance reports the loaded account's balance, if a session has one.
func (m *Machine) Balance() (int64, bool) {
	account := m.session.Account()
	if account == nil {
		return 0, false
	}
	return account.Balance(), true
}

// Inventory exposes the cash reserve for the operator surface.
func (m *Machine) Inventory() *domain.CashInventory {
	return m.inventory
}

// InsertCard accepts a card while the machine is idle.
func (m *Machine) InsertCard(card *domain.Card) (*Result, error) {
	if card == nil {
		return nil, errors.New("nil card")
	}
	if m.state != StateIdle {
		return nil, domain.NewInvalidIntentError(intentInsertCard, m.state.String())
	}

	m.session.SetCard(card)
	m.state = StateHasCard
	m.logger.Info("card inserted", "card_number", card.Number())
	return &Result{Event: EventCardAccepted, State: m.state}, nil
}

// RemoveCard ejects the card. Before an operation is locked in this is a
// plain ejection; from SelectOperation or Transaction it cancels the session
// outright. Either way the machine comes to rest in Idle with the session
// cleared.
func (m *Machine) RemoveCard() (*Result, error) {
	switch m.state {
	case StateIdle:
		return nil, domain.NewInvalidIntentError(intentRemoveCard, m.state.String())

	case StateHasCard, StatePinValidation:
		m.endSession()
		m.logger.Info("card ejected")
		return &Result{Event: EventCardEjected, State: m.state}, nil

	case StateSelectOperation, StateTransaction:
		m.endSession()
		m.logger.Info("session cancelled by card removal")
		return &Result{Event: EventSessionCancelled, State: m.state}, nil

	default:
		return nil, domain.NewInvalidIntentError(intentRemoveCard, m.state.String())
	}
}

// endSession clears the session context and returns the machine to Idle.
func (m *Machine) endSession() {
	m.session.Clear()
	m.state = StateIdle
}

func (m *Machine) record(op domain.Operation, amount, balanceAfter int64, dispensed domain.Bundle, outcome string) {
	if m.journal == nil {
		return
	}
	var cardNumber string
	if card := m.session.Card(); card != nil {
		cardNumber = card.Number()
	}
	m.journal.Record(journal.Entry{
		CardNumber:   cardNumber,
		Operation:    op,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Dispensed:    dispensed,
		Outcome:      outcome,
	})
}
