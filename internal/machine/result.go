package machine

import "github.com/DanielPopoola/atm-teller/internal/domain"

// Event labels the notification an accepted intent produced.
type Event string

const (
	EventCardAccepted     Event = "CARD_ACCEPTED"
	EventCardEjected      Event = "CARD_EJECTED"
	EventSessionCancelled Event = "SESSION_CANCELLED"
	EventPinRequested     Event = "PIN_REQUESTED"
	EventOperationChosen  Event = "OPERATION_CHOSEN"
	EventTransactionReady Event = "TRANSACTION_READY"
	EventCashDispensed    Event = "CASH_DISPENSED"
	EventBalanceReported  Event = "BALANCE_REPORTED"
)

// Result is the outcome notification for an accepted intent. Rejected
// intents come back as *domain.DomainError values instead; the machine is in
// a well-defined state either way.
type Result struct {
	Event Event `json:"event"`
	State State `json:"state"`

	// Balance is set after a balance inquiry or a completed withdrawal.
	Balance int64 `json:"balance,omitempty"`
	// Dispensed is the note breakdown of a completed withdrawal.
	Dispensed domain.Bundle `json:"dispensed,omitempty"`
}
