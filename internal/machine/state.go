package machine

// State identifies where the machine is in the session lifecycle. The set is
// closed: every intent handler is a total switch over these five values, so
// no (state, intent) pair is ever undefined.
type State string

const (
	StateIdle            State = "IDLE"
	StateHasCard         State = "HAS_CARD"
	StatePinValidation   State = "PIN_VALIDATION"
	StateSelectOperation State = "SELECT_OPERATION"
	StateTransaction     State = "TRANSACTION"
)

func (s State) String() string {
	return string(s)
}

// Intent names, used in invalid-intent outcomes and logs.
const (
	intentInsertCard         = "insert-card"
	intentRemoveCard         = "remove-card"
	intentSelectOperation    = "select-operation"
	intentConfirmTransaction = "confirm-transaction"
)
