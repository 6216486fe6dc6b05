package domain

// Session is the machine's mutable per-session context: the inserted card,
// the account loaded after PIN validation, the chosen operation and the
// running PIN-failure count. One instance per machine, reused across
// sessions and cleared at the end of every one.
type Session struct {
	card        *Card
	account     *Account
	operation   Operation
	pinFailures int
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Card() *Card {
	return s.card
}

func (s *Session) SetCard(card *Card) {
	s.card = card
}

func (s *Session) Account() *Account {
	return s.account
}

func (s *Session) SetAccount(account *Account) {
	s.account = account
}

func (s *Session) Operation() Operation {
	return s.operation
}

func (s *Session) SetOperation(op Operation) {
	s.operation = op
}

// RecordPinFailure bumps the failure count and returns the new total.
func (s *Session) RecordPinFailure() int {
	s.pinFailures++
	return s.pinFailures
}

func (s *Session) PinFailures() int {
	return s.pinFailures
}

// Clear resets every field. Called at the end of every session, whether it
// succeeded, failed or was cancelled.
func (s *Session) Clear() {
	s.card = nil
	s.account = nil
	s.operation = ""
	s.pinFailures = 0
}
