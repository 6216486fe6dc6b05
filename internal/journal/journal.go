// Package journal keeps an in-memory record of every confirmed transaction,
// successful or declined. Entries are what a paper receipt would carry.
package journal

import (
	"time"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/google/uuid"
)

// OutcomeOK marks an entry for a transaction that completed.
const OutcomeOK = "OK"

type Entry struct {
	ID           string           `json:"id"`
	Time         time.Time        `json:"time"`
	CardNumber   string           `json:"card_number"`
	Operation    domain.Operation `json:"operation"`
	Amount       int64            `json:"amount"`
	BalanceAfter int64            `json:"balance_after"`
	Dispensed    domain.Bundle    `json:"dispensed,omitempty"`
	Outcome      string           `json:"outcome"`
}

type Journal struct {
	entries []Entry
}

func New() *Journal {
	return &Journal{}
}

// Record stamps the entry with an ID and timestamp and appends it.
func (j *Journal) Record(e Entry) Entry {
	e.ID = uuid.New().String()
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	j.entries = append(j.entries, e)
	return e
}

// Entries returns a copy of the recorded entries, oldest first.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *Journal) Len() int {
	return len(j.entries)
}
