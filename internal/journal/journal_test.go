package journal_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/DanielPopoola/atm-teller/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal(t *testing.T) {
	t.Run("stamps entries with id and time", func(t *testing.T) {
		j := journal.New()

		entry := j.Record(journal.Entry{
			CardNumber:   "CARD001",
			Operation:    domain.OpWithdraw,
			Amount:       230,
			BalanceAfter: 4770,
			Dispensed:    domain.Bundle{domain.Bill100: 2, domain.Bill20: 1, domain.Bill10: 1},
			Outcome:      journal.OutcomeOK,
		})

		assert.NotEmpty(t, entry.ID)
		assert.WithinDuration(t, time.Now(), entry.Time, time.Second)
		assert.Equal(t, 1, j.Len())
	})

	t.Run("entries are returned oldest first as a copy", func(t *testing.T) {
		j := journal.New()
		j.Record(journal.Entry{CardNumber: "CARD001", Outcome: journal.OutcomeOK})
		j.Record(journal.Entry{CardNumber: "CARD002", Outcome: domain.ErrCodeInsufficientBalance})

		entries := j.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "CARD001", entries[0].CardNumber)
		assert.Equal(t, "CARD002", entries[1].CardNumber)

		entries[0].CardNumber = "MUTATED"
		assert.Equal(t, "CARD001", j.Entries()[0].CardNumber)
	})
}
