package domain_test

import (
	"testing"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Run("creates card successfully", func(t *testing.T) {
		card, err := domain.NewCard("CARD001", "1111", "ACC001")

		require.NoError(t, err)
		assert.Equal(t, "CARD001", card.Number())
		assert.Equal(t, "ACC001", card.AccountNumber())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		tests := []struct {
			name    string
			card    string
			pin     string
			account string
		}{
			{"empty card number", "", "1111", "ACC001"},
			{"empty account number", "CARD001", "1111", ""},
			{"short PIN", "CARD001", "111", "ACC001"},
			{"long PIN", "CARD001", "11111", "ACC001"},
			{"non-numeric PIN", "CARD001", "11a1", "ACC001"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := domain.NewCard(tt.card, tt.pin, tt.account)
				assert.Error(t, err)
			})
		}
	})
}

func TestCard_ValidatePIN(t *testing.T) {
	card, err := domain.NewCard("CARD001", "1111", "ACC001")
	require.NoError(t, err)

	assert.True(t, card.ValidatePIN("1111"))
	assert.False(t, card.ValidatePIN("2222"))
	assert.False(t, card.ValidatePIN(""))
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.Operation
		wantErr bool
	}{
		{"withdraw", domain.OpWithdraw, false},
		{"WITHDRAW", domain.OpWithdraw, false},
		{"balance", domain.OpBalanceInquiry, false},
		{"balance_inquiry", domain.OpBalanceInquiry, false},
		{" Balance ", domain.OpBalanceInquiry, false},
		{"deposit", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseOperation(tt.input)
			if tt.wantErr {
				assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidOperation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
