package domain_test

import (
	"testing"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates account successfully", func(t *testing.T) {
		account, err := domain.NewAccount("ACC001", 5000)

		require.NoError(t, err)
		assert.Equal(t, "ACC001", account.Number())
		assert.Equal(t, int64(5000), account.Balance())
	})

	t.Run("rejects empty account number", func(t *testing.T) {
		_, err := domain.NewAccount("", 100)

		assert.Error(t, err)
	})

	t.Run("rejects negative opening balance", func(t *testing.T) {
		_, err := domain.NewAccount("ACC001", -1)

		assert.Error(t, err)
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("debits the balance", func(t *testing.T) {
		account, err := domain.NewAccount("ACC001", 500)
		require.NoError(t, err)

		require.NoError(t, account.Withdraw(200))
		assert.Equal(t, int64(300), account.Balance())
	})

	t.Run("allows withdrawing the full balance", func(t *testing.T) {
		account, err := domain.NewAccount("ACC001", 500)
		require.NoError(t, err)

		require.NoError(t, account.Withdraw(500))
		assert.Equal(t, int64(0), account.Balance())
	})

	t.Run("rejects amounts over the balance", func(t *testing.T) {
		account, err := domain.NewAccount("ACC001", 100)
		require.NoError(t, err)

		err = account.Withdraw(101)

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInsufficientBalance))
		assert.Equal(t, int64(100), account.Balance())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		account, err := domain.NewAccount("ACC001", 100)
		require.NoError(t, err)

		assert.True(t, domain.IsErrorCode(account.Withdraw(0), domain.ErrCodeInvalidAmount))
		assert.True(t, domain.IsErrorCode(account.Withdraw(-5), domain.ErrCodeInvalidAmount))
		assert.Equal(t, int64(100), account.Balance())
	})
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("credits the balance", func(t *testing.T) {
		account, err := domain.NewAccount("ACC001", 100)
		require.NoError(t, err)

		require.NoError(t, account.Deposit(50))
		assert.Equal(t, int64(150), account.Balance())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		account, err := domain.NewAccount("ACC001", 100)
		require.NoError(t, err)

		assert.Error(t, account.Deposit(0))
		assert.Error(t, account.Deposit(-10))
	})
}
