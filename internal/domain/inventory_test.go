package domain_test

import (
	"testing"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCashInventory(t *testing.T) {
	t.Run("provisions default stock", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.DefaultStock())

		require.NoError(t, err)
		assert.Equal(t, int64(2250), inv.TotalValue())
		assert.Equal(t, 10, inv.Count(domain.Bill100))
		assert.Equal(t, 50, inv.Count(domain.Bill1))
	})

	t.Run("missing denominations default to zero", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.Bundle{domain.Bill100: 1})

		require.NoError(t, err)
		assert.Equal(t, int64(100), inv.TotalValue())
		assert.Equal(t, 0, inv.Count(domain.Bill50))
	})

	t.Run("rejects unknown denomination", func(t *testing.T) {
		_, err := domain.NewCashInventory(domain.Bundle{domain.Denomination(7): 3})

		assert.Error(t, err)
	})

	t.Run("rejects negative count", func(t *testing.T) {
		_, err := domain.NewCashInventory(domain.Bundle{domain.Bill10: -1})

		assert.Error(t, err)
	})
}

func TestCashInventory_HasSufficientCash(t *testing.T) {
	inv, err := domain.NewCashInventory(domain.Bundle{domain.Bill100: 1})
	require.NoError(t, err)

	assert.True(t, inv.HasSufficientCash(100))
	assert.True(t, inv.HasSufficientCash(50))
	assert.False(t, inv.HasSufficientCash(101))
}

func TestCashInventory_Dispense(t *testing.T) {
	t.Run("greedy breakdown from default stock", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.DefaultStock())
		require.NoError(t, err)

		dispensed, err := inv.Dispense(230)

		require.NoError(t, err)
		assert.Equal(t, domain.Bundle{
			domain.Bill100: 2,
			domain.Bill20:  1,
			domain.Bill10:  1,
		}, dispensed)
		assert.Equal(t, int64(230), dispensed.Value())
		assert.Equal(t, 8, inv.Count(domain.Bill100))
		assert.Equal(t, 19, inv.Count(domain.Bill20))
		assert.Equal(t, 29, inv.Count(domain.Bill10))
		assert.Equal(t, int64(2020), inv.TotalValue())
	})

	t.Run("falls through to smaller notes when large ones run out", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.Bundle{
			domain.Bill100: 1,
			domain.Bill20:  5,
		})
		require.NoError(t, err)

		dispensed, err := inv.Dispense(180)

		require.NoError(t, err)
		assert.Equal(t, domain.Bundle{
			domain.Bill100: 1,
			domain.Bill20:  4,
		}, dispensed)
	})

	t.Run("sufficient total but unrepresentable amount rolls back", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.Bundle{domain.Bill100: 1})
		require.NoError(t, err)
		require.True(t, inv.HasSufficientCash(50))

		before := inv.Counts()
		_, err = inv.Dispense(50)

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnrepresentableAmount))
		assert.Equal(t, before, inv.Counts())
	})

	t.Run("partial greedy pass leaves no trace on failure", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.Bundle{
			domain.Bill100: 2,
			domain.Bill20:  1,
		})
		require.NoError(t, err)

		before := inv.Counts()
		_, err = inv.Dispense(130)

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnrepresentableAmount))
		assert.Equal(t, before, inv.Counts())
		assert.Equal(t, int64(220), inv.TotalValue())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.DefaultStock())
		require.NoError(t, err)

		_, err = inv.Dispense(0)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))

		_, err = inv.Dispense(-40)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))
	})

	t.Run("counts never go negative across repeated dispensing", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.Bundle{domain.Bill10: 3})
		require.NoError(t, err)

		_, err = inv.Dispense(10)
		require.NoError(t, err)
		_, err = inv.Dispense(20)
		require.NoError(t, err)

		_, err = inv.Dispense(10)
		assert.Error(t, err)

		for _, d := range domain.Denominations {
			assert.GreaterOrEqual(t, inv.Count(d), 0)
		}
	})
}

func TestCashInventory_Restock(t *testing.T) {
	t.Run("adds notes to live counts", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.Bundle{domain.Bill100: 1})
		require.NoError(t, err)

		err = inv.Restock(domain.Bundle{domain.Bill100: 2, domain.Bill5: 4})

		require.NoError(t, err)
		assert.Equal(t, 3, inv.Count(domain.Bill100))
		assert.Equal(t, 4, inv.Count(domain.Bill5))
		assert.Equal(t, int64(320), inv.TotalValue())
	})

	t.Run("rejects unknown denomination without partial apply", func(t *testing.T) {
		inv, err := domain.NewCashInventory(domain.Bundle{domain.Bill100: 1})
		require.NoError(t, err)

		err = inv.Restock(domain.Bundle{domain.Bill100: 2, domain.Denomination(3): 1})

		assert.Error(t, err)
		assert.Equal(t, 1, inv.Count(domain.Bill100))
	})
}
