package domain

import "fmt"

// Denomination is a note face value the inventory tracks a count for.
type Denomination int64

const (
	Bill100 Denomination = 100
	Bill50  Denomination = 50
	Bill20  Denomination = 20
	Bill10  Denomination = 10
	Bill5   Denomination = 5
	Bill1   Denomination = 1
)

// Denominations lists every tracked denomination, highest face value first.
// The dispensing pass depends on this order.
var Denominations = []Denomination{Bill100, Bill50, Bill20, Bill10, Bill5, Bill1}

// Bundle is a per-denomination note count, used both for dispensed
// breakdowns and for restocking.
type Bundle map[Denomination]int

// Value sums face value times count over the bundle.
func (b Bundle) Value() int64 {
	var total int64
	for d, n := range b {
		total += int64(d) * int64(n)
	}
	return total
}

// CashInventory owns the machine's denominated cash reserve. Counts never go
// negative: a dispense either commits exactly or leaves the counts untouched.
type CashInventory struct {
	counts map[Denomination]int
}

// DefaultStock is the stock a freshly provisioned machine is loaded with.
func DefaultStock() Bundle {
	return Bundle{
		Bill100: 10,
		Bill50:  10,
		Bill20:  20,
		Bill10:  30,
		Bill5:   20,
		Bill1:   50,
	}
}

func NewCashInventory(stock Bundle) (*CashInventory, error) {
	inv := &CashInventory{counts: make(map[Denomination]int, len(Denominations))}
	for _, d := range Denominations {
		inv.counts[d] = 0
	}
	for d, n := range stock {
		if _, ok := inv.counts[d]; !ok {
			return nil, fmt.Errorf("unknown denomination %d", d)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative count %d for denomination %d", n, d)
		}
		inv.counts[d] = n
	}
	return inv, nil
}

// Count reports the live note count for one denomination.
func (inv *CashInventory) Count(d Denomination) int {
	return inv.counts[d]
}

// Counts returns a copy of the live counts.
func (inv *CashInventory) Counts() Bundle {
	out := make(Bundle, len(inv.counts))
	for d, n := range inv.counts {
		out[d] = n
	}
	return out
}

// TotalValue sums face value times count over the whole inventory.
func (inv *CashInventory) TotalValue() int64 {
	var total int64
	for d, n := range inv.counts {
		total += int64(d) * int64(n)
	}
	return total
}

// HasSufficientCash reports whether the total inventory value covers amount.
// It is a coarse filter: the total can cover an amount that the available
// note mix still cannot produce exactly, which Dispense detects on its own.
func (inv *CashInventory) HasSufficientCash(amount int64) bool {
	return inv.TotalValue() >= amount
}

// Dispense runs a greedy pass from the highest denomination down, taking as
// many notes of each as the remaining amount and the live count allow. If a
// remainder is left after the pass, every provisional decrement is restored
// and the call fails with no net inventory change. On success the decremented
// counts are the new inventory state and the breakdown is returned.
func (inv *CashInventory) Dispense(amount int64) (Bundle, error) {
	if amount <= 0 {
		return nil, NewInvalidAmountError(amount)
	}

	dispensed := Bundle{}
	remaining := amount

	for _, d := range Denominations {
		value := int64(d)
		count := int(remaining / value)
		if count > inv.counts[d] {
			count = inv.counts[d]
		}
		if count > 0 {
			dispensed[d] = count
			remaining -= int64(count) * value
			inv.counts[d] -= count
		}
	}

	if remaining > 0 {
		for d, n := range dispensed {
			inv.counts[d] += n
		}
		return nil, NewUnrepresentableAmountError(amount)
	}
	return dispensed, nil
}

// Restock adds notes to the inventory, for operator refills.
func (inv *CashInventory) Restock(refill Bundle) error {
	for d, n := range refill {
		if _, ok := inv.counts[d]; !ok {
			return fmt.Errorf("unknown denomination %d", d)
		}
		if n < 0 {
			return fmt.Errorf("negative count %d for denomination %d", n, d)
		}
	}
	for d, n := range refill {
		inv.counts[d] += n
	}
	return nil
}
