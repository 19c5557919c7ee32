package vault

import (
	"github.com/jhooc77/gringotts/internal/model"
)

// InventoryBackend is a Backend over a single physical inventory: a
// registered container, a player inventory or an ender chest.
type InventoryBackend struct {
	inv      *model.Inventory
	currency *model.Currency
}

// NewInventoryBackend creates a backend over the given inventory
func NewInventoryBackend(inv *model.Inventory, currency *model.Currency) *InventoryBackend {
	return &InventoryBackend{inv: inv, currency: currency}
}

// Ensure InventoryBackend implements Backend
var _ Backend = (*InventoryBackend)(nil)

// Add greedily decomposes amount into denominations, largest first, and
// packs the items into the inventory up to each denomination's physical
// stack size. Returns the value absorbed; whatever does not fit is left
// for the next backend.
func (b *InventoryBackend) Add(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	remaining := amount

	for _, d := range b.currency.Denominations {
		if d.Value > remaining {
			continue
		}
		want := remaining / d.Value
		stored := b.inv.AddItems(d.Key, want, d.StackSize)
		remaining -= stored * d.Value
		if remaining == 0 {
			break
		}
	}

	return amount - remaining
}

// Remove takes value out of the inventory: exact greedy change largest
// denomination first, then, if a sub-denomination tail is left, a single
// overpay item of the smallest denomination that covers it. The result may
// exceed amount (overpay, negative remainder for the caller) or fall short
// of it (inventory exhausted).
func (b *InventoryBackend) Remove(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	remaining := amount

	for _, d := range b.currency.Denominations {
		if remaining <= 0 {
			break
		}
		want := remaining / d.Value
		if want == 0 {
			continue
		}
		got := b.inv.RemoveItems(d.Key, want)
		remaining -= got * d.Value
	}

	if remaining > 0 {
		// No exact change left; overpay with the cheapest single item that
		// covers the tail. Denominations are sorted descending, so walk
		// from the smallest up.
		denoms := b.currency.Denominations
		for i := len(denoms) - 1; i >= 0; i-- {
			d := denoms[i]
			if d.Value < remaining {
				continue
			}
			if b.inv.RemoveItems(d.Key, 1) == 1 {
				remaining -= d.Value
				break
			}
		}
	}

	return amount - remaining
}

// Balance sums the denomination value of everything in the inventory
func (b *InventoryBackend) Balance() int64 {
	var total int64
	for _, d := range b.currency.Denominations {
		total += b.inv.Count(d.Key) * d.Value
	}
	return total
}
