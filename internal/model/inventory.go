package model

// ItemStack is a homogeneous pile of items occupying one inventory slot
type ItemStack struct {
	Key   ItemKey
	Count int64
}

// Inventory is a fixed number of slots holding item stacks.
// It is not safe for concurrent use: the host environment requires all
// inventory access to happen on the designated goroutine.
type Inventory struct {
	slots []ItemStack
}

// NewInventory creates an empty inventory with the given number of slots
func NewInventory(size int) *Inventory {
	return &Inventory{slots: make([]ItemStack, size)}
}

// Size returns the number of slots
func (inv *Inventory) Size() int {
	return len(inv.slots)
}

// Count returns the total number of items of the given type
func (inv *Inventory) Count(key ItemKey) int64 {
	var total int64
	for _, s := range inv.slots {
		if s.Key == key {
			total += s.Count
		}
	}
	return total
}

// AddItems stores up to count items of the given type, packing existing
// stacks up to stackSize before opening new slots. Returns the number of
// items actually absorbed, which is less than count when the inventory
// runs out of space.
func (inv *Inventory) AddItems(key ItemKey, count int64, stackSize int) int64 {
	if count <= 0 || stackSize <= 0 {
		return 0
	}
	remaining := count

	// Top up existing stacks of the same type first
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if s.Count == 0 || s.Key != key {
			continue
		}
		free := int64(stackSize) - s.Count
		if free <= 0 {
			continue
		}
		n := min(free, remaining)
		s.Count += n
		remaining -= n
	}

	// Then fill empty slots
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if s.Count != 0 {
			continue
		}
		n := min(int64(stackSize), remaining)
		inv.slots[i] = ItemStack{Key: key, Count: n}
		remaining -= n
	}

	return count - remaining
}

// RemoveItems takes up to count items of the given type out of the
// inventory and returns the number actually removed
func (inv *Inventory) RemoveItems(key ItemKey, count int64) int64 {
	if count <= 0 {
		return 0
	}
	remaining := count

	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if s.Count == 0 || s.Key != key {
			continue
		}
		n := min(s.Count, remaining)
		s.Count -= n
		remaining -= n
		if s.Count == 0 {
			inv.slots[i] = ItemStack{}
		}
	}

	return count - remaining
}

// Stacks returns a copy of all non-empty stacks
func (inv *Inventory) Stacks() []ItemStack {
	var stacks []ItemStack
	for _, s := range inv.slots {
		if s.Count > 0 {
			stacks = append(stacks, s)
		}
	}
	return stacks
}
