package model

import (
	"fmt"
	"sort"
)

// ItemKey identifies a physical item type in the game world
type ItemKey string

// DefaultStackSize is the physical stack limit used when a denomination
// does not declare its own
const DefaultStackSize = 64

// Denomination maps a physical item type to a fixed value in the smallest
// currency unit
type Denomination struct {
	Key            ItemKey
	Value          int64 // smallest-unit value, always positive
	UnitName       string
	UnitNamePlural string
	StackSize      int // physical stack limit for this item
}

// Currency is a non-empty set of denominations ordered descending by value
type Currency struct {
	Name       string
	NamePlural string
	Digits     int

	// Denominations is sorted descending by value at construction time
	Denominations []Denomination
}

// NewCurrency validates and normalizes a currency definition.
// Denominations are sorted descending by value; missing plural unit names
// and stack sizes get defaults.
func NewCurrency(name, namePlural string, digits int, denoms []Denomination) (*Currency, error) {
	if len(denoms) == 0 {
		return nil, ErrNoDenominations
	}
	if namePlural == "" {
		namePlural = name + "s"
	}

	normalized := make([]Denomination, len(denoms))
	copy(normalized, denoms)
	for i, d := range normalized {
		if d.Key == "" {
			return nil, fmt.Errorf("%w: missing item key", ErrInvalidDenomination)
		}
		if d.Value <= 0 {
			return nil, fmt.Errorf("%w: %s has non-positive value %d", ErrInvalidDenomination, d.Key, d.Value)
		}
		if d.UnitNamePlural == "" && d.UnitName != "" {
			normalized[i].UnitNamePlural = d.UnitName + "s"
		}
		if d.StackSize <= 0 {
			normalized[i].StackSize = DefaultStackSize
		}
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Value > normalized[j].Value
	})

	return &Currency{
		Name:          name,
		NamePlural:    namePlural,
		Digits:        digits,
		Denominations: normalized,
	}, nil
}

// SmallestValue returns the value of the smallest denomination.
// A currency always has at least one denomination.
func (c *Currency) SmallestValue() int64 {
	return c.Denominations[len(c.Denominations)-1].Value
}

// DenominationFor returns the denomination backed by the given item type
func (c *Currency) DenominationFor(key ItemKey) (Denomination, bool) {
	for _, d := range c.Denominations {
		if d.Key == key {
			return d, true
		}
	}
	return Denomination{}, false
}
