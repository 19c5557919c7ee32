package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrency(t *testing.T) {
	t.Run("sorts denominations descending by value", func(t *testing.T) {
		c, err := NewCurrency("emerald", "emeralds", 2, []Denomination{
			{Key: "emerald", Value: 1},
			{Key: "emerald_block", Value: 64},
		})
		require.NoError(t, err)

		assert.Equal(t, ItemKey("emerald_block"), c.Denominations[0].Key)
		assert.Equal(t, ItemKey("emerald"), c.Denominations[1].Key)
		assert.Equal(t, int64(1), c.SmallestValue())
	})

	t.Run("defaults plural names and stack sizes", func(t *testing.T) {
		c, err := NewCurrency("emerald", "", 2, []Denomination{
			{Key: "emerald", Value: 1, UnitName: "emerald"},
		})
		require.NoError(t, err)

		assert.Equal(t, "emeralds", c.NamePlural)
		assert.Equal(t, "emeralds", c.Denominations[0].UnitNamePlural)
		assert.Equal(t, DefaultStackSize, c.Denominations[0].StackSize)
	})

	t.Run("rejects empty denomination sets", func(t *testing.T) {
		_, err := NewCurrency("emerald", "emeralds", 2, nil)
		assert.ErrorIs(t, err, ErrNoDenominations)
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		_, err := NewCurrency("emerald", "emeralds", 2, []Denomination{
			{Key: "emerald", Value: 0},
		})
		assert.ErrorIs(t, err, ErrInvalidDenomination)
	})

	t.Run("rejects missing item keys", func(t *testing.T) {
		_, err := NewCurrency("emerald", "emeralds", 2, []Denomination{
			{Key: "", Value: 1},
		})
		assert.ErrorIs(t, err, ErrInvalidDenomination)
	})
}

func TestDenominationFor(t *testing.T) {
	c, err := NewCurrency("emerald", "emeralds", 2, []Denomination{
		{Key: "emerald", Value: 1},
		{Key: "emerald_block", Value: 64},
	})
	require.NoError(t, err)

	d, ok := c.DenominationFor("emerald_block")
	assert.True(t, ok)
	assert.Equal(t, int64(64), d.Value)

	_, ok = c.DenominationFor("diamond")
	assert.False(t, ok)
}
