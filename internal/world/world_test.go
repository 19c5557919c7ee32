package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhooc77/gringotts/internal/dependencies/mocks"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/testutil"
)

func newTestWorld() *World {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return New(clk, testutil.NopLogger())
}

func TestContainers(t *testing.T) {
	w := newTestWorld()
	loc := model.Location{World: "world", X: 1}

	_, ok := w.Container(loc)
	assert.False(t, ok)

	inv := w.PlaceContainer(loc, ContainerSize)
	assert.Equal(t, ContainerSize, inv.Size())

	// Placing again returns the existing container, contents intact
	inv.AddItems("emerald", 10, 64)
	again := w.PlaceContainer(loc, ContainerSize)
	assert.Equal(t, int64(10), again.Count("emerald"))

	w.BreakContainer(loc)
	_, ok = w.Container(loc)
	assert.False(t, ok)
}

func TestSessions(t *testing.T) {
	w := newTestWorld()
	loc := model.Location{World: "world", X: 1}

	sess := w.Join("alice", loc)
	assert.Equal(t, PlayerInventorySize, sess.Inventory.Size())
	assert.Equal(t, EnderChestSize, sess.EnderChest.Size())

	// Re-joining keeps the session but moves the player
	moved := model.Location{World: "world", X: 9}
	again := w.Join("alice", moved)
	assert.Same(t, sess, again)
	assert.Equal(t, moved, again.Location)

	w.Leave("alice")
	assert.Nil(t, w.SessionFor(model.PlayerHolder("alice")))
}

func TestSessionForNonPlayerHolder(t *testing.T) {
	w := newTestWorld()
	w.Join("alice", model.Location{World: "world"})

	// A faction named like an online player still has no session
	faction := model.AccountHolder{Type: model.HolderFaction, ID: "alice"}
	assert.Nil(t, w.SessionFor(faction))
	assert.NotNil(t, w.SessionFor(model.PlayerHolder("alice")))
}

func TestDropStack(t *testing.T) {
	w := newTestWorld()
	loc := model.Location{World: "world", X: 1}
	denom := model.Denomination{Key: "emerald", Value: 1, StackSize: 64}

	w.DropStack(loc, denom, 5)
	w.DropStack(loc, denom, 0)
	w.DropStack(loc, denom, -1)

	drops := w.Drops()
	assert.Len(t, drops, 1)
	assert.Equal(t, int64(5), drops[0].Count)
}
