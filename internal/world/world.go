// Package world is an in-memory stand-in for the game world the economy is
// embedded in: block containers, online player sessions, and dropped item
// stacks. World state carries no locks; the host rule is that all access
// happens on the designated goroutine (see internal/sched).
package world

import (
	"log/slog"
	"time"

	"github.com/jhooc77/gringotts/internal/dependencies/clock"
	"github.com/jhooc77/gringotts/internal/model"
)

// Default inventory sizes, in slots
const (
	PlayerInventorySize = 36
	EnderChestSize      = 27
	ContainerSize       = 27
)

// Session is a player's live presence in the world
type Session struct {
	PlayerID   model.PlayerID
	Location   model.Location
	Inventory  *model.Inventory
	EnderChest *model.Inventory
	JoinedAt   time.Time
}

// Drop is a physical item stack emitted into the world
type Drop struct {
	Location     model.Location
	Denomination model.Denomination
	Count        int64
}

// World holds container blocks, online sessions and dropped stacks
type World struct {
	containers map[model.Location]*model.Inventory
	sessions   map[model.PlayerID]*Session
	drops      []Drop

	clock  clock.Clock
	logger *slog.Logger
}

// New creates an empty world
func New(clk clock.Clock, logger *slog.Logger) *World {
	return &World{
		containers: make(map[model.Location]*model.Inventory),
		sessions:   make(map[model.PlayerID]*Session),
		clock:      clk,
		logger:     logger,
	}
}

// PlaceContainer creates a container block at the given location, or returns
// the existing one
func (w *World) PlaceContainer(loc model.Location, size int) *model.Inventory {
	if inv, ok := w.containers[loc]; ok {
		return inv
	}
	inv := model.NewInventory(size)
	w.containers[loc] = inv
	return inv
}

// Container returns the container block at the given location, if any
func (w *World) Container(loc model.Location) (*model.Inventory, bool) {
	inv, ok := w.containers[loc]
	return inv, ok
}

// BreakContainer removes the container block at the given location.
// Its contents are destroyed with it.
func (w *World) BreakContainer(loc model.Location) {
	delete(w.containers, loc)
}

// Join brings a player online at the given location
func (w *World) Join(playerID model.PlayerID, loc model.Location) *Session {
	if sess, ok := w.sessions[playerID]; ok {
		sess.Location = loc
		return sess
	}
	sess := &Session{
		PlayerID:   playerID,
		Location:   loc,
		Inventory:  model.NewInventory(PlayerInventorySize),
		EnderChest: model.NewInventory(EnderChestSize),
		JoinedAt:   w.clock.Now(),
	}
	w.sessions[playerID] = sess

	w.logger.Info("player joined",
		slog.String("player_id", string(playerID)),
		slog.String("location", loc.String()),
	)
	return sess
}

// Leave takes a player offline. Their inventories are discarded; persistent
// balance lives in containers and the ledger.
func (w *World) Leave(playerID model.PlayerID) {
	delete(w.sessions, playerID)
}

// SessionFor resolves the live session of an account holder. Returns nil
// unless the holder is a player who is currently online.
func (w *World) SessionFor(holder model.AccountHolder) *Session {
	playerID, ok := holder.Player()
	if !ok {
		return nil
	}
	return w.sessions[playerID]
}

// DropStack emits a physical stack of denomination items at a location
func (w *World) DropStack(loc model.Location, denom model.Denomination, count int64) {
	if count <= 0 {
		return
	}
	w.drops = append(w.drops, Drop{Location: loc, Denomination: denom, Count: count})

	w.logger.Info("dropped overflow stack",
		slog.String("location", loc.String()),
		slog.String("item", string(denom.Key)),
		slog.Int64("count", count),
	)
}

// Drops returns all stacks dropped so far
func (w *World) Drops() []Drop {
	return w.drops
}
