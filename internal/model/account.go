package model

import "fmt"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// HolderType distinguishes the kinds of entities that can own an account
type HolderType string

const (
	HolderPlayer  HolderType = "player"
	HolderFaction HolderType = "faction"
	HolderTown    HolderType = "town"
	HolderNation  HolderType = "nation"
)

// ValidHolderType reports whether t is one of the known holder kinds
func ValidHolderType(t HolderType) bool {
	switch t {
	case HolderPlayer, HolderFaction, HolderTown, HolderNation:
		return true
	}
	return false
}

// AccountHolder identifies the owner of an account.
// Only player holders can have a live session usable for inventory-backed
// storage; every other kind is chest-only.
type AccountHolder struct {
	Type HolderType
	ID   string
}

// PlayerHolder creates an AccountHolder for a player
func PlayerHolder(id PlayerID) AccountHolder {
	return AccountHolder{Type: HolderPlayer, ID: string(id)}
}

// Player returns the holder's player ID if the holder is a player
func (h AccountHolder) Player() (PlayerID, bool) {
	if h.Type != HolderPlayer {
		return "", false
	}
	return PlayerID(h.ID), true
}

func (h AccountHolder) String() string {
	return fmt.Sprintf("%s:%s", h.Type, h.ID)
}
