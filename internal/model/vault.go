package model

import "time"

// VaultID uniquely identifies a vault registration
type VaultID string

// VaultRecord registers a world container as belonging to an account.
// Records are kept in registration order; that order is the allocation
// priority among an account's containers.
type VaultRecord struct {
	ID        VaultID
	Holder    AccountHolder
	Location  Location
	CreatedAt time.Time
}
