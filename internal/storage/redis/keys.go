package redis

import (
	"fmt"

	"github.com/jhooc77/gringotts/internal/model"
)

// Key prefix for all economy data
const keyPrefix = "gringotts"

// Key generation functions for each entity type

// accountKey returns the Redis key marking an account as created
func accountKey(holder model.AccountHolder) string {
	return fmt.Sprintf("%s:account:%s:%s", keyPrefix, holder.Type, holder.ID)
}

// centsKey returns the Redis key for an account's virtual ledger cents
func centsKey(holder model.AccountHolder) string {
	return fmt.Sprintf("%s:cents:%s:%s", keyPrefix, holder.Type, holder.ID)
}

// vaultKey returns the Redis key for a VaultRecord
func vaultKey(id model.VaultID) string {
	return fmt.Sprintf("%s:vault:%s", keyPrefix, id)
}

// vaultsForIndexKey returns the Redis key for the LIST of an account's vault
// IDs in registration order
func vaultsForIndexKey(holder model.AccountHolder) string {
	return fmt.Sprintf("%s:idx:vaults_for:%s:%s", keyPrefix, holder.Type, holder.ID)
}
