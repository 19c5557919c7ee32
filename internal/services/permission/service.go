// Package permission gates which personal storage backends a player may use
package permission

import (
	"sync"

	"github.com/jhooc77/gringotts/internal/model"
)

// Capability names a permission node
type Capability string

const (
	// UseVaultInventory allows a player's primary inventory to hold currency
	UseVaultInventory Capability = "gringotts.usevault.inventory"
	// UseVaultEnderchest allows a player's ender chest to hold currency
	UseVaultEnderchest Capability = "gringotts.usevault.enderchest"
)

// Oracle answers permission checks for online players
type Oracle interface {
	IsAllowed(playerID model.PlayerID, cap Capability) bool
}

// Service is an Oracle with all capabilities granted by default and
// per-player revocation
type Service struct {
	mu      sync.RWMutex
	revoked map[model.PlayerID]map[Capability]bool
}

// New creates a permission service
func New() *Service {
	return &Service{
		revoked: make(map[model.PlayerID]map[Capability]bool),
	}
}

// Ensure Service implements Oracle
var _ Oracle = (*Service)(nil)

// IsAllowed reports whether the player holds the capability
func (s *Service) IsAllowed(playerID model.PlayerID, cap Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.revoked[playerID][cap]
}

// Revoke withdraws a capability from a player
func (s *Service) Revoke(playerID model.PlayerID, cap Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked[playerID] == nil {
		s.revoked[playerID] = make(map[Capability]bool)
	}
	s.revoked[playerID][cap] = true
}

// Grant restores a previously revoked capability
func (s *Service) Grant(playerID model.PlayerID, cap Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.revoked[playerID], cap)
}
