package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAllow(t *testing.T) {
	s := New()

	assert.True(t, s.IsAllowed("alice", UseVaultInventory))
	assert.True(t, s.IsAllowed("alice", UseVaultEnderchest))
}

func TestRevokeAndGrant(t *testing.T) {
	s := New()

	s.Revoke("alice", UseVaultInventory)

	assert.False(t, s.IsAllowed("alice", UseVaultInventory))
	assert.True(t, s.IsAllowed("alice", UseVaultEnderchest))
	assert.True(t, s.IsAllowed("bob", UseVaultInventory))

	s.Grant("alice", UseVaultInventory)
	assert.True(t, s.IsAllowed("alice", UseVaultInventory))
}
