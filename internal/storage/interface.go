package storage

import (
	"context"

	"github.com/jhooc77/gringotts/internal/model"
)

// Storage defines the interface for data persistence: the per-account
// virtual ledger (cents below the smallest denomination value) and the
// registry of container vaults.
type Storage interface {
	// Account operations
	HasAccount(ctx context.Context, holder model.AccountHolder) (bool, error)
	CreateAccount(ctx context.Context, holder model.AccountHolder, startCents int64) error
	DeleteAccount(ctx context.Context, holder model.AccountHolder) error

	// Ledger operations. Cents returns 0 for holders with no ledger entry;
	// SetCents creates the entry if needed. Cents may go negative when a
	// withdrawal leaves a residue that no backend could supply.
	Cents(ctx context.Context, holder model.AccountHolder) (int64, error)
	SetCents(ctx context.Context, holder model.AccountHolder, cents int64) error

	// Vault registry operations. VaultsFor returns records in registration
	// order; that order is the allocation priority among containers.
	SaveVault(ctx context.Context, record *model.VaultRecord) error
	GetVault(ctx context.Context, id model.VaultID) (*model.VaultRecord, error)
	VaultsFor(ctx context.Context, holder model.AccountHolder) ([]*model.VaultRecord, error)
	DeleteVault(ctx context.Context, id model.VaultID) error
}
