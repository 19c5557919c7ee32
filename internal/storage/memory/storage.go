package memory

import (
	"context"
	"sync"

	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts map[model.AccountHolder]bool
	cents    map[model.AccountHolder]int64
	vaults   map[model.VaultID]*model.VaultRecord
	// vault IDs per holder, in registration order
	vaultOrder map[model.AccountHolder][]model.VaultID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:   make(map[model.AccountHolder]bool),
		cents:      make(map[model.AccountHolder]int64),
		vaults:     make(map[model.VaultID]*model.VaultRecord),
		vaultOrder: make(map[model.AccountHolder][]model.VaultID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) HasAccount(ctx context.Context, holder model.AccountHolder) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts[holder], nil
}

func (s *Storage) CreateAccount(ctx context.Context, holder model.AccountHolder, startCents int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accounts[holder] {
		return nil
	}
	s.accounts[holder] = true
	s.cents[holder] = startCents
	return nil
}

func (s *Storage) DeleteAccount(ctx context.Context, holder model.AccountHolder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, holder)
	delete(s.cents, holder)
	for _, id := range s.vaultOrder[holder] {
		delete(s.vaults, id)
	}
	delete(s.vaultOrder, holder)
	return nil
}

// Ledger operations

func (s *Storage) Cents(ctx context.Context, holder model.AccountHolder) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cents[holder], nil
}

func (s *Storage) SetCents(ctx context.Context, holder model.AccountHolder, cents int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[holder] = true
	s.cents[holder] = cents
	return nil
}

// Vault registry operations

func (s *Storage) SaveVault(ctx context.Context, record *model.VaultRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.vaults[record.ID]; !exists {
		s.vaultOrder[record.Holder] = append(s.vaultOrder[record.Holder], record.ID)
	}
	s.vaults[record.ID] = record
	return nil
}

func (s *Storage) GetVault(ctx context.Context, id model.VaultID) (*model.VaultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.vaults[id]
	if !ok {
		return nil, model.ErrVaultNotFound
	}
	return record, nil
}

func (s *Storage) VaultsFor(ctx context.Context, holder model.AccountHolder) ([]*model.VaultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.vaultOrder[holder]
	records := make([]*model.VaultRecord, 0, len(ids))
	for _, id := range ids {
		if record, ok := s.vaults[id]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func (s *Storage) DeleteVault(ctx context.Context, id model.VaultID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.vaults[id]
	if !ok {
		return nil
	}
	delete(s.vaults, id)
	ids := s.vaultOrder[record.Holder]
	for i, vid := range ids {
		if vid == id {
			s.vaultOrder[record.Holder] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
