package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// All economy data is persistent: no TTLs, balances survive restarts.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) HasAccount(ctx context.Context, holder model.AccountHolder) (bool, error) {
	exists, err := s.client.Exists(ctx, accountKey(holder)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) CreateAccount(ctx context.Context, holder model.AccountHolder, startCents int64) error {
	// SETNX so a concurrent create cannot reset an existing balance
	created, err := s.client.SetNX(ctx, accountKey(holder), "1", 0).Result()
	if err != nil {
		return err
	}
	if !created {
		return nil
	}
	return s.client.Set(ctx, centsKey(holder), strconv.FormatInt(startCents, 10), 0).Err()
}

func (s *Storage) DeleteAccount(ctx context.Context, holder model.AccountHolder) error {
	ids, err := s.client.LRange(ctx, vaultsForIndexKey(holder), 0, -1).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, vaultKey(model.VaultID(id)))
	}
	pipe.Del(ctx, vaultsForIndexKey(holder))
	pipe.Del(ctx, centsKey(holder))
	pipe.Del(ctx, accountKey(holder))
	_, err = pipe.Exec(ctx)
	return err
}

// Ledger operations

func (s *Storage) Cents(ctx context.Context, holder model.AccountHolder) (int64, error) {
	val, err := s.client.Get(ctx, centsKey(holder)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// No ledger entry yet: zero cents
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s *Storage) SetCents(ctx context.Context, holder model.AccountHolder, cents int64) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, accountKey(holder), "1", 0)
	pipe.Set(ctx, centsKey(holder), strconv.FormatInt(cents, 10), 0)
	_, err := pipe.Exec(ctx)
	return err
}

// Vault registry operations

func (s *Storage) SaveVault(ctx context.Context, record *model.VaultRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	exists, err := s.client.Exists(ctx, vaultKey(record.ID)).Result()
	if err != nil {
		return err
	}

	// Pipeline keeps the record and the order index in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, vaultKey(record.ID), data, 0)
	if exists == 0 {
		pipe.RPush(ctx, vaultsForIndexKey(record.Holder), string(record.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetVault(ctx context.Context, id model.VaultID) (*model.VaultRecord, error) {
	data, err := s.client.Get(ctx, vaultKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrVaultNotFound
		}
		return nil, err
	}

	var record model.VaultRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) VaultsFor(ctx context.Context, holder model.AccountHolder) ([]*model.VaultRecord, error) {
	ids, err := s.client.LRange(ctx, vaultsForIndexKey(holder), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.VaultRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = vaultKey(model.VaultID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.VaultRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Record deleted out from under the index
		}
		var record model.VaultRecord
		if err := json.Unmarshal([]byte(val.(string)), &record); err != nil {
			continue // Skip invalid data
		}
		records = append(records, &record)
	}

	return records, nil
}

func (s *Storage) DeleteVault(ctx context.Context, id model.VaultID) error {
	record, err := s.GetVault(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrVaultNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, vaultKey(id))
	pipe.LRem(ctx, vaultsForIndexKey(record.Holder), 1, string(id))
	_, err = pipe.Exec(ctx)
	return err
}
