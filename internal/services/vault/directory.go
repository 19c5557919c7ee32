package vault

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhooc77/gringotts/internal/dependencies/clock"
	"github.com/jhooc77/gringotts/internal/dependencies/random"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/sched"
	"github.com/jhooc77/gringotts/internal/storage"
	"github.com/jhooc77/gringotts/internal/world"
)

// Directory manages the registry of container vaults and resolves an
// account's registrations to live backends
type Directory struct {
	storage  storage.Storage
	world    *world.World
	currency *model.Currency
	exec     *sched.Executor
	clock    clock.Clock
	random   random.Random
	timeout  time.Duration
	logger   *slog.Logger
}

// NewDirectory creates a vault directory
func NewDirectory(
	storage storage.Storage,
	w *world.World,
	currency *model.Currency,
	exec *sched.Executor,
	clk clock.Clock,
	rnd random.Random,
	timeout time.Duration,
	logger *slog.Logger,
) *Directory {
	return &Directory{
		storage:  storage,
		world:    w,
		currency: currency,
		exec:     exec,
		clock:    clk,
		random:   rnd,
		timeout:  timeout,
		logger:   logger,
	}
}

// Backends resolves a holder's vault registrations, in registration order,
// to backends over the live containers. Registrations whose container no
// longer exists contribute nothing and are skipped.
// Must run on the designated goroutine.
func (d *Directory) Backends(ctx context.Context, holder model.AccountHolder) ([]Backend, error) {
	records, err := d.storage.VaultsFor(ctx, holder)
	if err != nil {
		return nil, err
	}

	backends := make([]Backend, 0, len(records))
	for _, record := range records {
		inv, ok := d.world.Container(record.Location)
		if !ok {
			continue
		}
		backends = append(backends, NewInventoryBackend(inv, d.currency))
	}
	return backends, nil
}

// Register records the container at the given location as a vault of the
// holder. The container must already exist in the world.
func (d *Directory) Register(ctx context.Context, holder model.AccountHolder, loc model.Location) (*model.VaultRecord, error) {
	f := sched.Run(d.exec, ctx, func(ctx context.Context) (*model.VaultRecord, error) {
		if _, ok := d.world.Container(loc); !ok {
			return nil, model.ErrContainerNotFound
		}

		existing, err := d.storage.VaultsFor(ctx, holder)
		if err != nil {
			return nil, err
		}
		for _, record := range existing {
			if record.Location == loc {
				return nil, model.ErrVaultExists
			}
		}

		record := &model.VaultRecord{
			ID:        model.VaultID(d.random.String(12, "abcdefghijklmnopqrstuvwxyz0123456789")),
			Holder:    holder,
			Location:  loc,
			CreatedAt: d.clock.Now(),
		}
		if err := d.storage.SaveVault(ctx, record); err != nil {
			return nil, err
		}

		d.logger.Info("vault registered",
			slog.String("vault_id", string(record.ID)),
			slog.String("holder", holder.String()),
			slog.String("location", loc.String()),
		)
		return record, nil
	})

	record, err := f.Wait(d.timeout)
	if err != nil {
		return nil, fmt.Errorf("vault registration: %w", err)
	}
	return record, nil
}

// List returns a holder's vault registrations in registration order
func (d *Directory) List(ctx context.Context, holder model.AccountHolder) ([]*model.VaultRecord, error) {
	return d.storage.VaultsFor(ctx, holder)
}

// Unregister removes a vault registration. The container block itself is
// untouched.
func (d *Directory) Unregister(ctx context.Context, id model.VaultID) error {
	return d.storage.DeleteVault(ctx, id)
}
