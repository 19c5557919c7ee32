// Package account implements inventory-backed accounts with a virtual
// overflow capacity. Balance is the sum of what an account's registered
// containers, its owner's inventories and the virtual ledger hold; mutations
// greedily allocate and deallocate physical denominations across those
// backends in a fixed priority order.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhooc77/gringotts/internal/config"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/sched"
	"github.com/jhooc77/gringotts/internal/services/permission"
	"github.com/jhooc77/gringotts/internal/services/vault"
	"github.com/jhooc77/gringotts/internal/storage"
	"github.com/jhooc77/gringotts/internal/world"
)

// ErrEngine marks infrastructure failure inside the engine: a scheduling
// timeout, a stopped executor, or an unexpected error in a critical section.
// Distinct from every TransactionResult; callers should treat it as fatal
// for the surrounding operation.
var ErrEngine = errors.New("account engine failure")

// Engine orchestrates balance queries and mutations across an account's
// storage backends and virtual ledger. All world access is funneled through
// the designated goroutine; the engine holds no locks of its own.
type Engine struct {
	cfg      config.Config
	currency *model.Currency
	storage  storage.Storage
	vaults   *vault.Directory
	world    *world.World
	perms    permission.Oracle
	exec     *sched.Executor
	logger   *slog.Logger
}

// NewEngine creates an account engine
func NewEngine(
	cfg config.Config,
	currency *model.Currency,
	store storage.Storage,
	vaults *vault.Directory,
	w *world.World,
	perms permission.Oracle,
	exec *sched.Executor,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		cfg:      cfg,
		currency: currency,
		storage:  store,
		vaults:   vaults,
		world:    w,
		perms:    perms,
		exec:     exec,
		logger:   logger,
	}
}

// EnsureAccount creates the holder's account with its starting balance if it
// does not exist yet
func (e *Engine) EnsureAccount(ctx context.Context, holder model.AccountHolder) error {
	exists, err := e.storage.HasAccount(ctx, holder)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	start := e.cfg.StartBalance(holder.Type)
	if err := e.storage.CreateAccount(ctx, holder, start); err != nil {
		return err
	}

	e.logger.Info("account created",
		slog.String("holder", holder.String()),
		slog.Int64("start_balance", start),
	)
	return nil
}

// Balance returns the account's total balance in cents: all storage
// backends plus the virtual ledger. The ledger read runs off-loop while the
// inventory counts run on the designated goroutine; no lock spans the two
// reads, so a mutation landing between them is an accepted race.
func (e *Engine) Balance(ctx context.Context, holder model.AccountHolder) (int64, error) {
	deadline := e.deadline()

	cents := sched.Go(func() (int64, error) {
		return e.storage.Cents(ctx, holder)
	})
	chestInv := sched.Run(e.exec, ctx, func(ctx context.Context) (int64, error) {
		return e.countChestInventories(ctx, holder)
	})
	playerInv := sched.Run(e.exec, ctx, func(ctx context.Context) (int64, error) {
		return e.countPlayerInventory(ctx, holder)
	})

	var total int64
	for _, f := range []*sched.Future[int64]{chestInv, playerInv, cents} {
		v, err := f.WaitDeadline(deadline)
		if err != nil {
			return 0, e.fatal(err)
		}
		total += v
	}
	return total, nil
}

// VaultBalance returns the balance held in the account's containers and
// ender chest only
func (e *Engine) VaultBalance(ctx context.Context, holder model.AccountHolder) (int64, error) {
	f := sched.Run(e.exec, ctx, func(ctx context.Context) (int64, error) {
		return e.countChestInventories(ctx, holder)
	})
	v, err := f.WaitDeadline(e.deadline())
	if err != nil {
		return 0, e.fatal(err)
	}
	return v, nil
}

// InvBalance returns the balance held in the owner's primary inventory plus
// the virtual ledger cents
func (e *Engine) InvBalance(ctx context.Context, holder model.AccountHolder) (int64, error) {
	deadline := e.deadline()

	cents := sched.Go(func() (int64, error) {
		return e.storage.Cents(ctx, holder)
	})
	playerInv := sched.Run(e.exec, ctx, func(ctx context.Context) (int64, error) {
		return e.countPlayerInventory(ctx, holder)
	})

	var total int64
	for _, f := range []*sched.Future[int64]{playerInv, cents} {
		v, err := f.WaitDeadline(deadline)
		if err != nil {
			return 0, e.fatal(err)
		}
		total += v
	}
	return total, nil
}

// Add stores an amount in cents into the account: containers first, then the
// owner's inventories, with a sub-denomination tail going to the virtual
// ledger. Whatever fits is stored durably even when the overall result is
// INSUFFICIENT_SPACE; with the drop policy enabled, the unrepresentable
// overflow is emitted as physical stacks at the owner's location.
func (e *Engine) Add(ctx context.Context, holder model.AccountHolder, amount int64) (model.TransactionResult, error) {
	f := sched.Run(e.exec, ctx, func(ctx context.Context) (model.TransactionResult, error) {
		return e.deposit(ctx, holder, amount)
	})
	return e.finish(f)
}

// Remove takes an amount in cents out of the account. Fails up front with
// INSUFFICIENT_FUNDS when the account holds less than the amount; overpay
// forced by denomination granularity is refunded through a re-entrant Add.
func (e *Engine) Remove(ctx context.Context, holder model.AccountHolder, amount int64) (model.TransactionResult, error) {
	f := sched.Run(e.exec, ctx, func(ctx context.Context) (model.TransactionResult, error) {
		return e.withdraw(ctx, holder, amount)
	})
	return e.finish(f)
}

// deposit is Add's critical section. Runs on the designated goroutine.
func (e *Engine) deposit(ctx context.Context, holder model.AccountHolder, amount int64) (model.TransactionResult, error) {
	if amount < 0 {
		return model.ResultError, nil
	}

	cents, err := e.storage.Cents(ctx, holder)
	if err != nil {
		return model.ResultError, err
	}
	remaining := amount + cents

	if e.cfg.UseVaultContainer {
		backends, err := e.vaults.Backends(ctx, holder)
		if err != nil {
			return model.ResultError, err
		}
		for _, b := range backends {
			remaining -= b.Add(remaining)
			if remaining <= 0 {
				break
			}
		}
	}

	if sess := e.world.SessionFor(holder); sess != nil {
		if e.perms.IsAllowed(sess.PlayerID, permission.UseVaultInventory) {
			remaining -= vault.NewInventoryBackend(sess.Inventory, e.currency).Add(remaining)
		}
		if e.cfg.UseVaultEnderchest && e.perms.IsAllowed(sess.PlayerID, permission.UseVaultEnderchest) {
			remaining -= vault.NewInventoryBackend(sess.EnderChest, e.currency).Add(remaining)
		}
	}

	// The ledger absorbs anything below the smallest denomination value
	if remaining < e.currency.SmallestValue() {
		if err := e.storage.SetCents(ctx, holder, remaining); err != nil {
			return model.ResultError, err
		}
		remaining = 0
	}

	if remaining == 0 {
		return model.ResultSuccess, nil
	}

	if e.cfg.DropOverflowingItem {
		if sess := e.world.SessionFor(holder); sess != nil {
			remaining = e.dropOverflow(sess, remaining)
		}
	}

	return model.ResultInsufficientSpace, nil
}

// dropOverflow decomposes the overflow into denomination stacks, largest
// first, and drops them at the session's location. Returns the value that
// could not be represented even as drops.
func (e *Engine) dropOverflow(sess *world.Session, overflow int64) int64 {
	remaining := overflow
	for _, d := range e.currency.Denominations {
		if d.Value > remaining {
			continue
		}
		count := remaining / d.Value
		for count > 0 {
			n := min(count, int64(d.StackSize))
			e.world.DropStack(sess.Location, d, n)
			count -= n
			remaining -= n * d.Value
		}
	}
	return remaining
}

// withdraw is Remove's critical section. Runs on the designated goroutine.
func (e *Engine) withdraw(ctx context.Context, holder model.AccountHolder, amount int64) (model.TransactionResult, error) {
	if amount < 0 {
		return model.ResultError, nil
	}

	balance, err := e.Balance(ctx, holder)
	if err != nil {
		return model.ResultError, err
	}
	if balance < amount {
		return model.ResultInsufficientFunds, nil
	}

	remaining := amount

	if e.cfg.UseVaultContainer {
		backends, err := e.vaults.Backends(ctx, holder)
		if err != nil {
			return model.ResultError, err
		}
		for _, b := range backends {
			remaining -= b.Remove(remaining)
		}
	}

	if sess := e.world.SessionFor(holder); sess != nil {
		if e.perms.IsAllowed(sess.PlayerID, permission.UseVaultInventory) {
			remaining -= vault.NewInventoryBackend(sess.Inventory, e.currency).Remove(remaining)
		}
		if e.cfg.UseVaultEnderchest && e.perms.IsAllowed(sess.PlayerID, permission.UseVaultEnderchest) {
			remaining -= vault.NewInventoryBackend(sess.EnderChest, e.currency).Remove(remaining)
		}
	}

	if remaining < 0 {
		// Backends removed more than asked (no exact change); pay the excess
		// back. ctx is on-loop here, so the nested Add runs inline instead
		// of re-entering the scheduler.
		return e.Add(ctx, holder, -remaining)
	}

	if remaining > 0 {
		// Should not happen given the up-front balance check; take the
		// residue from the virtual ledger, which may go negative.
		cents, err := e.storage.Cents(ctx, holder)
		if err != nil {
			return model.ResultError, err
		}
		e.logger.Warn("debiting unremovable residue from ledger",
			slog.String("holder", holder.String()),
			slog.Int64("residue", remaining),
		)
		if err := e.storage.SetCents(ctx, holder, cents-remaining); err != nil {
			return model.ResultError, err
		}
	}

	return model.ResultSuccess, nil
}

// countChestInventories sums the container backends and the ender chest.
// Runs on the designated goroutine.
func (e *Engine) countChestInventories(ctx context.Context, holder model.AccountHolder) (int64, error) {
	var balance int64

	if e.cfg.UseVaultContainer {
		backends, err := e.vaults.Backends(ctx, holder)
		if err != nil {
			return 0, err
		}
		for _, b := range backends {
			balance += b.Balance()
		}
	}

	if sess := e.world.SessionFor(holder); sess != nil {
		if e.cfg.UseVaultEnderchest && e.perms.IsAllowed(sess.PlayerID, permission.UseVaultEnderchest) {
			balance += vault.NewInventoryBackend(sess.EnderChest, e.currency).Balance()
		}
	}

	return balance, nil
}

// countPlayerInventory sums the owner's primary inventory. Runs on the
// designated goroutine.
func (e *Engine) countPlayerInventory(ctx context.Context, holder model.AccountHolder) (int64, error) {
	sess := e.world.SessionFor(holder)
	if sess == nil || !e.perms.IsAllowed(sess.PlayerID, permission.UseVaultInventory) {
		return 0, nil
	}
	return vault.NewInventoryBackend(sess.Inventory, e.currency).Balance(), nil
}

func (e *Engine) deadline() time.Time {
	return time.Now().Add(e.cfg.EngineTimeout)
}

// finish waits out a mutation's future and maps infrastructure failure onto
// the fatal engine error
func (e *Engine) finish(f *sched.Future[model.TransactionResult]) (model.TransactionResult, error) {
	res, err := f.WaitDeadline(e.deadline())
	if err != nil {
		return model.ResultError, e.fatal(err)
	}
	return res, nil
}

func (e *Engine) fatal(err error) error {
	if errors.Is(err, ErrEngine) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrEngine, err)
}
