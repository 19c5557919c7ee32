// Package factory wires the application's components together
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jhooc77/gringotts/internal/config"
	"github.com/jhooc77/gringotts/internal/dependencies/clock"
	"github.com/jhooc77/gringotts/internal/dependencies/random"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/sched"
	"github.com/jhooc77/gringotts/internal/services/account"
	"github.com/jhooc77/gringotts/internal/services/permission"
	"github.com/jhooc77/gringotts/internal/services/vault"
	"github.com/jhooc77/gringotts/internal/storage"
	"github.com/jhooc77/gringotts/internal/storage/memory"
	redisstorage "github.com/jhooc77/gringotts/internal/storage/redis"
	"github.com/jhooc77/gringotts/internal/world"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// The designated goroutine all world access runs on
	Executor *sched.Executor

	// Domain components
	Currency    *model.Currency
	World       *world.World
	Permissions *permission.Service
	Vaults      *vault.Directory
	Engine      *account.Engine
}

// Config holds configuration for the application factory
type Config struct {
	// App is the engine's runtime configuration
	// If zero value, defaults to config.DefaultConfig()
	App config.Config
	// Currency is the currency definition (optional)
	// If nil, it is loaded from App.CurrencyPath
	Currency *model.Currency
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// RedisConfig holds Redis connection settings (required if App.StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired. The executor is
// started; call Close to stop it.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	appCfg := cfg.App
	if appCfg.EngineTimeout == 0 {
		appCfg = config.DefaultConfig()
	}

	currency := cfg.Currency
	if currency == nil {
		loaded, err := config.LoadCurrency(appCfg.CurrencyPath)
		if err != nil {
			return nil, err
		}
		currency = loaded
	}

	// Create storage based on type
	var store storage.Storage
	storageType := appCfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(appCfg, currency, store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	appCfg config.Config,
	currency *model.Currency,
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *App {
	exec := sched.New()
	exec.Start()

	w := world.New(clk, logger)
	perms := permission.New()
	vaults := vault.NewDirectory(store, w, currency, exec, clk, rnd, appCfg.EngineTimeout, logger)
	engine := account.NewEngine(appCfg, currency, store, vaults, w, perms, exec, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		Executor:    exec,
		Currency:    currency,
		World:       w,
		Permissions: perms,
		Vaults:      vaults,
		Engine:      engine,
	}
}

// Close stops the designated goroutine
func (a *App) Close() {
	a.Executor.Stop()
}
