// Package config holds the engine's immutable runtime configuration and the
// currency definition loader. Config values are fixed at construction; there
// is no live reload.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/jhooc77/gringotts/internal/model"
)

// Config is the engine's policy configuration. Copied by value everywhere;
// nothing mutates it after startup.
type Config struct {
	// UseVaultContainer enables registered world containers as balance
	// backends
	UseVaultContainer bool
	// UseVaultEnderchest enables the owner's ender chest as a balance
	// backend
	UseVaultEnderchest bool
	// DropOverflowingItem drops unstorable deposit overflow as physical
	// stacks at the owner's location
	DropOverflowingItem bool

	// EngineTimeout bounds every scheduled critical section and balance
	// query
	EngineTimeout time.Duration

	// Starting balances, in cents, granted on account creation
	StartBalancePlayer  int64
	StartBalanceFaction int64
	StartBalanceTown    int64
	StartBalanceNation  int64

	// StorageType selects the persistence backend, "memory" or "redis"
	StorageType string
	// CurrencyPath points at the currency definition file
	CurrencyPath string

	Host string
	Port int
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		UseVaultContainer:   true,
		UseVaultEnderchest:  true,
		DropOverflowingItem: false,
		EngineTimeout:       time.Second,
		StartBalancePlayer:  0,
		StartBalanceFaction: 0,
		StartBalanceTown:    0,
		StartBalanceNation:  0,
		StorageType:         "memory",
		CurrencyPath:        "currency.json",
		Host:                "0.0.0.0",
		Port:                8080,
	}
}

// FromEnv returns the default configuration overridden by GRINGOTTS_*
// environment variables. Unparseable values fall back to the default.
func FromEnv() Config {
	cfg := DefaultConfig()

	boolVar(&cfg.UseVaultContainer, "GRINGOTTS_USEVAULT_CONTAINER")
	boolVar(&cfg.UseVaultEnderchest, "GRINGOTTS_USEVAULT_ENDERCHEST")
	boolVar(&cfg.DropOverflowingItem, "GRINGOTTS_DROP_OVERFLOW")
	durationVar(&cfg.EngineTimeout, "GRINGOTTS_ENGINE_TIMEOUT")
	int64Var(&cfg.StartBalancePlayer, "GRINGOTTS_START_BALANCE_PLAYER")
	int64Var(&cfg.StartBalanceFaction, "GRINGOTTS_START_BALANCE_FACTION")
	int64Var(&cfg.StartBalanceTown, "GRINGOTTS_START_BALANCE_TOWN")
	int64Var(&cfg.StartBalanceNation, "GRINGOTTS_START_BALANCE_NATION")
	stringVar(&cfg.StorageType, "GRINGOTTS_STORAGE_TYPE")
	stringVar(&cfg.CurrencyPath, "GRINGOTTS_CURRENCY_PATH")
	stringVar(&cfg.Host, "GRINGOTTS_HOST")
	intVar(&cfg.Port, "GRINGOTTS_PORT")

	return cfg
}

// StartBalance returns the starting balance for a holder type
func (c Config) StartBalance(t model.HolderType) int64 {
	switch t {
	case model.HolderFaction:
		return c.StartBalanceFaction
	case model.HolderTown:
		return c.StartBalanceTown
	case model.HolderNation:
		return c.StartBalanceNation
	default:
		return c.StartBalancePlayer
	}
}

func stringVar(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func boolVar(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func intVar(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func int64Var(dst *int64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func durationVar(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
