package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidHolder   = errors.New("invalid account holder")

	// Currency errors
	ErrNoDenominations     = errors.New("currency has no denominations")
	ErrInvalidDenomination = errors.New("invalid denomination")

	// Vault errors
	ErrVaultNotFound     = errors.New("vault not found")
	ErrVaultExists       = errors.New("vault already registered at this location")
	ErrContainerNotFound = errors.New("no container at location")

	// Session errors
	ErrPlayerOffline = errors.New("player is not online")
)
