package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfig           = errors.New("invalid session configuration")
	ErrAuthorization    = errors.New("insufficient allowance or balance")
	ErrResidualBalance  = errors.New("session closed with nonzero delta")
	ErrReentrancy       = errors.New("session already active")
	ErrSessionNotActive = errors.New("session not active")

	ErrPoolNotFound           = errors.New("pool not found")
	ErrPoolAlreadyInitialized = errors.New("pool already initialized")
	ErrInsufficientLiquidity  = errors.New("insufficient position liquidity")
	ErrInsufficientReserves   = errors.New("manager reserves insufficient")
	ErrInsufficientNative     = errors.New("insufficient native balance")
	ErrAmountOverflow         = errors.New("amount exceeds int128 range")
)

// Residual is a per-asset delta left unresolved when a session tries to close.
type Residual struct {
	Asset Asset
	Delta Amount
}

type ResidualError struct {
	Residuals []Residual
}

func (e *ResidualError) Error() string {
	parts := make([]string, 0, len(e.Residuals))
	for _, residual := range e.Residuals {
		parts = append(parts, fmt.Sprintf("%s=%s", residual.Asset, residual.Delta))
	}
	return fmt.Sprintf("%s: %s", ErrResidualBalance, strings.Join(parts, ", "))
}

func (e *ResidualError) Is(target error) bool {
	return target == ErrResidualBalance
}
