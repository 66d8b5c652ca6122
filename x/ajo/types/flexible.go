package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

const (
	// RateDenominator is the basis-point denominator of yield rates
	RateDenominator = 10000
	// SecondsPerYear is the accrual year length
	SecondsPerYear = 365 * 24 * 60 * 60
)

// FlexibleState is the deposit/withdraw/yield state of a flexible pool
type FlexibleState struct {
	MinDeposit    math.Int `json:"min_deposit"`
	MinWithdrawal math.Int `json:"min_withdrawal"`
	// YieldRate is the annual rate in basis points
	YieldRate      uint64   `json:"yield_rate"`
	LastAccrualAt  int64    `json:"last_accrual_at"`
	TotalYieldPaid math.Int `json:"total_yield_paid"`
}

// NewFlexibleState returns a flexible state accruing from now
func NewFlexibleState(minDeposit, minWithdrawal math.Int, yieldRate uint64, now int64) *FlexibleState {
	return &FlexibleState{
		MinDeposit:     minDeposit,
		MinWithdrawal:  minWithdrawal,
		YieldRate:      yieldRate,
		LastAccrualAt:  now,
		TotalYieldPaid: math.ZeroInt(),
	}
}

// Validate checks the flexible parameters
func (f *FlexibleState) Validate() error {
	if f.MinDeposit.IsNil() || f.MinDeposit.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "min deposit must be non-negative")
	}
	if f.MinWithdrawal.IsNil() || f.MinWithdrawal.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "min withdrawal must be non-negative")
	}
	if f.TotalYieldPaid.IsNil() || f.TotalYieldPaid.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "total yield must be non-negative")
	}
	return nil
}
