package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Module error codes
var (
	// Authorization errors
	ErrUnauthorized = errorsmod.Register(ModuleName, 1, "caller is not the pool controller")
	ErrNotMember    = errorsmod.Register(ModuleName, 2, "caller is not an active pool member")

	// State errors
	ErrPoolNotFound       = errorsmod.Register(ModuleName, 10, "pool not found")
	ErrPoolNotActive      = errorsmod.Register(ModuleName, 11, "pool is not active")
	ErrInvalidTransition  = errorsmod.Register(ModuleName, 12, "invalid pool status transition")
	ErrGoalReached        = errorsmod.Register(ModuleName, 13, "target goal already reached")
	ErrDeadlineNotReached = errorsmod.Register(ModuleName, 14, "deadline not yet reached")
	ErrNoDeadline         = errorsmod.Register(ModuleName, 15, "pool has no deadline")
	ErrReentrantCall      = errorsmod.Register(ModuleName, 16, "reentrant call")
	ErrAlreadyMember      = errorsmod.Register(ModuleName, 17, "already a pool member")
	ErrAlreadyPaid        = errorsmod.Register(ModuleName, 18, "recipient already paid this round")
	ErrRoundIncomplete    = errorsmod.Register(ModuleName, 19, "rotation round is not complete")
	ErrGracePeriodActive  = errorsmod.Register(ModuleName, 20, "grace period has not elapsed")
	ErrWrongPolicy        = errorsmod.Register(ModuleName, 21, "operation not supported by pool policy")
	ErrPoolFull           = errorsmod.Register(ModuleName, 22, "pool member limit reached")

	// Value errors
	ErrInvalidAmount       = errorsmod.Register(ModuleName, 30, "invalid amount")
	ErrAmountBelowMinimum  = errorsmod.Register(ModuleName, 31, "amount below minimum")
	ErrAmountMismatch      = errorsmod.Register(ModuleName, 32, "amount must equal the contribution amount")
	ErrInsufficientBalance = errorsmod.Register(ModuleName, 33, "insufficient balance")
	ErrInvalidTarget       = errorsmod.Register(ModuleName, 34, "invalid target amount")
	ErrInvalidDeadline     = errorsmod.Register(ModuleName, 35, "invalid deadline")
	ErrInvalidMethod       = errorsmod.Register(ModuleName, 36, "invalid distribution method")
	ErrInvalidYieldRate    = errorsmod.Register(ModuleName, 37, "invalid yield rate")
	ErrTooFewMembers       = errorsmod.Register(ModuleName, 38, "rotational pool needs at least two members")
	ErrNoPenalty           = errorsmod.Register(ModuleName, 39, "pool has no penalty configured")
	ErrOverflow            = errorsmod.Register(ModuleName, 40, "arithmetic overflow")
	ErrInvalidAddress      = errorsmod.Register(ModuleName, 41, "invalid address")
	ErrInvalidDenom        = errorsmod.Register(ModuleName, 42, "invalid denom")
	ErrInvalidGenesis      = errorsmod.Register(ModuleName, 43, "invalid genesis state")

	// Transfer errors
	ErrTransferFailed = errorsmod.Register(ModuleName, 50, "value transfer failed")
)
