package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// DistributionMethod selects how a target pool disburses its balance
type DistributionMethod string

const (
	DistributionEqual        DistributionMethod = "equal"
	DistributionProportional DistributionMethod = "proportional"
)

// Valid reports whether m is a supported method
func (m DistributionMethod) Valid() bool {
	return m == DistributionEqual || m == DistributionProportional
}

// TargetState is the goal/deadline state of a target pool
type TargetState struct {
	TargetAmount math.Int `json:"target_amount"`
	// Deadline is a unix timestamp; zero means no deadline
	Deadline    int64              `json:"deadline"`
	Method      DistributionMethod `json:"method"`
	GoalReached bool               `json:"goal_reached"`
	Distributed math.Int           `json:"distributed"`
}

// NewTargetState returns a target state that has not reached its goal
func NewTargetState(target math.Int, deadline int64, method DistributionMethod) *TargetState {
	return &TargetState{
		TargetAmount: target,
		Deadline:     deadline,
		Method:       method,
		Distributed:  math.ZeroInt(),
	}
}

// HasDeadline reports whether a deadline is configured
func (t *TargetState) HasDeadline() bool {
	return t.Deadline > 0
}

// Progress returns balance/target as a percentage clamped to 100
func (t *TargetState) Progress(balance math.Int) uint64 {
	if t.GoalReached {
		return 100
	}
	if !t.TargetAmount.IsPositive() {
		return 0
	}
	pct := balance.MulRaw(100).Quo(t.TargetAmount)
	if pct.GTE(math.NewInt(100)) {
		return 100
	}
	return pct.Uint64()
}

// Validate checks the target parameters
func (t *TargetState) Validate() error {
	if t.TargetAmount.IsNil() || !t.TargetAmount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidTarget, "target must be positive")
	}
	if t.Deadline < 0 {
		return errorsmod.Wrapf(ErrInvalidDeadline, "%d", t.Deadline)
	}
	if !t.Method.Valid() {
		return errorsmod.Wrapf(ErrInvalidMethod, "%q", t.Method)
	}
	return nil
}
