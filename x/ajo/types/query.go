package types

import "cosmossdk.io/math"

// RotationStatus describes the current round of a rotational pool
type RotationStatus struct {
	PoolID             uint64   `json:"pool_id"`
	CurrentRecipient   string   `json:"current_recipient,omitempty"`
	CurrentIndex       uint64   `json:"current_index"`
	CompletedRotations uint64   `json:"completed_rotations"`
	TotalRotations     uint64   `json:"total_rotations"`
	RoundContributors  []string `json:"round_contributors"`
	RoundStartedAt     int64    `json:"round_started_at"`
	RoundTarget        math.Int `json:"round_target"`
	Balance            math.Int `json:"balance"`
}

// TargetProgress describes how far a target pool is from its goal
type TargetProgress struct {
	PoolID         uint64   `json:"pool_id"`
	Balance        math.Int `json:"balance"`
	TargetAmount   math.Int `json:"target_amount"`
	Progress       uint64   `json:"progress"`
	GoalReached    bool     `json:"goal_reached"`
	Deadline       int64    `json:"deadline"`
	DeadlinePassed bool     `json:"deadline_passed"`
	Distributed    math.Int `json:"distributed"`
}

// YieldStatus describes the yield state of a flexible pool
type YieldStatus struct {
	PoolID         uint64   `json:"pool_id"`
	YieldRate      uint64   `json:"yield_rate"`
	LastAccrualAt  int64    `json:"last_accrual_at"`
	TotalYieldPaid math.Int `json:"total_yield_paid"`
	PendingYield   math.Int `json:"pending_yield"`
	Balance        math.Int `json:"balance"`
}
