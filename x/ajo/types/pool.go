package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Module name and store key
const (
	ModuleName = "ajo"
	StoreKey   = ModuleName
	RouterKey  = ModuleName
)

// PoolKind selects the distribution policy of a pool
type PoolKind string

const (
	PoolKindRotational PoolKind = "rotational"
	PoolKindTarget     PoolKind = "target"
	PoolKindFlexible   PoolKind = "flexible"
)

// PoolStatus is the lifecycle status shared by every policy
type PoolStatus string

const (
	PoolStatusActive    PoolStatus = "active"
	PoolStatusPaused    PoolStatus = "paused"
	PoolStatusCompleted PoolStatus = "completed"
	PoolStatusCancelled PoolStatus = "cancelled"
)

// IsTerminal reports whether no further transition can leave the status
func (s PoolStatus) IsTerminal() bool {
	return s == PoolStatusCompleted || s == PoolStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s.
// Active -> {Completed, Cancelled, Paused}, Paused -> Active.
func (s PoolStatus) CanTransitionTo(next PoolStatus) bool {
	switch s {
	case PoolStatusActive:
		return next == PoolStatusCompleted || next == PoolStatusCancelled || next == PoolStatusPaused
	case PoolStatusPaused:
		return next == PoolStatusActive
	default:
		return false
	}
}

// Valid reports whether s is a known status
func (s PoolStatus) Valid() bool {
	switch s {
	case PoolStatusActive, PoolStatusPaused, PoolStatusCompleted, PoolStatusCancelled:
		return true
	}
	return false
}

// PoolConfig holds the settings shared by every pool. Creator and
// ContributionAmount never change after construction.
type PoolConfig struct {
	Name               string     `json:"name"`
	Creator            string     `json:"creator"`
	Denom              string     `json:"denom"`
	ContributionAmount math.Int   `json:"contribution_amount"`
	PenaltyAmount      math.Int   `json:"penalty_amount"`
	GracePeriod        int64      `json:"grace_period"`
	Status             PoolStatus `json:"status"`
	CreatedAt          int64      `json:"created_at"`
	MemberCount        uint64     `json:"member_count"`
}

// Pool is one pool instance: the shared ledger plus the state of its policy.
// Exactly one of Rotation, Target and Flexible is set, matching Kind.
type Pool struct {
	ID       uint64         `json:"id"`
	Kind     PoolKind       `json:"kind"`
	Config   PoolConfig     `json:"config"`
	Balance  math.Int       `json:"balance"`
	Rotation *RotationState `json:"rotation,omitempty"`
	Target   *TargetState   `json:"target,omitempty"`
	Flexible *FlexibleState `json:"flexible,omitempty"`
}

// NewPool returns an active pool with an empty ledger
func NewPool(id uint64, kind PoolKind, name, creator, denom string, contribution, penalty math.Int, gracePeriod, createdAt int64) *Pool {
	return &Pool{
		ID:   id,
		Kind: kind,
		Config: PoolConfig{
			Name:               name,
			Creator:            creator,
			Denom:              denom,
			ContributionAmount: contribution,
			PenaltyAmount:      penalty,
			GracePeriod:        gracePeriod,
			Status:             PoolStatusActive,
			CreatedAt:          createdAt,
		},
		Balance: math.ZeroInt(),
	}
}

// IsActive reports whether the pool accepts value-changing calls
func (p *Pool) IsActive() bool {
	return p.Config.Status == PoolStatusActive
}

// Coins returns amount in the pool denom
func (p *Pool) Coins(amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(p.Config.Denom, amount))
}

// Validate checks the structural invariants of a stored pool
func (p *Pool) Validate() error {
	if p.ID == 0 {
		return errorsmod.Wrap(ErrInvalidGenesis, "pool id must be positive")
	}
	if _, err := sdk.AccAddressFromBech32(p.Config.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "creator %q: %s", p.Config.Creator, err)
	}
	if err := sdk.ValidateDenom(p.Config.Denom); err != nil {
		return errorsmod.Wrapf(ErrInvalidDenom, "%s", err)
	}
	if !p.Config.Status.Valid() {
		return errorsmod.Wrapf(ErrInvalidGenesis, "unknown status %q", p.Config.Status)
	}
	if p.Balance.IsNil() || p.Balance.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "balance must be non-negative")
	}

	switch p.Kind {
	case PoolKindRotational:
		if p.Rotation == nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d: missing rotation state", p.ID)
		}
		return p.Rotation.Validate(p.Config.MemberCount)
	case PoolKindTarget:
		if p.Target == nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d: missing target state", p.ID)
		}
		return p.Target.Validate()
	case PoolKindFlexible:
		if p.Flexible == nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d: missing flexible state", p.ID)
		}
		return p.Flexible.Validate()
	default:
		return errorsmod.Wrapf(ErrInvalidGenesis, "unknown pool kind %q", p.Kind)
	}
}

// String implements fmt.Stringer
func (p *Pool) String() string {
	return fmt.Sprintf("Pool{ID: %d, Kind: %s, Status: %s, Balance: %s%s, Members: %d}",
		p.ID, p.Kind, p.Config.Status, p.Balance, p.Config.Denom, p.Config.MemberCount)
}

// Member is one participant of one pool. Members are never deleted so their
// historical totals stay auditable.
type Member struct {
	Address          string   `json:"address"`
	TotalContributed math.Int `json:"total_contributed"`
	TotalReceived    math.Int `json:"total_received"`
	Active           bool     `json:"active"`
	JoinedAt         int64    `json:"joined_at"`
}

// NewMember creates an active member with zero totals
func NewMember(address string, joinedAt int64) *Member {
	return &Member{
		Address:          address,
		TotalContributed: math.ZeroInt(),
		TotalReceived:    math.ZeroInt(),
		Active:           true,
		JoinedAt:         joinedAt,
	}
}
