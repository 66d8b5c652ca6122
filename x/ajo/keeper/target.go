package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// CreateTargetPool creates a pool that collects towards target and disburses
// once the goal is reached or the deadline passes. A zero deadline means none.
func (k *Keeper) CreateTargetPool(
	goCtx context.Context,
	creator, name, denom string,
	target, minContribution, penalty math.Int,
	deadline int64,
	method types.DistributionMethod,
) (*types.Pool, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if target.IsNil() || !target.IsPositive() {
		return nil, errorsmod.Wrap(types.ErrInvalidTarget, "target must be positive")
	}
	if deadline != 0 && deadline <= now(ctx) {
		return nil, errorsmod.Wrapf(types.ErrInvalidDeadline, "deadline %d is not after %d", deadline, now(ctx))
	}
	if !method.Valid() {
		return nil, errorsmod.Wrapf(types.ErrInvalidMethod, "%q", method)
	}
	if minContribution.IsNil() {
		minContribution = math.ZeroInt()
	}
	if penalty.IsNil() {
		penalty = math.ZeroInt()
	}
	if minContribution.IsNegative() || penalty.IsNegative() {
		return nil, errorsmod.Wrap(types.ErrInvalidAmount, "minimum and penalty must be non-negative")
	}

	var pool *types.Pool
	err := cached(ctx, func(ctx sdk.Context) error {
		pool = types.NewPool(k.allocatePoolID(ctx), types.PoolKindTarget, name, creator, denom, minContribution, penalty, 0, now(ctx))
		pool.Target = types.NewTargetState(target, deadline, method)
		return k.createPool(ctx, pool, nil)
	})
	if err != nil {
		return nil, err
	}

	k.recorder.PoolCreated(string(pool.Kind))
	k.logger.Info("Target pool created",
		"pool_id", pool.ID,
		"creator", creator,
		"target", target.String(),
		"deadline", deadline,
	)
	return pool, nil
}

// JoinTarget admits addr to an active target pool
func (k *Keeper) JoinTarget(goCtx context.Context, addr string, poolID uint64) (*types.Member, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var member *types.Member
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireKind(pool, types.PoolKindTarget); err != nil {
			return err
		}
		if member, err = k.admit(ctx, pool, addr); err != nil {
			return err
		}
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("Member joined", "pool_id", poolID, "member", addr)
	return member, nil
}

// contributeTarget records a contribution of at least the minimum, admitting
// a first-time contributor, and disburses the pool once the goal is reached
func (k *Keeper) contributeTarget(ctx sdk.Context, pool *types.Pool, addr string, amount math.Int) (math.Int, error) {
	if pool.Target.GoalReached {
		return math.Int{}, errorsmod.Wrapf(types.ErrGoalReached, "pool %d", pool.ID)
	}
	if err := requireActive(pool); err != nil {
		return math.Int{}, err
	}
	if amount.LT(pool.Config.ContributionAmount) {
		return math.Int{}, errorsmod.Wrapf(types.ErrAmountBelowMinimum, "got %s, minimum %s", amount, pool.Config.ContributionAmount)
	}

	member := k.GetMember(ctx, pool.ID, addr)
	if member == nil {
		var err error
		if member, err = k.admit(ctx, pool, addr); err != nil {
			return math.Int{}, err
		}
	}
	if err := k.recordContribution(ctx, pool, member, amount); err != nil {
		return math.Int{}, err
	}

	if pool.Balance.LT(pool.Target.TargetAmount) {
		return math.ZeroInt(), nil
	}
	pool.Target.GoalReached = true
	emit(ctx, types.EventTypeGoalReached, pool.ID,
		sdk.NewAttribute(types.AttributeKeyAmount, pool.Balance.String()),
	)
	if err := k.setStatus(ctx, pool, types.PoolStatusCompleted); err != nil {
		return math.Int{}, err
	}
	return k.distribute(ctx, pool)
}

// CheckDeadline completes a target pool whose deadline has passed without
// reaching the goal and disburses the current balance. Anyone may call it.
func (k *Keeper) CheckDeadline(goCtx context.Context, caller string, poolID uint64) (math.Int, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, err := parseAddress(caller); err != nil {
		return math.Int{}, err
	}

	var distributed math.Int
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireKind(pool, types.PoolKindTarget); err != nil {
			return err
		}
		if !pool.Target.HasDeadline() {
			return errorsmod.Wrapf(types.ErrNoDeadline, "pool %d", poolID)
		}
		if pool.Target.GoalReached {
			return errorsmod.Wrapf(types.ErrGoalReached, "pool %d", poolID)
		}
		if err := requireActive(pool); err != nil {
			return err
		}
		if now(ctx) < pool.Target.Deadline {
			return errorsmod.Wrapf(types.ErrDeadlineNotReached, "deadline %d, now %d", pool.Target.Deadline, now(ctx))
		}

		emit(ctx, types.EventTypeDeadlineReached, pool.ID,
			sdk.NewAttribute(types.AttributeKeyAmount, pool.Balance.String()),
		)
		if err := k.setStatus(ctx, pool, types.PoolStatusCompleted); err != nil {
			return err
		}
		if distributed, err = k.distribute(ctx, pool); err != nil {
			return err
		}
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	k.recorder.Payout(string(types.PoolKindTarget), distributed)
	k.logger.Info("Target deadline reached",
		"pool_id", poolID,
		"amount", distributed.String(),
	)
	return distributed, nil
}

// distribute pays the balance out to the active members. Equal splits hand the
// remainder to the earliest members; proportional splits leave dust in the pool.
func (k *Keeper) distribute(ctx sdk.Context, pool *types.Pool) (math.Int, error) {
	members := k.activeMembers(ctx, pool.ID)
	if len(members) == 0 || !pool.Balance.IsPositive() {
		return math.ZeroInt(), nil
	}

	var shares []math.Int
	switch pool.Target.Method {
	case types.DistributionEqual:
		shares = types.EqualSplit(pool.Balance, len(members))
	case types.DistributionProportional:
		weights := make([]math.Int, len(members))
		for i, m := range members {
			weights[i] = m.TotalContributed
		}
		var err error
		if shares, _, err = types.ProportionalSplit(pool.Balance, weights); err != nil {
			return math.Int{}, err
		}
	default:
		return math.Int{}, errorsmod.Wrapf(types.ErrInvalidMethod, "%q", pool.Target.Method)
	}

	paid := math.ZeroInt()
	for i, m := range members {
		if err := k.payOut(ctx, pool, m, shares[i]); err != nil {
			return math.Int{}, err
		}
		paid = paid.Add(shares[i])
	}
	pool.Target.Distributed = pool.Target.Distributed.Add(paid)
	return paid, nil
}
