package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// emit emits a pool event stamped with the pool id and block time
func emit(ctx sdk.Context, eventType string, poolID uint64, attrs ...sdk.Attribute) {
	base := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
		sdk.NewAttribute(types.AttributeKeyTimestamp, strconv.FormatInt(now(ctx), 10)),
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(eventType, append(base, attrs...)...))
}

// createPool stores a new pool and admits the creator followed by members
func (k *Keeper) createPool(ctx sdk.Context, pool *types.Pool, members []string) error {
	if _, err := parseAddress(pool.Config.Creator); err != nil {
		return err
	}
	if pool.Config.Denom == "" {
		pool.Config.Denom = k.GetParams(ctx).DefaultDenom
	}
	if err := sdk.ValidateDenom(pool.Config.Denom); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidDenom, "%s", err)
	}

	emit(ctx, types.EventTypePoolCreated, pool.ID,
		sdk.NewAttribute(types.AttributeKeyKind, string(pool.Kind)),
		sdk.NewAttribute(types.AttributeKeyCreator, pool.Config.Creator),
	)
	if _, err := k.admit(ctx, pool, pool.Config.Creator); err != nil {
		return err
	}
	for _, addr := range members {
		if _, err := k.admit(ctx, pool, addr); err != nil {
			return err
		}
	}
	k.SetPool(ctx, pool)
	return nil
}

// admit registers addr as a member with zero totals
func (k *Keeper) admit(ctx sdk.Context, pool *types.Pool, addr string) (*types.Member, error) {
	if err := requireActive(pool); err != nil {
		return nil, err
	}
	if _, err := parseAddress(addr); err != nil {
		return nil, err
	}
	if k.HasMember(ctx, pool.ID, addr) {
		return nil, errorsmod.Wrapf(types.ErrAlreadyMember, "%s in pool %d", addr, pool.ID)
	}
	if max := k.GetParams(ctx).MaxMembers; max > 0 && pool.Config.MemberCount >= max {
		return nil, errorsmod.Wrapf(types.ErrPoolFull, "pool %d has %d members", pool.ID, max)
	}

	member := types.NewMember(addr, now(ctx))
	k.SetMember(ctx, pool.ID, member)
	k.setMemberOrder(ctx, pool.ID, pool.Config.MemberCount, addr)
	pool.Config.MemberCount++

	emit(ctx, types.EventTypeMemberAdmitted, pool.ID,
		sdk.NewAttribute(types.AttributeKeyMember, addr),
	)
	return member, nil
}

// recordContribution pulls amount from the member into the module account and
// credits it to the member total and the pool balance. It never distributes.
func (k *Keeper) recordContribution(ctx sdk.Context, pool *types.Pool, member *types.Member, amount math.Int) error {
	if err := requireActive(pool); err != nil {
		return err
	}
	if !member.Active {
		return errorsmod.Wrapf(types.ErrNotMember, "%s is inactive in pool %d", member.Address, pool.ID)
	}
	if !amount.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidAmount, "contribution must be positive")
	}

	total, err := types.SafeAdd(member.TotalContributed, amount)
	if err != nil {
		return err
	}
	balance, err := types.SafeAdd(pool.Balance, amount)
	if err != nil {
		return err
	}

	sender, err := parseAddress(member.Address)
	if err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, pool.Coins(amount)); err != nil {
		return errorsmod.Wrapf(types.ErrTransferFailed, "contribution from %s: %s", member.Address, err)
	}

	member.TotalContributed = total
	pool.Balance = balance
	k.SetMember(ctx, pool.ID, member)

	emit(ctx, types.EventTypeContributionMade, pool.ID,
		sdk.NewAttribute(types.AttributeKeyMember, member.Address),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

// payOut transfers amount from the pool balance to the member
func (k *Keeper) payOut(ctx sdk.Context, pool *types.Pool, member *types.Member, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	balance, err := types.SafeSub(pool.Balance, amount)
	if err != nil {
		return err
	}
	received, err := types.SafeAdd(member.TotalReceived, amount)
	if err != nil {
		return err
	}
	if err := k.sendFromModule(ctx, pool, member.Address, amount); err != nil {
		return err
	}

	pool.Balance = balance
	member.TotalReceived = received
	k.SetMember(ctx, pool.ID, member)

	emit(ctx, types.EventTypeFundsDistributed, pool.ID,
		sdk.NewAttribute(types.AttributeKeyRecipient, member.Address),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

func (k *Keeper) sendFromModule(ctx sdk.Context, pool *types.Pool, to string, amount math.Int) error {
	recipient, err := parseAddress(to)
	if err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, pool.Coins(amount)); err != nil {
		return errorsmod.Wrapf(types.ErrTransferFailed, "transfer of %s%s to %s: %s", amount, pool.Config.Denom, to, err)
	}
	return nil
}

// applyPenalty deducts min(penalty, member total, pool balance) from addr and
// sends it to the controller
func (k *Keeper) applyPenalty(ctx sdk.Context, pool *types.Pool, addr string) (math.Int, error) {
	if err := requireActive(pool); err != nil {
		return math.Int{}, err
	}
	member := k.GetMember(ctx, pool.ID, addr)
	if member == nil {
		return math.Int{}, errorsmod.Wrapf(types.ErrNotMember, "%s in pool %d", addr, pool.ID)
	}
	if !pool.Config.PenaltyAmount.IsPositive() {
		return math.Int{}, errorsmod.Wrapf(types.ErrNoPenalty, "pool %d", pool.ID)
	}
	if pool.Rotation != nil {
		// RoundStartedAt+GracePeriod can overflow int64
		if now(ctx)-pool.Rotation.RoundStartedAt < pool.Config.GracePeriod {
			return math.Int{}, errorsmod.Wrapf(types.ErrGracePeriodActive, "round started at %d", pool.Rotation.RoundStartedAt)
		}
		if pool.Rotation.HasContributed(addr) {
			return math.Int{}, errorsmod.Wrapf(types.ErrInvalidTransition, "%s contributed in the current round", addr)
		}
	}

	applied := math.MinInt(pool.Config.PenaltyAmount, math.MinInt(member.TotalContributed, pool.Balance))
	if applied.IsPositive() {
		if err := k.sendFromModule(ctx, pool, pool.Config.Creator, applied); err != nil {
			return math.Int{}, err
		}
		member.TotalContributed = member.TotalContributed.Sub(applied)
		pool.Balance = pool.Balance.Sub(applied)
		if pool.Kind == types.PoolKindFlexible && member.TotalContributed.IsZero() {
			member.Active = false
		}
		k.SetMember(ctx, pool.ID, member)
	}

	emit(ctx, types.EventTypePenaltyApplied, pool.ID,
		sdk.NewAttribute(types.AttributeKeyMember, addr),
		sdk.NewAttribute(types.AttributeKeyAmount, applied.String()),
	)
	return applied, nil
}

// setStatus moves the pool to next if the lifecycle allows it
func (k *Keeper) setStatus(ctx sdk.Context, pool *types.Pool, next types.PoolStatus) error {
	if !pool.Config.Status.CanTransitionTo(next) {
		return errorsmod.Wrapf(types.ErrInvalidTransition, "pool %d: %s -> %s", pool.ID, pool.Config.Status, next)
	}
	pool.Config.Status = next
	emit(ctx, types.EventTypePoolStatusChanged, pool.ID,
		sdk.NewAttribute(types.AttributeKeyStatus, string(next)),
	)
	return nil
}

// ============ Controller operations ============

// ApplyPenalty penalizes a member of the pool. Only the controller may call it.
// The penalty is paid to the controller out of the pooled balance; in a
// rotational pool that balance holds the staged funds of the current round,
// so the round needs the deducted amount again before it can pay out.
func (k *Keeper) ApplyPenalty(goCtx context.Context, controller string, poolID uint64, addr string) (math.Int, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var applied math.Int
	var kind types.PoolKind
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireController(pool, controller); err != nil {
			return err
		}
		if applied, err = k.applyPenalty(ctx, pool, addr); err != nil {
			return err
		}
		kind = pool.Kind
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	k.recorder.Penalty(string(kind), applied)
	k.logger.Info("Penalty applied",
		"pool_id", poolID,
		"member", addr,
		"amount", applied.String(),
	)
	return applied, nil
}

// PausePool pauses an active pool
func (k *Keeper) PausePool(ctx context.Context, controller string, poolID uint64) error {
	return k.transition(ctx, controller, poolID, types.PoolStatusPaused)
}

// ResumePool resumes a paused pool
func (k *Keeper) ResumePool(ctx context.Context, controller string, poolID uint64) error {
	return k.transition(ctx, controller, poolID, types.PoolStatusActive)
}

// CancelPool cancels an active pool. Cancellation is terminal and moves no funds;
// flexible members may still withdraw.
func (k *Keeper) CancelPool(ctx context.Context, controller string, poolID uint64) error {
	return k.transition(ctx, controller, poolID, types.PoolStatusCancelled)
}

func (k *Keeper) transition(goCtx context.Context, controller string, poolID uint64, next types.PoolStatus) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	yield := math.ZeroInt()
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireController(pool, controller); err != nil {
			return err
		}
		if pool.Flexible != nil {
			// settle yield up to the pause, and earn none while paused
			if next == types.PoolStatusActive {
				pool.Flexible.LastAccrualAt = now(ctx)
			} else if yield, err = k.accrue(ctx, pool); err != nil {
				return err
			}
		}
		if err := k.setStatus(ctx, pool, next); err != nil {
			return err
		}
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return err
	}

	if yield.IsPositive() {
		k.recorder.YieldIssued(yield)
	}
	k.logger.Info("Pool status changed", "pool_id", poolID, "status", string(next))
	return nil
}

// JoinPool admits addr to a target or flexible pool. Flexible pools take an
// opening deposit; rotational membership is fixed at creation.
func (k *Keeper) JoinPool(goCtx context.Context, addr string, poolID uint64, amount math.Int) (*types.Member, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return nil, errorsWrapPoolNotFound(poolID)
	}
	switch pool.Kind {
	case types.PoolKindTarget:
		return k.JoinTarget(ctx, addr, poolID)
	case types.PoolKindFlexible:
		return k.JoinFlexible(ctx, addr, poolID, amount)
	default:
		return nil, errorsmod.Wrapf(types.ErrWrongPolicy, "pool %d: rotational membership is fixed at creation", poolID)
	}
}

// Contribute records a contribution to a rotational or target pool and runs
// the pool's distribution check. It returns the pool after the call and the
// amount distributed by it.
func (k *Keeper) Contribute(goCtx context.Context, addr string, poolID uint64, amount math.Int) (*types.Pool, math.Int, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if amount.IsNil() || !amount.IsPositive() {
		return nil, math.Int{}, errorsmod.Wrap(types.ErrInvalidAmount, "contribution must be positive")
	}

	var pool *types.Pool
	var distributed math.Int
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		var err error
		if pool, err = k.loadPool(ctx, poolID); err != nil {
			return err
		}
		switch pool.Kind {
		case types.PoolKindRotational:
			distributed, err = k.contributeRotational(ctx, pool, addr, amount)
		case types.PoolKindTarget:
			distributed, err = k.contributeTarget(ctx, pool, addr, amount)
		default:
			err = errorsmod.Wrapf(types.ErrWrongPolicy, "pool %d takes deposits", poolID)
		}
		if err != nil {
			return err
		}
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return nil, math.Int{}, err
	}

	k.recorder.Contribution(string(pool.Kind), amount)
	if distributed.IsPositive() {
		k.recorder.Payout(string(pool.Kind), distributed)
	}
	k.logger.Info("Contribution recorded",
		"pool_id", poolID,
		"member", addr,
		"amount", amount.String(),
		"distributed", distributed.String(),
	)
	return pool, distributed, nil
}
