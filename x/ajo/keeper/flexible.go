package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// CreateFlexiblePool creates an open deposit/withdraw pool accruing yield at
// yieldRate basis points per year
func (k *Keeper) CreateFlexiblePool(
	goCtx context.Context,
	creator, name, denom string,
	minDeposit, minWithdrawal, penalty math.Int,
	yieldRate uint64,
) (*types.Pool, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	for _, v := range []*math.Int{&minDeposit, &minWithdrawal, &penalty} {
		if v.IsNil() {
			*v = math.ZeroInt()
		}
		if v.IsNegative() {
			return nil, errorsmod.Wrap(types.ErrInvalidAmount, "minimums and penalty must be non-negative")
		}
	}
	if max := k.GetParams(ctx).MaxYieldRate; max > 0 && yieldRate > max {
		return nil, errorsmod.Wrapf(types.ErrInvalidYieldRate, "%d exceeds %d", yieldRate, max)
	}

	var pool *types.Pool
	err := cached(ctx, func(ctx sdk.Context) error {
		pool = types.NewPool(k.allocatePoolID(ctx), types.PoolKindFlexible, name, creator, denom, minDeposit, penalty, 0, now(ctx))
		pool.Flexible = types.NewFlexibleState(minDeposit, minWithdrawal, yieldRate, now(ctx))
		return k.createPool(ctx, pool, nil)
	})
	if err != nil {
		return nil, err
	}

	k.recorder.PoolCreated(string(pool.Kind))
	k.logger.Info("Flexible pool created",
		"pool_id", pool.ID,
		"creator", creator,
		"yield_rate", yieldRate,
	)
	return pool, nil
}

// JoinFlexible admits addr with an opening deposit
func (k *Keeper) JoinFlexible(goCtx context.Context, addr string, poolID uint64, amount math.Int) (*types.Member, error) {
	return k.flexibleDeposit(goCtx, addr, poolID, amount, true)
}

// Deposit adds amount to the member's stake in a flexible pool. A member that
// withdrew everything is reactivated.
func (k *Keeper) Deposit(goCtx context.Context, addr string, poolID uint64, amount math.Int) (*types.Member, error) {
	return k.flexibleDeposit(goCtx, addr, poolID, amount, false)
}

func (k *Keeper) flexibleDeposit(goCtx context.Context, addr string, poolID uint64, amount math.Int, join bool) (*types.Member, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var member *types.Member
	yield := math.ZeroInt()
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireKind(pool, types.PoolKindFlexible); err != nil {
			return err
		}
		if err := requireActive(pool); err != nil {
			return err
		}
		if amount.IsNil() || amount.LT(pool.Flexible.MinDeposit) {
			return errorsmod.Wrapf(types.ErrAmountBelowMinimum, "got %s, minimum %s", amount, pool.Flexible.MinDeposit)
		}

		// accrue first so the new deposit earns nothing retroactively
		if yield, err = k.accrue(ctx, pool); err != nil {
			return err
		}

		if join {
			if member, err = k.admit(ctx, pool, addr); err != nil {
				return err
			}
		} else {
			if member = k.GetMember(ctx, pool.ID, addr); member == nil {
				return errorsmod.Wrapf(types.ErrNotMember, "%s in pool %d", addr, poolID)
			}
			member.Active = true
		}
		if err := k.recordContribution(ctx, pool, member, amount); err != nil {
			return err
		}
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if yield.IsPositive() {
		k.recorder.YieldIssued(yield)
	}
	k.recorder.Contribution(string(types.PoolKindFlexible), amount)
	k.logger.Info("Deposit processed",
		"pool_id", poolID,
		"member", addr,
		"amount", amount.String(),
		"total", member.TotalContributed.String(),
	)
	return member, nil
}

// Withdraw pays amount out of the member's stake. Withdrawals stay open after
// cancellation but not while the pool is paused.
func (k *Keeper) Withdraw(goCtx context.Context, addr string, poolID uint64, amount math.Int) (*types.Member, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var member *types.Member
	yield := math.ZeroInt()
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireKind(pool, types.PoolKindFlexible); err != nil {
			return err
		}
		status := pool.Config.Status
		if status != types.PoolStatusActive && status != types.PoolStatusCancelled {
			return errorsmod.Wrapf(types.ErrPoolNotActive, "pool %d is %s", poolID, status)
		}
		if amount.IsNil() || !amount.IsPositive() {
			return errorsmod.Wrap(types.ErrInvalidAmount, "withdrawal must be positive")
		}
		if amount.LT(pool.Flexible.MinWithdrawal) {
			return errorsmod.Wrapf(types.ErrAmountBelowMinimum, "got %s, minimum %s", amount, pool.Flexible.MinWithdrawal)
		}
		if yield, err = k.accrue(ctx, pool); err != nil {
			return err
		}
		if member, err = k.requireMember(ctx, pool, addr); err != nil {
			return err
		}

		stake, err := types.SafeSub(member.TotalContributed, amount)
		if err != nil {
			return errorsmod.Wrapf(err, "member %s", addr)
		}
		balance, err := types.SafeSub(pool.Balance, amount)
		if err != nil {
			return errorsmod.Wrapf(err, "pool %d", poolID)
		}
		if err := k.sendFromModule(ctx, pool, addr, amount); err != nil {
			return err
		}

		member.TotalContributed = stake
		if stake.IsZero() {
			member.Active = false
		}
		pool.Balance = balance
		k.SetMember(ctx, poolID, member)
		k.SetPool(ctx, pool)

		emit(ctx, types.EventTypeWithdrawal, poolID,
			sdk.NewAttribute(types.AttributeKeyMember, addr),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if yield.IsPositive() {
		k.recorder.YieldIssued(yield)
	}
	k.recorder.Withdrawal(amount)
	k.logger.Info("Withdrawal processed",
		"pool_id", poolID,
		"member", addr,
		"amount", amount.String(),
	)
	return member, nil
}

// CalculateYield accrues pending yield on a flexible pool. Anyone may call it.
func (k *Keeper) CalculateYield(goCtx context.Context, caller string, poolID uint64) (math.Int, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, err := parseAddress(caller); err != nil {
		return math.Int{}, err
	}

	var yield math.Int
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireKind(pool, types.PoolKindFlexible); err != nil {
			return err
		}
		if yield, err = k.accrue(ctx, pool); err != nil {
			return err
		}
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	if yield.IsPositive() {
		k.recorder.YieldIssued(yield)
		k.logger.Info("Yield distributed", "pool_id", poolID, "amount", yield.String())
	}
	return yield, nil
}

// PendingYield returns what accrual would issue at the current block time
func (k *Keeper) PendingYield(ctx sdk.Context, pool *types.Pool) (math.Int, error) {
	if pool.Flexible == nil || !pool.IsActive() {
		return math.ZeroInt(), nil
	}
	if _, weights := k.stakes(ctx, pool.ID); !anyPositive(weights) {
		return math.ZeroInt(), nil
	}
	return types.AccrueYield(pool.Balance, pool.Flexible.YieldRate, now(ctx)-pool.Flexible.LastAccrualAt)
}

// accrue mints the yield earned since the last accrual into the module account
// and credits it to the members by stake. The timestamp always advances; an
// inactive pool, or one where no active member holds a stake, earns nothing.
func (k *Keeper) accrue(ctx sdk.Context, pool *types.Pool) (math.Int, error) {
	flex := pool.Flexible
	yield, err := k.PendingYield(ctx, pool)
	if err != nil {
		return math.Int{}, err
	}
	if t := now(ctx); t > flex.LastAccrualAt {
		flex.LastAccrualAt = t
	}
	if !yield.IsPositive() {
		return math.ZeroInt(), nil
	}

	balance, err := types.SafeAdd(pool.Balance, yield)
	if err != nil {
		return math.Int{}, err
	}
	totalYield, err := types.SafeAdd(flex.TotalYieldPaid, yield)
	if err != nil {
		return math.Int{}, err
	}

	members, weights := k.stakes(ctx, pool.ID)
	shares, _, err := types.ProportionalSplit(yield, weights)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, pool.Coins(yield)); err != nil {
		return math.Int{}, errorsmod.Wrapf(types.ErrTransferFailed, "mint %s%s: %s", yield, pool.Config.Denom, err)
	}
	for i, m := range members {
		if !shares[i].IsPositive() {
			continue
		}
		if m.TotalContributed, err = types.SafeAdd(m.TotalContributed, shares[i]); err != nil {
			return math.Int{}, err
		}
		k.SetMember(ctx, pool.ID, m)
	}
	pool.Balance = balance
	flex.TotalYieldPaid = totalYield

	emit(ctx, types.EventTypeYieldDistributed, pool.ID,
		sdk.NewAttribute(types.AttributeKeyAmount, yield.String()),
		sdk.NewAttribute(types.AttributeKeyBalance, balance.String()),
	)
	return yield, nil
}

// stakes returns the active members of a pool with their stakes as weights
func (k *Keeper) stakes(ctx sdk.Context, poolID uint64) ([]*types.Member, []math.Int) {
	members := k.activeMembers(ctx, poolID)
	weights := make([]math.Int, len(members))
	for i, m := range members {
		weights[i] = m.TotalContributed
	}
	return members, weights
}

func anyPositive(amounts []math.Int) bool {
	for _, a := range amounts {
		if a.IsPositive() {
			return true
		}
	}
	return false
}
