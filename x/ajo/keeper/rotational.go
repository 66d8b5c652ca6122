package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// CreateRotationalPool creates a pool that pays its whole balance to one member
// per funded round. The creator receives the first payout; members follow in
// the given order with repeats dropped.
func (k *Keeper) CreateRotationalPool(
	goCtx context.Context,
	creator, name, denom string,
	contribution, penalty math.Int,
	gracePeriod int64,
	members []string,
) (*types.Pool, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if contribution.IsNil() || !contribution.IsPositive() {
		return nil, errorsmod.Wrap(types.ErrInvalidAmount, "contribution amount must be positive")
	}
	if penalty.IsNil() {
		penalty = math.ZeroInt()
	}
	if penalty.IsNegative() || gracePeriod < 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidAmount, "penalty and grace period must be non-negative")
	}
	order := types.RotationOrder(creator, members)
	if len(order) < 2 {
		return nil, errorsmod.Wrapf(types.ErrTooFewMembers, "rotation needs at least 2 members, got %d", len(order))
	}

	var pool *types.Pool
	err := cached(ctx, func(ctx sdk.Context) error {
		pool = types.NewPool(k.allocatePoolID(ctx), types.PoolKindRotational, name, creator, denom, contribution, penalty, gracePeriod, now(ctx))
		pool.Rotation = types.NewRotationState(order, now(ctx))
		return k.createPool(ctx, pool, order[1:])
	})
	if err != nil {
		return nil, err
	}

	k.recorder.PoolCreated(string(pool.Kind))
	k.logger.Info("Rotational pool created",
		"pool_id", pool.ID,
		"creator", creator,
		"members", pool.Config.MemberCount,
		"amount", contribution.String(),
	)
	return pool, nil
}

// roundTarget is the balance that funds a full round
func roundTarget(pool *types.Pool) (math.Int, error) {
	return types.SafeMul(pool.Config.ContributionAmount, math.NewIntFromUint64(pool.Config.MemberCount))
}

func roundFunded(pool *types.Pool) (bool, error) {
	target, err := roundTarget(pool)
	if err != nil {
		return false, err
	}
	return pool.Balance.GTE(target), nil
}

// contributeRotational records exactly one contribution unit and pays the
// round out when it becomes funded
func (k *Keeper) contributeRotational(ctx sdk.Context, pool *types.Pool, addr string, amount math.Int) (math.Int, error) {
	if err := requireActive(pool); err != nil {
		return math.Int{}, err
	}
	member, err := k.requireMember(ctx, pool, addr)
	if err != nil {
		return math.Int{}, err
	}
	if !amount.Equal(pool.Config.ContributionAmount) {
		return math.Int{}, errorsmod.Wrapf(types.ErrAmountMismatch, "got %s, want %s", amount, pool.Config.ContributionAmount)
	}
	if err := k.recordContribution(ctx, pool, member, amount); err != nil {
		return math.Int{}, err
	}
	pool.Rotation.MarkContributed(addr)

	funded, err := roundFunded(pool)
	if err != nil || !funded {
		return math.ZeroInt(), err
	}
	return k.payRound(ctx, pool)
}

// payRound sends the whole balance to the current recipient and advances the
// rotation, completing the pool after the last rotation
func (k *Keeper) payRound(ctx sdk.Context, pool *types.Pool) (math.Int, error) {
	rot := pool.Rotation
	recipient, ok := rot.CurrentRecipient()
	if !ok {
		return math.Int{}, errorsmod.Wrapf(types.ErrInvalidTransition, "pool %d has no rotations left", pool.ID)
	}
	if rot.IsPaid(recipient) {
		return math.Int{}, errorsmod.Wrapf(types.ErrAlreadyPaid, "%s in pool %d", recipient, pool.ID)
	}
	member := k.GetMember(ctx, pool.ID, recipient)
	if member == nil {
		return math.Int{}, errorsmod.Wrapf(types.ErrNotMember, "recipient %s in pool %d", recipient, pool.ID)
	}

	amount := pool.Balance
	if err := k.payOut(ctx, pool, member, amount); err != nil {
		return math.Int{}, err
	}
	rot.Advance(recipient, now(ctx))

	emit(ctx, types.EventTypeRotationCompleted, pool.ID,
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyRotation, strconv.FormatUint(rot.CompletedRotations, 10)),
	)

	if rot.Finished() {
		if err := k.setStatus(ctx, pool, types.PoolStatusCompleted); err != nil {
			return math.Int{}, err
		}
	}
	return amount, nil
}

// ProcessPayout pays out a funded rotational round. Anyone may call it.
func (k *Keeper) ProcessPayout(goCtx context.Context, caller string, poolID uint64) (math.Int, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, err := parseAddress(caller); err != nil {
		return math.Int{}, err
	}

	var paid math.Int
	var recipient string
	err := k.atomic(ctx, poolID, func(ctx sdk.Context) error {
		pool, err := k.loadPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := requireKind(pool, types.PoolKindRotational); err != nil {
			return err
		}
		if err := requireActive(pool); err != nil {
			return err
		}
		funded, err := roundFunded(pool)
		if err != nil {
			return err
		}
		if !funded {
			target, _ := roundTarget(pool)
			return errorsmod.Wrapf(types.ErrRoundIncomplete, "balance %s of %s", pool.Balance, target)
		}
		recipient, _ = pool.Rotation.CurrentRecipient()
		if paid, err = k.payRound(ctx, pool); err != nil {
			return err
		}
		k.SetPool(ctx, pool)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	k.recorder.Payout(string(types.PoolKindRotational), paid)
	k.logger.Info("Rotation paid out",
		"pool_id", poolID,
		"recipient", recipient,
		"amount", paid.String(),
	)
	return paid, nil
}
