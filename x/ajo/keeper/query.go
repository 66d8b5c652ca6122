package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// QueryServer defines the ajo QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Pool returns a pool by ID
func (q *QueryServer) Pool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	return q.keeper.loadPool(sdk.UnwrapSDKContext(ctx), poolID)
}

// Pools returns a page of pools in id order with the total count
func (q *QueryServer) Pools(ctx context.Context, offset, limit uint64) ([]*types.Pool, uint64, error) {
	allPools := q.keeper.GetAllPools(sdk.UnwrapSDKContext(ctx))

	total := uint64(len(allPools))
	if offset >= total {
		return []*types.Pool{}, total, nil
	}

	end := total
	if limit > 0 && limit < total-offset {
		end = offset + limit
	}
	return allPools[offset:end], total, nil
}

// Member returns one member of a pool
func (q *QueryServer) Member(ctx context.Context, poolID uint64, addr string) (*types.Member, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := q.keeper.loadPool(sdkCtx, poolID); err != nil {
		return nil, err
	}
	member := q.keeper.GetMember(sdkCtx, poolID, addr)
	if member == nil {
		return nil, errorsmod.Wrapf(types.ErrNotMember, "%s in pool %d", addr, poolID)
	}
	return member, nil
}

// Members returns every member of a pool in admission order
func (q *QueryServer) Members(ctx context.Context, poolID uint64) ([]*types.Member, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := q.keeper.loadPool(sdkCtx, poolID); err != nil {
		return nil, err
	}
	return q.keeper.GetMembers(sdkCtx, poolID), nil
}

// IsMember reports whether addr is an active member of the pool
func (q *QueryServer) IsMember(ctx context.Context, poolID uint64, addr string) (bool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := q.keeper.loadPool(sdkCtx, poolID); err != nil {
		return false, err
	}
	member := q.keeper.GetMember(sdkCtx, poolID, addr)
	return member != nil && member.Active, nil
}

// Balance returns the pooled balance
func (q *QueryServer) Balance(ctx context.Context, poolID uint64) (math.Int, error) {
	pool, err := q.keeper.loadPool(sdk.UnwrapSDKContext(ctx), poolID)
	if err != nil {
		return math.Int{}, err
	}
	return pool.Balance, nil
}

// RotationStatus returns the round state of a rotational pool
func (q *QueryServer) RotationStatus(ctx context.Context, poolID uint64) (*types.RotationStatus, error) {
	pool, err := q.keeper.loadPool(sdk.UnwrapSDKContext(ctx), poolID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(pool, types.PoolKindRotational); err != nil {
		return nil, err
	}
	target, err := roundTarget(pool)
	if err != nil {
		return nil, err
	}

	rot := pool.Rotation
	recipient, _ := rot.CurrentRecipient()
	return &types.RotationStatus{
		PoolID:             pool.ID,
		CurrentRecipient:   recipient,
		CurrentIndex:       rot.CurrentIndex,
		CompletedRotations: rot.CompletedRotations,
		TotalRotations:     rot.TotalRotations,
		RoundContributors:  rot.RoundContributors,
		RoundStartedAt:     rot.RoundStartedAt,
		RoundTarget:        target,
		Balance:            pool.Balance,
	}, nil
}

// TargetProgress returns the goal progress of a target pool
func (q *QueryServer) TargetProgress(ctx context.Context, poolID uint64) (*types.TargetProgress, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool, err := q.keeper.loadPool(sdkCtx, poolID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(pool, types.PoolKindTarget); err != nil {
		return nil, err
	}

	t := pool.Target
	return &types.TargetProgress{
		PoolID:         pool.ID,
		Balance:        pool.Balance,
		TargetAmount:   t.TargetAmount,
		Progress:       t.Progress(pool.Balance),
		GoalReached:    t.GoalReached,
		Deadline:       t.Deadline,
		DeadlinePassed: t.HasDeadline() && now(sdkCtx) >= t.Deadline,
		Distributed:    t.Distributed,
	}, nil
}

// YieldStatus returns the yield state of a flexible pool, including the yield
// that accrual would issue now
func (q *QueryServer) YieldStatus(ctx context.Context, poolID uint64) (*types.YieldStatus, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool, err := q.keeper.loadPool(sdkCtx, poolID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(pool, types.PoolKindFlexible); err != nil {
		return nil, err
	}
	pending, err := q.keeper.PendingYield(sdkCtx, pool)
	if err != nil {
		return nil, err
	}

	f := pool.Flexible
	return &types.YieldStatus{
		PoolID:         pool.ID,
		YieldRate:      f.YieldRate,
		LastAccrualAt:  f.LastAccrualAt,
		TotalYieldPaid: f.TotalYieldPaid,
		PendingYield:   pending,
		Balance:        pool.Balance,
	}, nil
}
