package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// MsgServer defines the ajo MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// Dispatch validates msg and routes it to its handler
func (m *MsgServer) Dispatch(ctx context.Context, msg sdk.Msg) (interface{}, error) {
	if v, ok := msg.(sdk.HasValidateBasic); ok {
		if err := v.ValidateBasic(); err != nil {
			return nil, err
		}
	}

	switch msg := msg.(type) {
	case *types.MsgCreateRotationalPool:
		return m.CreateRotationalPool(ctx, msg)
	case *types.MsgCreateTargetPool:
		return m.CreateTargetPool(ctx, msg)
	case *types.MsgCreateFlexiblePool:
		return m.CreateFlexiblePool(ctx, msg)
	case *types.MsgJoinPool:
		return m.JoinPool(ctx, msg)
	case *types.MsgContribute:
		return m.Contribute(ctx, msg)
	case *types.MsgDeposit:
		return m.Deposit(ctx, msg)
	case *types.MsgWithdraw:
		return m.Withdraw(ctx, msg)
	case *types.MsgCheckDeadline:
		return m.CheckDeadline(ctx, msg)
	case *types.MsgProcessPayout:
		return m.ProcessPayout(ctx, msg)
	case *types.MsgCalculateYield:
		return m.CalculateYield(ctx, msg)
	case *types.MsgApplyPenalty:
		return m.ApplyPenalty(ctx, msg)
	case *types.MsgPausePool:
		return m.PausePool(ctx, msg)
	case *types.MsgResumePool:
		return m.ResumePool(ctx, msg)
	case *types.MsgCancelPool:
		return m.CancelPool(ctx, msg)
	default:
		return nil, errorsmod.Wrapf(types.ErrInvalidTransition, "unrecognized %s message type %T", types.ModuleName, msg)
	}
}

// CreateRotationalPool handles MsgCreateRotationalPool
func (m *MsgServer) CreateRotationalPool(ctx context.Context, msg *types.MsgCreateRotationalPool) (*types.MsgCreatePoolResponse, error) {
	contribution, err := types.ParseAmount(msg.ContributionAmount)
	if err != nil {
		return nil, err
	}
	penalty, err := types.ParseAmount(msg.PenaltyAmount)
	if err != nil {
		return nil, err
	}

	pool, err := m.keeper.CreateRotationalPool(ctx, msg.Creator, msg.Name, msg.Denom, contribution, penalty, msg.GracePeriod, msg.Members)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolID: pool.ID, MemberCount: pool.Config.MemberCount}, nil
}

// CreateTargetPool handles MsgCreateTargetPool
func (m *MsgServer) CreateTargetPool(ctx context.Context, msg *types.MsgCreateTargetPool) (*types.MsgCreatePoolResponse, error) {
	target, err := types.ParseAmount(msg.TargetAmount)
	if err != nil {
		return nil, err
	}
	minContribution, err := types.ParseAmount(msg.MinContribution)
	if err != nil {
		return nil, err
	}
	penalty, err := types.ParseAmount(msg.PenaltyAmount)
	if err != nil {
		return nil, err
	}

	pool, err := m.keeper.CreateTargetPool(ctx, msg.Creator, msg.Name, msg.Denom, target, minContribution, penalty, msg.Deadline, types.DistributionMethod(msg.Method))
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolID: pool.ID, MemberCount: pool.Config.MemberCount}, nil
}

// CreateFlexiblePool handles MsgCreateFlexiblePool
func (m *MsgServer) CreateFlexiblePool(ctx context.Context, msg *types.MsgCreateFlexiblePool) (*types.MsgCreatePoolResponse, error) {
	minDeposit, err := types.ParseAmount(msg.MinDeposit)
	if err != nil {
		return nil, err
	}
	minWithdrawal, err := types.ParseAmount(msg.MinWithdrawal)
	if err != nil {
		return nil, err
	}
	penalty, err := types.ParseAmount(msg.PenaltyAmount)
	if err != nil {
		return nil, err
	}

	pool, err := m.keeper.CreateFlexiblePool(ctx, msg.Creator, msg.Name, msg.Denom, minDeposit, minWithdrawal, penalty, msg.YieldRate)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolID: pool.ID, MemberCount: pool.Config.MemberCount}, nil
}

// JoinPool handles MsgJoinPool
func (m *MsgServer) JoinPool(ctx context.Context, msg *types.MsgJoinPool) (*types.MsgJoinPoolResponse, error) {
	amount, err := types.ParseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	if _, err := m.keeper.JoinPool(ctx, msg.Member, msg.PoolID, amount); err != nil {
		return nil, err
	}

	pool := m.keeper.GetPool(sdk.UnwrapSDKContext(ctx), msg.PoolID)
	return &types.MsgJoinPoolResponse{MemberCount: pool.Config.MemberCount}, nil
}

// Contribute handles MsgContribute
func (m *MsgServer) Contribute(ctx context.Context, msg *types.MsgContribute) (*types.MsgContributeResponse, error) {
	amount, err := types.ParsePositiveAmount(msg.Amount)
	if err != nil {
		return nil, err
	}

	pool, distributed, err := m.keeper.Contribute(ctx, msg.Contributor, msg.PoolID, amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgContributeResponse{
		Balance:     pool.Balance.String(),
		Distributed: distributed.IsPositive(),
	}, nil
}

// Deposit handles MsgDeposit
func (m *MsgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	amount, err := types.ParsePositiveAmount(msg.Amount)
	if err != nil {
		return nil, err
	}

	member, err := m.keeper.Deposit(ctx, msg.Depositor, msg.PoolID, amount)
	if err != nil {
		return nil, err
	}
	pool := m.keeper.GetPool(sdk.UnwrapSDKContext(ctx), msg.PoolID)
	return &types.MsgDepositResponse{
		MemberTotal: member.TotalContributed.String(),
		Balance:     pool.Balance.String(),
	}, nil
}

// Withdraw handles MsgWithdraw
func (m *MsgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	amount, err := types.ParsePositiveAmount(msg.Amount)
	if err != nil {
		return nil, err
	}

	member, err := m.keeper.Withdraw(ctx, msg.Withdrawer, msg.PoolID, amount)
	if err != nil {
		return nil, err
	}
	pool := m.keeper.GetPool(sdk.UnwrapSDKContext(ctx), msg.PoolID)
	return &types.MsgWithdrawResponse{
		MemberTotal: member.TotalContributed.String(),
		Balance:     pool.Balance.String(),
	}, nil
}

// CheckDeadline handles MsgCheckDeadline
func (m *MsgServer) CheckDeadline(ctx context.Context, msg *types.MsgCheckDeadline) (*types.MsgDistributionResponse, error) {
	distributed, err := m.keeper.CheckDeadline(ctx, msg.Caller, msg.PoolID)
	if err != nil {
		return nil, err
	}
	return m.distribution(ctx, msg.PoolID, distributed.String()), nil
}

// ProcessPayout handles MsgProcessPayout
func (m *MsgServer) ProcessPayout(ctx context.Context, msg *types.MsgProcessPayout) (*types.MsgDistributionResponse, error) {
	paid, err := m.keeper.ProcessPayout(ctx, msg.Caller, msg.PoolID)
	if err != nil {
		return nil, err
	}
	return m.distribution(ctx, msg.PoolID, paid.String()), nil
}

func (m *MsgServer) distribution(ctx context.Context, poolID uint64, amount string) *types.MsgDistributionResponse {
	pool := m.keeper.GetPool(sdk.UnwrapSDKContext(ctx), poolID)
	return &types.MsgDistributionResponse{Distributed: amount, Status: string(pool.Config.Status)}
}

// CalculateYield handles MsgCalculateYield
func (m *MsgServer) CalculateYield(ctx context.Context, msg *types.MsgCalculateYield) (*types.MsgCalculateYieldResponse, error) {
	yield, err := m.keeper.CalculateYield(ctx, msg.Caller, msg.PoolID)
	if err != nil {
		return nil, err
	}
	return &types.MsgCalculateYieldResponse{Yield: yield.String()}, nil
}

// ApplyPenalty handles MsgApplyPenalty (controller only)
func (m *MsgServer) ApplyPenalty(ctx context.Context, msg *types.MsgApplyPenalty) (*types.MsgApplyPenaltyResponse, error) {
	applied, err := m.keeper.ApplyPenalty(ctx, msg.Controller, msg.PoolID, msg.Member)
	if err != nil {
		return nil, err
	}
	return &types.MsgApplyPenaltyResponse{Applied: applied.String()}, nil
}

// PausePool handles MsgPausePool (controller only)
func (m *MsgServer) PausePool(ctx context.Context, msg *types.MsgPausePool) (*types.MsgStatusResponse, error) {
	if err := m.keeper.PausePool(ctx, msg.Controller, msg.PoolID); err != nil {
		return nil, err
	}
	return &types.MsgStatusResponse{Status: string(types.PoolStatusPaused)}, nil
}

// ResumePool handles MsgResumePool (controller only)
func (m *MsgServer) ResumePool(ctx context.Context, msg *types.MsgResumePool) (*types.MsgStatusResponse, error) {
	if err := m.keeper.ResumePool(ctx, msg.Controller, msg.PoolID); err != nil {
		return nil, err
	}
	return &types.MsgStatusResponse{Status: string(types.PoolStatusActive)}, nil
}

// CancelPool handles MsgCancelPool (controller only)
func (m *MsgServer) CancelPool(ctx context.Context, msg *types.MsgCancelPool) (*types.MsgStatusResponse, error) {
	if err := m.keeper.CancelPool(ctx, msg.Controller, msg.PoolID); err != nil {
		return nil, err
	}
	return &types.MsgStatusResponse{Status: string(types.PoolStatusCancelled)}, nil
}
