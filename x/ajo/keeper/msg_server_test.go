package keeper

import (
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

func (s *KeeperTestSuite) TestMsgServerRotationalFlow() {
	res, err := s.msgs.Dispatch(s.ctx, &types.MsgCreateRotationalPool{
		Creator:            s.alice,
		Name:               "circle",
		ContributionAmount: "100",
		Members:            []string{s.bob},
	})
	s.Require().NoError(err)
	created := res.(*types.MsgCreatePoolResponse)
	s.Require().Equal(uint64(1), created.PoolID)
	s.Require().Equal(uint64(2), created.MemberCount)

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgContribute{Contributor: s.alice, PoolID: created.PoolID, Amount: "100"})
	s.Require().NoError(err)
	s.Require().False(res.(*types.MsgContributeResponse).Distributed)

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgContribute{Contributor: s.bob, PoolID: created.PoolID, Amount: "100"})
	s.Require().NoError(err)
	contributed := res.(*types.MsgContributeResponse)
	s.Require().True(contributed.Distributed)
	s.Require().Equal("0", contributed.Balance)

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgProcessPayout{Caller: s.dave, PoolID: created.PoolID})
	s.Require().ErrorIs(err, types.ErrRoundIncomplete)
	s.requireConserved()
}

func (s *KeeperTestSuite) TestMsgServerTargetFlow() {
	deadline := s.ctx.BlockTime().Unix() + 100
	res, err := s.msgs.Dispatch(s.ctx, &types.MsgCreateTargetPool{
		Creator:      s.alice,
		TargetAmount: "1000",
		Deadline:     deadline,
		Method:       string(types.DistributionEqual),
	})
	s.Require().NoError(err)
	poolID := res.(*types.MsgCreatePoolResponse).PoolID

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgJoinPool{Member: s.bob, PoolID: poolID})
	s.Require().NoError(err)
	s.Require().Equal(uint64(2), res.(*types.MsgJoinPoolResponse).MemberCount)

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgContribute{Contributor: s.bob, PoolID: poolID, Amount: "31"})
	s.Require().NoError(err)

	s.advance(100)
	res, err = s.msgs.Dispatch(s.ctx, &types.MsgCheckDeadline{Caller: s.dave, PoolID: poolID})
	s.Require().NoError(err)
	dist := res.(*types.MsgDistributionResponse)
	s.Require().Equal("31", dist.Distributed)
	s.Require().Equal(string(types.PoolStatusCompleted), dist.Status)
	s.Require().Equal(int64(16), s.member(poolID, s.alice).TotalReceived.Int64())
	s.Require().Equal(int64(15), s.member(poolID, s.bob).TotalReceived.Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestMsgServerFlexibleFlow() {
	res, err := s.msgs.Dispatch(s.ctx, &types.MsgCreateFlexiblePool{
		Creator:       s.alice,
		MinDeposit:    "10",
		MinWithdrawal: "10",
		YieldRate:     500,
	})
	s.Require().NoError(err)
	poolID := res.(*types.MsgCreatePoolResponse).PoolID

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgJoinPool{Member: s.bob, PoolID: poolID, Amount: "2000"})
	s.Require().NoError(err)

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgDeposit{Depositor: s.bob, PoolID: poolID, Amount: "1000"})
	s.Require().NoError(err)
	s.Require().Equal("3000", res.(*types.MsgDepositResponse).MemberTotal)

	s.advance(types.SecondsPerYear)
	res, err = s.msgs.Dispatch(s.ctx, &types.MsgCalculateYield{Caller: s.dave, PoolID: poolID})
	s.Require().NoError(err)
	s.Require().Equal("150", res.(*types.MsgCalculateYieldResponse).Yield)

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgWithdraw{Withdrawer: s.bob, PoolID: poolID, Amount: "3150"})
	s.Require().NoError(err)
	withdrawn := res.(*types.MsgWithdrawResponse)
	s.Require().Equal("0", withdrawn.MemberTotal)
	s.Require().Equal("0", withdrawn.Balance)
	s.Require().Equal(int64(startingBal+150), s.balanceOf(s.bob).Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestMsgServerControllerFlow() {
	res, err := s.msgs.Dispatch(s.ctx, &types.MsgCreateTargetPool{
		Creator:       s.alice,
		TargetAmount:  "1000",
		PenaltyAmount: "5",
		Method:        string(types.DistributionProportional),
	})
	s.Require().NoError(err)
	poolID := res.(*types.MsgCreatePoolResponse).PoolID

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgContribute{Contributor: s.bob, PoolID: poolID, Amount: "20"})
	s.Require().NoError(err)

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgApplyPenalty{Controller: s.alice, PoolID: poolID, Member: s.bob})
	s.Require().NoError(err)
	s.Require().Equal("5", res.(*types.MsgApplyPenaltyResponse).Applied)

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgPausePool{Controller: s.alice, PoolID: poolID})
	s.Require().NoError(err)
	s.Require().Equal("paused", res.(*types.MsgStatusResponse).Status)

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgResumePool{Controller: s.bob, PoolID: poolID})
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgResumePool{Controller: s.alice, PoolID: poolID})
	s.Require().NoError(err)

	res, err = s.msgs.Dispatch(s.ctx, &types.MsgCancelPool{Controller: s.alice, PoolID: poolID})
	s.Require().NoError(err)
	s.Require().Equal("cancelled", res.(*types.MsgStatusResponse).Status)
	s.requireConserved()
}

func (s *KeeperTestSuite) TestMsgServerRejectsInvalidMessages() {
	_, err := s.msgs.Dispatch(s.ctx, &types.MsgContribute{Contributor: "bad", PoolID: 1, Amount: "10"})
	s.Require().ErrorIs(err, types.ErrInvalidAddress)

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgContribute{Contributor: s.bob, PoolID: 1, Amount: "-10"})
	s.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgDeposit{Depositor: s.bob, PoolID: 0, Amount: "10"})
	s.Require().ErrorIs(err, types.ErrPoolNotFound)

	_, err = s.msgs.Dispatch(s.ctx, &types.MsgCreateTargetPool{Creator: s.alice, TargetAmount: "0", Method: "equal"})
	s.Require().ErrorIs(err, types.ErrInvalidTarget)
}
