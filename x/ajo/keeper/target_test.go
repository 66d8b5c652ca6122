package keeper

import (
	"cosmossdk.io/math"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

func (s *KeeperTestSuite) TestTargetCreationRules() {
	_, err := s.keeper.CreateTargetPool(s.ctx, s.alice, "goal", denom, math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), 0, types.DistributionEqual)
	s.Require().ErrorIs(err, types.ErrInvalidTarget)

	past := s.ctx.BlockTime().Unix()
	_, err = s.keeper.CreateTargetPool(s.ctx, s.alice, "goal", denom, math.NewInt(100), math.ZeroInt(), math.ZeroInt(), past, types.DistributionEqual)
	s.Require().ErrorIs(err, types.ErrInvalidDeadline)

	_, err = s.keeper.CreateTargetPool(s.ctx, s.alice, "goal", denom, math.NewInt(100), math.ZeroInt(), math.ZeroInt(), 0, "weighted")
	s.Require().ErrorIs(err, types.ErrInvalidMethod)

	pool := s.newTarget(100, 10, past+60, types.DistributionProportional)
	s.Require().Equal(uint64(1), pool.Config.MemberCount)
	s.Require().True(s.keeper.HasMember(s.ctx, pool.ID, s.alice))
}

func (s *KeeperTestSuite) TestTargetEqualSplit() {
	pool := s.newTarget(100, 10, 0, types.DistributionEqual)

	s.Require().True(s.contribute(pool.ID, s.alice, 40).IsZero())
	s.Require().True(s.contribute(pool.ID, s.bob, 30).IsZero())
	s.Require().Equal(uint64(70), s.mustProgress(pool.ID))

	distributed := s.contribute(pool.ID, s.carol, 30)
	s.Require().Equal(int64(100), distributed.Int64())

	got := s.pool(pool.ID)
	s.Require().True(got.Target.GoalReached)
	s.Require().Equal(types.PoolStatusCompleted, got.Config.Status)
	s.Require().True(got.Balance.IsZero())
	s.Require().Equal(int64(100), got.Target.Distributed.Int64())
	s.Require().Equal(uint64(100), s.mustProgress(pool.ID))
	s.Require().Equal(1, s.countEvents(types.EventTypeGoalReached))

	// registry order is alice, bob, carol; alice gets the extra unit
	for addr, want := range map[string]int64{s.alice: 34, s.bob: 33, s.carol: 33} {
		s.Require().Equal(want, s.member(pool.ID, addr).TotalReceived.Int64())
	}
	s.Require().Equal(int64(startingBal-6), s.balanceOf(s.alice).Int64())
	s.Require().Equal(int64(startingBal+3), s.balanceOf(s.bob).Int64())
	s.requireConserved()

	_, _, err := s.keeper.Contribute(s.ctx, s.dave, pool.ID, math.NewInt(10))
	s.Require().ErrorIs(err, types.ErrGoalReached)
}

func (s *KeeperTestSuite) TestTargetProportionalSplit() {
	pool := s.newTarget(100, 0, 0, types.DistributionProportional)

	s.contribute(pool.ID, s.bob, 25)
	s.contribute(pool.ID, s.carol, 80)

	// alice joined at creation but contributed nothing
	s.Require().True(s.member(pool.ID, s.alice).TotalReceived.IsZero())
	s.Require().Equal(int64(25), s.member(pool.ID, s.bob).TotalReceived.Int64())
	s.Require().Equal(int64(80), s.member(pool.ID, s.carol).TotalReceived.Int64())
	s.Require().True(s.pool(pool.ID).Balance.IsZero())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestTargetContributionRules() {
	pool := s.newTarget(100, 10, 0, types.DistributionEqual)

	_, _, err := s.keeper.Contribute(s.ctx, s.bob, pool.ID, math.NewInt(9))
	s.Require().ErrorIs(err, types.ErrAmountBelowMinimum)
	s.Require().False(s.keeper.HasMember(s.ctx, pool.ID, s.bob))

	// first contribution admits the contributor
	s.contribute(pool.ID, s.bob, 10)
	s.Require().True(s.keeper.HasMember(s.ctx, pool.ID, s.bob))
	s.Require().Equal(uint64(2), s.pool(pool.ID).Config.MemberCount)

	_, err = s.keeper.JoinPool(s.ctx, s.bob, pool.ID, math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrAlreadyMember)

	member, err := s.keeper.JoinPool(s.ctx, s.carol, pool.ID, math.ZeroInt())
	s.Require().NoError(err)
	s.Require().True(member.Active)
	s.Require().Equal(uint64(3), s.pool(pool.ID).Config.MemberCount)

	_, err = s.keeper.Deposit(s.ctx, s.bob, pool.ID, math.NewInt(10))
	s.Require().ErrorIs(err, types.ErrWrongPolicy)
}

func (s *KeeperTestSuite) TestTargetDeadlinePartialPayout() {
	deadline := s.ctx.BlockTime().Unix() + 3600
	pool := s.newTarget(1000, 0, deadline, types.DistributionEqual)

	s.contribute(pool.ID, s.alice, 100)
	s.contribute(pool.ID, s.bob, 50)

	_, err := s.keeper.CheckDeadline(s.ctx, s.dave, pool.ID)
	s.Require().ErrorIs(err, types.ErrDeadlineNotReached)

	s.advance(3600)
	progress, err := s.query.TargetProgress(s.ctx, pool.ID)
	s.Require().NoError(err)
	s.Require().True(progress.DeadlinePassed)
	s.Require().Equal(uint64(15), progress.Progress)

	distributed, err := s.keeper.CheckDeadline(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)
	s.Require().Equal(int64(150), distributed.Int64())

	got := s.pool(pool.ID)
	s.Require().Equal(types.PoolStatusCompleted, got.Config.Status)
	s.Require().False(got.Target.GoalReached)
	s.Require().True(got.Balance.IsZero())
	s.Require().Equal(int64(75), s.member(pool.ID, s.alice).TotalReceived.Int64())
	s.Require().Equal(int64(75), s.member(pool.ID, s.bob).TotalReceived.Int64())
	s.Require().Equal(1, s.countEvents(types.EventTypeDeadlineReached))
	s.requireConserved()

	_, err = s.keeper.CheckDeadline(s.ctx, s.dave, pool.ID)
	s.Require().ErrorIs(err, types.ErrPoolNotActive)

	_, _, err = s.keeper.Contribute(s.ctx, s.bob, pool.ID, math.NewInt(10))
	s.Require().ErrorIs(err, types.ErrPoolNotActive)
}

func (s *KeeperTestSuite) TestTargetWithoutDeadline() {
	pool := s.newTarget(1000, 0, 0, types.DistributionEqual)

	_, err := s.keeper.CheckDeadline(s.ctx, s.dave, pool.ID)
	s.Require().ErrorIs(err, types.ErrNoDeadline)

	rot := s.newRotational(100, 0, 0, s.bob)
	_, err = s.keeper.CheckDeadline(s.ctx, s.dave, rot.ID)
	s.Require().ErrorIs(err, types.ErrWrongPolicy)
}

func (s *KeeperTestSuite) TestTargetPoolFull() {
	params := types.DefaultParams()
	params.MaxMembers = 2
	s.keeper.SetParams(s.ctx, params)

	pool := s.newTarget(1000, 0, 0, types.DistributionEqual)
	_, err := s.keeper.JoinPool(s.ctx, s.bob, pool.ID, math.ZeroInt())
	s.Require().NoError(err)

	_, _, err = s.keeper.Contribute(s.ctx, s.carol, pool.ID, math.NewInt(10))
	s.Require().ErrorIs(err, types.ErrPoolFull)
	s.Require().True(s.pool(pool.ID).Balance.IsZero())
	s.requireConserved()
}

func (s *KeeperTestSuite) mustProgress(poolID uint64) uint64 {
	progress, err := s.query.TargetProgress(s.ctx, poolID)
	s.Require().NoError(err)
	return progress.Progress
}
