package keeper

import (
	"cosmossdk.io/math"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

const halfYear = types.SecondsPerYear / 2

func (s *KeeperTestSuite) TestFlexibleCreationRules() {
	_, err := s.keeper.CreateFlexiblePool(s.ctx, s.alice, "savings", denom, math.NewInt(10), math.NewInt(5), math.ZeroInt(), types.DefaultMaxYieldRate+1)
	s.Require().ErrorIs(err, types.ErrInvalidYieldRate)

	_, err = s.keeper.CreateFlexiblePool(s.ctx, s.alice, "savings", denom, math.NewInt(-1), math.NewInt(5), math.ZeroInt(), 100)
	s.Require().ErrorIs(err, types.ErrInvalidAmount)

	pool := s.newFlexible(10, 5, 100)
	s.Require().Equal(int64(10), pool.Config.ContributionAmount.Int64())
	s.Require().Equal(genesisTime.Unix(), pool.Flexible.LastAccrualAt)
}

func (s *KeeperTestSuite) TestFlexibleYieldForAYear() {
	pool := s.newFlexible(10, 5, 1000)
	_, err := s.keeper.Deposit(s.ctx, s.alice, pool.ID, math.NewInt(1000))
	s.Require().NoError(err)

	s.advance(types.SecondsPerYear)
	status, err := s.query.YieldStatus(s.ctx, pool.ID)
	s.Require().NoError(err)
	s.Require().Equal(int64(100), status.PendingYield.Int64())

	yield, err := s.keeper.CalculateYield(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)
	s.Require().Equal(int64(100), yield.Int64())

	got := s.pool(pool.ID)
	s.Require().Equal(int64(1100), got.Balance.Int64())
	s.Require().Equal(int64(100), got.Flexible.TotalYieldPaid.Int64())
	s.Require().Equal(s.ctx.BlockTime().Unix(), got.Flexible.LastAccrualAt)
	s.Require().Equal(int64(1100), s.member(pool.ID, s.alice).TotalContributed.Int64())
	s.Require().Equal(1, s.countEvents(types.EventTypeYieldDistributed))
	s.requireConserved()

	// nothing accrues over zero elapsed time
	yield, err = s.keeper.CalculateYield(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)
	s.Require().True(yield.IsZero())
}

func (s *KeeperTestSuite) TestFlexibleLateDepositorEarnsNoPastYield() {
	pool := s.newFlexible(10, 5, 1000)
	_, err := s.keeper.Deposit(s.ctx, s.alice, pool.ID, math.NewInt(1000))
	s.Require().NoError(err)

	s.advance(halfYear)
	bob, err := s.keeper.JoinPool(s.ctx, s.bob, pool.ID, math.NewInt(1000))
	s.Require().NoError(err)
	s.Require().Equal(int64(1000), bob.TotalContributed.Int64())
	s.Require().Equal(int64(1050), s.member(pool.ID, s.alice).TotalContributed.Int64())

	s.advance(halfYear)
	yield, err := s.keeper.CalculateYield(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)
	// 2050 at 10% for half a year, truncated
	s.Require().Equal(int64(102), yield.Int64())

	s.Require().Equal(int64(1102), s.member(pool.ID, s.alice).TotalContributed.Int64())
	s.Require().Equal(int64(1049), s.member(pool.ID, s.bob).TotalContributed.Int64())
	got := s.pool(pool.ID)
	s.Require().Equal(int64(2152), got.Balance.Int64())
	s.Require().Equal(int64(152), got.Flexible.TotalYieldPaid.Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestFlexibleWithdraw() {
	pool := s.newFlexible(10, 5, 0)
	_, err := s.keeper.JoinPool(s.ctx, s.bob, pool.ID, math.NewInt(300))
	s.Require().NoError(err)

	_, err = s.keeper.JoinPool(s.ctx, s.carol, pool.ID, math.NewInt(9))
	s.Require().ErrorIs(err, types.ErrAmountBelowMinimum)

	_, err = s.keeper.Withdraw(s.ctx, s.bob, pool.ID, math.NewInt(4))
	s.Require().ErrorIs(err, types.ErrAmountBelowMinimum)

	_, err = s.keeper.Withdraw(s.ctx, s.bob, pool.ID, math.NewInt(301))
	s.Require().ErrorIs(err, types.ErrInsufficientBalance)

	_, err = s.keeper.Withdraw(s.ctx, s.carol, pool.ID, math.NewInt(10))
	s.Require().ErrorIs(err, types.ErrNotMember)

	member, err := s.keeper.Withdraw(s.ctx, s.bob, pool.ID, math.NewInt(100))
	s.Require().NoError(err)
	s.Require().Equal(int64(200), member.TotalContributed.Int64())
	s.Require().True(member.Active)
	s.Require().Equal(int64(startingBal-200), s.balanceOf(s.bob).Int64())

	// withdrawing everything deactivates the member
	member, err = s.keeper.Withdraw(s.ctx, s.bob, pool.ID, math.NewInt(200))
	s.Require().NoError(err)
	s.Require().False(member.Active)
	ok, err := s.query.IsMember(s.ctx, pool.ID, s.bob)
	s.Require().NoError(err)
	s.Require().False(ok)
	s.Require().Equal(2, s.countEvents(types.EventTypeWithdrawal))
	s.requireConserved()

	// a new deposit reactivates
	member, err = s.keeper.Deposit(s.ctx, s.bob, pool.ID, math.NewInt(50))
	s.Require().NoError(err)
	s.Require().True(member.Active)
	s.Require().Equal(int64(50), member.TotalContributed.Int64())

	_, err = s.keeper.Deposit(s.ctx, s.dave, pool.ID, math.NewInt(50))
	s.Require().ErrorIs(err, types.ErrNotMember)

	_, _, err = s.keeper.Contribute(s.ctx, s.bob, pool.ID, math.NewInt(50))
	s.Require().ErrorIs(err, types.ErrWrongPolicy)
}

func (s *KeeperTestSuite) TestFlexiblePausedPoolEarnsNothing() {
	pool := s.newFlexible(10, 5, 1000)
	_, err := s.keeper.Deposit(s.ctx, s.alice, pool.ID, math.NewInt(1000))
	s.Require().NoError(err)

	// pausing settles the yield earned so far
	s.advance(halfYear)
	s.Require().NoError(s.keeper.PausePool(s.ctx, s.alice, pool.ID))
	s.Require().Equal(int64(1050), s.pool(pool.ID).Balance.Int64())

	s.advance(types.SecondsPerYear)
	_, err = s.keeper.Deposit(s.ctx, s.alice, pool.ID, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrPoolNotActive)
	_, err = s.keeper.Withdraw(s.ctx, s.alice, pool.ID, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrPoolNotActive)

	yield, err := s.keeper.CalculateYield(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)
	s.Require().True(yield.IsZero())

	s.Require().NoError(s.keeper.ResumePool(s.ctx, s.alice, pool.ID))
	yield, err = s.keeper.CalculateYield(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)
	s.Require().True(yield.IsZero())
	s.Require().Equal(int64(50), s.pool(pool.ID).Flexible.TotalYieldPaid.Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestFlexibleWithdrawAfterCancel() {
	pool := s.newFlexible(10, 5, 0)
	_, err := s.keeper.JoinPool(s.ctx, s.bob, pool.ID, math.NewInt(300))
	s.Require().NoError(err)

	s.Require().NoError(s.keeper.CancelPool(s.ctx, s.alice, pool.ID))
	_, err = s.keeper.Deposit(s.ctx, s.bob, pool.ID, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrPoolNotActive)

	_, err = s.keeper.Withdraw(s.ctx, s.bob, pool.ID, math.NewInt(300))
	s.Require().NoError(err)
	s.Require().Equal(int64(startingBal), s.balanceOf(s.bob).Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestFlexiblePenaltyDeactivatesAtZero() {
	pool, err := s.keeper.CreateFlexiblePool(s.ctx, s.alice, "savings", denom, math.NewInt(10), math.NewInt(5), math.NewInt(100), 0)
	s.Require().NoError(err)
	_, err = s.keeper.JoinPool(s.ctx, s.bob, pool.ID, math.NewInt(60))
	s.Require().NoError(err)

	applied, err := s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.bob)
	s.Require().NoError(err)
	s.Require().Equal(int64(60), applied.Int64())
	s.Require().False(s.member(pool.ID, s.bob).Active)
	s.Require().True(s.pool(pool.ID).Balance.IsZero())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestFlexibleDustWithoutStakesEarnsNothing() {
	pool := s.newFlexible(10, 5, 1000)
	_, err := s.keeper.Deposit(s.ctx, s.alice, pool.ID, math.NewInt(1000))
	s.Require().NoError(err)
	s.advance(halfYear)
	_, err = s.keeper.JoinPool(s.ctx, s.bob, pool.ID, math.NewInt(1000))
	s.Require().NoError(err)
	s.advance(halfYear)
	_, err = s.keeper.CalculateYield(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)

	// one unit of split dust stays behind once both stakes are withdrawn
	s.Require().Equal(int64(1), s.ledgerSurplus(pool.ID).Int64())
	_, err = s.keeper.Withdraw(s.ctx, s.alice, pool.ID, math.NewInt(1102))
	s.Require().NoError(err)
	_, err = s.keeper.Withdraw(s.ctx, s.bob, pool.ID, math.NewInt(1049))
	s.Require().NoError(err)
	s.Require().Equal(int64(1), s.pool(pool.ID).Balance.Int64())

	s.advance(types.SecondsPerYear)
	status, err := s.query.YieldStatus(s.ctx, pool.ID)
	s.Require().NoError(err)
	s.Require().True(status.PendingYield.IsZero())

	s.resetEvents()
	yield, err := s.keeper.CalculateYield(s.ctx, s.dave, pool.ID)
	s.Require().NoError(err)
	s.Require().True(yield.IsZero())

	got := s.pool(pool.ID)
	s.Require().Equal(int64(1), got.Balance.Int64())
	s.Require().Equal(int64(152), got.Flexible.TotalYieldPaid.Int64())
	s.Require().Equal(s.ctx.BlockTime().Unix(), got.Flexible.LastAccrualAt)
	s.Require().Zero(s.countEvents(types.EventTypeYieldDistributed))
	s.requireConserved()
}
