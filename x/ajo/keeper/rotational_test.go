package keeper

import (
	"context"
	"errors"
	stdmath "math"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

func (s *KeeperTestSuite) TestRotationalOrder() {
	pool := s.newRotational(100, 0, 0, s.bob, s.bob, s.alice, s.carol)

	s.Require().Equal([]string{s.alice, s.bob, s.carol}, pool.Rotation.Order)
	s.Require().Equal(uint64(3), pool.Config.MemberCount)
	s.Require().Equal(uint64(3), pool.Rotation.TotalRotations)

	members := s.keeper.GetMembers(s.ctx, pool.ID)
	s.Require().Len(members, 3)
	for i, addr := range pool.Rotation.Order {
		s.Require().Equal(addr, members[i].Address)
		s.Require().True(members[i].TotalContributed.IsZero())
	}
}

func (s *KeeperTestSuite) TestRotationalTooFewMembers() {
	_, err := s.keeper.CreateRotationalPool(s.ctx, s.alice, "solo", denom, math.NewInt(100), math.ZeroInt(), 0, []string{s.alice})
	s.Require().ErrorIs(err, types.ErrTooFewMembers)

	_, err = s.keeper.CreateRotationalPool(s.ctx, s.alice, "zero", denom, math.ZeroInt(), math.ZeroInt(), 0, []string{s.bob})
	s.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, err = s.keeper.CreateRotationalPool(s.ctx, s.alice, "bad", denom, math.NewInt(100), math.ZeroInt(), 0, []string{"nope"})
	s.Require().ErrorIs(err, types.ErrInvalidAddress)
	s.Require().Equal(uint64(1), s.keeper.GetNextPoolID(s.ctx))
}

func (s *KeeperTestSuite) TestRotationalHappyPath() {
	pool := s.newRotational(100, 0, 0, s.bob, s.carol)
	order := []string{s.alice, s.bob, s.carol}

	for round, recipient := range order {
		before := s.balanceOf(recipient)
		s.Require().True(s.contribute(pool.ID, s.alice, 100).IsZero())
		s.Require().True(s.contribute(pool.ID, s.bob, 100).IsZero())
		s.Require().Equal(int64(200), s.pool(pool.ID).Balance.Int64())

		paid := s.contribute(pool.ID, s.carol, 100)
		s.Require().Equal(int64(300), paid.Int64())

		got := s.pool(pool.ID)
		s.Require().True(got.Balance.IsZero())
		s.Require().Equal(uint64(round+1), got.Rotation.CurrentIndex)
		s.Require().Equal(uint64(round+1), got.Rotation.CompletedRotations)
		// the recipient contributed 100 of the 300 it received
		s.Require().Equal(before.AddRaw(200).String(), s.balanceOf(recipient).String())
		s.requireConserved()
	}

	got := s.pool(pool.ID)
	s.Require().Equal(types.PoolStatusCompleted, got.Config.Status)
	s.Require().Equal(3, s.countEvents(types.EventTypeRotationCompleted))
	for _, addr := range order {
		m := s.member(pool.ID, addr)
		s.Require().Equal(int64(300), m.TotalContributed.Int64())
		s.Require().Equal(int64(300), m.TotalReceived.Int64())
		s.Require().Equal(int64(startingBal), s.balanceOf(addr).Int64())
	}

	_, _, err := s.keeper.Contribute(s.ctx, s.alice, pool.ID, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrPoolNotActive)
}

func (s *KeeperTestSuite) TestRotationalContributionRules() {
	pool := s.newRotational(100, 0, 0, s.bob, s.carol)

	_, _, err := s.keeper.Contribute(s.ctx, s.alice, pool.ID, math.NewInt(99))
	s.Require().ErrorIs(err, types.ErrAmountMismatch)

	_, _, err = s.keeper.Contribute(s.ctx, s.dave, pool.ID, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrNotMember)

	_, _, err = s.keeper.Contribute(s.ctx, s.alice, 42, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrPoolNotFound)

	_, err = s.keeper.JoinPool(s.ctx, s.dave, pool.ID, math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrWrongPolicy)

	_, err = s.keeper.Deposit(s.ctx, s.alice, pool.ID, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrWrongPolicy)

	s.Require().True(s.pool(pool.ID).Balance.IsZero())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestRotationalRepeatContributionIsSwept() {
	pool := s.newRotational(100, 0, 0, s.bob)

	s.contribute(pool.ID, s.bob, 100)
	paid := s.contribute(pool.ID, s.bob, 100)
	s.Require().Equal(int64(200), paid.Int64())
	s.Require().Equal(int64(startingBal+200), s.balanceOf(s.alice).Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestProcessPayout() {
	pool := s.newRotational(100, 0, 0, s.bob, s.carol)
	s.contribute(pool.ID, s.alice, 100)

	_, err := s.keeper.ProcessPayout(s.ctx, s.dave, pool.ID)
	s.Require().ErrorIs(err, types.ErrRoundIncomplete)

	target := s.newTarget(100, 0, 0, types.DistributionEqual)
	_, err = s.keeper.ProcessPayout(s.ctx, s.dave, target.ID)
	s.Require().ErrorIs(err, types.ErrWrongPolicy)

	_, err = s.keeper.ProcessPayout(s.ctx, "", pool.ID)
	s.Require().ErrorIs(err, types.ErrInvalidAddress)
}

func (s *KeeperTestSuite) TestProcessPayoutOfFundedRound() {
	// a round funded in imported state is paid by anyone
	gs := types.DefaultGenesis()
	pool := types.NewPool(1, types.PoolKindRotational, "imported", s.alice, denom, math.NewInt(100), math.ZeroInt(), 0, genesisTime.Unix())
	pool.Rotation = types.NewRotationState([]string{s.alice, s.bob}, genesisTime.Unix())
	pool.Config.MemberCount = 2
	pool.Balance = math.NewInt(200)
	alice := types.NewMember(s.alice, genesisTime.Unix())
	alice.TotalContributed = math.NewInt(100)
	bob := types.NewMember(s.bob, genesisTime.Unix())
	bob.TotalContributed = math.NewInt(100)
	gs.Pools = append(gs.Pools, types.PoolRecord{Pool: *pool, Members: []types.Member{*alice, *bob}})
	gs.NextPoolID = 2
	s.Require().NoError(gs.Validate())

	s.keeper.InitGenesis(s.ctx, *gs)
	s.Require().NoError(s.bank.MintCoins(s.ctx, types.ModuleName, sdk.NewCoins(sdk.NewInt64Coin(denom, 200))))

	paid, err := s.keeper.ProcessPayout(s.ctx, s.dave, 1)
	s.Require().NoError(err)
	s.Require().Equal(int64(200), paid.Int64())
	s.Require().Equal(int64(startingBal+200), s.balanceOf(s.alice).Int64())

	got := s.pool(1)
	s.Require().Equal(uint64(1), got.Rotation.CurrentIndex)
	s.Require().Empty(got.Rotation.Paid)
	s.Require().Empty(got.Rotation.RoundContributors)
	s.requireConserved()

	// the paid round cannot be paid again
	_, err = s.keeper.ProcessPayout(s.ctx, s.dave, 1)
	s.Require().ErrorIs(err, types.ErrRoundIncomplete)
}

func (s *KeeperTestSuite) TestRotationalPenalty() {
	pool := s.newRotational(100, 50, 3600, s.bob, s.carol)

	// round one pays alice
	s.contribute(pool.ID, s.alice, 100)
	s.contribute(pool.ID, s.bob, 100)
	s.contribute(pool.ID, s.carol, 100)

	// round two: carol is late
	s.contribute(pool.ID, s.alice, 100)
	s.contribute(pool.ID, s.bob, 100)

	_, err := s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.carol)
	s.Require().ErrorIs(err, types.ErrGracePeriodActive)

	s.advance(3600)
	_, err = s.keeper.ApplyPenalty(s.ctx, s.bob, pool.ID, s.carol)
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.bob)
	s.Require().ErrorIs(err, types.ErrInvalidTransition)

	_, err = s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.dave)
	s.Require().ErrorIs(err, types.ErrNotMember)

	aliceBefore := s.balanceOf(s.alice)
	applied, err := s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.carol)
	s.Require().NoError(err)
	s.Require().Equal(int64(50), applied.Int64())
	s.Require().Equal(aliceBefore.AddRaw(50).String(), s.balanceOf(s.alice).String())
	s.Require().Equal(int64(50), s.member(pool.ID, s.carol).TotalContributed.Int64())
	s.Require().Equal(int64(150), s.pool(pool.ID).Balance.Int64())
	s.Require().Equal(1, s.countEvents(types.EventTypePenaltyApplied))
	s.requireConserved()

	// carol refills the round; the whole balance goes to bob
	s.Require().True(s.contribute(pool.ID, s.carol, 100).IsZero())
	paid := s.contribute(pool.ID, s.carol, 100)
	s.Require().Equal(int64(350), paid.Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestPenaltyIsCappedAtMemberTotal() {
	pool := s.newRotational(100, 500, 0, s.bob, s.carol)
	s.contribute(pool.ID, s.bob, 100)

	// carol has contributed nothing yet so nothing is deducted
	applied, err := s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.carol)
	s.Require().NoError(err)
	s.Require().True(applied.IsZero())

	noPenalty := s.newRotational(100, 0, 0, s.bob)
	_, err = s.keeper.ApplyPenalty(s.ctx, s.alice, noPenalty.ID, s.bob)
	s.Require().ErrorIs(err, types.ErrNoPenalty)
}

func (s *KeeperTestSuite) TestReentrantPayoutIsRejected() {
	pool := s.newRotational(100, 0, 0, s.bob, s.carol)
	s.contribute(pool.ID, s.alice, 100)
	s.contribute(pool.ID, s.bob, 100)

	var inner error
	calls := 0
	s.bank.OnReceive = func(ctx context.Context, _ sdk.AccAddress, _ sdk.Coins) error {
		calls++
		_, inner = s.keeper.ProcessPayout(ctx, s.dave, pool.ID)
		return nil
	}

	paid := s.contribute(pool.ID, s.carol, 100)
	s.Require().Equal(int64(300), paid.Int64())
	s.Require().Equal(1, calls)
	s.Require().ErrorIs(inner, types.ErrReentrantCall)
	s.Require().Equal(uint64(1), s.pool(pool.ID).Rotation.CurrentIndex)
	s.requireConserved()
}

func (s *KeeperTestSuite) TestFailedPayoutRollsBack() {
	pool := s.newRotational(100, 0, 0, s.bob, s.carol)
	s.contribute(pool.ID, s.alice, 100)
	s.contribute(pool.ID, s.bob, 100)
	carolBefore := s.balanceOf(s.carol)
	s.resetEvents()

	s.bank.OnReceive = func(context.Context, sdk.AccAddress, sdk.Coins) error {
		return errors.New("recipient rejected transfer")
	}
	_, _, err := s.keeper.Contribute(s.ctx, s.carol, pool.ID, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrTransferFailed)

	got := s.pool(pool.ID)
	s.Require().Equal(int64(200), got.Balance.Int64())
	s.Require().Equal(uint64(0), got.Rotation.CurrentIndex)
	s.Require().False(got.Rotation.HasContributed(s.carol))
	s.Require().True(s.member(pool.ID, s.carol).TotalContributed.IsZero())
	s.Require().Equal(carolBefore.String(), s.balanceOf(s.carol).String())
	s.Require().Empty(s.ctx.EventManager().Events())
	s.requireConserved()

	// the latch was released on the failed path
	s.bank.OnReceive = nil
	paid := s.contribute(pool.ID, s.carol, 100)
	s.Require().Equal(int64(300), paid.Int64())
}

func (s *KeeperTestSuite) TestIndependentPoolsDoNotBlock() {
	first := s.newRotational(100, 0, 0, s.bob)
	second := s.newTarget(1000, 0, 0, types.DistributionEqual)
	s.contribute(first.ID, s.alice, 100)

	var inner error
	s.bank.OnReceive = func(ctx context.Context, _ sdk.AccAddress, _ sdk.Coins) error {
		_, _, inner = s.keeper.Contribute(ctx, s.dave, second.ID, math.NewInt(10))
		return nil
	}
	s.contribute(first.ID, s.bob, 100)
	s.Require().NoError(inner)
	s.Require().Equal(int64(10), s.pool(second.ID).Balance.Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestRotationalFourMemberRound() {
	pool := s.newRotational(100, 0, 0, s.bob, s.carol, s.dave)
	s.Require().Equal(uint64(4), pool.Config.MemberCount)
	aliceBefore := s.balanceOf(s.alice)

	for _, addr := range []string{s.bob, s.carol, s.dave} {
		s.Require().True(s.contribute(pool.ID, addr, 100).IsZero())
	}
	got := s.pool(pool.ID)
	s.Require().Equal(int64(300), got.Balance.Int64())
	s.Require().Equal(uint64(0), got.Rotation.CurrentIndex)

	paid := s.contribute(pool.ID, s.alice, 100)
	s.Require().Equal(int64(400), paid.Int64())

	got = s.pool(pool.ID)
	s.Require().Equal(uint64(1), got.Rotation.CurrentIndex)
	s.Require().True(got.Balance.IsZero())
	// alice put in 100 of the 400 paid out
	s.Require().Equal(aliceBefore.AddRaw(300).String(), s.balanceOf(s.alice).String())
	s.Require().Equal(int64(400), s.member(pool.ID, s.alice).TotalReceived.Int64())
	s.requireConserved()
}

func (s *KeeperTestSuite) TestUnboundedGracePeriodNeverLapses() {
	pool := s.newRotational(100, 10, stdmath.MaxInt64, s.bob, s.carol)
	s.contribute(pool.ID, s.bob, 100)
	s.advance(1)

	_, err := s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.carol)
	s.Require().ErrorIs(err, types.ErrGracePeriodActive)

	s.advance(10 * 365 * 24 * 3600)
	_, err = s.keeper.ApplyPenalty(s.ctx, s.alice, pool.ID, s.carol)
	s.Require().ErrorIs(err, types.ErrGracePeriodActive)
	s.requireConserved()
}
