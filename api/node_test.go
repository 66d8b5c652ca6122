package api

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Uchechukwu-Ekezie/mini-ajo/metrics"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/keeper"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/memstore"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

const genesisUnix = 1_700_000_000

func testNodeConfig(names ...string) NodeConfig {
	cfg := NodeConfig{ChainID: "ajo-test-1", GenesisAt: genesisUnix}
	for _, name := range names {
		cfg.Accounts = append(cfg.Accounts, SeedAccount{Address: memstore.Addr(name), Coins: "1000000uajo"})
	}
	return cfg
}

func newTestNode(t *testing.T, recorder keeper.Recorder) *LocalNode {
	t.Helper()
	n, err := NewLocalNode(testNodeConfig("alice", "bob", "carol"), recorder, log.NewNopLogger())
	require.NoError(t, err)
	return n
}

func TestNewLocalNodeSeedsAccounts(t *testing.T) {
	n := newTestNode(t, nil)

	chainID, height, blockTime := n.Status()
	require.Equal(t, "ajo-test-1", chainID)
	require.Equal(t, int64(2), height)
	require.Equal(t, int64(genesisUnix), blockTime.Unix())
	require.Equal(t, "1000000", n.AccountBalance(memstore.AccAddr("alice"), types.DefaultDenom))
	require.Equal(t, "0", n.AccountBalance(memstore.AccAddr("dave"), types.DefaultDenom))
}

func TestNewLocalNodeRejectsBadSeeds(t *testing.T) {
	_, err := NewLocalNode(NodeConfig{Accounts: []SeedAccount{{Address: "nope", Coins: "1uajo"}}}, nil, log.NewNopLogger())
	require.Error(t, err)

	_, err = NewLocalNode(NodeConfig{Accounts: []SeedAccount{{Address: memstore.Addr("alice"), Coins: "lots"}}}, nil, log.NewNopLogger())
	require.Error(t, err)
}

func TestLocalNodeExecRotationalRound(t *testing.T) {
	n := newTestNode(t, nil)
	alice, bob := memstore.Addr("alice"), memstore.Addr("bob")

	res, err := n.Exec(&types.MsgCreateRotationalPool{
		Creator:            alice,
		Name:               "circle",
		ContributionAmount: "100",
		Members:            []string{bob},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Height)
	poolID := res.Response.(*types.MsgCreatePoolResponse).PoolID
	require.Equal(t, uint64(1), poolID)

	_, err = n.Exec(&types.MsgContribute{Contributor: alice, PoolID: poolID, Amount: "100"})
	require.NoError(t, err)
	res, err = n.Exec(&types.MsgContribute{Contributor: bob, PoolID: poolID, Amount: "100"})
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Height)
	require.Equal(t, []string{
		types.EventTypeContributionMade,
		types.EventTypeFundsDistributed,
		types.EventTypeRotationCompleted,
	}, eventTypes(res.Events))
	require.True(t, res.Response.(*types.MsgContributeResponse).Distributed)

	// alice is first in the rotation and received the round
	require.Equal(t, "1000100", n.AccountBalance(memstore.AccAddr("alice"), types.DefaultDenom))
	require.Equal(t, "999900", n.AccountBalance(memstore.AccAddr("bob"), types.DefaultDenom))

	err = n.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		status, err := q.RotationStatus(ctx, poolID)
		if err != nil {
			return err
		}
		require.Equal(t, uint64(1), status.CompletedRotations)
		require.Equal(t, bob, status.CurrentRecipient)
		return nil
	})
	require.NoError(t, err)
}

func TestLocalNodeFailedExecLeavesNoState(t *testing.T) {
	n := newTestNode(t, nil)
	alice := memstore.Addr("alice")

	_, err := n.Exec(&types.MsgCreateRotationalPool{
		Creator:            alice,
		ContributionAmount: "100",
		Members:            []string{memstore.Addr("bob")},
	})
	require.NoError(t, err)
	_, before, _ := n.Status()

	res, err := n.Exec(&types.MsgContribute{Contributor: alice, PoolID: 1, Amount: "99"})
	require.ErrorIs(t, err, types.ErrAmountMismatch)
	require.Nil(t, res)

	_, after, _ := n.Status()
	require.Equal(t, before, after)
	require.Equal(t, "1000000", n.AccountBalance(memstore.AccAddr("alice"), types.DefaultDenom))

	err = n.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		bal, err := q.Balance(ctx, 1)
		require.True(t, bal.IsZero())
		return err
	})
	require.NoError(t, err)
}

func TestLocalNodeAdvanceClosesTargetPool(t *testing.T) {
	n := newTestNode(t, nil)
	alice, bob := memstore.Addr("alice"), memstore.Addr("bob")

	res, err := n.Exec(&types.MsgCreateTargetPool{
		Creator:      alice,
		TargetAmount: "1000",
		Deadline:     genesisUnix + 60,
		Method:       string(types.DistributionEqual),
	})
	require.NoError(t, err)
	poolID := res.Response.(*types.MsgCreatePoolResponse).PoolID

	_, err = n.Exec(&types.MsgContribute{Contributor: bob, PoolID: poolID, Amount: "40"})
	require.NoError(t, err)

	_, err = n.Exec(&types.MsgCheckDeadline{Caller: bob, PoolID: poolID})
	require.ErrorIs(t, err, types.ErrDeadlineNotReached)

	_, err = advance(n, -time.Second)
	require.Error(t, err)

	blockTime, err := advance(n, time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(genesisUnix+60), blockTime.Unix())

	res, err = n.Exec(&types.MsgCheckDeadline{Caller: bob, PoolID: poolID})
	require.NoError(t, err)
	dist := res.Response.(*types.MsgDistributionResponse)
	require.Equal(t, "40", dist.Distributed)
	require.Equal(t, string(types.PoolStatusCompleted), dist.Status)
}

func TestLocalNodeRecordsCommittedActivity(t *testing.T) {
	collector := metrics.NewCollector(prometheus.NewRegistry())
	n := newTestNode(t, collector)
	alice := memstore.Addr("alice")

	res, err := n.Exec(&types.MsgCreateFlexiblePool{Creator: alice, MinDeposit: "10", MinWithdrawal: "10"})
	require.NoError(t, err)
	poolID := res.Response.(*types.MsgCreatePoolResponse).PoolID

	_, err = n.Exec(&types.MsgDeposit{Depositor: alice, PoolID: poolID, Amount: "5"})
	require.ErrorIs(t, err, types.ErrAmountBelowMinimum)
	_, err = n.Exec(&types.MsgDeposit{Depositor: alice, PoolID: poolID, Amount: "50"})
	require.NoError(t, err)

	require.Equal(t, 1.0, promtest.ToFloat64(collector.PoolsCreated.WithLabelValues(string(types.PoolKindFlexible))))
	require.Equal(t, 1.0, promtest.ToFloat64(collector.Contributions.WithLabelValues(string(types.PoolKindFlexible))))
	require.Equal(t, 50.0, promtest.ToFloat64(collector.ContributedAmt.WithLabelValues(string(types.PoolKindFlexible))))
}

func TestLocalNodeFund(t *testing.T) {
	n := newTestNode(t, nil)
	dave := memstore.AccAddr("dave")

	n.Fund(dave, sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, math.NewInt(25))))
	require.Equal(t, "25", n.AccountBalance(dave, types.DefaultDenom))
}

func advance(n *LocalNode, d time.Duration) (time.Time, error) {
	_, blockTime, err := n.Advance(d)
	return blockTime, err
}

func eventTypes(events []abci.Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Type)
	}
	return out
}
