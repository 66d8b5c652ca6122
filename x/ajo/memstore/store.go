// Package memstore provides in-memory stores for running the ajo keeper
// outside a full node: a commit multistore and a bank kept in a KVStore.
package memstore

import (
	"fmt"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NewMultiStore mounts keys as IAVL stores over an in-memory database
func NewMultiStore(logger log.Logger, keys ...storetypes.StoreKey) (storetypes.CommitMultiStore, error) {
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	return cms, nil
}

// NewContext returns a context over cms at the given block time
func NewContext(cms storetypes.CommitMultiStore, height int64, blockTime time.Time, logger log.Logger) sdk.Context {
	header := cmtproto.Header{Height: height, Time: blockTime}
	return sdk.NewContext(cms, header, false, logger)
}

// Addr returns a deterministic account address string for name
func Addr(name string) string {
	return AccAddr(name).String()
}

// AccAddr returns a deterministic 20-byte account address for name
func AccAddr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}
