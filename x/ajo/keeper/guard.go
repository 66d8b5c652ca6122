package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// enter takes the latch of a pool. It fails when a call on the same pool is
// already running, including a call re-entered from a bank transfer.
func (k *Keeper) enter(poolID uint64) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, busy := k.inFlight[poolID]; busy {
		return errorsmod.Wrapf(types.ErrReentrantCall, "pool %d", poolID)
	}
	k.inFlight[poolID] = struct{}{}
	return nil
}

func (k *Keeper) exit(poolID uint64) {
	k.mu.Lock()
	delete(k.inFlight, poolID)
	k.mu.Unlock()
}

// atomic runs fn under the pool latch in a cached store scope. The scope,
// including its events and bank effects, is written back only if fn succeeds.
func (k *Keeper) atomic(ctx sdk.Context, poolID uint64, fn func(ctx sdk.Context) error) error {
	if err := k.enter(poolID); err != nil {
		k.recorder.ReentryRejected()
		return err
	}
	defer k.exit(poolID)
	return cached(ctx, fn)
}

// cached runs fn in a cached store scope and commits it on success
func cached(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}
