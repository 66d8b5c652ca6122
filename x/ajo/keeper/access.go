package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

func errorsWrapPoolNotFound(poolID uint64) error {
	return errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d", poolID)
}

// parseAddress decodes a caller identity
func parseAddress(addr string) (sdk.AccAddress, error) {
	if addr == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, "empty address")
	}
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidAddress, "%q: %s", addr, err)
	}
	return acc, nil
}

// requireController fails unless caller created the pool
func requireController(pool *types.Pool, caller string) error {
	if caller != pool.Config.Creator {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the controller of pool %d", caller, pool.ID)
	}
	return nil
}

func requireActive(pool *types.Pool) error {
	if !pool.IsActive() {
		return errorsmod.Wrapf(types.ErrPoolNotActive, "pool %d is %s", pool.ID, pool.Config.Status)
	}
	return nil
}

func requireKind(pool *types.Pool, kind types.PoolKind) error {
	if pool.Kind != kind {
		return errorsmod.Wrapf(types.ErrWrongPolicy, "pool %d is %s, not %s", pool.ID, pool.Kind, kind)
	}
	return nil
}

// requireMember returns the active member record of addr
func (k *Keeper) requireMember(ctx sdk.Context, pool *types.Pool, addr string) (*types.Member, error) {
	member := k.GetMember(ctx, pool.ID, addr)
	if member == nil || !member.Active {
		return nil, errorsmod.Wrapf(types.ErrNotMember, "%s in pool %d", addr, pool.ID)
	}
	return member, nil
}
