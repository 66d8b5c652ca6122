package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// InitGenesis loads params, pools and member registries. The state must have
// passed GenesisState.Validate.
func (k *Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	k.SetParams(ctx, gs.Params)
	k.SetNextPoolID(ctx, gs.NextPoolID)

	for i := range gs.Pools {
		rec := &gs.Pools[i]
		pool := rec.Pool
		k.SetPool(ctx, &pool)
		for idx := range rec.Members {
			member := rec.Members[idx]
			k.SetMember(ctx, pool.ID, &member)
			k.setMemberOrder(ctx, pool.ID, uint64(idx), member.Address)
		}
	}
	k.logger.Info("Genesis loaded", "pools", len(gs.Pools), "next_pool_id", gs.NextPoolID)
}

// ExportGenesis exports the module state
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	gs := &types.GenesisState{
		Params:     k.GetParams(ctx),
		Pools:      []types.PoolRecord{},
		NextPoolID: k.GetNextPoolID(ctx),
	}
	for _, pool := range k.GetAllPools(ctx) {
		rec := types.PoolRecord{Pool: *pool, Members: []types.Member{}}
		for _, m := range k.GetMembers(ctx, pool.ID) {
			rec.Members = append(rec.Members, *m)
		}
		gs.Pools = append(gs.Pools, rec)
	}
	return gs
}
