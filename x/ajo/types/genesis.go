package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// PoolRecord is a pool together with its member registry in admission order
type PoolRecord struct {
	Pool    Pool     `json:"pool"`
	Members []Member `json:"members"`
}

// GenesisState is the exported module state
type GenesisState struct {
	Params     Params       `json:"params"`
	Pools      []PoolRecord `json:"pools"`
	NextPoolID uint64       `json:"next_pool_id"`
}

// DefaultGenesis returns an empty genesis with default params
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []PoolRecord{},
		NextPoolID: 1,
	}
}

// Validate checks the genesis state. Every pool must have a unique id below
// NextPoolID, a member registry matching its member count, and member totals
// that never exceed what could have been deposited.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextPoolID == 0 {
		return errorsmod.Wrap(ErrInvalidGenesis, "next pool id must be positive")
	}

	seen := make(map[uint64]struct{}, len(gs.Pools))
	for i := range gs.Pools {
		rec := &gs.Pools[i]
		pool := &rec.Pool
		if _, ok := seen[pool.ID]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate pool id %d", pool.ID)
		}
		seen[pool.ID] = struct{}{}
		if pool.ID >= gs.NextPoolID {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pool id %d not below next pool id %d", pool.ID, gs.NextPoolID)
		}
		if err := pool.Validate(); err != nil {
			return errorsmod.Wrapf(err, "pool %d", pool.ID)
		}
		if uint64(len(rec.Members)) != pool.Config.MemberCount {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d: %d members, member count %d", pool.ID, len(rec.Members), pool.Config.MemberCount)
		}

		addrs := make(map[string]struct{}, len(rec.Members))
		for _, m := range rec.Members {
			if _, ok := addrs[m.Address]; ok {
				return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d: duplicate member %s", pool.ID, m.Address)
			}
			addrs[m.Address] = struct{}{}
			if !nonNegative(m.TotalContributed) || !nonNegative(m.TotalReceived) {
				return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d: member %s has a negative total", pool.ID, m.Address)
			}
		}
		if pool.Rotation != nil {
			for _, addr := range pool.Rotation.Order {
				if _, ok := addrs[addr]; !ok {
					return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d: recipient %s is not a member", pool.ID, addr)
				}
			}
		}
	}
	return nil
}

func nonNegative(i math.Int) bool {
	return !i.IsNil() && !i.IsNegative()
}
