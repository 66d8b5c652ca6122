package keeper

import (
	"context"
	"encoding/json"
	"sync"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// Store key prefixes
var (
	ParamsKey            = []byte{0x01}
	NextPoolIDKey        = []byte{0x02}
	PoolKeyPrefix        = []byte{0x03}
	MemberKeyPrefix      = []byte{0x04}
	MemberOrderKeyPrefix = []byte{0x05}
)

// BankKeeper defines the expected interface for the bank module
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

// Recorder receives committed pool activity. Amounts are in the pool denom.
type Recorder interface {
	PoolCreated(kind string)
	Contribution(kind string, amount math.Int)
	Payout(kind string, amount math.Int)
	Withdrawal(amount math.Int)
	Penalty(kind string, amount math.Int)
	YieldIssued(amount math.Int)
	ReentryRejected()
}

type nopRecorder struct{}

func (nopRecorder) PoolCreated(string)            {}
func (nopRecorder) Contribution(string, math.Int) {}
func (nopRecorder) Payout(string, math.Int)       {}
func (nopRecorder) Withdrawal(math.Int)           {}
func (nopRecorder) Penalty(string, math.Int)      {}
func (nopRecorder) YieldIssued(math.Int)          {}
func (nopRecorder) ReentryRejected()              {}

// Keeper manages the ajo module state
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper BankKeeper
	logger     log.Logger
	recorder   Recorder

	// pools with a call in flight
	mu       sync.Mutex
	inFlight map[uint64]struct{}
}

// NewKeeper creates a new ajo keeper
func NewKeeper(storeKey storetypes.StoreKey, bankKeeper BankKeeper, logger log.Logger) *Keeper {
	return &Keeper{
		storeKey:   storeKey,
		bankKeeper: bankKeeper,
		logger:     logger.With("module", "x/ajo"),
		recorder:   nopRecorder{},
		inFlight:   make(map[uint64]struct{}),
	}
}

// SetRecorder installs the activity recorder
func (k *Keeper) SetRecorder(r Recorder) {
	if r == nil {
		r = nopRecorder{}
	}
	k.recorder = r
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func now(ctx sdk.Context) int64 {
	return ctx.BlockTime().Unix()
}

// ============ Keys ============

// PoolKey returns the store key of a pool
func PoolKey(poolID uint64) []byte {
	return prefixed(PoolKeyPrefix, sdk.Uint64ToBigEndian(poolID))
}

// MemberKey returns the store key of one member of a pool
func MemberKey(poolID uint64, addr string) []byte {
	return prefixed(MemberKeyPrefix, sdk.Uint64ToBigEndian(poolID), []byte(addr))
}

// MemberOrderKey returns the key of the index-th admitted member of a pool
func MemberOrderKey(poolID, index uint64) []byte {
	return prefixed(MemberOrderKeyPrefix, sdk.Uint64ToBigEndian(poolID), sdk.Uint64ToBigEndian(index))
}

func prefixed(prefix []byte, parts ...[]byte) []byte {
	n := len(prefix)
	for _, p := range parts {
		n += len(p)
	}
	key := make([]byte, 0, n)
	key = append(key, prefix...)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

// ============ Params ============

// GetParams returns the module parameters
func (k *Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := k.GetStore(ctx).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams stores the module parameters
func (k *Keeper) SetParams(ctx sdk.Context, params types.Params) {
	bz, _ := json.Marshal(params)
	k.GetStore(ctx).Set(ParamsKey, bz)
}

// ============ Pool Operations ============

// GetNextPoolID returns the id the next created pool will get
func (k *Keeper) GetNextPoolID(ctx sdk.Context) uint64 {
	bz := k.GetStore(ctx).Get(NextPoolIDKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextPoolID stores the next pool id
func (k *Keeper) SetNextPoolID(ctx sdk.Context, id uint64) {
	k.GetStore(ctx).Set(NextPoolIDKey, sdk.Uint64ToBigEndian(id))
}

func (k *Keeper) allocatePoolID(ctx sdk.Context) uint64 {
	id := k.GetNextPoolID(ctx)
	k.SetNextPoolID(ctx, id+1)
	return id
}

// SetPool saves a pool to the store
func (k *Keeper) SetPool(ctx sdk.Context, pool *types.Pool) {
	bz, _ := json.Marshal(pool)
	k.GetStore(ctx).Set(PoolKey(pool.ID), bz)
}

// GetPool retrieves a pool from the store
func (k *Keeper) GetPool(ctx sdk.Context, poolID uint64) *types.Pool {
	bz := k.GetStore(ctx).Get(PoolKey(poolID))
	if bz == nil {
		return nil
	}
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil
	}
	return &pool
}

func (k *Keeper) loadPool(ctx sdk.Context, poolID uint64) (*types.Pool, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return nil, errorsWrapPoolNotFound(poolID)
	}
	return pool, nil
}

// GetAllPools returns all pools in id order
func (k *Keeper) GetAllPools(ctx sdk.Context) []*types.Pool {
	iterator := storetypes.KVStorePrefixIterator(k.GetStore(ctx), PoolKeyPrefix)
	defer iterator.Close()

	var pools []*types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			continue
		}
		pools = append(pools, &pool)
	}
	return pools
}

// ============ Member Operations ============

// SetMember saves a member record
func (k *Keeper) SetMember(ctx sdk.Context, poolID uint64, member *types.Member) {
	bz, _ := json.Marshal(member)
	k.GetStore(ctx).Set(MemberKey(poolID, member.Address), bz)
}

// GetMember retrieves a member record
func (k *Keeper) GetMember(ctx sdk.Context, poolID uint64, addr string) *types.Member {
	bz := k.GetStore(ctx).Get(MemberKey(poolID, addr))
	if bz == nil {
		return nil
	}
	var member types.Member
	if err := json.Unmarshal(bz, &member); err != nil {
		return nil
	}
	return &member
}

// HasMember reports whether addr was ever admitted to the pool
func (k *Keeper) HasMember(ctx sdk.Context, poolID uint64, addr string) bool {
	return k.GetStore(ctx).Has(MemberKey(poolID, addr))
}

// setMemberOrder appends addr at index in the admission sequence
func (k *Keeper) setMemberOrder(ctx sdk.Context, poolID, index uint64, addr string) {
	k.GetStore(ctx).Set(MemberOrderKey(poolID, index), []byte(addr))
}

// GetMembers returns the members of a pool in admission order
func (k *Keeper) GetMembers(ctx sdk.Context, poolID uint64) []*types.Member {
	prefix := prefixed(MemberOrderKeyPrefix, sdk.Uint64ToBigEndian(poolID))
	iterator := storetypes.KVStorePrefixIterator(k.GetStore(ctx), prefix)
	defer iterator.Close()

	var members []*types.Member
	for ; iterator.Valid(); iterator.Next() {
		if m := k.GetMember(ctx, poolID, string(iterator.Value())); m != nil {
			members = append(members, m)
		}
	}
	return members
}

// activeMembers returns the active members of a pool in admission order
func (k *Keeper) activeMembers(ctx sdk.Context, poolID uint64) []*types.Member {
	var active []*types.Member
	for _, m := range k.GetMembers(ctx, poolID) {
		if m.Active {
			active = append(active, m)
		}
	}
	return active
}
