package memstore

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Bank is a bank keeper holding balances in its own KVStore, so its effects
// are discarded together with a cached context.
type Bank struct {
	storeKey storetypes.StoreKey

	// OnReceive runs before coins are credited to an account. A non-nil
	// error fails the transfer.
	OnReceive func(ctx context.Context, recipient sdk.AccAddress, amt sdk.Coins) error
}

// NewBank creates a bank over storeKey
func NewBank(storeKey storetypes.StoreKey) *Bank {
	return &Bank{storeKey: storeKey}
}

func accountKey(addr sdk.AccAddress, denom string) []byte {
	return []byte("acct/" + addr.String() + "/" + denom)
}

func moduleKey(module, denom string) []byte {
	return []byte("mod/" + module + "/" + denom)
}

func (b *Bank) get(ctx context.Context, key []byte) math.Int {
	bz := sdk.UnwrapSDKContext(ctx).KVStore(b.storeKey).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}
	amt, ok := math.NewIntFromString(string(bz))
	if !ok {
		return math.ZeroInt()
	}
	return amt
}

func (b *Bank) set(ctx context.Context, key []byte, amt math.Int) {
	sdk.UnwrapSDKContext(ctx).KVStore(b.storeKey).Set(key, []byte(amt.String()))
}

func (b *Bank) debit(ctx context.Context, key []byte, coin sdk.Coin, owner string) error {
	bal := b.get(ctx, key)
	if bal.LT(coin.Amount) {
		return fmt.Errorf("insufficient funds: %s has %s%s, needs %s", owner, bal, coin.Denom, coin)
	}
	b.set(ctx, key, bal.Sub(coin.Amount))
	return nil
}

func (b *Bank) credit(ctx context.Context, key []byte, coin sdk.Coin) {
	b.set(ctx, key, b.get(ctx, key).Add(coin.Amount))
}

// Mint credits coins to an account
func (b *Bank) Mint(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) {
	for _, coin := range amt {
		b.credit(ctx, accountKey(addr, coin.Denom), coin)
	}
}

// Balance returns the account balance of denom
func (b *Bank) Balance(ctx context.Context, addr sdk.AccAddress, denom string) math.Int {
	return b.get(ctx, accountKey(addr, denom))
}

// ModuleBalance returns the module account balance of denom
func (b *Bank) ModuleBalance(ctx context.Context, module, denom string) math.Int {
	return b.get(ctx, moduleKey(module, denom))
}

// SendCoinsFromAccountToModule moves coins from an account to a module
func (b *Bank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	for _, coin := range amt {
		if err := b.debit(ctx, accountKey(senderAddr, coin.Denom), coin, senderAddr.String()); err != nil {
			return err
		}
		b.credit(ctx, moduleKey(recipientModule, coin.Denom), coin)
	}
	return nil
}

// SendCoinsFromModuleToAccount moves coins from a module to an account
func (b *Bank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if b.OnReceive != nil {
		if err := b.OnReceive(ctx, recipientAddr, amt); err != nil {
			return err
		}
	}
	for _, coin := range amt {
		if err := b.debit(ctx, moduleKey(senderModule, coin.Denom), coin, senderModule); err != nil {
			return err
		}
		b.credit(ctx, accountKey(recipientAddr, coin.Denom), coin)
	}
	return nil
}

// MintCoins creates coins in a module account
func (b *Bank) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	for _, coin := range amt {
		b.credit(ctx, moduleKey(moduleName, coin.Denom), coin)
	}
	return nil
}
