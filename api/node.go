package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/api/handlers"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/keeper"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/memstore"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// LocalNode runs the ajo keeper over an in-memory store for development.
// Every transaction is committed as its own block; block time only moves
// when Advance is called.
type LocalNode struct {
	mu sync.Mutex

	cms       storetypes.CommitMultiStore
	keeper    *keeper.Keeper
	bank      *memstore.Bank
	msgServer *keeper.MsgServer
	query     *keeper.QueryServer
	logger    log.Logger

	chainID   string
	height    int64
	blockTime time.Time
}

// NewLocalNode builds a node and funds the seed accounts
func NewLocalNode(cfg NodeConfig, recorder keeper.Recorder, logger log.Logger) (*LocalNode, error) {
	ajoKey := storetypes.NewKVStoreKey(types.StoreKey)
	bankKey := storetypes.NewKVStoreKey("bank")

	cms, err := memstore.NewMultiStore(logger, ajoKey, bankKey)
	if err != nil {
		return nil, err
	}

	bank := memstore.NewBank(bankKey)
	k := keeper.NewKeeper(ajoKey, bank, logger)
	k.SetRecorder(recorder)

	genesis := time.Now().UTC()
	if cfg.GenesisAt > 0 {
		genesis = time.Unix(cfg.GenesisAt, 0).UTC()
	}

	n := &LocalNode{
		cms:       cms,
		keeper:    k,
		bank:      bank,
		msgServer: keeper.NewMsgServerImpl(k),
		query:     keeper.NewQueryServerImpl(k),
		logger:    logger.With("module", "localnode"),
		chainID:   cfg.ChainID,
		height:    1,
		blockTime: genesis,
	}

	ctx := n.context()
	k.InitGenesis(ctx, *types.DefaultGenesis())
	for _, acc := range cfg.Accounts {
		addr, err := sdk.AccAddressFromBech32(acc.Address)
		if err != nil {
			return nil, fmt.Errorf("seed account %q: %w", acc.Address, err)
		}
		coins, err := sdk.ParseCoinsNormalized(acc.Coins)
		if err != nil {
			return nil, fmt.Errorf("seed account %s coins: %w", acc.Address, err)
		}
		bank.Mint(ctx, addr, coins)
	}
	n.commit()

	return n, nil
}

func (n *LocalNode) context() sdk.Context {
	return memstore.NewContext(n.cms, n.height, n.blockTime, n.logger).WithChainID(n.chainID)
}

func (n *LocalNode) commit() {
	n.cms.Commit()
	n.height++
}

// Query runs fn against the latest state
func (n *LocalNode) Query(fn func(ctx context.Context, q *keeper.QueryServer) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return fn(n.context(), n.query)
}

// Exec executes msg in a new block. A failed msg leaves no state and no
// events behind.
func (n *LocalNode) Exec(msg sdk.Msg) (*handlers.ExecResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	height := n.height
	ctx, write := n.context().CacheContext()
	resp, err := n.msgServer.Dispatch(ctx, msg)
	if err != nil {
		return nil, err
	}
	events := ctx.EventManager().ABCIEvents()
	write()
	n.commit()

	n.logger.Debug("executed msg", "type", sdk.MsgTypeURL(msg), "height", height, "events", len(events))
	return &handlers.ExecResult{Response: resp, Height: height, Events: events}, nil
}

// Advance moves the block time forward and commits a block
func (n *LocalNode) Advance(d time.Duration) (int64, time.Time, error) {
	if d < 0 {
		return 0, time.Time{}, fmt.Errorf("cannot move block time backwards")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.blockTime = n.blockTime.Add(d)
	n.commit()
	return n.height, n.blockTime, nil
}

// Fund mints coins to addr
func (n *LocalNode) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.bank.Mint(n.context(), addr, coins)
	n.commit()
}

// AccountBalance returns the bank balance of addr in denom
func (n *LocalNode) AccountBalance(addr sdk.AccAddress, denom string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.bank.Balance(n.context(), addr, denom).String()
}

// Status reports the node's chain id, height and block time
func (n *LocalNode) Status() (string, int64, time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.chainID, n.height, n.blockTime
}
