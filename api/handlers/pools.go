package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/keeper"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

// Node is the chain the handlers read and write
type Node interface {
	Query(fn func(ctx context.Context, q *keeper.QueryServer) error) error
	Exec(msg sdk.Msg) (*ExecResult, error)
	Advance(d time.Duration) (int64, time.Time, error)
	Status() (string, int64, time.Time)
}

// ExecResult is one executed msg: its response, the height it was included
// at and the events it emitted, in emission order
type ExecResult struct {
	Response interface{}
	Height   int64
	Events   []abci.Event
}

// maxPageSize caps the pools listing
const maxPageSize = 100

// maxBodyBytes caps a tx request body
const maxBodyBytes = 64 << 10

// msgFactories maps /ajo/v1/tx/{type} to the Msg decoded from the body
var msgFactories = map[string]func() sdk.Msg{
	"create-rotational": func() sdk.Msg { return &types.MsgCreateRotationalPool{} },
	"create-target":     func() sdk.Msg { return &types.MsgCreateTargetPool{} },
	"create-flexible":   func() sdk.Msg { return &types.MsgCreateFlexiblePool{} },
	"join":              func() sdk.Msg { return &types.MsgJoinPool{} },
	"contribute":        func() sdk.Msg { return &types.MsgContribute{} },
	"deposit":           func() sdk.Msg { return &types.MsgDeposit{} },
	"withdraw":          func() sdk.Msg { return &types.MsgWithdraw{} },
	"check-deadline":    func() sdk.Msg { return &types.MsgCheckDeadline{} },
	"process-payout":    func() sdk.Msg { return &types.MsgProcessPayout{} },
	"calculate-yield":   func() sdk.Msg { return &types.MsgCalculateYield{} },
	"apply-penalty":     func() sdk.Msg { return &types.MsgApplyPenalty{} },
	"pause":             func() sdk.Msg { return &types.MsgPausePool{} },
	"resume":            func() sdk.Msg { return &types.MsgResumePool{} },
	"cancel":            func() sdk.Msg { return &types.MsgCancelPool{} },
}

// PoolHandler serves pool queries and dev transactions
type PoolHandler struct {
	node Node
}

// NewPoolHandler creates a new PoolHandler
func NewPoolHandler(node Node) *PoolHandler {
	return &PoolHandler{node: node}
}

// RegisterRoutes registers ajo API routes
func (h *PoolHandler) RegisterRoutes(r *mux.Router) {
	// Pool routes
	r.HandleFunc("/ajo/v1/pools", h.GetPools).Methods("GET")
	r.HandleFunc("/ajo/v1/pools/{id}", h.GetPool).Methods("GET")
	r.HandleFunc("/ajo/v1/pools/{id}/balance", h.GetBalance).Methods("GET")

	// Member routes
	r.HandleFunc("/ajo/v1/pools/{id}/members", h.GetMembers).Methods("GET")
	r.HandleFunc("/ajo/v1/pools/{id}/members/{address}", h.GetMember).Methods("GET")

	// Policy status
	r.HandleFunc("/ajo/v1/pools/{id}/rotation", h.GetRotation).Methods("GET")
	r.HandleFunc("/ajo/v1/pools/{id}/progress", h.GetProgress).Methods("GET")
	r.HandleFunc("/ajo/v1/pools/{id}/yield", h.GetYield).Methods("GET")

	// Node routes
	r.HandleFunc("/ajo/v1/node/status", h.GetStatus).Methods("GET")
	r.HandleFunc("/ajo/v1/node/advance", h.Advance).Methods("POST")

	// Transaction routes
	r.HandleFunc("/ajo/v1/tx/{type}", h.SubmitTx).Methods("POST")
}

// PoolsResponse is one page of pools
type PoolsResponse struct {
	Pools  []*types.Pool `json:"pools"`
	Total  uint64        `json:"total"`
	Offset uint64        `json:"offset"`
	Limit  uint64        `json:"limit"`
}

// MemberResponse is one member of a pool
type MemberResponse struct {
	PoolID uint64        `json:"pool_id"`
	Member *types.Member `json:"member"`
}

// BalanceResponse is the pooled balance
type BalanceResponse struct {
	PoolID  uint64   `json:"pool_id"`
	Denom   string   `json:"denom"`
	Balance math.Int `json:"balance"`
}

// TxResponse is the result of a dev transaction
type TxResponse struct {
	Type   string       `json:"type"`
	Height int64        `json:"height"`
	Result interface{}  `json:"result"`
	Events []abci.Event `json:"events"`
}

// GetPools handles GET /ajo/v1/pools
func (h *PoolHandler) GetPools(w http.ResponseWriter, r *http.Request) {
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_offset", err.Error())
		return
	}
	limit, err := queryUint(r, "limit", maxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_limit", err.Error())
		return
	}
	if limit == 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	resp := PoolsResponse{Pools: []*types.Pool{}, Offset: offset, Limit: limit}
	err = h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		var err error
		resp.Pools, resp.Total, err = q.Pools(ctx, offset, limit)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetPool handles GET /ajo/v1/pools/{id}
func (h *PoolHandler) GetPool(w http.ResponseWriter, r *http.Request) {
	poolID, ok := poolIDVar(w, r)
	if !ok {
		return
	}

	var pool *types.Pool
	err := h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		var err error
		pool, err = q.Pool(ctx, poolID)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pool)
}

// GetBalance handles GET /ajo/v1/pools/{id}/balance
func (h *PoolHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	poolID, ok := poolIDVar(w, r)
	if !ok {
		return
	}

	resp := BalanceResponse{PoolID: poolID}
	err := h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		pool, err := q.Pool(ctx, poolID)
		if err != nil {
			return err
		}
		resp.Denom = pool.Config.Denom
		resp.Balance, err = q.Balance(ctx, poolID)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetMembers handles GET /ajo/v1/pools/{id}/members
func (h *PoolHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	poolID, ok := poolIDVar(w, r)
	if !ok {
		return
	}

	var members []*types.Member
	err := h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		var err error
		members, err = q.Members(ctx, poolID)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pool_id": poolID,
		"members": members,
	})
}

// GetMember handles GET /ajo/v1/pools/{id}/members/{address}
func (h *PoolHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	poolID, ok := poolIDVar(w, r)
	if !ok {
		return
	}
	addr := mux.Vars(r)["address"]
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_address", err.Error())
		return
	}

	var member *types.Member
	err := h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		var err error
		member, err = q.Member(ctx, poolID, addr)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MemberResponse{PoolID: poolID, Member: member})
}

// GetRotation handles GET /ajo/v1/pools/{id}/rotation
func (h *PoolHandler) GetRotation(w http.ResponseWriter, r *http.Request) {
	poolID, ok := poolIDVar(w, r)
	if !ok {
		return
	}

	var status *types.RotationStatus
	err := h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		var err error
		status, err = q.RotationStatus(ctx, poolID)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// GetProgress handles GET /ajo/v1/pools/{id}/progress
func (h *PoolHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	poolID, ok := poolIDVar(w, r)
	if !ok {
		return
	}

	var progress *types.TargetProgress
	err := h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		var err error
		progress, err = q.TargetProgress(ctx, poolID)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// GetYield handles GET /ajo/v1/pools/{id}/yield
func (h *PoolHandler) GetYield(w http.ResponseWriter, r *http.Request) {
	poolID, ok := poolIDVar(w, r)
	if !ok {
		return
	}

	var status *types.YieldStatus
	err := h.node.Query(func(ctx context.Context, q *keeper.QueryServer) error {
		var err error
		status, err = q.YieldStatus(ctx, poolID)
		return err
	})
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// GetStatus handles GET /ajo/v1/node/status
func (h *PoolHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	chainID, height, blockTime := h.node.Status()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chain_id":   chainID,
		"height":     height,
		"block_time": blockTime.Unix(),
	})
}

// AdvanceRequest moves block time forward
type AdvanceRequest struct {
	Seconds int64 `json:"seconds"`
}

// Advance handles POST /ajo/v1/node/advance
func (h *PoolHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req AdvanceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if req.Seconds <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "seconds must be positive")
		return
	}

	height, blockTime, err := h.node.Advance(time.Duration(req.Seconds) * time.Second)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"height":     height,
		"block_time": blockTime.Unix(),
	})
}

// SubmitTx handles POST /ajo/v1/tx/{type}. The signer named in the body is
// trusted.
func (h *PoolHandler) SubmitTx(w http.ResponseWriter, r *http.Request) {
	txType := mux.Vars(r)["type"]
	factory, ok := msgFactories[txType]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_tx_type", fmt.Sprintf("unknown tx type %q", txType))
		return
	}

	msg := factory()
	if err := decodeBody(w, r, msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.node.Exec(msg)
	if err != nil {
		writeKeeperError(w, err)
		return
	}
	events := res.Events
	if events == nil {
		events = []abci.Event{}
	}
	writeJSON(w, http.StatusOK, TxResponse{Type: txType, Height: res.Height, Result: res.Response, Events: events})
}

// ============ Helpers ============

func poolIDVar(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "invalid_pool_id", "Pool id must be a positive integer")
		return 0, false
	}
	return id, true
}

func queryUint(r *http.Request, key string, def uint64) (uint64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return n, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// errorStatus maps module errors to HTTP statuses
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrPoolNotFound):
		return http.StatusNotFound, "pool_not_found"
	case errors.Is(err, types.ErrNotMember):
		return http.StatusNotFound, "not_member"
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized"
	case errors.Is(err, types.ErrReentrantCall):
		return http.StatusConflict, "reentrant_call"
	case errors.Is(err, types.ErrTransferFailed):
		return http.StatusUnprocessableEntity, "transfer_failed"
	default:
		return http.StatusBadRequest, "invalid_request"
	}
}

func writeKeeperError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	writeError(w, status, code, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   code,
		"message": message,
	})
}
