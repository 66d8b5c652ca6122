package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgCreateRotationalPool = "create_rotational_pool"
	TypeMsgCreateTargetPool     = "create_target_pool"
	TypeMsgCreateFlexiblePool   = "create_flexible_pool"
	TypeMsgJoinPool             = "join_pool"
	TypeMsgContribute           = "contribute"
	TypeMsgDeposit              = "deposit"
	TypeMsgWithdraw             = "withdraw"
	TypeMsgCheckDeadline        = "check_deadline"
	TypeMsgProcessPayout        = "process_payout"
	TypeMsgCalculateYield       = "calculate_yield"
	TypeMsgApplyPenalty         = "apply_penalty"
	TypeMsgPausePool            = "pause_pool"
	TypeMsgResumePool           = "resume_pool"
	TypeMsgCancelPool           = "cancel_pool"
)

// ParseAmount parses a non-negative integer amount. An empty string is zero.
func ParseAmount(s string) (math.Int, error) {
	if s == "" {
		return math.ZeroInt(), nil
	}
	amt, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, errorsmod.Wrapf(ErrInvalidAmount, "%q", s)
	}
	if amt.IsNegative() {
		return math.Int{}, errorsmod.Wrapf(ErrInvalidAmount, "%s is negative", s)
	}
	return amt, nil
}

// ParsePositiveAmount parses an amount that must be greater than zero
func ParsePositiveAmount(s string) (math.Int, error) {
	amt, err := ParseAmount(s)
	if err != nil {
		return math.Int{}, err
	}
	if !amt.IsPositive() {
		return math.Int{}, errorsmod.Wrap(ErrInvalidAmount, "amount must be positive")
	}
	return amt, nil
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s %q: %s", field, addr, err)
	}
	return nil
}

func validatePoolID(id uint64) error {
	if id == 0 {
		return errorsmod.Wrap(ErrPoolNotFound, "pool id must be positive")
	}
	return nil
}

func validateDenom(denom string) error {
	if denom == "" {
		return nil
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return errorsmod.Wrapf(ErrInvalidDenom, "%s", err)
	}
	return nil
}

func signers(addr string) []sdk.AccAddress {
	acc, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{acc}
}

// ============ Pool creation ============

// MsgCreateRotationalPool creates a rotational pool. The creator is admitted
// first; Members follow in order.
type MsgCreateRotationalPool struct {
	Creator            string   `json:"creator"`
	Name               string   `json:"name"`
	Denom              string   `json:"denom,omitempty"`
	ContributionAmount string   `json:"contribution_amount"`
	PenaltyAmount      string   `json:"penalty_amount,omitempty"`
	GracePeriod        int64    `json:"grace_period"`
	Members            []string `json:"members"`
}

// Route implements sdk.Msg
func (msg MsgCreateRotationalPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreateRotationalPool) Type() string { return TypeMsgCreateRotationalPool }

// ValidateBasic implements sdk.Msg
func (msg MsgCreateRotationalPool) ValidateBasic() error {
	if err := validateAddress("creator", msg.Creator); err != nil {
		return err
	}
	for _, m := range msg.Members {
		if err := validateAddress("member", m); err != nil {
			return err
		}
	}
	if _, err := ParsePositiveAmount(msg.ContributionAmount); err != nil {
		return errorsmod.Wrap(err, "contribution amount")
	}
	if _, err := ParseAmount(msg.PenaltyAmount); err != nil {
		return errorsmod.Wrap(err, "penalty amount")
	}
	if msg.GracePeriod < 0 {
		return errorsmod.Wrap(ErrInvalidAmount, "grace period must be non-negative")
	}
	return validateDenom(msg.Denom)
}

// GetSigners implements sdk.Msg
func (msg MsgCreateRotationalPool) GetSigners() []sdk.AccAddress { return signers(msg.Creator) }

// ProtoMessage implements proto.Message
func (*MsgCreateRotationalPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreateRotationalPool) Reset() { *msg = MsgCreateRotationalPool{} }

// String implements proto.Message
func (msg MsgCreateRotationalPool) String() string {
	return fmt.Sprintf("MsgCreateRotationalPool{Creator: %s, Amount: %s, Members: %d}", msg.Creator, msg.ContributionAmount, len(msg.Members))
}

// MsgCreatePoolResponse is returned by every pool creation message
type MsgCreatePoolResponse struct {
	PoolID      uint64 `json:"pool_id"`
	MemberCount uint64 `json:"member_count"`
}

// MsgCreateTargetPool creates a target pool
type MsgCreateTargetPool struct {
	Creator         string `json:"creator"`
	Name            string `json:"name"`
	Denom           string `json:"denom,omitempty"`
	TargetAmount    string `json:"target_amount"`
	MinContribution string `json:"min_contribution"`
	PenaltyAmount   string `json:"penalty_amount,omitempty"`
	// Deadline is a unix timestamp; zero means none
	Deadline int64  `json:"deadline"`
	Method   string `json:"method"`
}

// Route implements sdk.Msg
func (msg MsgCreateTargetPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreateTargetPool) Type() string { return TypeMsgCreateTargetPool }

// ValidateBasic implements sdk.Msg
func (msg MsgCreateTargetPool) ValidateBasic() error {
	if err := validateAddress("creator", msg.Creator); err != nil {
		return err
	}
	target, err := ParseAmount(msg.TargetAmount)
	if err != nil {
		return errorsmod.Wrap(err, "target amount")
	}
	if !target.IsPositive() {
		return errorsmod.Wrap(ErrInvalidTarget, "target must be positive")
	}
	if _, err := ParseAmount(msg.MinContribution); err != nil {
		return errorsmod.Wrap(err, "min contribution")
	}
	if _, err := ParseAmount(msg.PenaltyAmount); err != nil {
		return errorsmod.Wrap(err, "penalty amount")
	}
	if msg.Deadline < 0 {
		return errorsmod.Wrapf(ErrInvalidDeadline, "%d", msg.Deadline)
	}
	if !DistributionMethod(msg.Method).Valid() {
		return errorsmod.Wrapf(ErrInvalidMethod, "%q", msg.Method)
	}
	return validateDenom(msg.Denom)
}

// GetSigners implements sdk.Msg
func (msg MsgCreateTargetPool) GetSigners() []sdk.AccAddress { return signers(msg.Creator) }

// ProtoMessage implements proto.Message
func (*MsgCreateTargetPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreateTargetPool) Reset() { *msg = MsgCreateTargetPool{} }

// String implements proto.Message
func (msg MsgCreateTargetPool) String() string {
	return fmt.Sprintf("MsgCreateTargetPool{Creator: %s, Target: %s, Deadline: %d, Method: %s}", msg.Creator, msg.TargetAmount, msg.Deadline, msg.Method)
}

// MsgCreateFlexiblePool creates a flexible pool
type MsgCreateFlexiblePool struct {
	Creator       string `json:"creator"`
	Name          string `json:"name"`
	Denom         string `json:"denom,omitempty"`
	MinDeposit    string `json:"min_deposit"`
	MinWithdrawal string `json:"min_withdrawal"`
	PenaltyAmount string `json:"penalty_amount,omitempty"`
	// YieldRate is the annual rate in basis points
	YieldRate uint64 `json:"yield_rate"`
}

// Route implements sdk.Msg
func (msg MsgCreateFlexiblePool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreateFlexiblePool) Type() string { return TypeMsgCreateFlexiblePool }

// ValidateBasic implements sdk.Msg
func (msg MsgCreateFlexiblePool) ValidateBasic() error {
	if err := validateAddress("creator", msg.Creator); err != nil {
		return err
	}
	for field, v := range map[string]string{"min deposit": msg.MinDeposit, "min withdrawal": msg.MinWithdrawal, "penalty amount": msg.PenaltyAmount} {
		if _, err := ParseAmount(v); err != nil {
			return errorsmod.Wrap(err, field)
		}
	}
	return validateDenom(msg.Denom)
}

// GetSigners implements sdk.Msg
func (msg MsgCreateFlexiblePool) GetSigners() []sdk.AccAddress { return signers(msg.Creator) }

// ProtoMessage implements proto.Message
func (*MsgCreateFlexiblePool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreateFlexiblePool) Reset() { *msg = MsgCreateFlexiblePool{} }

// String implements proto.Message
func (msg MsgCreateFlexiblePool) String() string {
	return fmt.Sprintf("MsgCreateFlexiblePool{Creator: %s, MinDeposit: %s, YieldRate: %d}", msg.Creator, msg.MinDeposit, msg.YieldRate)
}

// ============ Membership and value ============

// MsgJoinPool admits the sender. Flexible pools require an opening deposit in Amount.
type MsgJoinPool struct {
	Member string `json:"member"`
	PoolID uint64 `json:"pool_id"`
	Amount string `json:"amount,omitempty"`
}

// Route implements sdk.Msg
func (msg MsgJoinPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgJoinPool) Type() string { return TypeMsgJoinPool }

// ValidateBasic implements sdk.Msg
func (msg MsgJoinPool) ValidateBasic() error {
	if err := validateAddress("member", msg.Member); err != nil {
		return err
	}
	if _, err := ParseAmount(msg.Amount); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgJoinPool) GetSigners() []sdk.AccAddress { return signers(msg.Member) }

// ProtoMessage implements proto.Message
func (*MsgJoinPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgJoinPool) Reset() { *msg = MsgJoinPool{} }

// String implements proto.Message
func (msg MsgJoinPool) String() string {
	return fmt.Sprintf("MsgJoinPool{Member: %s, PoolID: %d}", msg.Member, msg.PoolID)
}

// MsgJoinPoolResponse defines the JoinPool response
type MsgJoinPoolResponse struct {
	MemberCount uint64 `json:"member_count"`
}

// MsgContribute contributes to a rotational or target pool
type MsgContribute struct {
	Contributor string `json:"contributor"`
	PoolID      uint64 `json:"pool_id"`
	Amount      string `json:"amount"`
}

// Route implements sdk.Msg
func (msg MsgContribute) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgContribute) Type() string { return TypeMsgContribute }

// ValidateBasic implements sdk.Msg
func (msg MsgContribute) ValidateBasic() error {
	if err := validateAddress("contributor", msg.Contributor); err != nil {
		return err
	}
	if _, err := ParsePositiveAmount(msg.Amount); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgContribute) GetSigners() []sdk.AccAddress { return signers(msg.Contributor) }

// ProtoMessage implements proto.Message
func (*MsgContribute) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgContribute) Reset() { *msg = MsgContribute{} }

// String implements proto.Message
func (msg MsgContribute) String() string {
	return fmt.Sprintf("MsgContribute{Contributor: %s, PoolID: %d, Amount: %s}", msg.Contributor, msg.PoolID, msg.Amount)
}

// MsgContributeResponse defines the Contribute response
type MsgContributeResponse struct {
	Balance string `json:"balance"`
	// Distributed is true when the contribution triggered a payout
	Distributed bool `json:"distributed"`
}

// MsgDeposit deposits into a flexible pool
type MsgDeposit struct {
	Depositor string `json:"depositor"`
	PoolID    uint64 `json:"pool_id"`
	Amount    string `json:"amount"`
}

// Route implements sdk.Msg
func (msg MsgDeposit) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgDeposit) Type() string { return TypeMsgDeposit }

// ValidateBasic implements sdk.Msg
func (msg MsgDeposit) ValidateBasic() error {
	if err := validateAddress("depositor", msg.Depositor); err != nil {
		return err
	}
	if _, err := ParsePositiveAmount(msg.Amount); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgDeposit) GetSigners() []sdk.AccAddress { return signers(msg.Depositor) }

// ProtoMessage implements proto.Message
func (*MsgDeposit) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgDeposit) Reset() { *msg = MsgDeposit{} }

// String implements proto.Message
func (msg MsgDeposit) String() string {
	return fmt.Sprintf("MsgDeposit{Depositor: %s, PoolID: %d, Amount: %s}", msg.Depositor, msg.PoolID, msg.Amount)
}

// MsgDepositResponse defines the Deposit response
type MsgDepositResponse struct {
	MemberTotal string `json:"member_total"`
	Balance     string `json:"balance"`
}

// MsgWithdraw withdraws from a flexible pool
type MsgWithdraw struct {
	Withdrawer string `json:"withdrawer"`
	PoolID     uint64 `json:"pool_id"`
	Amount     string `json:"amount"`
}

// Route implements sdk.Msg
func (msg MsgWithdraw) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgWithdraw) Type() string { return TypeMsgWithdraw }

// ValidateBasic implements sdk.Msg
func (msg MsgWithdraw) ValidateBasic() error {
	if err := validateAddress("withdrawer", msg.Withdrawer); err != nil {
		return err
	}
	if _, err := ParsePositiveAmount(msg.Amount); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress { return signers(msg.Withdrawer) }

// ProtoMessage implements proto.Message
func (*MsgWithdraw) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgWithdraw) Reset() { *msg = MsgWithdraw{} }

// String implements proto.Message
func (msg MsgWithdraw) String() string {
	return fmt.Sprintf("MsgWithdraw{Withdrawer: %s, PoolID: %d, Amount: %s}", msg.Withdrawer, msg.PoolID, msg.Amount)
}

// MsgWithdrawResponse defines the Withdraw response
type MsgWithdrawResponse struct {
	MemberTotal string `json:"member_total"`
	Balance     string `json:"balance"`
}

// ============ Permissionless triggers ============

// MsgCheckDeadline finalizes a target pool whose deadline has passed
type MsgCheckDeadline struct {
	Caller string `json:"caller"`
	PoolID uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgCheckDeadline) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCheckDeadline) Type() string { return TypeMsgCheckDeadline }

// ValidateBasic implements sdk.Msg
func (msg MsgCheckDeadline) ValidateBasic() error {
	if err := validateAddress("caller", msg.Caller); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgCheckDeadline) GetSigners() []sdk.AccAddress { return signers(msg.Caller) }

// ProtoMessage implements proto.Message
func (*MsgCheckDeadline) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCheckDeadline) Reset() { *msg = MsgCheckDeadline{} }

// String implements proto.Message
func (msg MsgCheckDeadline) String() string {
	return fmt.Sprintf("MsgCheckDeadline{Caller: %s, PoolID: %d}", msg.Caller, msg.PoolID)
}

// MsgDistributionResponse is returned by calls that may disburse the pool
type MsgDistributionResponse struct {
	Distributed string `json:"distributed"`
	Status      string `json:"status"`
}

// MsgProcessPayout pays the current rotational recipient once the round is funded
type MsgProcessPayout struct {
	Caller string `json:"caller"`
	PoolID uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgProcessPayout) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgProcessPayout) Type() string { return TypeMsgProcessPayout }

// ValidateBasic implements sdk.Msg
func (msg MsgProcessPayout) ValidateBasic() error {
	if err := validateAddress("caller", msg.Caller); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgProcessPayout) GetSigners() []sdk.AccAddress { return signers(msg.Caller) }

// ProtoMessage implements proto.Message
func (*MsgProcessPayout) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgProcessPayout) Reset() { *msg = MsgProcessPayout{} }

// String implements proto.Message
func (msg MsgProcessPayout) String() string {
	return fmt.Sprintf("MsgProcessPayout{Caller: %s, PoolID: %d}", msg.Caller, msg.PoolID)
}

// MsgCalculateYield accrues pending yield on a flexible pool
type MsgCalculateYield struct {
	Caller string `json:"caller"`
	PoolID uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgCalculateYield) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCalculateYield) Type() string { return TypeMsgCalculateYield }

// ValidateBasic implements sdk.Msg
func (msg MsgCalculateYield) ValidateBasic() error {
	if err := validateAddress("caller", msg.Caller); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgCalculateYield) GetSigners() []sdk.AccAddress { return signers(msg.Caller) }

// ProtoMessage implements proto.Message
func (*MsgCalculateYield) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCalculateYield) Reset() { *msg = MsgCalculateYield{} }

// String implements proto.Message
func (msg MsgCalculateYield) String() string {
	return fmt.Sprintf("MsgCalculateYield{Caller: %s, PoolID: %d}", msg.Caller, msg.PoolID)
}

// MsgCalculateYieldResponse defines the CalculateYield response
type MsgCalculateYieldResponse struct {
	Yield string `json:"yield"`
}

// ============ Controller operations ============

// MsgApplyPenalty deducts the penalty unit from a member (controller only)
type MsgApplyPenalty struct {
	Controller string `json:"controller"`
	PoolID     uint64 `json:"pool_id"`
	Member     string `json:"member"`
}

// Route implements sdk.Msg
func (msg MsgApplyPenalty) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgApplyPenalty) Type() string { return TypeMsgApplyPenalty }

// ValidateBasic implements sdk.Msg
func (msg MsgApplyPenalty) ValidateBasic() error {
	if err := validateAddress("controller", msg.Controller); err != nil {
		return err
	}
	if err := validateAddress("member", msg.Member); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgApplyPenalty) GetSigners() []sdk.AccAddress { return signers(msg.Controller) }

// ProtoMessage implements proto.Message
func (*MsgApplyPenalty) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgApplyPenalty) Reset() { *msg = MsgApplyPenalty{} }

// String implements proto.Message
func (msg MsgApplyPenalty) String() string {
	return fmt.Sprintf("MsgApplyPenalty{Controller: %s, PoolID: %d, Member: %s}", msg.Controller, msg.PoolID, msg.Member)
}

// MsgApplyPenaltyResponse defines the ApplyPenalty response
type MsgApplyPenaltyResponse struct {
	Applied string `json:"applied"`
}

// MsgPausePool pauses an active pool (controller only)
type MsgPausePool struct {
	Controller string `json:"controller"`
	PoolID     uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgPausePool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgPausePool) Type() string { return TypeMsgPausePool }

// ValidateBasic implements sdk.Msg
func (msg MsgPausePool) ValidateBasic() error {
	if err := validateAddress("controller", msg.Controller); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgPausePool) GetSigners() []sdk.AccAddress { return signers(msg.Controller) }

// ProtoMessage implements proto.Message
func (*MsgPausePool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgPausePool) Reset() { *msg = MsgPausePool{} }

// String implements proto.Message
func (msg MsgPausePool) String() string {
	return fmt.Sprintf("MsgPausePool{Controller: %s, PoolID: %d}", msg.Controller, msg.PoolID)
}

// MsgResumePool resumes a paused pool (controller only)
type MsgResumePool struct {
	Controller string `json:"controller"`
	PoolID     uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgResumePool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgResumePool) Type() string { return TypeMsgResumePool }

// ValidateBasic implements sdk.Msg
func (msg MsgResumePool) ValidateBasic() error {
	if err := validateAddress("controller", msg.Controller); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgResumePool) GetSigners() []sdk.AccAddress { return signers(msg.Controller) }

// ProtoMessage implements proto.Message
func (*MsgResumePool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgResumePool) Reset() { *msg = MsgResumePool{} }

// String implements proto.Message
func (msg MsgResumePool) String() string {
	return fmt.Sprintf("MsgResumePool{Controller: %s, PoolID: %d}", msg.Controller, msg.PoolID)
}

// MsgCancelPool cancels an active pool (controller only)
type MsgCancelPool struct {
	Controller string `json:"controller"`
	PoolID     uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgCancelPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCancelPool) Type() string { return TypeMsgCancelPool }

// ValidateBasic implements sdk.Msg
func (msg MsgCancelPool) ValidateBasic() error {
	if err := validateAddress("controller", msg.Controller); err != nil {
		return err
	}
	return validatePoolID(msg.PoolID)
}

// GetSigners implements sdk.Msg
func (msg MsgCancelPool) GetSigners() []sdk.AccAddress { return signers(msg.Controller) }

// ProtoMessage implements proto.Message
func (*MsgCancelPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCancelPool) Reset() { *msg = MsgCancelPool{} }

// String implements proto.Message
func (msg MsgCancelPool) String() string {
	return fmt.Sprintf("MsgCancelPool{Controller: %s, PoolID: %d}", msg.Controller, msg.PoolID)
}

// MsgStatusResponse is returned by controller status transitions
type MsgStatusResponse struct {
	Status string `json:"status"`
}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgCreateRotationalPool{}
	_ sdk.Msg = &MsgCreateTargetPool{}
	_ sdk.Msg = &MsgCreateFlexiblePool{}
	_ sdk.Msg = &MsgJoinPool{}
	_ sdk.Msg = &MsgContribute{}
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgCheckDeadline{}
	_ sdk.Msg = &MsgProcessPayout{}
	_ sdk.Msg = &MsgCalculateYield{}
	_ sdk.Msg = &MsgApplyPenalty{}
	_ sdk.Msg = &MsgPausePool{}
	_ sdk.Msg = &MsgResumePool{}
	_ sdk.Msg = &MsgCancelPool{}
)
