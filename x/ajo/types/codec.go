package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	amino = codec.NewLegacyAmino()
	// ModuleCdc is the amino codec of the module
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}

// RegisterLegacyAminoCodec registers the module messages on the amino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateRotationalPool{}, "ajo/MsgCreateRotationalPool", nil)
	cdc.RegisterConcrete(&MsgCreateTargetPool{}, "ajo/MsgCreateTargetPool", nil)
	cdc.RegisterConcrete(&MsgCreateFlexiblePool{}, "ajo/MsgCreateFlexiblePool", nil)
	cdc.RegisterConcrete(&MsgJoinPool{}, "ajo/MsgJoinPool", nil)
	cdc.RegisterConcrete(&MsgContribute{}, "ajo/MsgContribute", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "ajo/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "ajo/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgCheckDeadline{}, "ajo/MsgCheckDeadline", nil)
	cdc.RegisterConcrete(&MsgProcessPayout{}, "ajo/MsgProcessPayout", nil)
	cdc.RegisterConcrete(&MsgCalculateYield{}, "ajo/MsgCalculateYield", nil)
	cdc.RegisterConcrete(&MsgApplyPenalty{}, "ajo/MsgApplyPenalty", nil)
	cdc.RegisterConcrete(&MsgPausePool{}, "ajo/MsgPausePool", nil)
	cdc.RegisterConcrete(&MsgResumePool{}, "ajo/MsgResumePool", nil)
	cdc.RegisterConcrete(&MsgCancelPool{}, "ajo/MsgCancelPool", nil)
}

// RegisterInterfaces registers the module messages as sdk.Msg implementations
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateRotationalPool{},
		&MsgCreateTargetPool{},
		&MsgCreateFlexiblePool{},
		&MsgJoinPool{},
		&MsgContribute{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgCheckDeadline{},
		&MsgProcessPayout{},
		&MsgCalculateYield{},
		&MsgApplyPenalty{},
		&MsgPausePool{},
		&MsgResumePool{},
		&MsgCancelPool{},
	)
}

// Message names give every hand-written message a distinct type URL.
func (*MsgCreateRotationalPool) XXX_MessageName() string { return "ajo.v1.MsgCreateRotationalPool" }
func (*MsgCreateTargetPool) XXX_MessageName() string     { return "ajo.v1.MsgCreateTargetPool" }
func (*MsgCreateFlexiblePool) XXX_MessageName() string   { return "ajo.v1.MsgCreateFlexiblePool" }
func (*MsgJoinPool) XXX_MessageName() string             { return "ajo.v1.MsgJoinPool" }
func (*MsgContribute) XXX_MessageName() string           { return "ajo.v1.MsgContribute" }
func (*MsgDeposit) XXX_MessageName() string              { return "ajo.v1.MsgDeposit" }
func (*MsgWithdraw) XXX_MessageName() string             { return "ajo.v1.MsgWithdraw" }
func (*MsgCheckDeadline) XXX_MessageName() string        { return "ajo.v1.MsgCheckDeadline" }
func (*MsgProcessPayout) XXX_MessageName() string        { return "ajo.v1.MsgProcessPayout" }
func (*MsgCalculateYield) XXX_MessageName() string       { return "ajo.v1.MsgCalculateYield" }
func (*MsgApplyPenalty) XXX_MessageName() string         { return "ajo.v1.MsgApplyPenalty" }
func (*MsgPausePool) XXX_MessageName() string            { return "ajo.v1.MsgPausePool" }
func (*MsgResumePool) XXX_MessageName() string           { return "ajo.v1.MsgResumePool" }
func (*MsgCancelPool) XXX_MessageName() string           { return "ajo.v1.MsgCancelPool" }
