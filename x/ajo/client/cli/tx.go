package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

const (
	FlagName            = "name"
	FlagDenom           = "denom"
	FlagPenalty         = "penalty"
	FlagGracePeriod     = "grace-period"
	FlagDeadline        = "deadline"
	FlagMethod          = "method"
	FlagMinContribution = "min-contribution"
	FlagMinDeposit      = "min-deposit"
	FlagMinWithdrawal   = "min-withdrawal"
	FlagYieldRate       = "yield-rate"
)

// TxHelp explains where ajo transactions execute
const TxHelp = `Build and sign ajo savings pool transactions.

The chain binary does not route ajo msgs yet: a broadcast is rejected as
unroutable. Use --generate-only to inspect a msg, and submit it as JSON to the
gateway at POST /ajo/v1/tx/{type} (see ajo-api) to execute it.`

// GetTxCmd returns the transaction commands for the ajo module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Ajo savings pool transaction commands",
		Long:                       TxHelp,
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateRotationalPool(),
		CmdCreateTargetPool(),
		CmdCreateFlexiblePool(),
		CmdJoinPool(),
		CmdContribute(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdCheckDeadline(),
		CmdProcessPayout(),
		CmdCalculateYield(),
		CmdApplyPenalty(),
		CmdPausePool(),
		CmdResumePool(),
		CmdCancelPool(),
	)

	return cmd
}

func parsePoolID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pool id %q: %w", arg, err)
	}
	return id, nil
}

// broadcast validates msg and hands it to the tx factory
func broadcast(cmd *cobra.Command, build func(from string) (sdk.Msg, error)) error {
	clientCtx, err := client.GetClientTxContext(cmd)
	if err != nil {
		return err
	}

	msg, err := build(clientCtx.GetFromAddress().String())
	if err != nil {
		return err
	}
	if m, ok := msg.(sdk.HasValidateBasic); ok {
		if err := m.ValidateBasic(); err != nil {
			return err
		}
	}

	return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
}

// CmdCreateRotationalPool returns the command to create a rotational pool
func CmdCreateRotationalPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-rotational [contribution-amount] [member]...",
		Short: "Create a rotational pool; the creator is first in the payout order",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(FlagName)
			denom, _ := cmd.Flags().GetString(FlagDenom)
			penalty, _ := cmd.Flags().GetString(FlagPenalty)
			grace, _ := cmd.Flags().GetInt64(FlagGracePeriod)

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgCreateRotationalPool{
					Creator:            from,
					Name:               name,
					Denom:              denom,
					ContributionAmount: args[0],
					PenaltyAmount:      penalty,
					GracePeriod:        grace,
					Members:            args[1:],
				}, nil
			})
		},
	}

	cmd.Flags().String(FlagName, "", "pool name")
	cmd.Flags().String(FlagDenom, "", "contribution denom (defaults to the module default denom)")
	cmd.Flags().String(FlagPenalty, "0", "penalty amount")
	cmd.Flags().Int64(FlagGracePeriod, 0, "seconds after a round starts before a late member can be penalized")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateTargetPool returns the command to create a target pool
func CmdCreateTargetPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-target [target-amount]",
		Short: "Create a pool that pays out once a savings goal or deadline is reached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(FlagName)
			denom, _ := cmd.Flags().GetString(FlagDenom)
			penalty, _ := cmd.Flags().GetString(FlagPenalty)
			minContribution, _ := cmd.Flags().GetString(FlagMinContribution)
			deadline, _ := cmd.Flags().GetInt64(FlagDeadline)
			method, _ := cmd.Flags().GetString(FlagMethod)

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgCreateTargetPool{
					Creator:         from,
					Name:            name,
					Denom:           denom,
					TargetAmount:    args[0],
					MinContribution: minContribution,
					PenaltyAmount:   penalty,
					Deadline:        deadline,
					Method:          method,
				}, nil
			})
		},
	}

	cmd.Flags().String(FlagName, "", "pool name")
	cmd.Flags().String(FlagDenom, "", "contribution denom (defaults to the module default denom)")
	cmd.Flags().String(FlagPenalty, "0", "penalty amount")
	cmd.Flags().String(FlagMinContribution, "0", "minimum contribution")
	cmd.Flags().Int64(FlagDeadline, 0, "unix deadline; 0 disables it")
	cmd.Flags().String(FlagMethod, string(types.DistributionEqual), "distribution method: equal or proportional")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateFlexiblePool returns the command to create a flexible pool
func CmdCreateFlexiblePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-flexible",
		Short: "Create a deposit/withdraw pool that accrues yield",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(FlagName)
			denom, _ := cmd.Flags().GetString(FlagDenom)
			penalty, _ := cmd.Flags().GetString(FlagPenalty)
			minDeposit, _ := cmd.Flags().GetString(FlagMinDeposit)
			minWithdrawal, _ := cmd.Flags().GetString(FlagMinWithdrawal)
			rate, _ := cmd.Flags().GetUint64(FlagYieldRate)

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgCreateFlexiblePool{
					Creator:       from,
					Name:          name,
					Denom:         denom,
					MinDeposit:    minDeposit,
					MinWithdrawal: minWithdrawal,
					PenaltyAmount: penalty,
					YieldRate:     rate,
				}, nil
			})
		},
	}

	cmd.Flags().String(FlagName, "", "pool name")
	cmd.Flags().String(FlagDenom, "", "deposit denom (defaults to the module default denom)")
	cmd.Flags().String(FlagPenalty, "0", "penalty amount")
	cmd.Flags().String(FlagMinDeposit, "0", "minimum deposit")
	cmd.Flags().String(FlagMinWithdrawal, "0", "minimum withdrawal")
	cmd.Flags().Uint64(FlagYieldRate, 0, "annual yield rate in basis points")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdJoinPool returns the command to join a target or flexible pool
func CmdJoinPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [pool-id] [initial-deposit]",
		Short: "Join a pool; flexible pools take an initial deposit",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			amount := ""
			if len(args) == 2 {
				amount = args[1]
			}

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgJoinPool{Member: from, PoolID: poolID, Amount: amount}, nil
			})
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdContribute returns the command to contribute to a rotational or target pool
func CmdContribute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contribute [pool-id] [amount]",
		Short: "Contribute to a rotational or target pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgContribute{Contributor: from, PoolID: poolID, Amount: args[1]}, nil
			})
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns the command to deposit into a flexible pool
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [pool-id] [amount]",
		Short: "Deposit into a flexible pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgDeposit{Depositor: from, PoolID: poolID, Amount: args[1]}, nil
			})
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns the command to withdraw from a flexible pool
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-id] [amount]",
		Short: "Withdraw from a flexible pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgWithdraw{Withdrawer: from, PoolID: poolID, Amount: args[1]}, nil
			})
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// poolCmd builds a command whose only argument is a pool id
func poolCmd(use, short string, build func(from string, poolID uint64) sdk.Msg) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [pool-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return build(from, poolID), nil
			})
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCheckDeadline returns the command to settle a target pool past its deadline
func CmdCheckDeadline() *cobra.Command {
	return poolCmd("check-deadline", "Distribute a target pool whose deadline has passed", func(from string, poolID uint64) sdk.Msg {
		return &types.MsgCheckDeadline{Caller: from, PoolID: poolID}
	})
}

// CmdProcessPayout returns the command to pay out a funded rotation round
func CmdProcessPayout() *cobra.Command {
	return poolCmd("process-payout", "Pay the current recipient of a funded rotation round", func(from string, poolID uint64) sdk.Msg {
		return &types.MsgProcessPayout{Caller: from, PoolID: poolID}
	})
}

// CmdCalculateYield returns the command to accrue flexible pool yield
func CmdCalculateYield() *cobra.Command {
	return poolCmd("calculate-yield", "Accrue and distribute flexible pool yield", func(from string, poolID uint64) sdk.Msg {
		return &types.MsgCalculateYield{Caller: from, PoolID: poolID}
	})
}

// CmdPausePool returns the command to pause a pool
func CmdPausePool() *cobra.Command {
	return poolCmd("pause", "Pause an active pool (controller only)", func(from string, poolID uint64) sdk.Msg {
		return &types.MsgPausePool{Controller: from, PoolID: poolID}
	})
}

// CmdResumePool returns the command to resume a paused pool
func CmdResumePool() *cobra.Command {
	return poolCmd("resume", "Resume a paused pool (controller only)", func(from string, poolID uint64) sdk.Msg {
		return &types.MsgResumePool{Controller: from, PoolID: poolID}
	})
}

// CmdCancelPool returns the command to cancel a pool
func CmdCancelPool() *cobra.Command {
	return poolCmd("cancel", "Cancel an active pool (controller only)", func(from string, poolID uint64) sdk.Msg {
		return &types.MsgCancelPool{Controller: from, PoolID: poolID}
	})
}

// CmdApplyPenalty returns the command to penalize a member
func CmdApplyPenalty() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply-penalty [pool-id] [member]",
		Short: "Apply the pool penalty to a member (controller only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}

			return broadcast(cmd, func(from string) (sdk.Msg, error) {
				return &types.MsgApplyPenalty{Controller: from, PoolID: poolID, Member: args[1]}, nil
			})
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
