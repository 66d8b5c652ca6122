package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	DefaultDenom        = "uajo"
	DefaultMaxMembers   = uint64(100)
	DefaultMaxYieldRate = uint64(RateDenominator)
)

// Params are the module-wide limits set at genesis
type Params struct {
	// DefaultDenom is used by pools created without a denom
	DefaultDenom string `json:"default_denom"`
	// MaxMembers caps the member count of any pool; zero disables the cap
	MaxMembers uint64 `json:"max_members"`
	// MaxYieldRate caps the flexible yield rate in basis points
	MaxYieldRate uint64 `json:"max_yield_rate"`
}

// DefaultParams returns the default parameters
func DefaultParams() Params {
	return Params{
		DefaultDenom: DefaultDenom,
		MaxMembers:   DefaultMaxMembers,
		MaxYieldRate: DefaultMaxYieldRate,
	}
}

// Validate checks the parameters
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.DefaultDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidDenom, "default denom: %s", err)
	}
	if p.MaxMembers == 1 {
		return errorsmod.Wrap(ErrInvalidGenesis, "max members must allow at least two members")
	}
	return nil
}

// String implements fmt.Stringer
func (p Params) String() string {
	return fmt.Sprintf("Params{DefaultDenom: %s, MaxMembers: %d, MaxYieldRate: %d}", p.DefaultDenom, p.MaxMembers, p.MaxYieldRate)
}
