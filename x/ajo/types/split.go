package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// SafeAdd returns a+b or ErrOverflow
func SafeAdd(a, b math.Int) (math.Int, error) {
	res, err := a.SafeAdd(b)
	if err != nil {
		return math.Int{}, errorsmod.Wrapf(ErrOverflow, "%s + %s", a, b)
	}
	return res, nil
}

// SafeMul returns a*b or ErrOverflow
func SafeMul(a, b math.Int) (math.Int, error) {
	res, err := a.SafeMul(b)
	if err != nil {
		return math.Int{}, errorsmod.Wrapf(ErrOverflow, "%s * %s", a, b)
	}
	return res, nil
}

// SafeSub returns a-b, failing with ErrInsufficientBalance when b > a
func SafeSub(a, b math.Int) (math.Int, error) {
	if b.GT(a) {
		return math.Int{}, errorsmod.Wrapf(ErrInsufficientBalance, "%s < %s", a, b)
	}
	return a.Sub(b), nil
}

// EqualSplit divides total into n shares. Every share is total/n and the first
// total mod n shares get one extra unit, so the shares sum to total exactly.
func EqualSplit(total math.Int, n int) []math.Int {
	if n <= 0 {
		return nil
	}
	count := math.NewInt(int64(n))
	base := total.Quo(count)
	remainder := total.Mod(count).Int64()

	shares := make([]math.Int, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i] = base.AddRaw(1)
		}
	}
	return shares
}

// ProportionalSplit divides total by weight: share_i = total * w_i / sum(w),
// truncated. The sum of shares never exceeds total; the dust is returned.
func ProportionalSplit(total math.Int, weights []math.Int) ([]math.Int, math.Int, error) {
	shares := make([]math.Int, len(weights))
	sum := math.ZeroInt()
	for _, w := range weights {
		var err error
		if sum, err = SafeAdd(sum, w); err != nil {
			return nil, math.Int{}, err
		}
	}
	if !sum.IsPositive() {
		for i := range shares {
			shares[i] = math.ZeroInt()
		}
		return shares, total, nil
	}

	paid := math.ZeroInt()
	for i, w := range weights {
		scaled, err := SafeMul(total, w)
		if err != nil {
			return nil, math.Int{}, err
		}
		shares[i] = scaled.Quo(sum)
		paid = paid.Add(shares[i])
	}
	return shares, total.Sub(paid), nil
}

// AccrueYield returns balance * rate * elapsed / (RateDenominator * SecondsPerYear),
// truncated. Rate is in basis points per year and elapsed in seconds.
func AccrueYield(balance math.Int, rate uint64, elapsed int64) (math.Int, error) {
	if elapsed <= 0 || rate == 0 || !balance.IsPositive() {
		return math.ZeroInt(), nil
	}
	scaled, err := SafeMul(balance, math.NewIntFromUint64(rate))
	if err != nil {
		return math.Int{}, err
	}
	if scaled, err = SafeMul(scaled, math.NewInt(elapsed)); err != nil {
		return math.Int{}, err
	}
	return scaled.Quo(math.NewInt(RateDenominator * SecondsPerYear)), nil
}
