package contract

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Shared fixed-point accrual math. Every multiply-then-divide runs in 256-bit
// space so amount*apr*duration can never overflow before the division; all
// divisions truncate toward zero, which may lose dust but can never
// over-release or over-reward.

// mulDiv computes a*b/den with 256-bit intermediates and reports whether the
// truncated result still fits an Amount.
func mulDiv(a Amount, b uint64, den uint64) (Amount, bool) {
	if a < 0 || den == 0 {
		return 0, false
	}
	x := uint256.NewInt(uint64(a))
	x.Mul(x, uint256.NewInt(b))
	x.Div(x, uint256.NewInt(den))
	if !x.IsUint64() || x.Uint64() > uint64(1)<<62 {
		return 0, false
	}
	return Amount(x.Uint64()), true
}

// mulDiv2 computes a*b*c/(d1*d2), used for the partially elapsed ramp
// tranche where the fraction and the percentage divide separately.
func mulDiv2(a Amount, b uint64, c uint64, d1 uint64, d2 uint64) (Amount, bool) {
	if a < 0 || d1 == 0 || d2 == 0 {
		return 0, false
	}
	x := uint256.NewInt(uint64(a))
	x.Mul(x, uint256.NewInt(b))
	x.Mul(x, uint256.NewInt(c))
	den := uint256.NewInt(d1)
	den.Mul(den, uint256.NewInt(d2))
	x.Div(x, den)
	if !x.IsUint64() || x.Uint64() > uint64(1)<<62 {
		return 0, false
	}
	return Amount(x.Uint64()), true
}

// depositReward computes the fixed reward reserved for a new deposit:
// amount * apr * duration / (RateDenominator * SecondsPerYear).
func depositReward(amount Amount, dt *DepositType) (Amount, error) {
	reward, ok := mulDiv2(amount, dt.Apr, uint64(dt.Duration), RateDenominator, SecondsPerYear)
	if !ok {
		return 0, errRewardOutOfRange
	}
	return reward, nil
}

// earlyUnstakePenalty computes amount * penalty / RateDenominator.
func earlyUnstakePenalty(amount Amount, dt *DepositType) (Amount, error) {
	penalty, ok := mulDiv(amount, dt.Penalty, RateDenominator)
	if !ok {
		return 0, errRewardOutOfRange
	}
	if penalty > amount {
		return 0, errors.Wrap(errRewardOutOfRange, "penalty exceeds principal")
	}
	return penalty, nil
}

// vestedAtTime walks the curve's interval list and returns the cumulative
// unlocked amount for a schedule total at the given instant. The walk keeps a
// running elapsed-time cursor from the global vesting start: a fully elapsed
// interval vests completely, the first partially elapsed one vests
// proportionally and terminates the walk (later intervals are unreachable).
func vestedAtTime(total Amount, periods []VestingPeriod, start int64, now int64) Amount {
	if start == 0 || now < start {
		return 0
	}
	vested := Amount(0)
	cursor := start
	for i, p := range periods {
		if i == 0 && p.Duration == 0 {
			// TGE tranche unlocks the moment the clock starts
			tranche, ok := mulDiv(total, p.Percent, FullAllocation)
			if !ok {
				return 0
			}
			vested += tranche
			continue
		}
		if p.Duration <= 0 {
			continue
		}
		if cursor+p.Duration <= now {
			tranche, ok := mulDiv(total, p.Percent, FullAllocation)
			if !ok {
				return 0
			}
			vested += tranche
			cursor += p.Duration
			continue
		}
		elapsed := now - cursor
		if elapsed > 0 && p.Percent > 0 {
			tranche, ok := mulDiv2(total, p.Percent, uint64(elapsed), FullAllocation, uint64(p.Duration))
			if !ok {
				return 0
			}
			vested += tranche
		}
		break
	}
	if vested > total {
		vested = total
	}
	return vested
}
