package contract

import (
	"github.com/pkg/errors"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Engine-level sentinels, grouped by cause. Entrypoints turn any non-nil
// error into sdk.Abort so the host reverts the transaction; internal callers
// (the vesting engine invoking the staking ledger) can inspect them first.
var (
	// authorization
	errNotAuthorized    = errors.New("caller not authorized")
	errBeneficiaryStake = errors.New("staking for a beneficiary is reserved to the vesting collaborator on pool tiers 0 and 1")

	// admission / validation
	errEmptyAddress        = errors.New("empty address")
	errUnknownDepositType  = errors.New("deposit type does not exist")
	errDepositTypeDeleted  = errors.New("deposit type was deleted")
	errBelowMinimumStake   = errors.New("amount below the deposit type minimum")
	errMaturityOverflow    = errors.New("maturity timestamp overflows")
	errUnknownCurve        = errors.New("vesting curve does not exist")
	errCapExceeded         = errors.New("vesting cap exceeded for curve")
	errBatchMismatch       = errors.New("batch entries malformed")
	errInvalidAmount       = errors.New("amount must be positive")
	errDepositTypeGap      = errors.New("deposit type index beyond catalog end")
	errDepositTypeBadName  = errors.New("deposit type name invalid")
	errRewardOutOfRange    = errors.New("computed reward does not fit the amount range")

	// state conflict
	errContractPaused    = errors.New("contract is paused")
	errRewardPoolDrained = errors.New("reward pool cannot cover this reservation")
	errDepositNotFound   = errors.New("deposit not found")
	errEarlyUnstake      = errors.New("deposit type forbids unstaking before maturity")
	errScheduleExists    = errors.New("schedule already exists for beneficiary and curve")
	errScheduleNotFound  = errors.New("vesting schedule not found")
	errScheduleDisabled  = errors.New("vesting schedule is disabled")
	errAlreadySet        = errors.New("timestamp already set")
	errStartUnset        = errors.New("start timestamp not set")
	errNothingToClaim    = errors.New("nothing to claim")
	errWindowClosed      = errors.New("claim-and-stake window is closed")

	// downstream failure
	errTokenTransfer = errors.New("token transfer rejected")
)

// abortOnErr is the entrypoint boundary: internal errors become host aborts.
func abortOnErr(err error) {
	if err != nil {
		sdk.Abort(err.Error())
	}
}
