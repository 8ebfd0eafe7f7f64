package contract

import (
	"strconv"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Events are terse pipe-delimited log lines picked up by off-chain indexers.
// Tags are two letters, fields are key:value. Keep lines short; the host
// charges per logged byte.

func fmtAmount(v Amount) string { return strconv.FormatInt(int64(v), 10) }

func fmtU64(v uint64) string { return strconv.FormatUint(v, 10) }

func fmtI64(v int64) string { return strconv.FormatInt(v, 10) }

// emitInitEvent announces the one-time initialization.
func emitInitEvent(cfg *ContractConfig) {
	sdk.Log("in|own:" + cfg.Owner.String() + "|tok:" + cfg.TokenContract.String())
}

// emitStakeEvent fires after a deposit was admitted and funded.
func emitStakeEvent(d *Deposit) {
	sdk.Log("st|id:" + fmtU64(d.ID) +
		"|own:" + d.Owner.String() +
		"|amt:" + fmtAmount(d.Amount) +
		"|rwd:" + fmtAmount(d.Reward) +
		"|mat:" + fmtI64(d.MaturityTimestamp))
}

// emitUnstakeEvent fires after a deposit was settled and freed.
func emitUnstakeEvent(d *Deposit, payout Amount, penalty Amount, early bool) {
	sdk.Log("us|id:" + fmtU64(d.ID) +
		"|own:" + d.Owner.String() +
		"|out:" + fmtAmount(payout) +
		"|pen:" + fmtAmount(penalty) +
		"|erl:" + boolToFlag(early))
}

// emitRewardPoolEvent records a pool top-up, withdrawal or penalty credit.
func emitRewardPoolEvent(op string, delta Amount, balance Amount) {
	sdk.Log("rp|op:" + op + "|amt:" + fmtAmount(delta) + "|bal:" + fmtAmount(balance))
}

// emitDepositTypeEvent records a catalog append, edit or tombstone.
func emitDepositTypeEvent(index uint64, dt *DepositType) {
	sdk.Log("dt|idx:" + fmtU64(index) +
		"|apr:" + fmtU64(dt.Apr) +
		"|pen:" + fmtU64(dt.Penalty) +
		"|dur:" + fmtI64(dt.Duration) +
		"|del:" + boolToFlag(dt.IsDeleted()))
}

// emitScheduleEvent fires once per schedule in an admitted batch.
func emitScheduleEvent(s *VestingSchedule) {
	sdk.Log("vc|ben:" + s.Beneficiary.String() +
		"|cur:" + s.VestingName +
		"|amt:" + fmtAmount(s.VestedAmount))
}

// emitClaimEvent fires after a successful claim payout.
func emitClaimEvent(s *VestingSchedule, paid Amount) {
	sdk.Log("cl|ben:" + s.Beneficiary.String() +
		"|cur:" + s.VestingName +
		"|amt:" + fmtAmount(paid) +
		"|rel:" + fmtAmount(s.ReleasedAmount))
}

// emitOvershootEvent flags a request that was clamped to the releasable rest.
func emitOvershootEvent(s *VestingSchedule, requested Amount, clamped Amount) {
	sdk.Log("ov|ben:" + s.Beneficiary.String() +
		"|cur:" + s.VestingName +
		"|req:" + fmtAmount(requested) +
		"|amt:" + fmtAmount(clamped))
}

// emitClaimStakeEvent fires when the TGE tranche was routed into a deposit.
func emitClaimStakeEvent(s *VestingSchedule, depositID uint64, tier uint64, amount Amount) {
	sdk.Log("cs|ben:" + s.Beneficiary.String() +
		"|cur:" + s.VestingName +
		"|dep:" + fmtU64(depositID) +
		"|tir:" + fmtU64(tier) +
		"|amt:" + fmtAmount(amount))
}

// emitSkipEvent records a claim-and-stake that had nothing left to route.
func emitSkipEvent(s *VestingSchedule, reason string) {
	sdk.Log("sk|ben:" + s.Beneficiary.String() +
		"|cur:" + s.VestingName +
		"|why:" + reason)
}

// emitEnableEvent records a schedule enable flag flip.
func emitEnableEvent(s *VestingSchedule) {
	sdk.Log("en|ben:" + s.Beneficiary.String() +
		"|cur:" + s.VestingName +
		"|on:" + boolToFlag(s.IsEnabled))
}

// emitPauseEvent records the pause flag flip.
func emitPauseEvent(paused bool) {
	sdk.Log("pa|on:" + boolToFlag(paused))
}

// emitConfigEvent records a config field update.
func emitConfigEvent(field string, value string) {
	sdk.Log("cf|" + field + ":" + value)
}

// emitDateEvent records one of the write-once clocks being set.
func emitDateEvent(kind string, at int64) {
	sdk.Log("ts|" + kind + ":" + fmtI64(at))
}

// emitRoleEvent records a capability grant or revocation.
func emitRoleEvent(op string, role Role, addr sdk.Address) {
	sdk.Log("rl|op:" + op + "|rol:" + role.String() + "|adr:" + addr.String())
}
