package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

func createSchedule(t *testing.T, beneficiary, curve string, amount Amount) {
	t.Helper()
	as(ownerAddr, baseTime)
	res := CreateVestingSchedules(pipe(beneficiary, curve, amt(amount)))
	require.Equal(t, "1", *res)
}

func setVestingStart(t *testing.T, at int64) {
	t.Helper()
	as(ownerAddr, baseTime)
	SetVestingStartDate(strptr(amt(Amount(at))))
}

func setClaimStakeStart(t *testing.T, at int64) {
	t.Helper()
	as(ownerAddr, baseTime)
	SetClaimAndStakeStartDate(strptr(amt(Amount(at))))
}

func TestCreateSchedulesValidation(t *testing.T) {
	setupContract(t)

	as(ownerAddr, baseTime)
	mustAbort(t, "curve does not exist", func() {
		CreateVestingSchedules(pipe(aliceAddr, "NOPE", "1000"))
	})
	mustAbort(t, "already exists", func() {
		CreateVestingSchedules(strptr(aliceAddr + "|SEED|1000;" + aliceAddr + "|SEED|2000"))
	})

	createSchedule(t, aliceAddr, "SEED", 1000)
	as(ownerAddr, baseTime)
	mustAbort(t, "already exists", func() {
		CreateVestingSchedules(pipe(aliceAddr, "SEED", "500"))
	})

	// same beneficiary may hold schedules on different curves
	createSchedule(t, aliceAddr, "TEAM", 1000)
	res := GetVestingSchedules(strptr(aliceAddr))
	assert.Len(t, strings.Split(*res, ";"), 2)
}

func TestCreateSchedulesCapIsAllOrNothing(t *testing.T) {
	setupContract(t)

	// SEED cap is 20M whole tokens; the pair overshoots it together
	as(ownerAddr, baseTime)
	mustAbort(t, "cap exceeded", func() {
		CreateVestingSchedules(strptr(
			aliceAddr + "|SEED|" + amt(15_000_000*TokenScale) + ";" +
				bobAddr + "|SEED|" + amt(6_000_000*TokenScale)))
	})

	// nothing from the batch landed, not even the fitting first entry
	assert.Nil(t, loadSchedule(scheduleID(aliceAddr, "SEED")))
	assert.Nil(t, loadSchedule(scheduleID(bobAddr, "SEED")))
	cap := loadVestingCap("SEED")
	require.NotNil(t, cap)
	assert.Equal(t, Amount(0), cap.CurrentAmount)
}

func TestClaimRequiresRunningClock(t *testing.T) {
	setupContract(t)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)

	as(aliceAddr, baseTime)
	mustAbort(t, "not set", func() {
		ClaimTokens(pipe("PUBLIC_SALE", "100"))
	})

	setVestingStart(t, baseTime+10*SecondsPerDay)
	as(aliceAddr, baseTime)
	mustAbort(t, "nothing to claim", func() {
		ClaimTokens(pipe("PUBLIC_SALE", "100"))
	})
}

func TestClaimFollowsUnlockCurve(t *testing.T) {
	tt := setupContract(t)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setVestingStart(t, baseTime)

	// overshooting request clamps to the 25% TGE tranche
	as(aliceAddr, baseTime)
	res := ClaimTokens(pipe("PUBLIC_SALE", "99999"))
	assert.Equal(t, "250", *res)
	assert.Equal(t, Amount(1_000_000+250), tt.balances[aliceAddr])

	// halfway through the ramp another 375 is unlocked
	as(aliceAddr, baseTime+4*month)
	rel := GetReleaseAmount(pipe(aliceAddr, "PUBLIC_SALE"))
	assert.Equal(t, "375", *rel)
	res = ClaimTokens(pipe("PUBLIC_SALE", "375"))
	assert.Equal(t, "375", *res)

	// sweep the rest after the curve completes
	as(aliceAddr, baseTime+9*month)
	res = ClaimTokens(pipe("PUBLIC_SALE", "99999"))
	assert.Equal(t, "375", *res)
	assert.Equal(t, Amount(1_000_000+1000), tt.balances[aliceAddr], "never more than the schedule total")

	as(aliceAddr, baseTime+24*month)
	mustAbort(t, "nothing to claim", func() {
		ClaimTokens(pipe("PUBLIC_SALE", "1"))
	})
}

func TestClaimPartialRequestsAccumulate(t *testing.T) {
	setupContract(t)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setVestingStart(t, baseTime)

	as(aliceAddr, baseTime)
	res := ClaimTokens(pipe("PUBLIC_SALE", "100"))
	assert.Equal(t, "100", *res)
	res = ClaimTokens(pipe("PUBLIC_SALE", "100"))
	assert.Equal(t, "100", *res)

	s := loadSchedule(scheduleID(aliceAddr, "PUBLIC_SALE"))
	require.NotNil(t, s)
	assert.Equal(t, Amount(200), s.ReleasedAmount)

	rel := GetReleaseAmount(pipe(aliceAddr, "PUBLIC_SALE"))
	assert.Equal(t, "50", *rel)
}

func TestClaimDisabledSchedule(t *testing.T) {
	setupContract(t)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setVestingStart(t, baseTime)

	as(ownerAddr, baseTime)
	SetVestingScheduleEnableStatus(pipe(aliceAddr, "PUBLIC_SALE", "0"))

	as(aliceAddr, baseTime)
	mustAbort(t, "disabled", func() {
		ClaimTokens(pipe("PUBLIC_SALE", "100"))
	})

	as(ownerAddr, baseTime)
	SetVestingScheduleEnableStatus(pipe(aliceAddr, "PUBLIC_SALE", "1"))
	as(aliceAddr, baseTime)
	res := ClaimTokens(pipe("PUBLIC_SALE", "100"))
	assert.Equal(t, "100", *res)
}

func TestClaimAbortsWhenTokenRejects(t *testing.T) {
	tt := setupContract(t)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setVestingStart(t, baseTime)

	// the host discards all writes on abort; the snapshot emulates that
	snap := sdk.Mock.Snapshot()
	tt.failNext = true
	as(aliceAddr, baseTime)
	mustAbort(t, "token transfer rejected", func() {
		ClaimTokens(pipe("PUBLIC_SALE", "100"))
	})
	sdk.Mock.Restore(snap)

	s := loadSchedule(scheduleID(aliceAddr, "PUBLIC_SALE"))
	require.NotNil(t, s)
	assert.Equal(t, Amount(0), s.ReleasedAmount, "nothing booked as released")
}

func TestClaimAndStakeBeforeVestingStart(t *testing.T) {
	setupContract(t)
	fundPool(t, 1000)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setClaimStakeStart(t, baseTime)
	setVestingStart(t, baseTime+10*SecondsPerDay)

	as(aliceAddr, baseTime+SecondsPerDay)
	res := ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
	assert.Equal(t, "staked|0", *res)

	d := loadDeposit(aliceAddr, 0)
	require.NotNil(t, d)
	assert.Equal(t, Amount(250), d.Amount, "the TGE tranche")
	assert.Equal(t, "TGE Boost Early", d.DepositType.Name, "pre-start boost tier")

	s := loadSchedule(scheduleID(aliceAddr, "PUBLIC_SALE"))
	require.NotNil(t, s)
	assert.Equal(t, Amount(250), s.StakedAmount)

	// once per schedule
	res = ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
	assert.Equal(t, "skipped", *res)
}

func TestClaimAndStakeAfterVestingStart(t *testing.T) {
	setupContract(t)
	fundPool(t, 1000)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setClaimStakeStart(t, baseTime)
	setVestingStart(t, baseTime)

	as(aliceAddr, baseTime+SecondsPerDay)
	res := ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
	assert.Equal(t, "staked|0", *res)

	d := loadDeposit(aliceAddr, 0)
	require.NotNil(t, d)
	assert.Equal(t, "TGE Boost Late", d.DepositType.Name, "post-start boost tier")
}

func TestClaimAndStakeWindow(t *testing.T) {
	setupContract(t)
	fundPool(t, 1000)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)

	as(aliceAddr, baseTime)
	mustAbort(t, "not set", func() {
		ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
	})

	setClaimStakeStart(t, baseTime+5*SecondsPerDay)
	setVestingStart(t, baseTime+10*SecondsPerDay)

	as(aliceAddr, baseTime)
	mustAbort(t, "window", func() {
		ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
	})

	as(aliceAddr, baseTime+10*SecondsPerDay+ClaimAndStakeWindow+1)
	mustAbort(t, "window", func() {
		ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
	})
}

func TestClaimAndStakeSkipsAfterClaim(t *testing.T) {
	setupContract(t)
	fundPool(t, 1000)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setClaimStakeStart(t, baseTime)
	setVestingStart(t, baseTime)

	as(aliceAddr, baseTime)
	ClaimTokens(pipe("PUBLIC_SALE", "100"))

	res := ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
	assert.Equal(t, "skipped", *res)
	s := loadSchedule(scheduleID(aliceAddr, "PUBLIC_SALE"))
	assert.Equal(t, Amount(0), s.StakedAmount)
}

func TestClaimAndStakeSkipsWithoutTge(t *testing.T) {
	setupContract(t)
	fundPool(t, 1000)
	createSchedule(t, aliceAddr, "TEAM", 1000)
	setClaimStakeStart(t, baseTime)

	as(aliceAddr, baseTime+SecondsPerDay)
	res := ClaimAndStakeTokens(strptr("TEAM"))
	assert.Equal(t, "skipped", *res)
}

func TestStakedTrancheStaysConsumed(t *testing.T) {
	setupContract(t)
	fundPool(t, 1000)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setClaimStakeStart(t, baseTime)
	setVestingStart(t, baseTime)

	as(aliceAddr, baseTime)
	ClaimAndStakeTokens(strptr("PUBLIC_SALE"))

	// the staked 250 never becomes claimable again
	as(aliceAddr, baseTime+9*month)
	res := ClaimTokens(pipe("PUBLIC_SALE", "99999"))
	assert.Equal(t, "750", *res)
	mustAbort(t, "nothing to claim", func() {
		ClaimTokens(pipe("PUBLIC_SALE", "1"))
	})
}

func TestStartDatesAreWriteOnce(t *testing.T) {
	setupContract(t)
	setVestingStart(t, baseTime)
	as(ownerAddr, baseTime)
	mustAbort(t, "already set", func() {
		SetVestingStartDate(strptr(amt(Amount(baseTime + 100))))
	})

	setClaimStakeStart(t, baseTime)
	mustAbort(t, "already set", func() {
		SetClaimAndStakeStartDate(strptr(amt(Amount(baseTime + 100))))
	})
}

func TestEnableStatusBatch(t *testing.T) {
	setupContract(t)
	createSchedule(t, aliceAddr, "SEED", 1000)
	createSchedule(t, bobAddr, "SEED", 1000)

	as(ownerAddr, baseTime)
	res := SetVestingScheduleEnableStatus(strptr(
		aliceAddr + "|SEED|0;" + bobAddr + "|SEED|0"))
	assert.Equal(t, "2", *res)
	assert.False(t, loadSchedule(scheduleID(aliceAddr, "SEED")).IsEnabled)
	assert.False(t, loadSchedule(scheduleID(bobAddr, "SEED")).IsEnabled)

	mustAbort(t, "not found", func() {
		SetVestingScheduleEnableStatus(pipe("hive:ghost", "SEED", "1"))
	})
}

func TestPauseDoesNotBlockClaims(t *testing.T) {
	setupContract(t)
	createSchedule(t, aliceAddr, "PUBLIC_SALE", 1000)
	setVestingStart(t, baseTime)

	as(ownerAddr, baseTime)
	Pause(nil)

	as(aliceAddr, baseTime)
	res := ClaimTokens(pipe("PUBLIC_SALE", "100"))
	assert.Equal(t, "100", *res, "vested funds stay reachable while staking is halted")
}

func TestGetVestingCurvesListsCatalog(t *testing.T) {
	setupContract(t)
	res := GetVestingCurves(nil)
	entries := strings.Split(*res, ";")
	assert.Len(t, entries, 10)
	assert.True(t, strings.HasPrefix(entries[0], "SEED|"))
}

func TestInitRunsOnce(t *testing.T) {
	setupContract(t)
	as(ownerAddr, baseTime)
	mustAbort(t, "already initialized", func() {
		ContractInit(strptr(tokenContractID))
	})
}
