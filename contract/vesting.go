package contract

import (
	"strconv"
	"strings"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Vesting engine. Schedules pin a beneficiary to one of the seeded curves;
// the global vesting start is the single clock every curve walks from.
// Claimed and auto-staked tokens both count against the vested total, so a
// schedule can never pay out more than it holds.

// releasableAmount is vested-so-far minus everything already consumed.
func releasableAmount(s *VestingSchedule, periods []VestingPeriod, start int64, now int64) Amount {
	vested := vestedAtTime(s.VestedAmount, periods, start, now)
	consumed := s.ReleasedAmount + s.StakedAmount
	if vested <= consumed {
		return 0
	}
	return vested - consumed
}

// loadScheduleFor resolves the (beneficiary, curve) pair or errors.
func loadScheduleFor(beneficiary sdk.Address, curveName string) (*VestingSchedule, []VestingPeriod, error) {
	periods := loadCurvePeriods(curveName)
	if periods == nil {
		return nil, nil, errUnknownCurve
	}
	s := loadSchedule(scheduleID(beneficiary, curveName))
	if s == nil {
		return nil, nil, errScheduleNotFound
	}
	return s, periods, nil
}

// CreateVestingSchedules admits a batch of allocations, all or nothing. Every
// entry is validated against the curve caps and existing schedules before a
// single record is written; one bad entry rejects the whole batch.
// Example payload: CreateVestingSchedules(strptr("hive:alice|SEED|100000;hive:bob|SEED|50000"))
//
//go:wasmexport vesting_schedules_create
func CreateVestingSchedules(payload *string) *string {
	requireRole(RoleSchedules)

	entries := splitBatch(payload, 3)
	schedules := make([]VestingSchedule, 0, len(entries))
	capDelta := map[string]Amount{}
	seen := map[string]bool{}

	for _, parts := range entries {
		beneficiary := parseAddressField(parts[0])
		curveName := strings.TrimSpace(parts[1])
		amount := parseAmountField(parts[2])

		if loadCurvePeriods(curveName) == nil {
			abortOnErr(errUnknownCurve)
		}
		id := scheduleID(beneficiary, curveName)
		if seen[id] || loadSchedule(id) != nil {
			abortOnErr(errScheduleExists)
		}
		seen[id] = true

		cap := loadVestingCap(curveName)
		if cap == nil {
			abortOnErr(errUnknownCurve)
		}
		capDelta[curveName] += amount
		if cap.CurrentAmount+capDelta[curveName] > cap.TotalAmountOfTokens {
			abortOnErr(errCapExceeded)
		}

		schedules = append(schedules, VestingSchedule{
			Beneficiary:  beneficiary,
			VestingName:  curveName,
			VestedAmount: amount,
			IsEnabled:    true,
		})
	}

	for i := range schedules {
		s := &schedules[i]
		saveSchedule(s)
		addScheduleToIndex(s.Beneficiary, s.VestingName)
		emitScheduleEvent(s)
	}
	for curveName, delta := range capDelta {
		cap := loadVestingCap(curveName)
		cap.CurrentAmount += delta
		saveVestingCap(curveName, cap)
	}
	return strptr(strconv.Itoa(len(schedules)))
}

// ClaimTokens pays out up to the requested amount of the sender's releasable
// balance. Overshooting requests are clamped, not rejected, so wallets can
// always send the full schedule total to sweep whatever is unlocked. The
// pause flag gates staking only; vested claims stay available.
// Example payload: ClaimTokens(strptr("SEED|100000"))
//
//go:wasmexport vesting_claim
func ClaimTokens(payload *string) *string {
	requireInitialized()
	cfg := loadContractConfig()

	parts := requireFields(payload, 2, "curve|amount")
	curveName := strings.TrimSpace(parts[0])
	requested := parseAmountField(parts[1])
	sender := getSenderAddress()

	start := loadTimestamp(vestingStartKey())
	if start == 0 {
		abortOnErr(errStartUnset)
	}
	s, periods, err := loadScheduleFor(sender, curveName)
	abortOnErr(err)
	if !s.IsEnabled {
		abortOnErr(errScheduleDisabled)
	}

	releasable := releasableAmount(s, periods, start, nowUnix())
	if releasable <= 0 {
		abortOnErr(errNothingToClaim)
	}
	paid := requested
	if paid > releasable {
		emitOvershootEvent(s, requested, releasable)
		paid = releasable
	}

	s.ReleasedAmount += paid
	saveSchedule(s)
	abortOnErr(tokenTransfer(cfg, sender, paid))
	emitClaimEvent(s, paid)
	return strptr(strconv.FormatInt(int64(paid), 10))
}

// ClaimAndStakeTokens routes the sender's TGE tranche straight into one of
// the boost pool tiers instead of paying it out. Only possible once per
// schedule, only while the window is open, and only while nothing was claimed
// yet. A schedule with nothing to route is skipped, not failed, so batched
// wallet flows keep going.
// Example payload: ClaimAndStakeTokens(strptr("PUBLIC_SALE"))
//
//go:wasmexport vesting_claim_stake
func ClaimAndStakeTokens(payload *string) *string {
	requireInitialized()
	cfg := loadContractConfig()
	abortOnErr(requireNotPaused(cfg))

	curveName := unwrapPayload(payload)
	sender := getSenderAddress()
	now := nowUnix()

	csStart := loadTimestamp(claimStakeStartKey())
	if csStart == 0 {
		abortOnErr(errStartUnset)
	}
	if now < csStart {
		abortOnErr(errWindowClosed)
	}
	vStart := loadTimestamp(vestingStartKey())
	if vStart != 0 && now > vStart+ClaimAndStakeWindow {
		abortOnErr(errWindowClosed)
	}

	s, periods, err := loadScheduleFor(sender, curveName)
	abortOnErr(err)
	if !s.IsEnabled {
		abortOnErr(errScheduleDisabled)
	}

	tgePercent := uint64(0)
	if len(periods) > 0 && periods[0].Duration == 0 {
		tgePercent = periods[0].Percent
	}
	tge, ok := mulDiv(s.VestedAmount, tgePercent, FullAllocation)
	if !ok {
		abortOnErr(errRewardOutOfRange)
	}

	switch {
	case tge == 0:
		emitSkipEvent(s, "no_tge")
		return strptr("skipped")
	case s.StakedAmount > 0:
		emitSkipEvent(s, "already_staked")
		return strptr("skipped")
	case s.ReleasedAmount > 0:
		emitSkipEvent(s, "already_claimed")
		return strptr("skipped")
	}

	tier := PoolTierPostStart
	if vStart == 0 || now <= vStart {
		tier = PoolTierPreStart
	}
	// principal stays in contract custody, no token movement here
	d, err := createDeposit(sender, tge, tier, now)
	abortOnErr(err)

	s.StakedAmount = tge
	saveSchedule(s)
	emitClaimStakeEvent(s, d.ID, tier, tge)
	return strptr("staked|" + strconv.FormatUint(d.ID, 10))
}

// GetReleaseAmount previews what a beneficiary could claim right now.
// Example payload: GetReleaseAmount(strptr("hive:alice|SEED"))
//
//go:wasmexport vesting_release_amount
func GetReleaseAmount(payload *string) *string {
	requireInitialized()
	parts := requireFields(payload, 2, "beneficiary|curve")
	beneficiary := parseAddressField(parts[0])
	curveName := strings.TrimSpace(parts[1])

	start := loadTimestamp(vestingStartKey())
	s, periods, err := loadScheduleFor(beneficiary, curveName)
	abortOnErr(err)
	releasable := releasableAmount(s, periods, start, nowUnix())
	return strptr(strconv.FormatInt(int64(releasable), 10))
}

// GetVestingSchedules lists every schedule a beneficiary holds.
// Example payload: GetVestingSchedules(strptr("hive:alice"))
//
//go:wasmexport vesting_schedules_get
func GetVestingSchedules(payload *string) *string {
	requireInitialized()
	beneficiary := parseAddressField(unwrapPayload(payload))
	names := listScheduleNames(beneficiary)
	entries := make([]string, 0, len(names))
	for _, name := range names {
		if s := loadSchedule(scheduleID(beneficiary, name)); s != nil {
			entries = append(entries, encodeVestingSchedule(s))
		}
	}
	return strptr(strings.Join(entries, ";"))
}

// GetVestingCurves dumps the seeded catalog with cap consumption.
//
//go:wasmexport vesting_curves_get
func GetVestingCurves(_ *string) *string {
	requireInitialized()
	entries := make([]string, 0, len(curveCatalog))
	for i := range curveCatalog {
		name := curveCatalog[i].Name
		periods := loadCurvePeriods(name)
		cap := loadVestingCap(name)
		if periods == nil || cap == nil {
			continue
		}
		entries = append(entries, name+"|"+encodeCurvePeriods(periods)+"|"+encodeVestingCap(cap))
	}
	return strptr(strings.Join(entries, ";"))
}

// SetVestingStartDate starts the global vesting clock, exactly once.
// Example payload: SetVestingStartDate(strptr("1767225600"))
//
//go:wasmexport vesting_start_set
func SetVestingStartDate(payload *string) *string {
	requireRole(RoleDates)
	at := parseTimestampField(unwrapPayload(payload))
	abortOnErr(storeTimestampOnce(vestingStartKey(), at))
	emitDateEvent("vst", at)
	return strptr("ok")
}

// SetClaimAndStakeStartDate opens the claim-and-stake window, exactly once.
// Example payload: SetClaimAndStakeStartDate(strptr("1764633600"))
//
//go:wasmexport claim_stake_start_set
func SetClaimAndStakeStartDate(payload *string) *string {
	requireRole(RoleDates)
	at := parseTimestampField(unwrapPayload(payload))
	abortOnErr(storeTimestampOnce(claimStakeStartKey(), at))
	emitDateEvent("css", at)
	return strptr("ok")
}

// SetVestingScheduleEnableStatus flips the enable flag on a batch of
// schedules. Disabled schedules hold their funds but refuse claims.
// Example payload: SetVestingScheduleEnableStatus(strptr("hive:alice|SEED|0"))
//
//go:wasmexport vesting_schedules_enable
func SetVestingScheduleEnableStatus(payload *string) *string {
	requireRole(RoleEnable)

	entries := splitBatch(payload, 3)
	updated := make([]*VestingSchedule, 0, len(entries))
	flags := make([]bool, 0, len(entries))
	for _, parts := range entries {
		beneficiary := parseAddressField(parts[0])
		curveName := strings.TrimSpace(parts[1])
		enabled := parseFlagField(parts[2])
		s := loadSchedule(scheduleID(beneficiary, curveName))
		if s == nil {
			abortOnErr(errScheduleNotFound)
		}
		updated = append(updated, s)
		flags = append(flags, enabled)
	}
	for i, s := range updated {
		s.IsEnabled = flags[i]
		saveSchedule(s)
		emitEnableEvent(s)
	}
	return strptr(strconv.Itoa(len(updated)))
}
