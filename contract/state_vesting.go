package contract

import (
	"strconv"
	"strings"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// -----------------------------------------------------------------------------
// Curve Catalog
// -----------------------------------------------------------------------------

// loadCurvePeriods fetches a seeded curve's interval list, nil when unknown.
func loadCurvePeriods(name string) []VestingPeriod {
	ptr := sdk.StateGetObject(vestingCurveKey(name))
	if ptr == nil || *ptr == "" {
		return nil
	}
	periods := decodeCurvePeriods(*ptr)
	if periods == nil {
		sdk.Abort("failed to decode vesting curve " + name)
	}
	return periods
}

// saveCurvePeriods seeds one curve definition (contract_init only).
func saveCurvePeriods(name string, periods []VestingPeriod) {
	sdk.StateSetObject(vestingCurveKey(name), encodeCurvePeriods(periods))
}

// loadVestingCap fetches cap consumption for a curve; a curve without a cap
// record (or a zero total) does not exist for schedule admission.
func loadVestingCap(name string) *VestingCap {
	ptr := sdk.StateGetObject(vestingCapKey(name))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return mustDecode(decodeVestingCap(*ptr), "vesting cap")
}

// saveVestingCap stores cap consumption back.
func saveVestingCap(name string, cap *VestingCap) {
	sdk.StateSetObject(vestingCapKey(name), encodeVestingCap(cap))
}

// -----------------------------------------------------------------------------
// Schedules
// -----------------------------------------------------------------------------

// loadSchedule returns the schedule for a derived id, nil when absent. Real
// schedules always carry VestedAmount > 0, so no extra sentinel is needed.
func loadSchedule(id string) *VestingSchedule {
	ptr := sdk.StateGetObject(vestingScheduleKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return mustDecode(decodeVestingSchedule(*ptr), "vesting schedule")
}

// saveSchedule persists a schedule under its derived id.
func saveSchedule(s *VestingSchedule) {
	id := scheduleID(s.Beneficiary, s.VestingName)
	sdk.StateSetObject(vestingScheduleKey(id), encodeVestingSchedule(s))
}

// addScheduleToIndex appends the curve name to the beneficiary's lookup list.
func addScheduleToIndex(beneficiary sdk.Address, curveName string) {
	key := vestingIndexKey(beneficiary)
	names := listScheduleNames(beneficiary)
	for _, n := range names {
		if n == curveName {
			return
		}
	}
	names = append(names, curveName)
	sdk.StateSetObject(key, strings.Join(names, ","))
}

// listScheduleNames returns every curve the beneficiary holds schedules for.
func listScheduleNames(beneficiary sdk.Address) []string {
	ptr := sdk.StateGetObject(vestingIndexKey(beneficiary))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return strings.Split(*ptr, ",")
}

// -----------------------------------------------------------------------------
// Write-Once Timestamps
// -----------------------------------------------------------------------------

// loadTimestamp reads one of the global clocks; 0 means unset.
func loadTimestamp(key string) int64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("failed to decode timestamp")
	}
	return v
}

// storeTimestampOnce enforces the settable-exactly-once rule.
func storeTimestampOnce(key string, value int64) error {
	if loadTimestamp(key) != 0 {
		return errAlreadySet
	}
	if value <= 0 {
		return errInvalidAmount
	}
	sdk.StateSetObject(key, strconv.FormatInt(value, 10))
	return nil
}
