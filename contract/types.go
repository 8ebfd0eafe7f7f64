package contract

import (
	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Amount is an ENF token amount in base units (milli-ENF).
type Amount int64

// TokenScale defines how many base units make one whole ENF.
const TokenScale = 1000

// DepositType is one staking tier in the catalog. Entries are mutable in
// place by index; Duration == 0 marks a tombstone that stays addressable but
// can never back a new deposit.
type DepositType struct {
	Apr                       uint64
	Penalty                   uint64
	Duration                  int64
	CanUnstakePriorMaturation bool
	MinimumAmountToStake      Amount
	Name                      string
}

// IsDeleted reports the tombstone state of a catalog entry.
func (dt *DepositType) IsDeleted() bool {
	return dt.Duration == 0
}

// Deposit is one live stake. The deposit type is snapshotted at stake time so
// later catalog edits never change an existing deposit's economics.
type Deposit struct {
	ID                uint64
	Owner             sdk.Address
	Amount            Amount
	Reward            Amount
	StartTimestamp    int64
	MaturityTimestamp int64
	DepositType       DepositType
}

// VestingPeriod is one interval of a curve: duration 0 marks the TGE tranche,
// a zero percentage marks a pure cliff, a positive pair is a linear ramp.
type VestingPeriod struct {
	Duration int64
	Percent  uint64
}

// VestingCurve is a seeded named unlock curve plus its token cap.
type VestingCurve struct {
	Name    string
	Periods []VestingPeriod
	Cap     Amount
}

// TgePercent returns the instantaneous unlock share, 0 when the curve has no
// zero-duration head entry.
func (c *VestingCurve) TgePercent() uint64 {
	if len(c.Periods) > 0 && c.Periods[0].Duration == 0 {
		return c.Periods[0].Percent
	}
	return 0
}

// VestingCap tracks cap consumption for one curve.
type VestingCap struct {
	TotalAmountOfTokens Amount
	CurrentAmount       Amount
}

// VestingSchedule is one beneficiary's allocation under one curve. At most
// one schedule exists per (beneficiary, curve) pair; its id is derived from
// that pair. A schedule with VestedAmount == 0 does not exist.
type VestingSchedule struct {
	Beneficiary    sdk.Address
	VestingName    string
	VestedAmount   Amount
	ReleasedAmount Amount
	StakedAmount   Amount
	IsEnabled      bool
}

// ContractConfig is the single persisted configuration record.
type ContractConfig struct {
	Owner           sdk.Address
	TokenContract   sdk.Address
	VestingContract sdk.Address
	Paused          bool
}

// Role gates privileged entrypoints. The owner passes every check.
type Role uint8

const (
	RoleDepositTypes Role = 1
	RoleRewardPool   Role = 2
	RolePause        Role = 3
	RoleSetters      Role = 4
	RoleSchedules    Role = 5
	RoleEnable       Role = 6
	RoleDates        Role = 7
)

// String prints the role as lower-case text for events and logs.
// Example payload: RolePause.String()
func (r Role) String() string {
	switch r {
	case RoleDepositTypes:
		return "deposit_types"
	case RoleRewardPool:
		return "reward_pool"
	case RolePause:
		return "pause"
	case RoleSetters:
		return "setters"
	case RoleSchedules:
		return "schedules"
	case RoleEnable:
		return "enable"
	case RoleDates:
		return "dates"
	default:
		return "unknown"
	}
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
