package contract

// -----------------------------------------------------------------------------
// Rate & Percentage Scaling
// -----------------------------------------------------------------------------

const (
	// RateDenominator scales basis-point-like rates: apr 1000 means 10%.
	RateDenominator = 10000
	// PercentScale encodes vesting percentages in hundredths of a percent,
	// so a full allocation is 100 * PercentScale = 10000.
	PercentScale = 100
	// FullAllocation is what every curve's percentages must sum to.
	FullAllocation = 100 * PercentScale
)

// -----------------------------------------------------------------------------
// Time Units
// -----------------------------------------------------------------------------

const (
	SecondsPerDay  = 24 * 60 * 60
	SecondsPerYear = 365 * SecondsPerDay
	// ClaimAndStakeWindow is how long after the vesting start the TGE tranche
	// may still be routed into the staking ledger.
	ClaimAndStakeWindow = 30 * SecondsPerDay
)

// -----------------------------------------------------------------------------
// Staking Pool Tiers
// -----------------------------------------------------------------------------

const (
	// PoolTierPreStart is the deposit type used when claim-and-stake fires
	// before the global vesting start.
	PoolTierPreStart = uint64(0)
	// PoolTierPostStart is used once the vesting clock is already running.
	PoolTierPostStart = uint64(1)
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxDepositTypeNameLength limits catalog entry names.
	MaxDepositTypeNameLength = 64
	// MaxBatchSize caps batched schedule creation / enable calls.
	MaxBatchSize = 100
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kContractConfig stores the pipe-encoded ContractConfig record.
	kContractConfig byte = 0x01
	// kDepositType stores catalog entries indexed by position.
	kDepositType byte = 0x02
	// kDepositTypeCount tracks the catalog length (tombstones included).
	kDepositTypeCount byte = 0x03
	// kDeposit houses encoded Deposit records keyed by owner + sequential id.
	kDeposit byte = 0x04
	// kDepositCounter holds the per-owner next deposit id.
	kDepositCounter byte = 0x05
	// kRewardPool is the shared reward pool scalar.
	kRewardPool byte = 0x06
	// kVestingCurve stores seeded curve definitions keyed by name.
	kVestingCurve byte = 0x10
	// kVestingCap tracks per-curve token caps: total + consumed.
	kVestingCap byte = 0x11
	// kVestingSchedule contains encoded VestingSchedule records by id.
	kVestingSchedule byte = 0x12
	// kVestingIndex lists curve names per beneficiary for lookups.
	kVestingIndex byte = 0x13
	// kVestingStart / kClaimStakeStart are the two write-once timestamps.
	kVestingStart    byte = 0x14
	kClaimStakeStart byte = 0x15
	// kRole flags capability grants per (role, address).
	kRole byte = 0x20
)
