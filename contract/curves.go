package contract

// The Enfineo vesting curve catalog. Seeded exactly once by contract_init;
// re-seeding is impossible because init aborts on a second call. Durations
// are in seconds, percentages in hundredths of a percent (PercentScale).
//
// Convention: index 0 with duration 0 is the TGE instantaneous unlock; an
// entry with percentage 0 is a pure cliff; a positive pair unlocks linearly
// over its duration. Every curve must sum to FullAllocation.

const month = 30 * SecondsPerDay

// caps are whole ENF here and scaled to base units in seededCurves.
var curveCatalog = []VestingCurve{
	{
		Name: "SEED",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 500},
			{Duration: 3 * month, Percent: 0},
			{Duration: 18 * month, Percent: 9500},
		},
		Cap: 20_000_000,
	},
	{
		Name: "PRIVATE_SALE",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 800},
			{Duration: 2 * month, Percent: 0},
			{Duration: 16 * month, Percent: 9200},
		},
		Cap: 30_000_000,
	},
	{
		Name: "PUBLIC_SALE",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 2500},
			{Duration: 8 * month, Percent: 7500},
		},
		Cap: 20_000_000,
	},
	{
		Name: "STRATEGIC",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 1000},
			{Duration: 3 * month, Percent: 0},
			{Duration: 12 * month, Percent: 9000},
		},
		Cap: 10_000_000,
	},
	{
		Name: "TEAM",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 0},
			{Duration: 12 * month, Percent: 0},
			{Duration: 24 * month, Percent: 10000},
		},
		Cap: 30_000_000,
	},
	{
		Name: "ADVISORS",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 0},
			{Duration: 6 * month, Percent: 0},
			{Duration: 18 * month, Percent: 10000},
		},
		Cap: 10_000_000,
	},
	{
		Name: "MARKETING",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 1500},
			{Duration: 1 * month, Percent: 0},
			{Duration: 13 * month, Percent: 8500},
		},
		Cap: 20_000_000,
	},
	{
		Name: "ECOSYSTEM",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 1000},
			{Duration: 1 * month, Percent: 0},
			{Duration: 22 * month, Percent: 9000},
		},
		Cap: 30_000_000,
	},
	{
		Name: "LIQUIDITY",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 5000},
			{Duration: 6 * month, Percent: 5000},
		},
		Cap: 15_000_000,
	},
	{
		Name: "REWARDS",
		Periods: []VestingPeriod{
			{Duration: 0, Percent: 250},
			{Duration: 1 * month, Percent: 0},
			{Duration: 36 * month, Percent: 9750},
		},
		Cap: 15_000_000,
	},
}

// defaultDepositTypes are the two privileged pool tiers claim-and-stake
// routes into. Index 0 rewards TGE stakes placed before the vesting start,
// index 1 the ones placed after. Further tiers are added by admins.
var defaultDepositTypes = []DepositType{
	{
		Apr:                       2000,
		Penalty:                   1000,
		Duration:                  12 * month,
		CanUnstakePriorMaturation: false,
		MinimumAmountToStake:      0,
		Name:                      "TGE Boost Early",
	},
	{
		Apr:                       1000,
		Penalty:                   1000,
		Duration:                  6 * month,
		CanUnstakePriorMaturation: false,
		MinimumAmountToStake:      0,
		Name:                      "TGE Boost Late",
	},
}

// validateCurve enforces the seed-time invariants: a non-empty period list
// and percentages summing to exactly FullAllocation. A misconfigured curve
// would otherwise silently under- or over-release during the interval walk.
func validateCurve(curve *VestingCurve) bool {
	if curve.Name == "" || len(curve.Periods) == 0 || curve.Cap <= 0 {
		return false
	}
	sum := uint64(0)
	for i, p := range curve.Periods {
		if p.Duration < 0 {
			return false
		}
		if p.Duration == 0 && i > 0 {
			// only the TGE head entry may be instantaneous
			return false
		}
		sum += p.Percent
	}
	return sum == FullAllocation
}
