package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositReward(t *testing.T) {
	dt := &DepositType{Apr: 1000, Duration: SecondsPerYear}
	reward, err := depositReward(10_000, dt)
	require.NoError(t, err)
	assert.Equal(t, Amount(1000), reward, "ten percent over a full year")

	dt.Duration = SecondsPerYear / 2
	reward, err = depositReward(10_000, dt)
	require.NoError(t, err)
	assert.Equal(t, Amount(500), reward, "ten percent over half a year")

	// truncation, never rounding up
	dt.Duration = SecondsPerYear
	reward, err = depositReward(9, dt)
	require.NoError(t, err)
	assert.Equal(t, Amount(0), reward)
}

func TestEarlyUnstakePenalty(t *testing.T) {
	dt := &DepositType{Penalty: 500}
	penalty, err := earlyUnstakePenalty(1000, dt)
	require.NoError(t, err)
	assert.Equal(t, Amount(50), penalty)

	dt.Penalty = 10000
	penalty, err = earlyUnstakePenalty(1000, dt)
	require.NoError(t, err)
	assert.Equal(t, Amount(1000), penalty)
}

func TestVestedAtTimeTgePlusRamp(t *testing.T) {
	// 25% at once, 75% linearly over eight months
	periods := []VestingPeriod{
		{Duration: 0, Percent: 2500},
		{Duration: 8 * month, Percent: 7500},
	}
	start := baseTime
	total := Amount(1000)

	assert.Equal(t, Amount(0), vestedAtTime(total, periods, 0, start), "clock not started")
	assert.Equal(t, Amount(0), vestedAtTime(total, periods, start, start-1))
	assert.Equal(t, Amount(250), vestedAtTime(total, periods, start, start))
	assert.Equal(t, Amount(625), vestedAtTime(total, periods, start, start+4*month))
	assert.Equal(t, Amount(1000), vestedAtTime(total, periods, start, start+8*month))
	assert.Equal(t, Amount(1000), vestedAtTime(total, periods, start, start+20*month))
}

func TestVestedAtTimeCliffBlocksRamp(t *testing.T) {
	// no TGE, a one year cliff, then two years linear
	periods := []VestingPeriod{
		{Duration: 0, Percent: 0},
		{Duration: 12 * month, Percent: 0},
		{Duration: 24 * month, Percent: 10000},
	}
	start := baseTime
	total := Amount(1000)

	assert.Equal(t, Amount(0), vestedAtTime(total, periods, start, start+6*month), "mid-cliff")
	assert.Equal(t, Amount(0), vestedAtTime(total, periods, start, start+12*month), "cliff edge")
	assert.Equal(t, Amount(500), vestedAtTime(total, periods, start, start+24*month), "ramp midpoint")
	assert.Equal(t, Amount(1000), vestedAtTime(total, periods, start, start+36*month))
}

func TestVestedAtTimeMonotonic(t *testing.T) {
	periods := []VestingPeriod{
		{Duration: 0, Percent: 800},
		{Duration: 2 * month, Percent: 0},
		{Duration: 16 * month, Percent: 9200},
	}
	start := baseTime
	total := Amount(777_777)

	prev := Amount(-1)
	for now := start; now <= start+19*month; now += 7 * SecondsPerDay {
		v := vestedAtTime(total, periods, start, now)
		require.GreaterOrEqual(t, v, prev, "unlock curve must never decrease")
		require.LessOrEqual(t, v, total)
		prev = v
	}
	assert.Equal(t, total, prev, "fully vested at the end")
}

func TestSeededCurvesAreValid(t *testing.T) {
	for i := range curveCatalog {
		assert.True(t, validateCurve(&curveCatalog[i]), curveCatalog[i].Name)
	}
}
