package contract

import (
	"encoding/hex"

	"lukechampine.com/blake3"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// contractConfigKey holds the single ContractConfig record.
func contractConfigKey() string {
	return string([]byte{kContractConfig})
}

// depositTypeKey stores one catalog entry under its stable index.
func depositTypeKey(index uint64) string {
	var buf [9]byte
	buf[0] = kDepositType
	packU64LEInline(index, buf[1:])
	return string(buf[:])
}

// depositTypeCountKey tracks the catalog length.
func depositTypeCountKey() string {
	return string([]byte{kDepositTypeCount})
}

// depositKey mixes owner address plus sequential id; a missing key is a
// freed slot, so pagination can skip it without sentinels.
func depositKey(owner sdk.Address, id uint64) string {
	addrStr := AddressToString(owner)
	buf := make([]byte, 0, 1+len(addrStr)+8)
	buf = append(buf, kDeposit)
	buf = append(buf, addrStr...)
	buf = packU64LE(id, buf)
	return string(buf)
}

// depositCounterKey holds the per-owner monotonic next deposit id.
func depositCounterKey(owner sdk.Address) string {
	addrStr := AddressToString(owner)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kDepositCounter)
	buf = append(buf, addrStr...)
	return string(buf)
}

// rewardPoolKey is the shared reward pool scalar.
func rewardPoolKey() string {
	return string([]byte{kRewardPool})
}

// vestingCurveKey stores a seeded curve definition by name.
func vestingCurveKey(name string) string {
	buf := make([]byte, 0, 1+len(name))
	buf = append(buf, kVestingCurve)
	buf = append(buf, name...)
	return string(buf)
}

// vestingCapKey tracks cap consumption per curve.
func vestingCapKey(name string) string {
	buf := make([]byte, 0, 1+len(name))
	buf = append(buf, kVestingCap)
	buf = append(buf, name...)
	return string(buf)
}

// scheduleID derives the deterministic id for a (beneficiary, curve) pair.
// It doubles as a foreign key for off-chain indexers, so the derivation must
// never change across the contract's lifetime.
func scheduleID(beneficiary sdk.Address, curveName string) string {
	sum := blake3.Sum256([]byte(AddressToString(beneficiary) + "|" + curveName))
	return hex.EncodeToString(sum[:16])
}

// vestingScheduleKey stores one schedule under its derived id.
func vestingScheduleKey(id string) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kVestingSchedule)
	buf = append(buf, id...)
	return string(buf)
}

// vestingIndexKey lists the curve names a beneficiary holds schedules for.
func vestingIndexKey(beneficiary sdk.Address) string {
	addrStr := AddressToString(beneficiary)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kVestingIndex)
	buf = append(buf, addrStr...)
	return string(buf)
}

// vestingStartKey / claimStakeStartKey are the two write-once timestamps.
func vestingStartKey() string {
	return string([]byte{kVestingStart})
}

func claimStakeStartKey() string {
	return string([]byte{kClaimStakeStart})
}

// roleKey flags a capability grant for one (role, address) pair.
func roleKey(role Role, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 2+len(addrStr))
	buf = append(buf, kRole, byte(role))
	buf = append(buf, addrStr...)
	return string(buf)
}
