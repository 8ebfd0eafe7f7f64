package contract

import (
	"strconv"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// -----------------------------------------------------------------------------
// Deposit Type Catalog
// -----------------------------------------------------------------------------

// depositTypeCount reads the catalog length (tombstoned entries included).
func depositTypeCount() uint64 {
	return getCount(depositTypeCountKey())
}

// loadDepositType fetches a catalog entry by index, nil when out of range.
func loadDepositType(index uint64) *DepositType {
	if index >= depositTypeCount() {
		return nil
	}
	ptr := sdk.StateGetObject(depositTypeKey(index))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return mustDecode(decodeDepositType(*ptr), "deposit type")
}

// saveDepositType writes a catalog entry in place and grows the count when
// the index appends at the end.
func saveDepositType(index uint64, dt *DepositType) {
	sdk.StateSetObject(depositTypeKey(index), encodeDepositType(dt))
	if index >= depositTypeCount() {
		setCount(depositTypeCountKey(), index+1)
	}
}

// -----------------------------------------------------------------------------
// Deposits
// -----------------------------------------------------------------------------

// nextDepositID hands out the per-owner sequential id and bumps the counter.
func nextDepositID(owner sdk.Address) uint64 {
	key := depositCounterKey(owner)
	id := getCount(key)
	setCount(key, id+1)
	return id
}

// depositCount reads how many ids were ever issued for an owner.
func depositCount(owner sdk.Address) uint64 {
	return getCount(depositCounterKey(owner))
}

// loadDeposit returns a live deposit or nil when the slot was freed.
func loadDeposit(owner sdk.Address, id uint64) *Deposit {
	ptr := sdk.StateGetObject(depositKey(owner, id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return mustDecode(decodeDeposit(*ptr), "deposit")
}

// saveDeposit persists a deposit record.
func saveDeposit(d *Deposit) {
	sdk.StateSetObject(depositKey(d.Owner, d.ID), encodeDeposit(d))
}

// deleteDeposit frees the slot; pagination treats the missing key as gone.
func deleteDeposit(owner sdk.Address, id uint64) {
	sdk.StateDeleteObject(depositKey(owner, id))
}

// -----------------------------------------------------------------------------
// Reward Pool
// -----------------------------------------------------------------------------

// rewardPoolBalance reads the shared pool scalar.
func rewardPoolBalance() Amount {
	ptr := sdk.StateGetObject(rewardPoolKey())
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("failed to decode reward pool")
	}
	return Amount(n)
}

// setRewardPoolBalance stores the pool scalar back as decimal text.
func setRewardPoolBalance(v Amount) {
	sdk.StateSetObject(rewardPoolKey(), strconv.FormatInt(int64(v), 10))
}

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}
