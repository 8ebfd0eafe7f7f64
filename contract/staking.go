package contract

import (
	"strconv"
	"strings"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Staking ledger. A deposit's reward is computed up front and reserved from
// the shared pool at stake time, so every promised payout is always covered.
// State is written before the token contract is called; a rejected transfer
// aborts and the host rolls all writes back.

// createDeposit runs admission, reserves the reward and records the deposit.
// Funding is the caller's business: stake pulls the principal from the owner,
// claim-and-stake already holds it in custody.
func createDeposit(owner sdk.Address, amount Amount, typeIndex uint64, now int64) (*Deposit, error) {
	if amount <= 0 {
		return nil, errInvalidAmount
	}
	dt := loadDepositType(typeIndex)
	if dt == nil {
		return nil, errUnknownDepositType
	}
	if dt.IsDeleted() {
		return nil, errDepositTypeDeleted
	}
	if amount < dt.MinimumAmountToStake {
		return nil, errBelowMinimumStake
	}

	reward, err := depositReward(amount, dt)
	if err != nil {
		return nil, err
	}
	pool := rewardPoolBalance()
	if reward > pool {
		return nil, errRewardPoolDrained
	}
	maturity := now + dt.Duration
	if maturity < now {
		return nil, errMaturityOverflow
	}

	d := &Deposit{
		ID:                nextDepositID(owner),
		Owner:             owner,
		Amount:            amount,
		Reward:            reward,
		StartTimestamp:    now,
		MaturityTimestamp: maturity,
		DepositType:       *dt,
	}
	saveDeposit(d)
	setRewardPoolBalance(pool - reward)
	emitStakeEvent(d)
	return d, nil
}

// Stake opens a deposit for the sender and pulls the principal from their
// token balance.
// Example payload: Stake(strptr("5000|2"))
//
//go:wasmexport stake
func Stake(payload *string) *string {
	requireInitialized()
	cfg := loadContractConfig()
	abortOnErr(requireNotPaused(cfg))

	parts := requireFields(payload, 2, "amount|deposit_type")
	amount := parseAmountField(parts[0])
	typeIndex := parseIndexField(parts[1])
	sender := getSenderAddress()

	d, err := createDeposit(sender, amount, typeIndex, nowUnix())
	abortOnErr(err)
	abortOnErr(tokenTransferFrom(cfg, sender, amount))
	return strptr(strconv.FormatUint(d.ID, 10))
}

// StakeForBeneficiary lets the configured vesting collaborator open a deposit
// on someone else's behalf. Only the two claim-and-stake pool tiers are
// reachable this way; the principal is pulled from the collaborator.
// Example payload: StakeForBeneficiary(strptr("hive:alice|250|0"))
//
//go:wasmexport stake_for
func StakeForBeneficiary(payload *string) *string {
	requireInitialized()
	cfg := loadContractConfig()
	abortOnErr(requireNotPaused(cfg))

	sender := getSenderAddress()
	if cfg.VestingContract.IsEmpty() || sender != cfg.VestingContract {
		abortOnErr(errNotAuthorized)
	}
	parts := requireFields(payload, 3, "beneficiary|amount|deposit_type")
	beneficiary := parseAddressField(parts[0])
	amount := parseAmountField(parts[1])
	typeIndex := parseIndexField(parts[2])
	if typeIndex != PoolTierPreStart && typeIndex != PoolTierPostStart {
		abortOnErr(errBeneficiaryStake)
	}

	d, err := createDeposit(beneficiary, amount, typeIndex, nowUnix())
	abortOnErr(err)
	abortOnErr(tokenTransferFrom(cfg, sender, amount))
	return strptr(strconv.FormatUint(d.ID, 10))
}

// Unstake settles a deposit of the sender. At or past maturity the payout is
// principal plus the reserved reward. Before maturity the type must allow it:
// no reward is paid, the penalty comes out of the principal, half burned,
// half credited to the pool. The pool moves by exactly floor(penalty/2).
// Example payload: Unstake(strptr("0"))
//
//go:wasmexport unstake
func Unstake(payload *string) *string {
	requireInitialized()
	cfg := loadContractConfig()
	abortOnErr(requireNotPaused(cfg))

	id := parseIndexField(unwrapPayload(payload))
	sender := getSenderAddress()
	d := loadDeposit(sender, id)
	if d == nil {
		abortOnErr(errDepositNotFound)
	}

	now := nowUnix()
	if now >= d.MaturityTimestamp {
		payout := d.Amount + d.Reward
		deleteDeposit(sender, id)
		abortOnErr(tokenTransfer(cfg, sender, payout))
		emitUnstakeEvent(d, payout, 0, false)
		return strptr(strconv.FormatInt(int64(payout), 10))
	}

	if !d.DepositType.CanUnstakePriorMaturation {
		abortOnErr(errEarlyUnstake)
	}
	penalty, err := earlyUnstakePenalty(d.Amount, &d.DepositType)
	abortOnErr(err)
	toPool := penalty / 2
	burned := penalty - toPool
	payout := d.Amount - penalty

	deleteDeposit(sender, id)
	pool := rewardPoolBalance() + toPool
	setRewardPoolBalance(pool)
	emitRewardPoolEvent("penalty", toPool, pool)

	if payout > 0 {
		abortOnErr(tokenTransfer(cfg, sender, payout))
	}
	if burned > 0 {
		abortOnErr(tokenBurn(cfg, burned))
	}
	emitUnstakeEvent(d, payout, penalty, true)
	return strptr(strconv.FormatInt(int64(payout), 10))
}

// GetDeposits pages through an owner's live deposits. Offset and limit span
// issued ids, not live records; freed slots inside the range are omitted, so
// a page may come back shorter than limit.
// Example payload: GetDeposits(strptr("hive:alice|0|20"))
//
//go:wasmexport deposits_get
func GetDeposits(payload *string) *string {
	requireInitialized()
	parts := requireFields(payload, 3, "owner|offset|limit")
	owner := parseAddressField(parts[0])
	offset := parseIndexField(parts[1])
	limit := parseIndexField(parts[2])

	total := depositCount(owner)
	end := offset + limit
	if end > total || end < offset {
		end = total
	}
	entries := make([]string, 0, limit)
	for id := offset; id < end; id++ {
		if d := loadDeposit(owner, id); d != nil {
			entries = append(entries, encodeDeposit(d))
		}
	}
	return strptr(strings.Join(entries, ";"))
}

// GetRewardOnDepositType previews the reward a stake would reserve.
// Example payload: GetRewardOnDepositType(strptr("5000|2"))
//
//go:wasmexport deposit_type_reward
func GetRewardOnDepositType(payload *string) *string {
	requireInitialized()
	parts := requireFields(payload, 2, "amount|deposit_type")
	amount := parseAmountField(parts[0])
	dt := loadDepositType(parseIndexField(parts[1]))
	if dt == nil {
		abortOnErr(errUnknownDepositType)
	}
	if dt.IsDeleted() {
		abortOnErr(errDepositTypeDeleted)
	}
	reward, err := depositReward(amount, dt)
	abortOnErr(err)
	return strptr(strconv.FormatInt(int64(reward), 10))
}

// GetDepositTypes returns the whole catalog, tombstones included so indexes
// stay aligned with what deposits reference.
//
//go:wasmexport deposit_types_get
func GetDepositTypes(_ *string) *string {
	requireInitialized()
	total := depositTypeCount()
	entries := make([]string, 0, total)
	for i := uint64(0); i < total; i++ {
		if dt := loadDepositType(i); dt != nil {
			entries = append(entries, encodeDepositType(dt))
		}
	}
	return strptr(strings.Join(entries, ";"))
}

// UpdateDepositType appends or edits a catalog entry in place. Editing never
// touches running deposits since they carry a snapshot of their type.
// Duration 0 tombstones the entry: it stays addressable for old deposits but
// admits no new stake.
// Example payload: UpdateDepositType(strptr("2|1500|500|15552000|1|1000|Silver"))
//
//go:wasmexport deposit_type_update
func UpdateDepositType(payload *string) *string {
	requireRole(RoleDepositTypes)

	parts := requireFields(payload, 7, "index|apr|penalty|duration|early|min|name")
	index := parseIndexField(parts[0])
	dt := &DepositType{
		Apr:                       parseRateField(parts[1]),
		Penalty:                   parseRateField(parts[2]),
		Duration:                  parseDurationField(parts[3]),
		CanUnstakePriorMaturation: parseFlagField(parts[4]),
		Name:                      strings.TrimSpace(parts[6]),
	}
	min, err := strconv.ParseInt(strings.TrimSpace(parts[5]), 10, 64)
	if err != nil || min < 0 {
		sdk.Abort("invalid minimum " + parts[5])
	}
	dt.MinimumAmountToStake = Amount(min)

	if index > depositTypeCount() {
		abortOnErr(errDepositTypeGap)
	}
	if dt.Name == "" || len(dt.Name) > MaxDepositTypeNameLength || strings.ContainsRune(dt.Name, '|') {
		abortOnErr(errDepositTypeBadName)
	}

	saveDepositType(index, dt)
	emitDepositTypeEvent(index, dt)
	return strptr(strconv.FormatUint(index, 10))
}

// AddRewardToPool tops up the shared pool from the caller's token balance.
// Example payload: AddRewardToPool(strptr("1000000"))
//
//go:wasmexport reward_pool_add
func AddRewardToPool(payload *string) *string {
	caller := requireRole(RoleRewardPool)
	cfg := loadContractConfig()
	amount := parseAmountField(unwrapPayload(payload))

	pool := rewardPoolBalance() + amount
	setRewardPoolBalance(pool)
	abortOnErr(tokenTransferFrom(cfg, caller, amount))
	emitRewardPoolEvent("add", amount, pool)
	return strptr(strconv.FormatInt(int64(pool), 10))
}

// RemoveRewardFromPool withdraws unreserved pool funds back to the caller.
// Reserved rewards are already debited, so the balance is always free.
// Example payload: RemoveRewardFromPool(strptr("1000"))
//
//go:wasmexport reward_pool_remove
func RemoveRewardFromPool(payload *string) *string {
	caller := requireRole(RoleRewardPool)
	cfg := loadContractConfig()
	amount := parseAmountField(unwrapPayload(payload))

	pool := rewardPoolBalance()
	if amount > pool {
		abortOnErr(errRewardPoolDrained)
	}
	pool -= amount
	setRewardPoolBalance(pool)
	abortOnErr(tokenTransfer(cfg, caller, amount))
	emitRewardPoolEvent("remove", amount, pool)
	return strptr(strconv.FormatInt(int64(pool), 10))
}

// GetRewardPool reports the unreserved pool balance.
//
//go:wasmexport reward_pool_get
func GetRewardPool(_ *string) *string {
	requireInitialized()
	return strptr(strconv.FormatInt(int64(rewardPoolBalance()), 10))
}

// Pause halts staking and unstaking; vested claims stay available.
//
//go:wasmexport pause
func Pause(_ *string) *string {
	requireRole(RolePause)
	cfg := loadContractConfig()
	cfg.Paused = true
	saveContractConfig(cfg)
	emitPauseEvent(true)
	return strptr("paused")
}

// Unpause lifts the halt again.
//
//go:wasmexport unpause
func Unpause(_ *string) *string {
	requireRole(RolePause)
	cfg := loadContractConfig()
	cfg.Paused = false
	saveContractConfig(cfg)
	emitPauseEvent(false)
	return strptr("unpaused")
}

// SetEnfToken points the ledger at the ENF token contract.
// Example payload: SetEnfToken(strptr("enf-token"))
//
//go:wasmexport token_set
func SetEnfToken(payload *string) *string {
	requireRole(RoleSetters)
	cfg := loadContractConfig()
	cfg.TokenContract = parseAddressField(unwrapPayload(payload))
	saveContractConfig(cfg)
	emitConfigEvent("tok", cfg.TokenContract.String())
	return strptr("ok")
}

// SetVestingContract names the external collaborator allowed to stake on
// behalf of beneficiaries.
// Example payload: SetVestingContract(strptr("enf-vesting"))
//
//go:wasmexport vesting_contract_set
func SetVestingContract(payload *string) *string {
	requireRole(RoleSetters)
	cfg := loadContractConfig()
	cfg.VestingContract = parseAddressField(unwrapPayload(payload))
	saveContractConfig(cfg)
	emitConfigEvent("ves", cfg.VestingContract.String())
	return strptr("ok")
}
