package contract

import (
	"strconv"
	"strings"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Pipe-delimited record codecs. Storage values stay human-readable in state
// dumps while staying deterministic; names may not contain '|'.

// encodeContractConfig serializes ContractConfig.
// Format: owner|token|vesting|paused
func encodeContractConfig(cfg *ContractConfig) string {
	paused := "0"
	if cfg.Paused {
		paused = "1"
	}
	return strings.Join([]string{
		cfg.Owner.String(),
		cfg.TokenContract.String(),
		cfg.VestingContract.String(),
		paused,
	}, "|")
}

// decodeContractConfig parses the config record, nil when malformed.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 4 {
		return nil
	}
	return &ContractConfig{
		Owner:           AddressFromString(parts[0]),
		TokenContract:   AddressFromString(parts[1]),
		VestingContract: AddressFromString(parts[2]),
		Paused:          parts[3] == "1",
	}
}

// encodeDepositType serializes a catalog entry.
// Format: apr|penalty|duration|early|min|name
func encodeDepositType(dt *DepositType) string {
	return strings.Join([]string{
		strconv.FormatUint(dt.Apr, 10),
		strconv.FormatUint(dt.Penalty, 10),
		strconv.FormatInt(dt.Duration, 10),
		boolToFlag(dt.CanUnstakePriorMaturation),
		strconv.FormatInt(int64(dt.MinimumAmountToStake), 10),
		dt.Name,
	}, "|")
}

func decodeDepositType(data string) *DepositType {
	parts := strings.SplitN(data, "|", 6)
	if len(parts) < 6 {
		return nil
	}
	apr, err1 := strconv.ParseUint(parts[0], 10, 64)
	penalty, err2 := strconv.ParseUint(parts[1], 10, 64)
	duration, err3 := strconv.ParseInt(parts[2], 10, 64)
	minAmt, err4 := strconv.ParseInt(parts[4], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}
	return &DepositType{
		Apr:                       apr,
		Penalty:                   penalty,
		Duration:                  duration,
		CanUnstakePriorMaturation: parts[3] == "1",
		MinimumAmountToStake:      Amount(minAmt),
		Name:                      parts[5],
	}
}

// encodeDeposit serializes a deposit with its snapshotted type inlined.
// Format: id|owner|amount|reward|start|maturity|<deposit type fields>
func encodeDeposit(d *Deposit) string {
	return strings.Join([]string{
		strconv.FormatUint(d.ID, 10),
		d.Owner.String(),
		strconv.FormatInt(int64(d.Amount), 10),
		strconv.FormatInt(int64(d.Reward), 10),
		strconv.FormatInt(d.StartTimestamp, 10),
		strconv.FormatInt(d.MaturityTimestamp, 10),
		encodeDepositType(&d.DepositType),
	}, "|")
}

func decodeDeposit(data string) *Deposit {
	parts := strings.SplitN(data, "|", 7)
	if len(parts) < 7 {
		return nil
	}
	id, err1 := strconv.ParseUint(parts[0], 10, 64)
	amount, err2 := strconv.ParseInt(parts[2], 10, 64)
	reward, err3 := strconv.ParseInt(parts[3], 10, 64)
	start, err4 := strconv.ParseInt(parts[4], 10, 64)
	maturity, err5 := strconv.ParseInt(parts[5], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return nil
	}
	dt := decodeDepositType(parts[6])
	if dt == nil {
		return nil
	}
	return &Deposit{
		ID:                id,
		Owner:             AddressFromString(parts[1]),
		Amount:            Amount(amount),
		Reward:            Amount(reward),
		StartTimestamp:    start,
		MaturityTimestamp: maturity,
		DepositType:       *dt,
	}
}

// encodeCurvePeriods serializes the interval list.
// Format: dur:pct,dur:pct,...
func encodeCurvePeriods(periods []VestingPeriod) string {
	entries := make([]string, len(periods))
	for i, p := range periods {
		entries[i] = strconv.FormatInt(p.Duration, 10) + ":" + strconv.FormatUint(p.Percent, 10)
	}
	return strings.Join(entries, ",")
}

func decodeCurvePeriods(data string) []VestingPeriod {
	if data == "" {
		return nil
	}
	entries := strings.Split(data, ",")
	periods := make([]VestingPeriod, 0, len(entries))
	for _, entry := range entries {
		split := strings.SplitN(entry, ":", 2)
		if len(split) != 2 {
			return nil
		}
		dur, err1 := strconv.ParseInt(split[0], 10, 64)
		pct, err2 := strconv.ParseUint(split[1], 10, 64)
		if err1 != nil || err2 != nil {
			return nil
		}
		periods = append(periods, VestingPeriod{Duration: dur, Percent: pct})
	}
	return periods
}

// encodeVestingCap serializes cap consumption.
// Format: total|current
func encodeVestingCap(cap *VestingCap) string {
	return strconv.FormatInt(int64(cap.TotalAmountOfTokens), 10) + "|" +
		strconv.FormatInt(int64(cap.CurrentAmount), 10)
}

func decodeVestingCap(data string) *VestingCap {
	parts := strings.Split(data, "|")
	if len(parts) < 2 {
		return nil
	}
	total, err1 := strconv.ParseInt(parts[0], 10, 64)
	current, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &VestingCap{
		TotalAmountOfTokens: Amount(total),
		CurrentAmount:       Amount(current),
	}
}

// encodeVestingSchedule serializes a schedule record.
// Format: beneficiary|curve|vested|released|staked|enabled
func encodeVestingSchedule(s *VestingSchedule) string {
	return strings.Join([]string{
		s.Beneficiary.String(),
		s.VestingName,
		strconv.FormatInt(int64(s.VestedAmount), 10),
		strconv.FormatInt(int64(s.ReleasedAmount), 10),
		strconv.FormatInt(int64(s.StakedAmount), 10),
		boolToFlag(s.IsEnabled),
	}, "|")
}

func decodeVestingSchedule(data string) *VestingSchedule {
	parts := strings.Split(data, "|")
	if len(parts) < 6 {
		return nil
	}
	vested, err1 := strconv.ParseInt(parts[2], 10, 64)
	released, err2 := strconv.ParseInt(parts[3], 10, 64)
	staked, err3 := strconv.ParseInt(parts[4], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}
	return &VestingSchedule{
		Beneficiary:    AddressFromString(parts[0]),
		VestingName:    parts[1],
		VestedAmount:   Amount(vested),
		ReleasedAmount: Amount(released),
		StakedAmount:   Amount(staked),
		IsEnabled:      parts[5] == "1",
	}
}

// boolToFlag squashes bools into the single character used across records.
func boolToFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// mustDecode aborts on a corrupt record; state blobs are written by this
// contract only, so a decode failure means the store is broken.
func mustDecode[T any](v *T, what string) *T {
	if v == nil {
		sdk.Abort("failed to decode " + what)
	}
	return v
}
