package contract

import (
	"strings"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// ContractInit seeds the whole economy exactly once: the ten vesting curves
// with their caps, the two claim-and-stake pool tiers and the config record.
// The sender becomes the owner. The payload optionally names the token
// contract and an external vesting collaborator, either may be set later.
// Example payload: ContractInit(strptr("enf-token|"))
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	cfg := &ContractConfig{Owner: getSenderAddress()}
	if payload != nil && strings.TrimSpace(*payload) != "" {
		parts := strings.SplitN(strings.TrimSpace(*payload), "|", 2)
		cfg.TokenContract = AddressFromString(strings.TrimSpace(parts[0]))
		if len(parts) == 2 {
			cfg.VestingContract = AddressFromString(strings.TrimSpace(parts[1]))
		}
	}

	for i := range curveCatalog {
		curve := &curveCatalog[i]
		if !validateCurve(curve) {
			sdk.Abort("invalid curve " + curve.Name)
		}
		saveCurvePeriods(curve.Name, curve.Periods)
		saveVestingCap(curve.Name, &VestingCap{
			TotalAmountOfTokens: curve.Cap * TokenScale,
			CurrentAmount:       0,
		})
	}

	for i := range defaultDepositTypes {
		saveDepositType(uint64(i), &defaultDepositTypes[i])
	}
	setRewardPoolBalance(0)

	saveContractConfig(cfg)
	emitInitEvent(cfg)
	return strptr("initialized")
}
