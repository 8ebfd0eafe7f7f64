package contract

import (
	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true once contract_init has run.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(contractConfigKey())
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(contractConfigKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	return mustDecode(decodeContractConfig(*ptr), "contract config")
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(contractConfigKey(), encodeContractConfig(cfg))
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Owner == addr
}

// requireNotPaused gates the staking entrypoints while the flag is up.
func requireNotPaused(cfg *ContractConfig) error {
	if cfg.Paused {
		return errContractPaused
	}
	return nil
}
