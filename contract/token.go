package contract

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// The ENF token lives in its own audited contract; we only speak its
// transfer surface. Every method answers "ok" on success. Anything else,
// including a trapped call (nil result), counts as a rejection and must
// abort the operation that triggered it.

const tokenCallOK = "ok"

// tokenCall performs one call into the configured token contract.
func tokenCall(cfg *ContractConfig, method string, fields ...string) error {
	if cfg.TokenContract.IsEmpty() {
		return errors.Wrap(errTokenTransfer, "token contract not configured")
	}
	payload := strings.Join(fields, "|")
	res := sdk.ContractCall(cfg.TokenContract.String(), method, payload, nil)
	if res == nil || *res != tokenCallOK {
		return errors.Wrapf(errTokenTransfer, "%s %s", method, payload)
	}
	return nil
}

// tokenTransfer moves contract-held tokens out to an account.
func tokenTransfer(cfg *ContractConfig, to sdk.Address, amount Amount) error {
	return tokenCall(cfg, "transfer", to.String(), strconv.FormatInt(int64(amount), 10))
}

// tokenTransferFrom pulls approved tokens from an account into our custody.
func tokenTransferFrom(cfg *ContractConfig, from sdk.Address, amount Amount) error {
	self := currentEnv().ContractId
	return tokenCall(cfg, "transfer_from", from.String(), self, strconv.FormatInt(int64(amount), 10))
}

// tokenBurn destroys contract-held tokens (the burned half of penalties).
func tokenBurn(cfg *ContractConfig, amount Amount) error {
	self := currentEnv().ContractId
	return tokenCall(cfg, "burn", self, strconv.FormatInt(int64(amount), 10))
}
