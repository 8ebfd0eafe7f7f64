package contract

import (
	"github.com/DegethalLabs/enfineo-smart-contacts-public/sdk"
)

// Capability grants. The owner holds every capability implicitly; additional
// operators get per-role flags in state.

// hasRole checks one (role, address) grant.
func hasRole(role Role, addr sdk.Address) bool {
	ptr := sdk.StateGetObject(roleKey(role, addr))
	return ptr != nil && *ptr == "1"
}

// grantRole flags the capability for an address.
func grantRole(role Role, addr sdk.Address) {
	sdk.StateSetObject(roleKey(role, addr), "1")
}

// revokeRole clears the capability again.
func revokeRole(role Role, addr sdk.Address) {
	sdk.StateDeleteObject(roleKey(role, addr))
}

// requireRole aborts unless the caller is the owner or holds the role.
func requireRole(role Role) sdk.Address {
	requireInitialized()
	caller := getSenderAddress()
	if isContractOwner(caller) || hasRole(role, caller) {
		return caller
	}
	sdk.Abort("caller lacks capability " + role.String())
	return caller
}

// GrantRole lets the owner hand a capability to an operator address.
// Example payload: GrantRole(strptr("3|hive:ops"))
//
//go:wasmexport role_grant
func GrantRole(payload *string) *string {
	requireInitialized()
	caller := getSenderAddress()
	if !isContractOwner(caller) {
		sdk.Abort("only the owner manages roles")
	}
	role, addr := decodeRoleArgs(payload)
	grantRole(role, addr)
	emitRoleEvent("grant", role, addr)
	return strptr("granted")
}

// RevokeRole removes a previously granted capability.
// Example payload: RevokeRole(strptr("3|hive:ops"))
//
//go:wasmexport role_revoke
func RevokeRole(payload *string) *string {
	requireInitialized()
	caller := getSenderAddress()
	if !isContractOwner(caller) {
		sdk.Abort("only the owner manages roles")
	}
	role, addr := decodeRoleArgs(payload)
	revokeRole(role, addr)
	emitRoleEvent("revoke", role, addr)
	return strptr("revoked")
}
