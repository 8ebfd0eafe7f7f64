////////////////////////////////////////////////////////////////////////////////
// Enfineo staking & vesting contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "github.com/DegethalLabs/enfineo-smart-contacts-public/contract"
)

// main is left empty on purpose; the host invokes the exported entrypoints.
func main() {

}
