package builtin

import (
	addr "github.com/filecoin-project/go-address"

	"github.com/erisprotocol/hub-actors/actors/util"
)

// Addresses of singleton system actors, which have the same address on every
// network the hub deploys to.
var (
	InitActorAddr    = mustMakeAddress(1)
	StakingActorAddr = mustMakeAddress(2)
	BankActorAddr    = mustMakeAddress(3)
)

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	util.AssertNoError(err)
	return address
}
