// The bank actor wraps the host network's denominated balance module.
package bank

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
)

type SendParams struct {
	To    addr.Address
	Coins []abi.Coin
}

type BalanceParams struct {
	Address addr.Address
	Denom   string
}

type BalanceReturn struct {
	// The balance held, zero-amount if the address holds none of the denom.
	Balance abi.Coin
}
