// The token actor is a fungible token ledger. The hub instantiates one as
// its receipt token and is its sole minter; holders may transfer freely.
package token

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
)

type ConstructorParams struct {
	Name     string
	Symbol   string
	Decimals uint64
	// The only address permitted to mint and burn.
	Minter addr.Address
}

type MintParams struct {
	Recipient addr.Address
	Amount    abi.TokenAmount
}

// Burn destroys tokens from the caller's own balance.
type BurnParams struct {
	Amount abi.TokenAmount
}

type TotalSupplyReturn struct {
	Supply abi.TokenAmount
}
