// The staking actor wraps the host network's proof-of-stake module. The hub
// orchestrates delegations through this message surface but does not
// implement them.
package staking

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
)

// Delegation is the amount a delegator has bonded to a single validator, in
// the canonical bond denomination.
type Delegation struct {
	Validator string
	Amount    abi.TokenAmount
}

func NewDelegation(validator string, amount abi.TokenAmount) Delegation {
	return Delegation{Validator: validator, Amount: amount}
}

type DelegateParams struct {
	Validator string
	Amount    abi.TokenAmount
}

type UndelegateParams struct {
	Validator string
	Amount    abi.TokenAmount
}

type RedelegateParams struct {
	SrcValidator string
	DstValidator string
	Amount       abi.TokenAmount
}

type WithdrawDelegatorRewardParams struct {
	Validator string
}

type AllDelegationsParams struct {
	Delegator addr.Address
}

type AllDelegationsReturn struct {
	// Only validators with a non-zero delegation appear.
	Delegations []Delegation
}

type DelegationParams struct {
	Delegator addr.Address
	Validator string
}

type DelegationReturn struct {
	Delegation Delegation
}
