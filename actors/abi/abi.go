package abi

import (
	big "github.com/erisprotocol/hub-actors/actors/abi/big"
)

// Epoch number of the chain state, which acts as a proof of block height.
type ChainEpoch int64

// Timestamp is a block time in seconds since the unix epoch.
type Timestamp uint64

// MethodNum is an integer that represents a particular method
// in an actor's function table. These numbers are used to compress
// invocation of actor code, and to decouple human language concerns
// about method names from the ability to uniquely refer to a particular
// method.
type MethodNum uint64

// TokenAmount is an amount of chain tokens, in the smallest indivisible unit
// of the denomination concerned.
type TokenAmount = big.Int

func NewTokenAmount(t int64) TokenAmount {
	return big.NewInt(t)
}

// Coin is an amount of a named denomination. The zero-valued denom string is
// not a valid denom.
type Coin struct {
	Denom  string
	Amount TokenAmount
}

func NewCoin(denom string, amount TokenAmount) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// Invokee is the interface implemented by actors, exposing their method
// dispatch table. Method numbers not present in the table are unexported.
type Invokee interface {
	Exports() []interface{}
}
