package builtin

import (
	abi "github.com/erisprotocol/hub-actors/actors/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type methodsInit struct {
	Constructor abi.MethodNum
	Exec        abi.MethodNum
}

var MethodsInit = methodsInit{MethodConstructor, 2}

type methodsStaking struct {
	Constructor             abi.MethodNum
	Delegate                abi.MethodNum
	Undelegate              abi.MethodNum
	Redelegate              abi.MethodNum
	WithdrawDelegatorReward abi.MethodNum
	AllDelegations          abi.MethodNum
	Delegation              abi.MethodNum
}

var MethodsStaking = methodsStaking{MethodConstructor, 2, 3, 4, 5, 6, 7}

type methodsBank struct {
	Constructor abi.MethodNum
	Send        abi.MethodNum
	Balance     abi.MethodNum
}

var MethodsBank = methodsBank{MethodConstructor, 2, 3}

type methodsToken struct {
	Constructor abi.MethodNum
	Mint        abi.MethodNum
	Burn        abi.MethodNum
	TotalSupply abi.MethodNum
}

var MethodsToken = methodsToken{MethodConstructor, 2, 3, 4}

type methodsHub struct {
	Constructor           abi.MethodNum
	Bond                  abi.MethodNum
	Donate                abi.MethodNum
	QueueUnbond           abi.MethodNum
	SubmitBatch           abi.MethodNum
	Reconcile             abi.MethodNum
	WithdrawUnbonded      abi.MethodNum
	Harvest               abi.MethodNum
	Rebalance             abi.MethodNum
	AddValidator          abi.MethodNum
	RemoveValidator       abi.MethodNum
	TransferOwnership     abi.MethodNum
	AcceptOwnership       abi.MethodNum
	UpdateConfig          abi.MethodNum
	CheckReceivedCoin     abi.MethodNum
	Reinvest              abi.MethodNum
	Config                abi.MethodNum
	HubState              abi.MethodNum
	CurrentPendingBatch   abi.MethodNum
	PreviousBatch         abi.MethodNum
	PreviousBatches       abi.MethodNum
	UnbondRequestsByBatch abi.MethodNum
	UnbondRequestsByUser  abi.MethodNum
}

var MethodsHub = methodsHub{
	MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23,
}
