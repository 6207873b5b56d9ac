package builtin

import (
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// The built-in actor code IDs
var (
	AccountActorCodeID  cid.Cid
	InitActorCodeID     cid.Cid
	StakingActorCodeID  cid.Cid
	BankActorCodeID     cid.Cid
	HubActorCodeID      cid.Cid
	TokenActorCodeID    cid.Cid
	CallerTypesSignable []cid.Cid
)

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		return c
	}

	AccountActorCodeID = makeBuiltin("eris/1/account")
	InitActorCodeID = makeBuiltin("eris/1/init")
	StakingActorCodeID = makeBuiltin("eris/1/staking")
	BankActorCodeID = makeBuiltin("eris/1/bank")
	HubActorCodeID = makeBuiltin("eris/1/hub")
	TokenActorCodeID = makeBuiltin("eris/1/token")

	// Set of actor code types that can represent external signing parties.
	CallerTypesSignable = []cid.Cid{AccountActorCodeID}
}
