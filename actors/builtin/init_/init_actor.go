// The init actor is responsible for instantiating new actors and assigning
// them addresses. Only the Exec message surface is modelled here; the actor
// itself is part of the host system.
package init_

import (
	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"
)

type ExecParams struct {
	CodeCID           cid.Cid
	ConstructorParams []byte
}

type ExecReturn struct {
	// ID based address for created actor.
	IDAddress addr.Address
	// Reorg safe address for actor.
	RobustAddress addr.Address
}
