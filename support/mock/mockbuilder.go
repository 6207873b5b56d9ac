package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	block "github.com/ipfs/go-block-format"
	cid "github.com/ipfs/go-cid"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
	big "github.com/erisprotocol/hub-actors/actors/abi/big"
)

// Build for fluent initialization of a mock runtime.
type RuntimeBuilder struct {
	ctx           context.Context
	receiver      addr.Address
	caller        addr.Address
	epoch         abi.ChainEpoch
	currentTime   abi.Timestamp
	balance       abi.TokenAmount
	valueReceived abi.TokenAmount
}

// Initializes a new builder with a receiving actor address.
func NewBuilder(ctx context.Context, receiver addr.Address) *RuntimeBuilder {
	return &RuntimeBuilder{
		ctx:           ctx,
		receiver:      receiver,
		caller:        addr.Undef,
		epoch:         0,
		currentTime:   0,
		balance:       big.Zero(),
		valueReceived: big.Zero(),
	}
}

// Build instantiates a mock runtime with the current parameters.
func (b *RuntimeBuilder) Build(t testing.TB) *Runtime {
	return &Runtime{
		ctx:           b.ctx,
		epoch:         b.epoch,
		currentTime:   b.currentTime,
		receiver:      b.receiver,
		caller:        b.caller,
		valueReceived: b.valueReceived,
		balance:       b.balance,
		state:         cid.Undef,
		blocks:        make(map[cid.Cid]block.Block),
		t:             t,
	}
}

func (b *RuntimeBuilder) WithCaller(address addr.Address) *RuntimeBuilder {
	b.caller = address
	return b
}

func (b *RuntimeBuilder) WithEpoch(epoch abi.ChainEpoch) *RuntimeBuilder {
	b.epoch = epoch
	return b
}

func (b *RuntimeBuilder) WithTime(ts abi.Timestamp) *RuntimeBuilder {
	b.currentTime = ts
	return b
}

func (b *RuntimeBuilder) WithBalance(balance abi.TokenAmount) *RuntimeBuilder {
	b.balance = balance
	return b
}
