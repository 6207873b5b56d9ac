// The runtime package defines the interface the hub actor sees of its host
// environment. The host dispatches inbound messages to an actor method,
// provides durable storage and the identities of the call, executes outbound
// sends, and rolls the whole invocation back when the actor aborts.
package runtime

import (
	"context"
	"io"

	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
	exitcode "github.com/erisprotocol/hub-actors/actors/runtime/exitcode"
)

// Interfaces for the marshaling of objects moving across the host boundary.
type CBORMarshaler interface {
	MarshalCBOR(w io.Writer) error
}

type CBORUnmarshaler interface {
	UnmarshalCBOR(r io.Reader) error
}

type CBORer interface {
	CBORMarshaler
	CBORUnmarshaler
}

// Runtime is the interface to the execution environment, made available to
// every actor method invocation.
type Runtime interface {
	// Information about the message that launched this invocation.
	Message() Message

	// The current chain height.
	CurrEpoch() abi.ChainEpoch

	// The timestamp of the block this invocation executes in, in seconds.
	CurrTime() abi.Timestamp

	// Validates the caller against some predicate. Exported actor methods must
	// validate their caller exactly once.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...addr.Address)

	// The balance of the receiver in the native token.
	CurrentBalance() abi.TokenAmount

	// Sends a message to another actor, returning the exit code and return
	// value. The send is executed in order, as its own atomic sub-execution.
	Send(toAddr addr.Address, methodNum abi.MethodNum, params CBORMarshaler, value abi.TokenAmount) (SendReturn, exitcode.ExitCode)

	// Halts execution upon an error from which the actor cannot recover. The
	// host rolls back all state changes and all sends made by the invocation.
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// Provides a handle for the actor's own state.
	State() StateHandle

	// The store the state tree is backed by.
	Store() Store

	// Records a domain event for off-chain consumers. Events have no effect on
	// state and are discarded when the invocation aborts.
	EmitEvent(evt Event)

	// Provides the system call context.
	Context() context.Context
}

// Message contains information available to the actor about the executing message.
type Message interface {
	// The address of the immediate calling actor.
	Caller() addr.Address

	// The address of the actor receiving the message.
	Receiver() addr.Address

	// The value attached to the message being processed, implicitly added to
	// CurrentBalance() before method invocation.
	ValueReceived() abi.TokenAmount
}

// Store defines the storage module exposed to actors.
type Store interface {
	// Retrieves and deserializes an object from the store into o. Returns
	// whether successful.
	Get(c cid.Cid, o CBORUnmarshaler) bool
	// Serializes and stores an object, returning its CID.
	Put(x CBORMarshaler) cid.Cid
}

// StateHandle provides mutable, exclusive access to actor state.
type StateHandle interface {
	// Create initializes the state object.
	Create(obj CBORMarshaler)

	// Readonly loads a readonly copy of the state into the argument.
	Readonly(obj CBORUnmarshaler)

	// Transaction loads a mutable version of the state into the `obj`
	// argument and protects the execution from side effects. The second
	// argument is a function which allows the caller to mutate the state.
	// Any abort during the transaction discards the mutation.
	Transaction(obj CBORer, f func())
}

// SendReturn is the return value of a message send.
type SendReturn interface {
	Into(CBORUnmarshaler) error
}

// Event is a typed domain event with an ordered attribute list.
type Event struct {
	Type       string
	Attributes []EventAttribute
}

type EventAttribute struct {
	Key   string
	Value string
}

// NewEvent builds an event from alternating key/value attribute pairs.
func NewEvent(ty string, kvs ...string) Event {
	if len(kvs)%2 != 0 {
		panic("event attributes require key/value pairs")
	}
	evt := Event{Type: ty}
	for i := 0; i < len(kvs); i += 2 {
		evt.Attributes = append(evt.Attributes, EventAttribute{Key: kvs[i], Value: kvs[i+1]})
	}
	return evt
}
