package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	block "github.com/ipfs/go-block-format"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"github.com/pkg/errors"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
	vmr "github.com/erisprotocol/hub-actors/actors/runtime"
	exitcode "github.com/erisprotocol/hub-actors/actors/runtime/exitcode"
	adt "github.com/erisprotocol/hub-actors/actors/util/adt"
)

// A mock runtime for unit testing of actors in isolation.
// The mock allows direct specification of the runtime state, and loose validation of all actor interactions.
type Runtime struct {
	// Execution context
	ctx           context.Context
	epoch         abi.ChainEpoch
	currentTime   abi.Timestamp
	receiver      addr.Address
	caller        addr.Address
	valueReceived abi.TokenAmount
	balance       abi.TokenAmount

	// Actor state
	state  cid.Cid
	blocks map[cid.Cid]block.Block

	// Internal invocation state
	inCall          bool
	callerValidated bool
	inTransaction   bool

	// Expectations
	t                        testing.TB
	expectValidateCallerAny  bool
	expectValidateCallerAddr []addr.Address
	expectSends              []*expectedMessage

	// Observations
	events []vmr.Event
}

type expectedMessage struct {
	// Expectations
	to     addr.Address
	method abi.MethodNum
	params vmr.CBORMarshaler
	value  abi.TokenAmount

	// Result
	sendReturn vmr.CBORMarshaler
	exitCode   exitcode.ExitCode
}

func (m *expectedMessage) String() string {
	return fmt.Sprintf("to: %v method: %v value: %v params: %v sendReturn: %v exitCode: %v", m.to, m.method, m.value, m.params, m.sendReturn, m.exitCode)
}

var _ vmr.Runtime = &Runtime{}
var _ vmr.Message = &Runtime{}
var _ vmr.StateHandle = &Runtime{}
var _ vmr.Store = &Runtime{}

var cidBuilder = cid.V1Builder{Codec: cid.DagCBOR, MhType: mh.BLAKE2B_MIN + 31}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

///// Implementation of the runtime API /////

func (rt *Runtime) Message() vmr.Message {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) CurrEpoch() abi.ChainEpoch {
	rt.requireInCall()
	return rt.epoch
}

func (rt *Runtime) CurrTime() abi.Timestamp {
	rt.requireInCall()
	return rt.currentTime
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireInCall()
	if !rt.expectValidateCallerAny {
		rt.failTest("unexpected validate-caller-any")
	}
	rt.callerValidated = true
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.requireInCall()
	rt.checkArgument(len(addrs) > 0, "addrs must be non-empty")
	if rt.callerValidated {
		rt.failTest("caller has already been validated")
	}
	if rt.expectValidateCallerAddr == nil {
		rt.failTest("unexpected validate caller addrs")
		return
	}
	if !reflect.DeepEqual(rt.expectValidateCallerAddr, addrs) {
		rt.failTest("unexpected validate caller addrs %v, expected %v", addrs, rt.expectValidateCallerAddr)
		return
	}
	rt.callerValidated = true
	rt.expectValidateCallerAddr = nil
	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) CurrentBalance() abi.TokenAmount {
	rt.requireInCall()
	return rt.balance
}

func (rt *Runtime) Send(toAddr addr.Address, methodNum abi.MethodNum, params vmr.CBORMarshaler, value abi.TokenAmount) (vmr.SendReturn, exitcode.ExitCode) {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectSends) == 0 {
		rt.failTestNow("unexpected send to: %v method: %v, value: %v, params: %v", toAddr, methodNum, value, params)
	}
	expectedMsg := rt.expectSends[0]

	if expectedMsg.to != toAddr || expectedMsg.method != methodNum {
		rt.failTestNow("expected send to: %v method: %v, got to: %v method: %v", expectedMsg.to, expectedMsg.method, toAddr, methodNum)
	}
	if !value.Equals(expectedMsg.value) {
		rt.failTestNow("expected send value: %v, got: %v (to: %v method: %v)", expectedMsg.value, value, toAddr, methodNum)
	}
	if !marshaledEquals(rt.t, expectedMsg.params, params) {
		rt.failTestNow("expected send params: %v, got: %v (to: %v method: %v)", expectedMsg.params, params, toAddr, methodNum)
	}

	defer func() {
		rt.expectSends = rt.expectSends[1:]
	}()
	return ReturnWrapper{expectedMsg.sendReturn}, expectedMsg.exitCode
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	rt.requireInCall()
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) State() vmr.StateHandle {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) Store() vmr.Store {
	return rt
}

func (rt *Runtime) EmitEvent(evt vmr.Event) {
	rt.requireInCall()
	rt.events = append(rt.events, evt)
}

func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

///// Implementation of the message interface /////

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

func (rt *Runtime) ValueReceived() abi.TokenAmount {
	return rt.valueReceived
}

///// Implementation of the state handle /////

func (rt *Runtime) Create(obj vmr.CBORMarshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.Put(obj)
}

func (rt *Runtime) Readonly(st vmr.CBORUnmarshaler) {
	if !rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state not constructed")
	}
	found := rt.Get(rt.state, st)
	if !found {
		panic(fmt.Sprintf("actor state not found: %v", rt.state))
	}
}

func (rt *Runtime) Transaction(st vmr.CBORer, f func()) {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	rt.Readonly(st)
	rt.inTransaction = true
	defer func() { rt.inTransaction = false }()
	f()
	rt.state = rt.Put(st)
}

///// Implementation of the store /////

func (rt *Runtime) Get(c cid.Cid, o vmr.CBORUnmarshaler) bool {
	blk, found := rt.blocks[c]
	if !found {
		return false
	}
	err := o.UnmarshalCBOR(bytes.NewReader(blk.RawData()))
	if err != nil {
		panic(errors.Wrapf(err, "failed to unmarshal %v", c))
	}
	return true
}

func (rt *Runtime) Put(x vmr.CBORMarshaler) cid.Cid {
	buf := new(bytes.Buffer)
	if err := x.MarshalCBOR(buf); err != nil {
		panic(errors.Wrapf(err, "failed to marshal %v", x))
	}
	data := buf.Bytes()
	c, err := cidBuilder.Sum(data)
	if err != nil {
		panic(errors.Wrap(err, "failed to compute cid"))
	}
	blk, err := block.NewBlockWithCid(data, c)
	if err != nil {
		panic(errors.Wrap(err, "failed to build block"))
	}
	rt.blocks[c] = blk
	return c
}

///// Mock controls and expectations /////

// Sets the caller address for the next invocation.
func (rt *Runtime) SetCaller(address addr.Address) {
	rt.caller = address
}

func (rt *Runtime) SetEpoch(epoch abi.ChainEpoch) {
	rt.epoch = epoch
}

func (rt *Runtime) SetTime(ts abi.Timestamp) {
	rt.currentTime = ts
}

func (rt *Runtime) SetBalance(bal abi.TokenAmount) {
	rt.balance = bal
}

// Sets the value attached to the next invocation.
func (rt *Runtime) SetReceived(amount abi.TokenAmount) {
	rt.valueReceived = amount
}

func (rt *Runtime) Epoch() abi.ChainEpoch {
	return rt.epoch
}

func (rt *Runtime) Time() abi.Timestamp {
	return rt.currentTime
}

// Fetches the current actor state.
func (rt *Runtime) GetState(o vmr.CBORUnmarshaler) {
	if !rt.Get(rt.state, o) {
		rt.t.Fatalf("can't find state at %v", rt.state)
	}
}

// Replaces the actor state, ignoring the usual transaction discipline.
func (rt *Runtime) ReplaceState(o vmr.CBORMarshaler) {
	rt.state = rt.Put(o)
}

// AdtStore exposes the runtime store as an ADT store for test assertions.
func (rt *Runtime) AdtStore() adt.Store {
	return adt.AsStore(rt)
}

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.checkArgument(len(addrs) > 0, "addrs must be non-empty")
	rt.expectValidateCallerAddr = addrs[:]
}

// Expects the next send in order, with the return value and code the mock
// should provide for it.
func (rt *Runtime) ExpectSend(toAddr addr.Address, methodNum abi.MethodNum, params vmr.CBORMarshaler, value abi.TokenAmount, ret vmr.CBORMarshaler, exitCode exitcode.ExitCode) {
	rt.expectSends = append(rt.expectSends, &expectedMessage{
		to:         toAddr,
		method:     methodNum,
		params:     params,
		value:      value,
		sendReturn: ret,
		exitCode:   exitCode,
	})
}

// Calls f() expecting it to invoke Runtime.Abortf() with a specified exit code.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	rt.expectAbort(expected, "", f)
}

// Calls f() expecting it to invoke Runtime.Abortf() with a specified exit
// code and message containing the given substring.
func (rt *Runtime) ExpectAbortContainsMessage(expected exitcode.ExitCode, substr string, f func()) {
	rt.expectAbort(expected, substr, f)
}

func (rt *Runtime) expectAbort(expected exitcode.ExitCode, substr string, f func()) {
	prevState := rt.state

	defer func() {
		r := recover()
		if r == nil {
			rt.failTest("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.failTest("abort expected code %v, got %v %s", expected, a.code, a.msg)
		}
		if substr != "" && !strings.Contains(a.msg, substr) {
			rt.failTest("abort expected message %q, got %q", substr, a.msg)
		}

		// Roll back state change.
		rt.state = prevState
		rt.inCall = false
		rt.inTransaction = false
		rt.callerValidated = false
	}()
	f()
}

// Verifies that all expectations were satisfied.
func (rt *Runtime) Verify() {
	rt.t.Helper()
	if rt.expectValidateCallerAny {
		rt.failTest("missing expected validate caller any")
	}
	if rt.expectValidateCallerAddr != nil {
		rt.failTest("missing expected validate caller address %v", rt.expectValidateCallerAddr)
	}
	if len(rt.expectSends) > 0 {
		rt.failTest("missing expected send %v", rt.expectSends)
	}
}

// Resets expectations and observed events.
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectSends = nil
	rt.events = nil
}

// Events returns the events emitted by calls since the last Reset.
func (rt *Runtime) Events() []vmr.Event {
	return rt.events
}

// LastEvent returns the most recently emitted event, failing if none exists.
func (rt *Runtime) LastEvent() vmr.Event {
	if len(rt.events) == 0 {
		rt.t.Fatalf("no events emitted")
	}
	return rt.events[len(rt.events)-1]
}

// Calls the given method with the given params, returning the method's
// return value. Aborts escape as panics to be caught by ExpectAbort.
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	rt.verifyExportedMethodType(meth)

	rt.inCall = true
	defer func() { rt.inCall = false; rt.callerValidated = false }()

	ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), reflect.ValueOf(params)})
	return ret[0].Interface()
}

func (rt *Runtime) verifyExportedMethodType(meth reflect.Value) {
	rt.t.Helper()
	t := meth.Type()
	rt.require(t.Kind() == reflect.Func, "%v is not a function", meth)
	rt.require(t.NumIn() == 2, "exported method %v must have two parameters, got %v", meth, t.NumIn())

	rt.require(t.In(0) == runtimeType, "exported method first parameter must be runtime, got %v", t.In(0))
	rt.require(t.In(1).Kind() == reflect.Ptr, "exported method second parameter must be ptr, got %v", t.In(1))
	rt.require(t.In(1).Implements(cborUnmarshalerType), "exported method second parameter must be CBOR-unmarshalable")

	rt.require(t.NumOut() == 1, "exported method must have one return value, got %v", t.NumOut())
	rt.require(t.Out(0).Kind() == reflect.Ptr, "exported method must return a pointer")
}

var runtimeType = reflect.TypeOf((*vmr.Runtime)(nil)).Elem()
var cborUnmarshalerType = reflect.TypeOf((*vmr.CBORUnmarshaler)(nil)).Elem()

func (rt *Runtime) requireInCall() {
	rt.require(rt.inCall, "invocation outside of method call")
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.t.Fatalf(msg, args...)
	}
}

func (rt *Runtime) checkArgument(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.t.Fatalf(msg, args...)
	}
}

func (rt *Runtime) failTest(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Logf(msg, args...)
	rt.t.Fail()
}

func (rt *Runtime) failTestNow(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Fatalf(msg, args...)
}

func marshaledEquals(t testing.TB, expected, actual vmr.CBORMarshaler) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	expBuf, actBuf := new(bytes.Buffer), new(bytes.Buffer)
	if err := expected.MarshalCBOR(expBuf); err != nil {
		t.Fatalf("failed to marshal expected params: %v", err)
	}
	if err := actual.MarshalCBOR(actBuf); err != nil {
		t.Fatalf("failed to marshal actual params: %v", err)
	}
	return bytes.Equal(expBuf.Bytes(), actBuf.Bytes())
}

///// Wrapper for the return value of a mocked send /////

type ReturnWrapper struct {
	V vmr.CBORMarshaler
}

func (r ReturnWrapper) Into(o vmr.CBORUnmarshaler) error {
	if r.V == nil {
		return errors.New("no return value")
	}
	b := new(bytes.Buffer)
	if err := r.V.MarshalCBOR(b); err != nil {
		return err
	}
	return o.UnmarshalCBOR(b)
}

///// Utilities /////

// Checks that every non-nil entry after index 0 of an actor's export table is a
// function taking two parameters and returning one value; the parameter and
// return types themselves are not checked.
func CheckActorExports(t *testing.T, act abi.Invokee) {
	for i, m := range act.Exports() {
		if i == 0 { // Send is implicit
			continue
		}
		if m == nil {
			continue
		}
		meth := reflect.ValueOf(m)
		mt := meth.Type()
		if mt.Kind() != reflect.Func {
			t.Errorf("method %d is not a function", i)
			continue
		}
		if mt.NumIn() != 2 || mt.NumOut() != 1 {
			t.Errorf("method %d has wrong arity", i)
		}
	}
}
