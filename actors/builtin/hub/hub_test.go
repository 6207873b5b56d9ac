package hub_test

import (
	"bytes"
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
	big "github.com/erisprotocol/hub-actors/actors/abi/big"
	"github.com/erisprotocol/hub-actors/actors/builtin"
	"github.com/erisprotocol/hub-actors/actors/builtin/bank"
	"github.com/erisprotocol/hub-actors/actors/builtin/hub"
	init_ "github.com/erisprotocol/hub-actors/actors/builtin/init_"
	"github.com/erisprotocol/hub-actors/actors/builtin/staking"
	"github.com/erisprotocol/hub-actors/actors/builtin/token"
	"github.com/erisprotocol/hub-actors/actors/runtime/exitcode"
	"github.com/erisprotocol/hub-actors/actors/util/adt"
	"github.com/erisprotocol/hub-actors/support/mock"
	tutil "github.com/erisprotocol/hub-actors/support/testing"
)

const epochPeriod = uint64(259200)   // 3 days
const unbondPeriod = uint64(1814400) // 21 days

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, hub.Actor{})
}

type harness struct {
	hub.Actor
	t *testing.T

	receiver    addr.Address // the hub actor itself
	owner       addr.Address
	feeContract addr.Address
	stakeToken  addr.Address
}

func newHarness(t *testing.T) *harness {
	return &harness{
		t:           t,
		receiver:    tutil.NewIDAddr(t, 1000),
		owner:       tutil.NewIDAddr(t, 100),
		feeContract: tutil.NewIDAddr(t, 101),
		stakeToken:  tutil.NewIDAddr(t, 2000),
	}
}

func (h *harness) builder() *mock.RuntimeBuilder {
	return mock.NewBuilder(context.Background(), h.receiver).
		WithCaller(builtin.InitActorAddr).
		WithTime(10000)
}

func (h *harness) constructorParams() *hub.ConstructorParams {
	return &hub.ConstructorParams{
		Owner:               h.owner,
		TokenName:           "Stake Token",
		TokenSymbol:         "STAKE",
		TokenDecimals:       6,
		EpochPeriod:         epochPeriod,
		UnbondPeriod:        unbondPeriod,
		Validators:          []string{"alice", "bob", "charlie"},
		ProtocolFeeContract: h.feeContract,
		ProtocolRewardFee:   hub.NewBigFrac(1, 100), // 1%
	}
}

func (h *harness) constructAndVerify(rt *mock.Runtime, params *hub.ConstructorParams) {
	rt.ExpectValidateCallerAddr(builtin.InitActorAddr)

	tokenCtor := token.ConstructorParams{
		Name:     params.TokenName,
		Symbol:   params.TokenSymbol,
		Decimals: params.TokenDecimals,
		Minter:   h.receiver,
	}
	buf := new(bytes.Buffer)
	require.NoError(h.t, tokenCtor.MarshalCBOR(buf))
	rt.ExpectSend(builtin.InitActorAddr, builtin.MethodsInit.Exec,
		&init_.ExecParams{CodeCID: builtin.TokenActorCodeID, ConstructorParams: buf.Bytes()},
		big.Zero(),
		&init_.ExecReturn{IDAddress: h.stakeToken, RobustAddress: tutil.NewActorAddr(h.t, "stake token")},
		exitcode.Ok)

	ret := rt.Call(h.Constructor, params)
	assert.Nil(h.t, ret)
	rt.Verify()
	rt.Reset()
}

// Expectation helpers, declared in the order the hub performs the sends.

func (h *harness) expectQueryDelegations(rt *mock.Runtime, dels []staking.Delegation) {
	rt.ExpectSend(builtin.StakingActorAddr, builtin.MethodsStaking.AllDelegations,
		&staking.AllDelegationsParams{Delegator: h.receiver}, big.Zero(),
		&staking.AllDelegationsReturn{Delegations: dels}, exitcode.Ok)
}

func (h *harness) expectQueryDelegation(rt *mock.Runtime, validator string, amount int64) {
	rt.ExpectSend(builtin.StakingActorAddr, builtin.MethodsStaking.Delegation,
		&staking.DelegationParams{Delegator: h.receiver, Validator: validator}, big.Zero(),
		&staking.DelegationReturn{Delegation: staking.NewDelegation(validator, big.NewInt(amount))}, exitcode.Ok)
}

func (h *harness) expectQuerySupply(rt *mock.Runtime, supply int64) {
	rt.ExpectSend(h.stakeToken, builtin.MethodsToken.TotalSupply, nil, big.Zero(),
		&token.TotalSupplyReturn{Supply: big.NewInt(supply)}, exitcode.Ok)
}

func (h *harness) expectQueryBalance(rt *mock.Runtime, amount int64) {
	rt.ExpectSend(builtin.BankActorAddr, builtin.MethodsBank.Balance,
		&bank.BalanceParams{Address: h.receiver, Denom: hub.BondDenom}, big.Zero(),
		&bank.BalanceReturn{Balance: abi.NewCoin(hub.BondDenom, big.NewInt(amount))}, exitcode.Ok)
}

func (h *harness) expectDelegate(rt *mock.Runtime, validator string, amount int64) {
	rt.ExpectSend(builtin.StakingActorAddr, builtin.MethodsStaking.Delegate,
		&staking.DelegateParams{Validator: validator, Amount: big.NewInt(amount)}, big.Zero(), nil, exitcode.Ok)
}

func (h *harness) expectUndelegate(rt *mock.Runtime, validator string, amount int64) {
	rt.ExpectSend(builtin.StakingActorAddr, builtin.MethodsStaking.Undelegate,
		&staking.UndelegateParams{Validator: validator, Amount: big.NewInt(amount)}, big.Zero(), nil, exitcode.Ok)
}

func (h *harness) expectRedelegate(rt *mock.Runtime, src, dst string, amount int64) {
	rt.ExpectSend(builtin.StakingActorAddr, builtin.MethodsStaking.Redelegate,
		&staking.RedelegateParams{SrcValidator: src, DstValidator: dst, Amount: big.NewInt(amount)}, big.Zero(), nil, exitcode.Ok)
}

func (h *harness) expectWithdrawReward(rt *mock.Runtime, validator string) {
	rt.ExpectSend(builtin.StakingActorAddr, builtin.MethodsStaking.WithdrawDelegatorReward,
		&staking.WithdrawDelegatorRewardParams{Validator: validator}, big.Zero(), nil, exitcode.Ok)
}

func (h *harness) expectMint(rt *mock.Runtime, recipient addr.Address, amount int64) {
	rt.ExpectSend(h.stakeToken, builtin.MethodsToken.Mint,
		&token.MintParams{Recipient: recipient, Amount: big.NewInt(amount)}, big.Zero(), nil, exitcode.Ok)
}

func (h *harness) expectBurn(rt *mock.Runtime, amount int64) {
	rt.ExpectSend(h.stakeToken, builtin.MethodsToken.Burn,
		&token.BurnParams{Amount: big.NewInt(amount)}, big.Zero(), nil, exitcode.Ok)
}

func (h *harness) expectBankSend(rt *mock.Runtime, to addr.Address, amount int64) {
	rt.ExpectSend(builtin.BankActorAddr, builtin.MethodsBank.Send,
		&bank.SendParams{To: to, Coins: []abi.Coin{abi.NewCoin(hub.BondDenom, big.NewInt(amount))}},
		big.Zero(), nil, exitcode.Ok)
}

func (h *harness) expectCheckReceivedCoin(rt *mock.Runtime, snapshot int64) {
	rt.ExpectSend(h.receiver, builtin.MethodsHub.CheckReceivedCoin,
		&hub.CheckReceivedCoinParams{Snapshot: abi.NewCoin(hub.BondDenom, big.NewInt(snapshot))},
		big.Zero(), nil, exitcode.Ok)
}

func (h *harness) getState(rt *mock.Runtime) *hub.State {
	var st hub.State
	rt.GetState(&st)
	return &st
}

func findEvent(t *testing.T, rt *mock.Runtime, ty string) map[string]string {
	for _, evt := range rt.Events() {
		if evt.Type != ty {
			continue
		}
		attrs := make(map[string]string, len(evt.Attributes))
		for _, a := range evt.Attributes {
			attrs[a.Key] = a.Value
		}
		return attrs
	}
	t.Fatalf("no %s event emitted", ty)
	return nil
}

func TestConstruction(t *testing.T) {
	t.Run("simple construction", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		st := h.getState(rt)
		assert.Equal(t, h.owner, st.Owner)
		assert.Nil(t, st.NewOwner)
		assert.Equal(t, h.stakeToken, st.StakeToken)
		assert.Equal(t, epochPeriod, st.EpochPeriod)
		assert.Equal(t, unbondPeriod, st.UnbondPeriod)
		assert.Equal(t, h.feeContract, st.FeeConfig.ProtocolFeeContract)
		assert.Equal(t, hub.NewBigFrac(1, 100), st.FeeConfig.ProtocolRewardFee)
		assert.Equal(t, []string{"alice", "bob", "charlie"}, st.Validators)
		assert.Empty(t, st.UnlockedCoins)

		assert.Equal(t, uint64(1), st.PendingBatch.ID)
		assert.Equal(t, big.Zero(), st.PendingBatch.UstakeToBurn)
		assert.Equal(t, abi.Timestamp(10000+epochPeriod), st.PendingBatch.EstUnbondStartTime)

		empty, err := st.UnreconciledBatches.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("validators are deduped", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		params := h.constructorParams()
		params.Validators = []string{"alice", "bob", "alice", "charlie", "bob"}
		h.constructAndVerify(rt, params)

		st := h.getState(rt)
		assert.Equal(t, []string{"alice", "bob", "charlie"}, st.Validators)
	})

	t.Run("rejects fee above cap", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		params := h.constructorParams()
		params.ProtocolRewardFee = hub.NewBigFrac(11, 100)

		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "'protocol_reward_fee' greater than max", func() {
			rt.Call(h.Constructor, params)
		})
	})
}

func TestBond(t *testing.T) {
	user1 := func(t *testing.T) addr.Address { return tutil.NewIDAddr(t, 200) }

	t.Run("bootstrap bond delegates to the first validator and mints 1:1", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		user := user1(t)
		rt.SetCaller(user)
		rt.SetReceived(big.NewInt(1_000_000))

		rt.ExpectValidateCallerAny()
		h.expectQueryDelegations(rt, nil) // no delegations yet; whitelist joins to zeros
		h.expectQuerySupply(rt, 0)
		h.expectQueryBalance(rt, 1_000_000) // the deposit already arrived
		h.expectDelegate(rt, "alice", 1_000_000)
		h.expectMint(rt, user, 1_000_000)
		h.expectCheckReceivedCoin(rt, 0) // snapshot nets out the deposit

		rt.Call(h.Bond, &hub.BondParams{})
		rt.Verify()

		attrs := findEvent(t, rt, "erishub/bonded")
		assert.Equal(t, user.String(), attrs["receiver"])
		assert.Equal(t, "1000000", attrs["token_bonded"])
		assert.Equal(t, "1000000", attrs["ustake_minted"])
	})

	t.Run("bond delegates to the smallest validator", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		user := user1(t)
		receiver := tutil.NewIDAddr(t, 201)
		rt.SetCaller(user)
		rt.SetReceived(big.NewInt(100))

		rt.ExpectValidateCallerAny()
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(400)),
			staking.NewDelegation("bob", big.NewInt(300)),
			staking.NewDelegation("charlie", big.NewInt(500)),
		})
		h.expectQuerySupply(rt, 1200)
		h.expectQueryBalance(rt, 100)
		h.expectDelegate(rt, "bob", 100)
		h.expectMint(rt, receiver, 100) // rate exactly 1.0
		h.expectCheckReceivedCoin(rt, 0)

		rt.Call(h.Bond, &hub.BondParams{Receiver: &receiver})
		rt.Verify()
	})

	t.Run("donate bonds without minting", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(user1(t))
		rt.SetReceived(big.NewInt(100))

		rt.ExpectValidateCallerAny()
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(400)),
		})
		h.expectQuerySupply(rt, 400)
		h.expectQueryBalance(rt, 100)
		h.expectDelegate(rt, "bob", 100) // whitelist join leaves bob and charlie at zero
		h.expectCheckReceivedCoin(rt, 0)

		rt.Call(h.Donate, &adt.EmptyValue{})
		rt.Verify()

		attrs := findEvent(t, rt, "erishub/bonded")
		assert.Equal(t, "0", attrs["ustake_minted"])
	})

	t.Run("rejects empty deposit", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(user1(t))
		rt.SetReceived(big.Zero())
		rt.ExpectValidateCallerAny()
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "no ujuno deposited", func() {
			rt.Call(h.Bond, &hub.BondParams{})
		})
	})
}

func TestHarvestAndReinvest(t *testing.T) {
	t.Run("harvest withdraws rewards then schedules callbacks", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(341667)),
			staking.NewDelegation("bob", big.NewInt(341667)),
			staking.NewDelegation("charlie", big.Zero()), // zero delegations are skipped
		})
		h.expectQueryBalance(rt, 200) // pre-reward snapshot
		h.expectWithdrawReward(rt, "alice")
		h.expectWithdrawReward(rt, "bob")
		h.expectCheckReceivedCoin(rt, 200)
		rt.ExpectSend(h.receiver, builtin.MethodsHub.Reinvest, nil, big.Zero(), nil, exitcode.Ok)

		rt.Call(h.Harvest, &adt.EmptyValue{})
		rt.Verify()
	})

	t.Run("callback credits the received delta to unlocked coins", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		// The ledger already tracks 200 ujuno of earlier rewards.
		st := h.getState(rt)
		st.AddUnlockedCoin(abi.NewCoin(hub.BondDenom, big.NewInt(200)))
		rt.ReplaceState(st)

		rt.SetCaller(h.receiver)
		rt.ExpectValidateCallerAddr(h.receiver)
		h.expectQueryBalance(rt, 800) // snapshot was 100; 700 arrived since

		rt.Call(h.CheckReceivedCoin, &hub.CheckReceivedCoinParams{
			Snapshot: abi.NewCoin(hub.BondDenom, big.NewInt(100)),
		})
		rt.Verify()

		st = h.getState(rt)
		unlocked, found := st.UnlockedAmount(hub.BondDenom)
		assert.True(t, found)
		assert.Equal(t, big.NewInt(900), unlocked)

		attrs := findEvent(t, rt, "erishub/callback_received_coins")
		assert.Equal(t, "700ujuno", attrs["received_coin"])
	})

	t.Run("callback is a no-op when nothing arrived", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(h.receiver)
		rt.ExpectValidateCallerAddr(h.receiver)
		h.expectQueryBalance(rt, 100)

		rt.Call(h.CheckReceivedCoin, &hub.CheckReceivedCoinParams{
			Snapshot: abi.NewCoin(hub.BondDenom, big.NewInt(100)),
		})
		rt.Verify()

		st := h.getState(rt)
		assert.Empty(t, st.UnlockedCoins)
	})

	t.Run("callback aborts when balance falls below snapshot", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(h.receiver)
		rt.ExpectValidateCallerAddr(h.receiver)
		h.expectQueryBalance(rt, 99)

		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.CheckReceivedCoin, &hub.CheckReceivedCoinParams{
				Snapshot: abi.NewCoin(hub.BondDenom, big.NewInt(100)),
			})
		})
	})

	t.Run("callback rejects callers other than the hub", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAddr(h.receiver)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.CheckReceivedCoin, &hub.CheckReceivedCoinParams{
				Snapshot: abi.NewCoin(hub.BondDenom, big.NewInt(100)),
			})
		})
	})

	t.Run("reinvest bonds the available amount net of the fee", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		st := h.getState(rt)
		st.AddUnlockedCoin(abi.NewCoin(hub.BondDenom, big.NewInt(900)))
		st.AddUnlockedCoin(abi.NewCoin("ibc/test", big.NewInt(77)))
		rt.ReplaceState(st)

		rt.SetCaller(h.receiver)
		rt.ExpectValidateCallerAddr(h.receiver)
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(500)),
			staking.NewDelegation("bob", big.NewInt(400)),
			staking.NewDelegation("charlie", big.NewInt(450)),
		})
		h.expectDelegate(rt, "bob", 891)          // 900 - fee
		h.expectBankSend(rt, h.feeContract, 9)    // floor(900 * 1%)

		rt.Call(h.Reinvest, &adt.EmptyValue{})
		rt.Verify()

		st = h.getState(rt)
		_, found := st.UnlockedAmount(hub.BondDenom)
		assert.False(t, found)
		other, found := st.UnlockedAmount("ibc/test")
		assert.True(t, found)
		assert.Equal(t, big.NewInt(77), other)

		attrs := findEvent(t, rt, "erishub/harvested")
		assert.Equal(t, "891", attrs["utoken_bonded"])
		assert.Equal(t, "9", attrs["utoken_protocol_fee"])
	})

	t.Run("reinvest fails without unlocked coins of the bond denom", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(h.receiver)
		rt.ExpectValidateCallerAddr(h.receiver)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalState, "no ujuno available to be bonded", func() {
			rt.Call(h.Reinvest, &adt.EmptyValue{})
		})
	})
}

func TestUnbondPipeline(t *testing.T) {
	user := func(t *testing.T) addr.Address { return tutil.NewIDAddr(t, 200) }

	t.Run("queue accumulates into the pending batch", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		u := user(t)
		rt.SetCaller(u)
		rt.ExpectValidateCallerAny()
		rt.Call(h.QueueUnbond, &hub.QueueUnbondParams{UstakeToBurn: big.NewInt(100)})
		rt.Verify()

		st := h.getState(rt)
		assert.Equal(t, big.NewInt(100), st.PendingBatch.UstakeToBurn)
		request, found, err := st.GetUnbondRequest(rt.AdtStore(), 1, u)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, big.NewInt(100), request.Shares)

		attrs := findEvent(t, rt, "erishub/unbond_queued")
		assert.Equal(t, "269200", attrs["est_unbond_start_time"])
		assert.Equal(t, "1", attrs["id"])
		assert.Equal(t, "100", attrs["ustake_to_burn"])
	})

	t.Run("queue at the epoch boundary submits immediately", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		u := user(t)
		rt.SetCaller(u)

		rt.ExpectValidateCallerAny()
		rt.Call(h.QueueUnbond, &hub.QueueUnbondParams{UstakeToBurn: big.NewInt(100)})
		rt.Verify()
		rt.Reset()

		rt.SetTime(abi.Timestamp(269200))
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(h.receiver, builtin.MethodsHub.SubmitBatch, nil, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.QueueUnbond, &hub.QueueUnbondParams{UstakeToBurn: big.NewInt(50)})
		rt.Verify()

		st := h.getState(rt)
		assert.Equal(t, big.NewInt(150), st.PendingBatch.UstakeToBurn)
		request, found, err := st.GetUnbondRequest(rt.AdtStore(), 1, u)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, big.NewInt(150), request.Shares)

		attrs := findEvent(t, rt, "erishub/unbond_queued")
		assert.Equal(t, "immediate", attrs["est_unbond_start_time"])
	})

	t.Run("submit archives the batch and rotates the pending one", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		u := user(t)
		rt.SetCaller(u)
		rt.ExpectValidateCallerAny()
		rt.Call(h.QueueUnbond, &hub.QueueUnbondParams{UstakeToBurn: big.NewInt(150)})
		rt.Verify()
		rt.Reset()

		rt.SetTime(abi.Timestamp(269200))
		rt.ExpectValidateCallerAny()
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(500)),
			staking.NewDelegation("bob", big.NewInt(500)),
			staking.NewDelegation("charlie", big.NewInt(500)),
		})
		h.expectQuerySupply(rt, 1500)
		h.expectQueryBalance(rt, 0)
		h.expectUndelegate(rt, "alice", 50)
		h.expectUndelegate(rt, "bob", 50)
		h.expectUndelegate(rt, "charlie", 50)
		h.expectBurn(rt, 150)
		h.expectCheckReceivedCoin(rt, 0)

		rt.Call(h.SubmitBatch, &adt.EmptyValue{})
		rt.Verify()

		st := h.getState(rt)
		batch, found, err := st.GetBatch(rt.AdtStore(), 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.False(t, batch.Reconciled)
		assert.Equal(t, big.NewInt(150), batch.TotalShares)
		assert.Equal(t, big.NewInt(150), batch.UtokenUnclaimed)
		assert.Equal(t, abi.Timestamp(269200+unbondPeriod), batch.EstUnbondEndTime)

		assert.Equal(t, uint64(2), st.PendingBatch.ID)
		assert.Equal(t, big.Zero(), st.PendingBatch.UstakeToBurn)
		assert.Equal(t, abi.Timestamp(269200+epochPeriod), st.PendingBatch.EstUnbondStartTime)

		unreconciled, err := st.UnreconciledBatches.IsSet(1)
		require.NoError(t, err)
		assert.True(t, unreconciled)

		attrs := findEvent(t, rt, "erishub/unbond_submitted")
		assert.Equal(t, "1", attrs["id"])
		assert.Equal(t, "150", attrs["utoken_unbonded"])
		assert.Equal(t, "150", attrs["ustake_burned"])
	})

	t.Run("submit before the start time fails", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(user(t))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "batch can only be submitted for unbonding after 269200", func() {
			rt.Call(h.SubmitBatch, &adt.EmptyValue{})
		})
	})
}

// Seeds two archived, unreconciled batches with 600 and 400 unclaimed tokens,
// matured at 2_083_600.
func seedUnreconciledBatches(t *testing.T, h *harness, rt *mock.Runtime) {
	st := h.getState(rt)
	store := rt.AdtStore()
	require.NoError(t, st.PutBatch(store, &hub.Batch{
		ID: 1, Reconciled: false, TotalShares: big.NewInt(600), UtokenUnclaimed: big.NewInt(600), EstUnbondEndTime: 2083600,
	}))
	require.NoError(t, st.PutBatch(store, &hub.Batch{
		ID: 2, Reconciled: false, TotalShares: big.NewInt(400), UtokenUnclaimed: big.NewInt(400), EstUnbondEndTime: 2083600,
	}))
	st.UnreconciledBatches.Set(1)
	st.UnreconciledBatches.Set(2)
	rt.ReplaceState(st)
}

func TestReconcile(t *testing.T) {
	t.Run("deficit is deducted pro rata", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())
		seedUnreconciledBatches(t, h, rt)

		rt.SetTime(3000000)
		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		h.expectQueryBalance(rt, 980) // 20 short of the expected 1000

		rt.Call(h.Reconcile, &adt.EmptyValue{})
		rt.Verify()

		st := h.getState(rt)
		batch1, _, err := st.GetBatch(rt.AdtStore(), 1)
		require.NoError(t, err)
		batch2, _, err := st.GetBatch(rt.AdtStore(), 2)
		require.NoError(t, err)
		assert.True(t, batch1.Reconciled)
		assert.True(t, batch2.Reconciled)
		assert.Equal(t, big.NewInt(588), batch1.UtokenUnclaimed)
		assert.Equal(t, big.NewInt(392), batch2.UtokenUnclaimed)

		empty, err := st.UnreconciledBatches.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)

		attrs := findEvent(t, rt, "erishub/reconciled")
		assert.Equal(t, "1,2", attrs["ids"])
		assert.Equal(t, "20", attrs["utoken_deducted"])
	})

	t.Run("no deficit only flips the flag", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())
		seedUnreconciledBatches(t, h, rt)

		// 50 unlocked ujuno are expected on top of the batches.
		st := h.getState(rt)
		st.AddUnlockedCoin(abi.NewCoin(hub.BondDenom, big.NewInt(50)))
		rt.ReplaceState(st)

		rt.SetTime(3000000)
		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		h.expectQueryBalance(rt, 1050)

		rt.Call(h.Reconcile, &adt.EmptyValue{})
		rt.Verify()

		st = h.getState(rt)
		batch1, _, err := st.GetBatch(rt.AdtStore(), 1)
		require.NoError(t, err)
		assert.True(t, batch1.Reconciled)
		assert.Equal(t, big.NewInt(600), batch1.UtokenUnclaimed)

		attrs := findEvent(t, rt, "erishub/reconciled")
		assert.Equal(t, "0", attrs["utoken_deducted"])
	})

	t.Run("nothing matured is a no-op", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())
		seedUnreconciledBatches(t, h, rt)

		rt.SetTime(2000000) // before the batches mature
		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()

		rt.Call(h.Reconcile, &adt.EmptyValue{})
		rt.Verify()

		st := h.getState(rt)
		batch1, _, err := st.GetBatch(rt.AdtStore(), 1)
		require.NoError(t, err)
		assert.False(t, batch1.Reconciled)
	})
}

func TestWithdrawUnbonded(t *testing.T) {
	seed := func(t *testing.T, h *harness, rt *mock.Runtime, totalShares, unclaimed, userShares int64, user addr.Address) {
		st := h.getState(rt)
		store := rt.AdtStore()
		require.NoError(t, st.PutBatch(store, &hub.Batch{
			ID: 1, Reconciled: true, TotalShares: big.NewInt(totalShares),
			UtokenUnclaimed: big.NewInt(unclaimed), EstUnbondEndTime: 2083600,
		}))
		require.NoError(t, st.PutUnbondRequest(store, 1, user, big.NewInt(userShares)))
		rt.ReplaceState(st)
	}

	t.Run("full withdrawal drains and removes the batch", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		user := tutil.NewIDAddr(t, 200)
		receiver := tutil.NewIDAddr(t, 201)
		seed(t, h, rt, 150, 392, 150, user)

		rt.SetTime(3000000)
		rt.SetCaller(user)
		rt.ExpectValidateCallerAny()
		h.expectBankSend(rt, receiver, 392)

		rt.Call(h.WithdrawUnbonded, &hub.WithdrawUnbondedParams{Receiver: &receiver})
		rt.Verify()

		st := h.getState(rt)
		_, found, err := st.GetBatch(rt.AdtStore(), 1)
		require.NoError(t, err)
		assert.False(t, found)
		_, found, err = st.GetUnbondRequest(rt.AdtStore(), 1, user)
		require.NoError(t, err)
		assert.False(t, found)
		ids, err := st.UserBatchIDs(rt.AdtStore(), user)
		require.NoError(t, err)
		assert.Empty(t, ids)

		attrs := findEvent(t, rt, "erishub/unbonded_withdrawn")
		assert.Equal(t, "1", attrs["ids"])
		assert.Equal(t, "392", attrs["utoken_refunded"])
		assert.Equal(t, receiver.String(), attrs["receiver"])
	})

	t.Run("partial withdrawal decrements both counters", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		user := tutil.NewIDAddr(t, 200)
		seed(t, h, rt, 300, 392, 150, user)

		rt.SetTime(3000000)
		rt.SetCaller(user)
		rt.ExpectValidateCallerAny()
		h.expectBankSend(rt, user, 196) // floor(392 * 150 / 300)

		rt.Call(h.WithdrawUnbonded, &hub.WithdrawUnbondedParams{})
		rt.Verify()

		st := h.getState(rt)
		batch, found, err := st.GetBatch(rt.AdtStore(), 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, big.NewInt(150), batch.TotalShares)
		assert.Equal(t, big.NewInt(196), batch.UtokenUnclaimed)
	})

	t.Run("immature batches are skipped", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		user := tutil.NewIDAddr(t, 200)
		seed(t, h, rt, 150, 392, 150, user)

		rt.SetTime(1000000) // before maturity
		rt.SetCaller(user)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "withdrawable amount is zero", func() {
			rt.Call(h.WithdrawUnbonded, &hub.WithdrawUnbondedParams{})
		})
	})

	t.Run("orphaned requests are swept silently", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		user := tutil.NewIDAddr(t, 200)
		seed(t, h, rt, 150, 392, 150, user)

		// A leftover request against a batch that no longer exists.
		st := h.getState(rt)
		require.NoError(t, st.PutUnbondRequest(rt.AdtStore(), 5, user, big.NewInt(10)))
		rt.ReplaceState(st)

		rt.SetTime(3000000)
		rt.SetCaller(user)
		rt.ExpectValidateCallerAny()
		h.expectBankSend(rt, user, 392)

		rt.Call(h.WithdrawUnbonded, &hub.WithdrawUnbondedParams{})
		rt.Verify()

		st = h.getState(rt)
		_, found, err := st.GetUnbondRequest(rt.AdtStore(), 5, user)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestRebalance(t *testing.T) {
	t.Run("balanced delegations move nothing", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(341667)),
			staking.NewDelegation("bob", big.NewInt(341667)),
			staking.NewDelegation("charlie", big.NewInt(341666)),
		})
		h.expectQueryBalance(rt, 0)
		h.expectCheckReceivedCoin(rt, 0)

		rt.Call(h.Rebalance, &adt.EmptyValue{})
		rt.Verify()

		attrs := findEvent(t, rt, "erishub/rebalanced")
		assert.Equal(t, "0", attrs["utoken_moved"])
	})

	t.Run("lopsided delegations are spread out", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(1000000)),
		})
		h.expectQueryBalance(rt, 0)
		h.expectRedelegate(rt, "alice", "bob", 333333)
		h.expectRedelegate(rt, "alice", "charlie", 333333)
		h.expectCheckReceivedCoin(rt, 0)

		rt.Call(h.Rebalance, &adt.EmptyValue{})
		rt.Verify()

		attrs := findEvent(t, rt, "erishub/rebalanced")
		assert.Equal(t, "666666", attrs["utoken_moved"])
	})
}

func TestValidatorWhitelist(t *testing.T) {
	t.Run("owner adds a validator", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		rt.Call(h.AddValidator, &hub.ValidatorParams{Validator: "dave"})
		rt.Verify()

		st := h.getState(rt)
		assert.Equal(t, []string{"alice", "bob", "charlie", "dave"}, st.Validators)
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "validator is already whitelisted", func() {
			rt.Call(h.AddValidator, &hub.ValidatorParams{Validator: "bob"})
		})
	})

	t.Run("non-owner cannot mutate the whitelist", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAddr(h.owner)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.AddValidator, &hub.ValidatorParams{Validator: "dave"})
		})
	})

	t.Run("removal redelegates onto the remaining whitelist", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(400)),
			staking.NewDelegation("bob", big.NewInt(400)),
		})
		h.expectQueryDelegation(rt, "charlie", 400)
		h.expectQueryBalance(rt, 0)
		h.expectRedelegate(rt, "charlie", "alice", 200)
		h.expectRedelegate(rt, "charlie", "bob", 200)
		h.expectCheckReceivedCoin(rt, 0)

		rt.Call(h.RemoveValidator, &hub.ValidatorParams{Validator: "charlie"})
		rt.Verify()

		st := h.getState(rt)
		assert.Equal(t, []string{"alice", "bob"}, st.Validators)
	})

	t.Run("removing an unknown validator fails", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "validator is not already whitelisted", func() {
			rt.Call(h.RemoveValidator, &hub.ValidatorParams{Validator: "dave"})
		})
	})
}

func TestOwnership(t *testing.T) {
	t.Run("two-phase transfer", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		newOwner := tutil.NewIDAddr(t, 300)

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		rt.Call(h.TransferOwnership, &hub.TransferOwnershipParams{NewOwner: newOwner})
		rt.Verify()

		st := h.getState(rt)
		require.NotNil(t, st.NewOwner)
		assert.Equal(t, newOwner, *st.NewOwner)
		assert.Equal(t, h.owner, st.Owner) // not transferred yet

		rt.SetCaller(newOwner)
		rt.ExpectValidateCallerAny()
		rt.Call(h.AcceptOwnership, &adt.EmptyValue{})
		rt.Verify()

		st = h.getState(rt)
		assert.Equal(t, newOwner, st.Owner)
		assert.Nil(t, st.NewOwner)

		attrs := findEvent(t, rt, "erishub/ownership_transferred")
		assert.Equal(t, newOwner.String(), attrs["new_owner"])
		assert.Equal(t, h.owner.String(), attrs["previous_owner"])
	})

	t.Run("only the pending owner can accept", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		newOwner := tutil.NewIDAddr(t, 300)
		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		rt.Call(h.TransferOwnership, &hub.TransferOwnershipParams{NewOwner: newOwner})
		rt.Verify()
		rt.Reset()

		rt.SetCaller(tutil.NewIDAddr(t, 301))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbortContainsMessage(exitcode.ErrForbidden, "unauthorized: sender is not new owner", func() {
			rt.Call(h.AcceptOwnership, &adt.EmptyValue{})
		})
	})

	t.Run("accept without a pending transfer fails", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 301))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.AcceptOwnership, &adt.EmptyValue{})
		})
	})
}

func TestUpdateConfig(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		newFee := hub.NewBigFrac(5, 100)
		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		rt.Call(h.UpdateConfig, &hub.UpdateConfigParams{ProtocolRewardFee: &newFee})
		rt.Verify()

		st := h.getState(rt)
		assert.Equal(t, newFee, st.FeeConfig.ProtocolRewardFee)
		assert.Equal(t, h.feeContract, st.FeeConfig.ProtocolFeeContract)
	})

	t.Run("fee cap is enforced", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		overCap := hub.NewBigFrac(11, 100)
		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAddr(h.owner)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "'protocol_reward_fee' greater than max", func() {
			rt.Call(h.UpdateConfig, &hub.UpdateConfigParams{ProtocolRewardFee: &overCap})
		})
	})
}

func TestQueries(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.Config, &adt.EmptyValue{}).(*hub.ConfigReturn)
		rt.Verify()

		assert.Equal(t, h.owner, ret.Owner)
		assert.Nil(t, ret.NewOwner)
		assert.Equal(t, h.stakeToken, ret.StakeToken)
		assert.Equal(t, epochPeriod, ret.EpochPeriod)
		assert.Equal(t, unbondPeriod, ret.UnbondPeriod)
		assert.Equal(t, []string{"alice", "bob", "charlie"}, ret.Validators)
	})

	t.Run("hub state totals", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())
		seedUnreconciledBatches(t, h, rt)

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		h.expectQuerySupply(rt, 1000)
		h.expectQueryDelegations(rt, []staking.Delegation{
			staking.NewDelegation("alice", big.NewInt(600)),
			staking.NewDelegation("bob", big.NewInt(450)),
		})
		h.expectQueryBalance(rt, 100)

		ret := rt.Call(h.HubState, &adt.EmptyValue{}).(*hub.StateReturn)
		rt.Verify()

		assert.Equal(t, big.NewInt(1000), ret.TotalUstake)
		assert.Equal(t, big.NewInt(1050), ret.TotalUtoken)
		assert.Equal(t, hub.BigFrac{Numerator: big.NewInt(1050), Denominator: big.NewInt(1000)}, ret.ExchangeRate)
		assert.Equal(t, big.NewInt(1000), ret.Unbonding) // 600 + 400 unclaimed
		assert.Equal(t, big.NewInt(100), ret.Available)
		assert.Equal(t, big.NewInt(2150), ret.TvlUtoken)
	})

	t.Run("pending batch", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.CurrentPendingBatch, &adt.EmptyValue{}).(*hub.PendingBatch)
		rt.Verify()

		assert.Equal(t, uint64(1), ret.ID)
		assert.Equal(t, abi.Timestamp(269200), ret.EstUnbondStartTime)
	})

	t.Run("previous batches paginate", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		st := h.getState(rt)
		store := rt.AdtStore()
		for id := uint64(1); id <= 5; id++ {
			require.NoError(t, st.PutBatch(store, &hub.Batch{
				ID: id, Reconciled: true, TotalShares: big.NewInt(1), UtokenUnclaimed: big.NewInt(1), EstUnbondEndTime: 1,
			}))
		}
		rt.ReplaceState(st)

		rt.SetCaller(tutil.NewIDAddr(t, 200))
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.PreviousBatches, &hub.PreviousBatchesParams{StartAfter: 2, Limit: 2}).(*hub.PreviousBatchesReturn)
		rt.Verify()

		require.Len(t, ret.Batches, 2)
		assert.Equal(t, uint64(3), ret.Batches[0].ID)
		assert.Equal(t, uint64(4), ret.Batches[1].ID)

		rt.Reset()
		rt.ExpectValidateCallerAny()
		ret = rt.Call(h.PreviousBatches, &hub.PreviousBatchesParams{}).(*hub.PreviousBatchesReturn)
		rt.Verify()
		require.Len(t, ret.Batches, 5) // all fit under the default limit
	})

	t.Run("unbond requests by batch and user", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.constructAndVerify(rt, h.constructorParams())

		user1 := tutil.NewIDAddr(t, 200)
		user2 := tutil.NewIDAddr(t, 201)
		st := h.getState(rt)
		store := rt.AdtStore()
		require.NoError(t, st.PutUnbondRequest(store, 1, user1, big.NewInt(100)))
		require.NoError(t, st.PutUnbondRequest(store, 1, user2, big.NewInt(50)))
		require.NoError(t, st.PutUnbondRequest(store, 2, user1, big.NewInt(25)))
		rt.ReplaceState(st)

		rt.SetCaller(user1)
		rt.ExpectValidateCallerAny()
		byBatch := rt.Call(h.UnbondRequestsByBatch, &hub.UnbondRequestsByBatchParams{ID: 1}).(*hub.UnbondRequestsReturn)
		rt.Verify()
		require.Len(t, byBatch.Requests, 2)

		rt.Reset()
		rt.ExpectValidateCallerAny()
		byUser := rt.Call(h.UnbondRequestsByUser, &hub.UnbondRequestsByUserParams{User: user1}).(*hub.UnbondRequestsReturn)
		rt.Verify()
		require.Len(t, byUser.Requests, 2)
		assert.Equal(t, uint64(1), byUser.Requests[0].ID)
		assert.Equal(t, big.NewInt(100), byUser.Requests[0].Shares)
		assert.Equal(t, uint64(2), byUser.Requests[1].ID)
		assert.Equal(t, big.NewInt(25), byUser.Requests[1].Shares)
	})
}
