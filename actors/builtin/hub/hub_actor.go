package hub

import (
	"bytes"
	"strconv"
	"strings"

	addr "github.com/filecoin-project/go-address"
	bitfield "github.com/filecoin-project/go-bitfield"
	"golang.org/x/xerrors"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
	big "github.com/erisprotocol/hub-actors/actors/abi/big"
	builtin "github.com/erisprotocol/hub-actors/actors/builtin"
	bank "github.com/erisprotocol/hub-actors/actors/builtin/bank"
	init_ "github.com/erisprotocol/hub-actors/actors/builtin/init_"
	staking "github.com/erisprotocol/hub-actors/actors/builtin/staking"
	token "github.com/erisprotocol/hub-actors/actors/builtin/token"
	vmr "github.com/erisprotocol/hub-actors/actors/runtime"
	exitcode "github.com/erisprotocol/hub-actors/actors/runtime/exitcode"
	adt "github.com/erisprotocol/hub-actors/actors/util/adt"
)

type Runtime = vmr.Runtime

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Bond,
		3:                         a.Donate,
		4:                         a.QueueUnbond,
		5:                         a.SubmitBatch,
		6:                         a.Reconcile,
		7:                         a.WithdrawUnbonded,
		8:                         a.Harvest,
		9:                         a.Rebalance,
		10:                        a.AddValidator,
		11:                        a.RemoveValidator,
		12:                        a.TransferOwnership,
		13:                        a.AcceptOwnership,
		14:                        a.UpdateConfig,
		15:                        a.CheckReceivedCoin,
		16:                        a.Reinvest,
		17:                        a.Config,
		18:                        a.HubState,
		19:                        a.CurrentPendingBatch,
		20:                        a.PreviousBatch,
		21:                        a.PreviousBatches,
		22:                        a.UnbondRequestsByBatch,
		23:                        a.UnbondRequestsByUser,
	}
}

var _ abi.Invokee = Actor{}

/////////////////
// Constructor //
/////////////////

type ConstructorParams struct {
	Owner               addr.Address
	TokenName           string
	TokenSymbol         string
	TokenDecimals       uint64
	EpochPeriod         uint64
	UnbondPeriod        uint64
	Validators          []string
	ProtocolFeeContract addr.Address
	ProtocolRewardFee   BigFrac
}

func (a Actor) Constructor(rt Runtime, params *ConstructorParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	if params.ProtocolRewardFee.GreaterThan(RewardFeeCap()) {
		rt.Abortf(exitcode.ErrIllegalArgument, "'protocol_reward_fee' greater than max")
	}

	validators := DedupeValidators(params.Validators)

	st, err := ConstructState(adt.AsStore(rt), params.Owner, params.EpochPeriod, params.UnbondPeriod,
		FeeConfig{
			ProtocolFeeContract: params.ProtocolFeeContract,
			ProtocolRewardFee:   params.ProtocolRewardFee,
		},
		validators, rt.CurrTime())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")

	// Instantiate the receipt token with the hub as its sole minter.
	st.StakeToken = requestTokenInstantiation(rt, params.TokenName, params.TokenSymbol, params.TokenDecimals)

	rt.State().Create(st)
	return nil
}

/////////////////////////
// Bonding and harvest //
/////////////////////////

type BondParams struct {
	// Account credited with the minted stake token; the caller if unset.
	Receiver *addr.Address
}

// NOTE: In a previous implementation, deposits were split over all validators
// so that they all carry the same delegation. That is quite gas-expensive, so
// we simply delegate the whole deposit to the validator with the smallest
// delegation. If delegations become severely unbalanced as a result (e.g.
// one very large deposit), anyone may invoke Rebalance to even them out.
func (a Actor) Bond(rt Runtime, params *BondParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	receiver := rt.Message().Caller()
	if params.Receiver != nil {
		receiver = *params.Receiver
	}
	return a.bond(rt, receiver, false)
}

// Donate bonds the deposit without minting, pushing the exchange rate up for
// all existing holders.
func (a Actor) Donate(rt Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	return a.bond(rt, rt.Message().Caller(), true)
}

func (a Actor) bond(rt Runtime, receiver addr.Address, donate bool) *adt.EmptyValue {
	utokenToBond := rt.Message().ValueReceived()
	if utokenToBond.NilOrZero() {
		rt.Abortf(exitcode.ErrIllegalArgument, "no %s deposited", BondDenom)
	}

	var st State
	rt.State().Readonly(&st)
	if len(st.Validators) == 0 {
		rt.Abortf(exitcode.ErrIllegalState, "validator whitelist is empty")
	}

	delegations := requestDelegations(rt, st.Validators)
	newDelegation := PickSmallestDelegation(delegations)

	ustakeSupply := requestTotalSupply(rt, st.StakeToken)
	ustakeToMint := big.Zero()
	if !donate {
		ustakeToMint = ComputeMintAmount(ustakeSupply, utokenToBond, delegations)
	}

	// The deposit arrived with this message and is about to be consumed by
	// the delegation, so it is excluded from the snapshot.
	snapshot := balanceSnapshot(rt, &utokenToBond)

	requestDelegate(rt, newDelegation.Validator, utokenToBond)
	if !donate && !ustakeToMint.IsZero() {
		requestMint(rt, st.StakeToken, receiver, ustakeToMint)
	}
	requestCheckReceivedCoin(rt, snapshot)

	rt.EmitEvent(vmr.NewEvent("erishub/bonded",
		"time", formatTime(rt),
		"height", formatHeight(rt),
		"receiver", receiver.String(),
		"token_bonded", utokenToBond.String(),
		"ustake_minted", ustakeToMint.String(),
	))
	return nil
}

// Harvest withdraws the accrued rewards of every delegation, then reinvests
// them net of the protocol fee. Open to anyone willing to pay the gas.
func (a Actor) Harvest(rt Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	delegations := requestAllDelegations(rt)

	// Snapshot before the withdrawals execute so the callback attributes
	// exactly the rewards received by them.
	snapshot := balanceSnapshot(rt, nil)

	for _, d := range delegations {
		if d.Amount.IsZero() {
			continue
		}
		requestWithdrawDelegatorReward(rt, d.Validator)
	}

	requestCheckReceivedCoin(rt, snapshot)
	requestReinvest(rt)
	return nil
}

type CheckReceivedCoinParams struct {
	Snapshot abi.Coin
}

// CheckReceivedCoin compares the current bank balance against a snapshot
// taken before the preceding fund-moving messages executed, and credits any
// surplus to the unlocked-coin ledger.
func (a Actor) CheckReceivedCoin(rt Runtime, params *CheckReceivedCoinParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(rt.Message().Receiver())

	currentBalance := requestBalance(rt, rt.Message().Receiver(), params.Snapshot.Denom)
	if currentBalance.LessThan(params.Snapshot.Amount) {
		rt.Abortf(exitcode.ErrIllegalState, "current balance %v below snapshot %v", currentBalance, params.Snapshot.Amount)
	}

	received := big.Sub(currentBalance, params.Snapshot.Amount)

	evt := vmr.NewEvent("erishub/callback_received_coins")
	if !received.IsZero() {
		evt.Attributes = append(evt.Attributes, vmr.EventAttribute{
			Key:   "received_coin",
			Value: received.String() + params.Snapshot.Denom,
		})

		var st State
		rt.State().Transaction(&st, func() {
			st.AddUnlockedCoin(abi.NewCoin(params.Snapshot.Denom, received))
		})
	}
	rt.EmitEvent(evt)
	return nil
}

// Reinvest bonds the unlocked coins of the canonical denom, skimming the
// protocol fee. Only invoked by the hub itself, trailing a Harvest.
//
// NOTE: no balance snapshot is needed here: all claimable rewards were
// already withdrawn earlier in the same atomic execution.
func (a Actor) Reinvest(rt Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(rt.Message().Receiver())

	var st State
	rt.State().Readonly(&st)
	if len(st.Validators) == 0 {
		rt.Abortf(exitcode.ErrIllegalState, "validator whitelist is empty")
	}

	utokenAvailable, found := st.UnlockedAmount(BondDenom)
	if !found || utokenAvailable.IsZero() {
		rt.Abortf(exitcode.ErrIllegalState, "no %s available to be bonded", BondDenom)
	}

	delegations := requestDelegations(rt, st.Validators)
	newDelegation := PickSmallestDelegation(delegations)

	protocolFee := st.FeeConfig.ProtocolRewardFee.MulFloor(utokenAvailable)
	utokenToBond := big.Sub(utokenAvailable, protocolFee)

	rt.State().Transaction(&st, func() {
		st.RemoveUnlockedCoin(BondDenom)
	})

	requestDelegate(rt, newDelegation.Validator, utokenToBond)
	if !protocolFee.IsZero() {
		requestBankSend(rt, st.FeeConfig.ProtocolFeeContract, abi.NewCoin(BondDenom, protocolFee))
	}

	rt.EmitEvent(vmr.NewEvent("erishub/harvested",
		"time", formatTime(rt),
		"height", formatHeight(rt),
		"utoken_bonded", utokenToBond.String(),
		"utoken_protocol_fee", protocolFee.String(),
	))
	return nil
}

///////////////
// Unbonding //
///////////////

type QueueUnbondParams struct {
	// Account entitled to the eventual refund; the caller if unset.
	Receiver     *addr.Address
	UstakeToBurn abi.TokenAmount
}

func (a Actor) QueueUnbond(rt Runtime, params *QueueUnbondParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	receiver := rt.Message().Caller()
	if params.Receiver != nil {
		receiver = *params.Receiver
	}
	if params.UstakeToBurn.NilOrZero() {
		rt.Abortf(exitcode.ErrIllegalArgument, "no stake token to burn")
	}

	var st State
	rt.State().Transaction(&st, func() {
		st.PendingBatch.UstakeToBurn = big.Add(st.PendingBatch.UstakeToBurn, params.UstakeToBurn)
		err := st.PutUnbondRequest(adt.AsStore(rt), st.PendingBatch.ID, receiver, params.UstakeToBurn)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to record unbond request")
	})

	startTime := strconv.FormatUint(uint64(st.PendingBatch.EstUnbondStartTime), 10)
	if rt.CurrTime() >= st.PendingBatch.EstUnbondStartTime {
		startTime = "immediate"
		requestSubmitBatch(rt)
	}

	rt.EmitEvent(vmr.NewEvent("erishub/unbond_queued",
		"time", formatTime(rt),
		"est_unbond_start_time", startTime,
		"height", formatHeight(rt),
		"id", strconv.FormatUint(st.PendingBatch.ID, 10),
		"receiver", receiver.String(),
		"ustake_to_burn", params.UstakeToBurn.String(),
	))
	return nil
}

func (a Actor) SubmitBatch(rt Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	currentTime := rt.CurrTime()

	var st State
	rt.State().Readonly(&st)
	pending := st.PendingBatch
	if currentTime < pending.EstUnbondStartTime {
		rt.Abortf(exitcode.ErrIllegalArgument, "batch can only be submitted for unbonding after %d", pending.EstUnbondStartTime)
	}

	delegations := requestDelegations(rt, st.Validators)
	ustakeSupply := requestTotalSupply(rt, st.StakeToken)

	utokenToUnbond := ComputeUnbondAmount(ustakeSupply, pending.UstakeToBurn, delegations)
	newUndelegations := ComputeUndelegations(utokenToUnbond, delegations)

	rt.State().Transaction(&st, func() {
		err := st.PutBatch(adt.AsStore(rt), &Batch{
			ID:               pending.ID,
			Reconciled:       false,
			TotalShares:      pending.UstakeToBurn,
			UtokenUnclaimed:  utokenToUnbond,
			EstUnbondEndTime: currentTime + abi.Timestamp(st.UnbondPeriod),
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to archive batch %d", pending.ID)
		st.UnreconciledBatches.Set(pending.ID)
		st.PendingBatch = PendingBatch{
			ID:                 pending.ID + 1,
			UstakeToBurn:       big.Zero(),
			EstUnbondStartTime: currentTime + abi.Timestamp(st.EpochPeriod),
		}
	})

	snapshot := balanceSnapshot(rt, nil)
	for _, u := range newUndelegations {
		requestUndelegate(rt, u.Validator, u.Amount)
	}
	requestBurn(rt, st.StakeToken, pending.UstakeToBurn)
	requestCheckReceivedCoin(rt, snapshot)

	rt.EmitEvent(vmr.NewEvent("erishub/unbond_submitted",
		"time", formatTime(rt),
		"height", formatHeight(rt),
		"id", strconv.FormatUint(pending.ID, 10),
		"utoken_unbonded", utokenToUnbond.String(),
		"ustake_burned", pending.UstakeToBurn.String(),
	))
	return nil
}

// Reconcile compares the expected against the actual balance for matured
// batches and attributes any shortfall (i.e. slashing while unbonding) to
// them pro rata. Idempotent when no shortfall is observed.
func (a Actor) Reconcile(rt Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	currentTime := rt.CurrTime()

	var st State
	rt.State().Readonly(&st)
	batches, err := st.UnreconciledBatchesMatured(adt.AsStore(rt), currentTime)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load unreconciled batches")

	utokenExpectedReceived := big.Zero()
	for _, b := range batches {
		utokenExpectedReceived = big.Add(utokenExpectedReceived, b.UtokenUnclaimed)
	}
	if utokenExpectedReceived.IsZero() {
		return nil
	}

	// The unlocked ledger tracks confirmed rewards that must not be counted
	// against users, so the deficit is never rebalanced against it.
	utokenExpectedUnlocked, _ := st.UnlockedAmount(BondDenom)
	utokenExpected := big.Add(utokenExpectedReceived, utokenExpectedUnlocked)
	utokenActual := requestBalance(rt, rt.Message().Receiver(), BondDenom)

	utokenToDeduct := big.Zero()
	if utokenActual.GreaterThanEqual(utokenExpected) {
		MarkReconciledBatches(batches)
	} else {
		utokenToDeduct = big.Sub(utokenExpected, utokenActual)
		ReconcileBatches(batches, utokenToDeduct)
	}

	processed := make([]uint64, 0, len(batches))
	for _, b := range batches {
		processed = append(processed, b.ID)
	}

	rt.State().Transaction(&st, func() {
		store := adt.AsStore(rt)
		for _, b := range batches {
			err := st.PutBatch(store, b)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to persist batch %d", b.ID)
		}
		st.UnreconciledBatches, err = bitfield.SubtractBitField(st.UnreconciledBatches, bitfield.NewFromSet(processed))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update unreconciled index")
	})

	rt.EmitEvent(vmr.NewEvent("erishub/reconciled",
		"ids", formatIDs(processed),
		"utoken_deducted", utokenToDeduct.String(),
	))
	return nil
}

type WithdrawUnbondedParams struct {
	// Account the refund is sent to; the caller if unset.
	Receiver *addr.Address
}

// WithdrawUnbonded claims the caller's share of every batch that is
// reconciled and has finished unbonding. If unsure whether batches have been
// reconciled, invoke Reconcile first.
func (a Actor) WithdrawUnbonded(rt Runtime, params *WithdrawUnbondedParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	user := rt.Message().Caller()
	receiver := user
	if params.Receiver != nil {
		receiver = *params.Receiver
	}
	currentTime := rt.CurrTime()

	totalRefund := big.Zero()
	var withdrawnIDs []uint64

	var st State
	rt.State().Transaction(&st, func() {
		store := adt.AsStore(rt)
		ids, err := st.UserBatchIDs(store, user)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load requests of %v", user)

		for _, id := range ids {
			request, found, err := st.GetUnbondRequest(store, id, user)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load request (%d, %v)", id, user)
			if !found {
				continue
			}

			batch, found, err := st.GetBatch(store, id)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load batch %d", id)
			if !found {
				// The batch was fully drained earlier; sweep the orphaned request.
				err = st.DeleteUnbondRequest(store, id, user)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to sweep request (%d, %v)", id, user)
				continue
			}
			if !batch.Reconciled || batch.EstUnbondEndTime >= currentTime {
				continue
			}

			utokenToRefund := big.Div(big.Mul(batch.UtokenUnclaimed, request.Shares), batch.TotalShares)
			withdrawnIDs = append(withdrawnIDs, id)
			totalRefund = big.Add(totalRefund, utokenToRefund)

			batch.TotalShares = big.Sub(batch.TotalShares, request.Shares)
			batch.UtokenUnclaimed = big.Sub(batch.UtokenUnclaimed, utokenToRefund)

			if batch.TotalShares.IsZero() {
				err = st.DeleteBatch(store, id)
			} else {
				err = st.PutBatch(store, batch)
			}
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update batch %d", id)

			err = st.DeleteUnbondRequest(store, id, user)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove request (%d, %v)", id, user)
		}
	})

	if totalRefund.IsZero() {
		rt.Abortf(exitcode.ErrIllegalArgument, "withdrawable amount is zero")
	}

	requestBankSend(rt, receiver, abi.NewCoin(BondDenom, totalRefund))

	rt.EmitEvent(vmr.NewEvent("erishub/unbonded_withdrawn",
		"time", formatTime(rt),
		"height", formatHeight(rt),
		"ids", formatIDs(withdrawnIDs),
		"user", user.String(),
		"receiver", receiver.String(),
		"utoken_refunded", totalRefund.String(),
	))
	return nil
}

////////////////////////////
// Ownership & management //
////////////////////////////

// Rebalance evens out the per-validator delegations. Unpermissioned: anyone
// may pay the gas to equalize.
func (a Actor) Rebalance(rt Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)

	delegations := requestDelegations(rt, st.Validators)
	newRedelegations := ComputeRedelegationsForRebalancing(delegations)

	utokenMoved := big.Zero()
	for _, rd := range newRedelegations {
		utokenMoved = big.Add(utokenMoved, rd.Amount)
	}

	snapshot := balanceSnapshot(rt, nil)
	for _, rd := range newRedelegations {
		requestRedelegate(rt, rd.SrcValidator, rd.DstValidator, rd.Amount)
	}
	requestCheckReceivedCoin(rt, snapshot)

	rt.EmitEvent(vmr.NewEvent("erishub/rebalanced", "utoken_moved", utokenMoved.String()))
	return nil
}

type ValidatorParams struct {
	Validator string
}

func (a Actor) AddValidator(rt Runtime, params *ValidatorParams) *adt.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Owner)

	if st.HasValidator(params.Validator) {
		rt.Abortf(exitcode.ErrIllegalArgument, "validator is already whitelisted")
	}

	rt.State().Transaction(&st, func() {
		st.Validators = append(st.Validators, params.Validator)
	})

	rt.EmitEvent(vmr.NewEvent("erishub/validator_added", "validator", params.Validator))
	return nil
}

func (a Actor) RemoveValidator(rt Runtime, params *ValidatorParams) *adt.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Owner)

	if !st.HasValidator(params.Validator) {
		rt.Abortf(exitcode.ErrIllegalArgument, "validator is not already whitelisted")
	}

	rt.State().Transaction(&st, func() {
		kept := make([]string, 0, len(st.Validators)-1)
		for _, v := range st.Validators {
			if v != params.Validator {
				kept = append(kept, v)
			}
		}
		st.Validators = kept
	})

	// Move the removed validator's delegation onto the post-removal whitelist.
	delegations := requestDelegations(rt, st.Validators)
	removedDelegation := requestDelegation(rt, params.Validator)
	newRedelegations := ComputeRedelegationsForRemoval(removedDelegation, delegations)

	snapshot := balanceSnapshot(rt, nil)
	for _, rd := range newRedelegations {
		requestRedelegate(rt, rd.SrcValidator, rd.DstValidator, rd.Amount)
	}
	requestCheckReceivedCoin(rt, snapshot)

	rt.EmitEvent(vmr.NewEvent("erishub/validator_removed", "validator", params.Validator))
	return nil
}

type TransferOwnershipParams struct {
	NewOwner addr.Address
}

func (a Actor) TransferOwnership(rt Runtime, params *TransferOwnershipParams) *adt.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Owner)

	rt.State().Transaction(&st, func() {
		newOwner := params.NewOwner
		st.NewOwner = &newOwner
	})
	return nil
}

func (a Actor) AcceptOwnership(rt Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	if st.NewOwner == nil || rt.Message().Caller() != *st.NewOwner {
		rt.Abortf(exitcode.ErrForbidden, "unauthorized: sender is not new owner")
	}

	previousOwner := st.Owner
	rt.State().Transaction(&st, func() {
		st.Owner = *st.NewOwner
		st.NewOwner = nil
	})

	rt.EmitEvent(vmr.NewEvent("erishub/ownership_transferred",
		"new_owner", st.Owner.String(),
		"previous_owner", previousOwner.String(),
	))
	return nil
}

type UpdateConfigParams struct {
	ProtocolFeeContract *addr.Address
	ProtocolRewardFee   *BigFrac
}

func (a Actor) UpdateConfig(rt Runtime, params *UpdateConfigParams) *adt.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Owner)

	if params.ProtocolRewardFee != nil && params.ProtocolRewardFee.GreaterThan(RewardFeeCap()) {
		rt.Abortf(exitcode.ErrIllegalArgument, "'protocol_reward_fee' greater than max")
	}

	rt.State().Transaction(&st, func() {
		if params.ProtocolFeeContract != nil {
			st.FeeConfig.ProtocolFeeContract = *params.ProtocolFeeContract
		}
		if params.ProtocolRewardFee != nil {
			st.FeeConfig.ProtocolRewardFee = *params.ProtocolRewardFee
		}
	})
	return nil
}

/////////////
// Queries //
/////////////

type ConfigReturn struct {
	Owner        addr.Address
	NewOwner     *addr.Address
	StakeToken   addr.Address
	EpochPeriod  uint64
	UnbondPeriod uint64
	Validators   []string
	FeeConfig    FeeConfig
}

func (a Actor) Config(rt Runtime, _ *adt.EmptyValue) *ConfigReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	return &ConfigReturn{
		Owner:        st.Owner,
		NewOwner:     st.NewOwner,
		StakeToken:   st.StakeToken,
		EpochPeriod:  st.EpochPeriod,
		UnbondPeriod: st.UnbondPeriod,
		Validators:   st.Validators,
		FeeConfig:    st.FeeConfig,
	}
}

type StateReturn struct {
	TotalUstake   abi.TokenAmount
	TotalUtoken   abi.TokenAmount
	ExchangeRate  BigFrac
	UnlockedCoins []abi.Coin
	Unbonding     abi.TokenAmount
	Available     abi.TokenAmount
	TvlUtoken     abi.TokenAmount
}

func (a Actor) HubState(rt Runtime, _ *adt.EmptyValue) *StateReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)

	totalUstake := requestTotalSupply(rt, st.StakeToken)
	totalUtoken := TotalDelegated(requestDelegations(rt, st.Validators))

	exchangeRate := NewBigFrac(1, 1)
	if !totalUstake.IsZero() && !totalUtoken.IsZero() {
		exchangeRate = BigFrac{Numerator: totalUtoken, Denominator: totalUstake}
	}

	unbonding := big.Zero()
	err := st.ForEachBatch(adt.AsStore(rt), func(batch *Batch) error {
		unbonding = big.Add(unbonding, batch.UtokenUnclaimed)
		return nil
	})
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to total unbonding batches")

	available := requestBalance(rt, rt.Message().Receiver(), BondDenom)

	return &StateReturn{
		TotalUstake:   totalUstake,
		TotalUtoken:   totalUtoken,
		ExchangeRate:  exchangeRate,
		UnlockedCoins: st.UnlockedCoins,
		Unbonding:     unbonding,
		Available:     available,
		TvlUtoken:     big.Sum(totalUtoken, unbonding, available),
	}
}

func (a Actor) CurrentPendingBatch(rt Runtime, _ *adt.EmptyValue) *PendingBatch {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	pending := st.PendingBatch
	return &pending
}

type PreviousBatchParams struct {
	ID uint64
}

func (a Actor) PreviousBatch(rt Runtime, params *PreviousBatchParams) *Batch {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)

	batch, found, err := st.GetBatch(adt.AsStore(rt), params.ID)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load batch %d", params.ID)
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "batch %d not found", params.ID)
	}
	return batch
}

type PreviousBatchesParams struct {
	// Batch id to resume after, exclusive; zero starts from the beginning.
	StartAfter uint64
	// Page size; zero selects the default.
	Limit uint64
}

type PreviousBatchesReturn struct {
	Batches []Batch
}

func (a Actor) PreviousBatches(rt Runtime, params *PreviousBatchesParams) *PreviousBatchesReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)

	limit := DefaultBatchQueryLimit
	if params.Limit != 0 {
		limit = params.Limit
		if limit > MaxBatchQueryLimit {
			limit = MaxBatchQueryLimit
		}
	}

	ret := &PreviousBatchesReturn{}
	err := st.ForEachBatch(adt.AsStore(rt), func(batch *Batch) error {
		if batch.ID <= params.StartAfter {
			return nil
		}
		if uint64(len(ret.Batches)) >= limit {
			return errPageFull
		}
		ret.Batches = append(ret.Batches, *batch)
		return nil
	})
	if err != nil && err != errPageFull {
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to iterate batches")
	}
	return ret
}

type UnbondRequestsByBatchParams struct {
	ID uint64
}

type UnbondRequestsReturn struct {
	Requests []UnbondRequest
}

func (a Actor) UnbondRequestsByBatch(rt Runtime, params *UnbondRequestsByBatchParams) *UnbondRequestsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)

	requests, err := st.BatchRequests(adt.AsStore(rt), params.ID)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load requests of batch %d", params.ID)

	ret := &UnbondRequestsReturn{}
	for _, r := range requests {
		ret.Requests = append(ret.Requests, *r)
	}
	return ret
}

type UnbondRequestsByUserParams struct {
	User addr.Address
}

func (a Actor) UnbondRequestsByUser(rt Runtime, params *UnbondRequestsByUserParams) *UnbondRequestsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)

	store := adt.AsStore(rt)
	ids, err := st.UserBatchIDs(store, params.User)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load requests of %v", params.User)

	ret := &UnbondRequestsReturn{}
	for _, id := range ids {
		request, found, err := st.GetUnbondRequest(store, id, params.User)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load request (%d, %v)", id, params.User)
		if !found {
			rt.Abortf(exitcode.ErrIllegalState, "request (%d, %v) indexed but not stored", id, params.User)
		}
		ret.Requests = append(ret.Requests, *request)
	}
	return ret
}

////////////////////////////////////////////////////////////////////////////////
// Utility functions & helpers
////////////////////////////////////////////////////////////////////////////////

// Instantiates the receipt-token actor through the init actor, returning its
// ID address.
func requestTokenInstantiation(rt Runtime, name, symbol string, decimals uint64) addr.Address {
	ctorParams := token.ConstructorParams{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
		Minter:   rt.Message().Receiver(),
	}
	buf := new(bytes.Buffer)
	err := ctorParams.MarshalCBOR(buf)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to serialize token constructor params")

	ret, code := rt.Send(
		builtin.InitActorAddr,
		builtin.MethodsInit.Exec,
		&init_.ExecParams{
			CodeCID:           builtin.TokenActorCodeID,
			ConstructorParams: buf.Bytes(),
		},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to instantiate stake token")

	var execRet init_.ExecReturn
	err = ret.Into(&execRet)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to unmarshal exec return")
	return execRet.IDAddress
}

// Queries the hub's delegations and joins them onto the whitelist, zero-
// filling validators the staking module reports nothing for.
func requestDelegations(rt Runtime, validators []string) []staking.Delegation {
	ret, code := rt.Send(
		builtin.StakingActorAddr,
		builtin.MethodsStaking.AllDelegations,
		&staking.AllDelegationsParams{Delegator: rt.Message().Receiver()},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to query delegations")
	var delRet staking.AllDelegationsReturn
	err := ret.Into(&delRet)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to unmarshal delegations")

	amounts := make(map[string]abi.TokenAmount, len(delRet.Delegations))
	for _, d := range delRet.Delegations {
		amounts[d.Validator] = d.Amount
	}
	delegations := make([]staking.Delegation, len(validators))
	for i, v := range validators {
		amount, ok := amounts[v]
		if !ok {
			amount = big.Zero()
		}
		delegations[i] = staking.NewDelegation(v, amount)
	}
	return delegations
}

// Queries the hub's delegations as the staking module reports them, without
// joining onto the whitelist.
func requestAllDelegations(rt Runtime) []staking.Delegation {
	ret, code := rt.Send(
		builtin.StakingActorAddr,
		builtin.MethodsStaking.AllDelegations,
		&staking.AllDelegationsParams{Delegator: rt.Message().Receiver()},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to query delegations")
	var delRet staking.AllDelegationsReturn
	err := ret.Into(&delRet)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to unmarshal delegations")
	return delRet.Delegations
}

func requestDelegation(rt Runtime, validator string) staking.Delegation {
	ret, code := rt.Send(
		builtin.StakingActorAddr,
		builtin.MethodsStaking.Delegation,
		&staking.DelegationParams{Delegator: rt.Message().Receiver(), Validator: validator},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to query delegation to %s", validator)
	var delRet staking.DelegationReturn
	err := ret.Into(&delRet)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to unmarshal delegation")
	return delRet.Delegation
}

func requestTotalSupply(rt Runtime, stakeToken addr.Address) abi.TokenAmount {
	ret, code := rt.Send(stakeToken, builtin.MethodsToken.TotalSupply, nil, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to query stake token supply")
	var supplyRet token.TotalSupplyReturn
	err := ret.Into(&supplyRet)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to unmarshal token supply")
	return supplyRet.Supply
}

func requestBalance(rt Runtime, address addr.Address, denom string) abi.TokenAmount {
	ret, code := rt.Send(
		builtin.BankActorAddr,
		builtin.MethodsBank.Balance,
		&bank.BalanceParams{Address: address, Denom: denom},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to query %s balance", denom)
	var balRet bank.BalanceReturn
	err := ret.Into(&balRet)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to unmarshal balance")
	return balRet.Balance.Amount
}

// Takes the balance snapshot carried by a trailing CheckReceivedCoin
// callback. The negative offset accounts for funds attached to the current
// message that a subsequent send will consume.
func balanceSnapshot(rt Runtime, negativeOffset *abi.TokenAmount) abi.Coin {
	amount := requestBalance(rt, rt.Message().Receiver(), BondDenom)
	if negativeOffset != nil {
		amount = big.Sub(amount, *negativeOffset)
		if amount.LessThan(big.Zero()) {
			rt.Abortf(exitcode.ErrIllegalState, "balance snapshot offset exceeds balance")
		}
	}
	return abi.NewCoin(BondDenom, amount)
}

func requestDelegate(rt Runtime, validator string, amount abi.TokenAmount) {
	_, code := rt.Send(
		builtin.StakingActorAddr,
		builtin.MethodsStaking.Delegate,
		&staking.DelegateParams{Validator: validator, Amount: amount},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to delegate %v to %s", amount, validator)
}

func requestUndelegate(rt Runtime, validator string, amount abi.TokenAmount) {
	_, code := rt.Send(
		builtin.StakingActorAddr,
		builtin.MethodsStaking.Undelegate,
		&staking.UndelegateParams{Validator: validator, Amount: amount},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to undelegate %v from %s", amount, validator)
}

func requestRedelegate(rt Runtime, src, dst string, amount abi.TokenAmount) {
	_, code := rt.Send(
		builtin.StakingActorAddr,
		builtin.MethodsStaking.Redelegate,
		&staking.RedelegateParams{SrcValidator: src, DstValidator: dst, Amount: amount},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to redelegate %v from %s to %s", amount, src, dst)
}

func requestWithdrawDelegatorReward(rt Runtime, validator string) {
	_, code := rt.Send(
		builtin.StakingActorAddr,
		builtin.MethodsStaking.WithdrawDelegatorReward,
		&staking.WithdrawDelegatorRewardParams{Validator: validator},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to withdraw rewards from %s", validator)
}

func requestMint(rt Runtime, stakeToken addr.Address, recipient addr.Address, amount abi.TokenAmount) {
	_, code := rt.Send(
		stakeToken,
		builtin.MethodsToken.Mint,
		&token.MintParams{Recipient: recipient, Amount: amount},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to mint %v stake token", amount)
}

func requestBurn(rt Runtime, stakeToken addr.Address, amount abi.TokenAmount) {
	_, code := rt.Send(
		stakeToken,
		builtin.MethodsToken.Burn,
		&token.BurnParams{Amount: amount},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to burn %v stake token", amount)
}

func requestBankSend(rt Runtime, to addr.Address, coin abi.Coin) {
	_, code := rt.Send(
		builtin.BankActorAddr,
		builtin.MethodsBank.Send,
		&bank.SendParams{To: to, Coins: []abi.Coin{coin}},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to send %v%s to %v", coin.Amount, coin.Denom, to)
}

func requestCheckReceivedCoin(rt Runtime, snapshot abi.Coin) {
	_, code := rt.Send(
		rt.Message().Receiver(),
		builtin.MethodsHub.CheckReceivedCoin,
		&CheckReceivedCoinParams{Snapshot: snapshot},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to check received coin")
}

func requestSubmitBatch(rt Runtime) {
	_, code := rt.Send(rt.Message().Receiver(), builtin.MethodsHub.SubmitBatch, nil, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to submit batch")
}

func requestReinvest(rt Runtime) {
	_, code := rt.Send(rt.Message().Receiver(), builtin.MethodsHub.Reinvest, nil, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to reinvest")
}

func formatTime(rt Runtime) string {
	return strconv.FormatUint(uint64(rt.CurrTime()), 10)
}

func formatHeight(rt Runtime) string {
	return strconv.FormatInt(int64(rt.CurrEpoch()), 10)
}

func formatIDs(ids []uint64) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(strs, ",")
}

var errPageFull = xerrors.New("page full")
