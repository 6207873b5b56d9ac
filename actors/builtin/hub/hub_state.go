package hub

import (
	"sort"

	addr "github.com/filecoin-project/go-address"
	bitfield "github.com/filecoin-project/go-bitfield"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
	big "github.com/erisprotocol/hub-actors/actors/abi/big"
	adt "github.com/erisprotocol/hub-actors/actors/util/adt"
)

// Balance sheet and account of the hub actor.
type State struct {
	// Account that can mutate the validator whitelist and fee config.
	Owner addr.Address
	// Account named in a pending two-phase ownership transfer, if any.
	NewOwner *addr.Address
	// Address of the receipt-token actor instantiated at construction.
	StakeToken addr.Address

	// Minimum interval between successive batch submissions, in seconds.
	EpochPeriod uint64
	// Delay enforced by the staking module between undelegation and fund
	// availability, in seconds.
	UnbondPeriod uint64

	FeeConfig FeeConfig

	// Validators eligible for delegations, in whitelisting order, deduplicated.
	Validators []string

	// Funds owned by the hub but not yet bonded, one entry per denom, sorted
	// by denom, amounts always positive.
	UnlockedCoins []abi.Coin

	// The batch currently accumulating unbond requests.
	PendingBatch PendingBatch

	// Batches that have been submitted for unbonding but not fully withdrawn.
	// Array, AMT[BatchID]Batch.
	PreviousBatches cid.Cid

	// Subset of PreviousBatches not yet reconciled against received funds.
	UnreconciledBatches bitfield.BitField

	// Outstanding unbond requests, HAMT[BatchID]HAMT[Address]UnbondRequest.
	UnbondRequests cid.Cid

	// Index of batches each user holds requests in, HAMT[Address]BitField.
	RequestsByUser cid.Cid
}

type FeeConfig struct {
	// Contract receiving the protocol's cut of harvested rewards.
	ProtocolFeeContract addr.Address
	// Fraction of harvested rewards skimmed for the protocol. Capped by
	// RewardFeeCap.
	ProtocolRewardFee BigFrac
}

// The batch currently accepting unbond requests. Exactly one exists at all
// times; submission archives it as a Batch and rotates in its successor.
type PendingBatch struct {
	ID                 uint64
	UstakeToBurn       abi.TokenAmount
	EstUnbondStartTime abi.Timestamp
}

// An archived unbonding batch.
type Batch struct {
	ID uint64
	// Whether the batch has been checked against the funds actually received
	// after its unbonding matured.
	Reconciled bool
	// Stake-token shares not yet withdrawn from the batch.
	TotalShares abi.TokenAmount
	// Bonded tokens recoverable by the remaining shares.
	UtokenUnclaimed abi.TokenAmount
	EstUnbondEndTime abi.Timestamp
}

// A user's share of one unbonding batch.
type UnbondRequest struct {
	ID     uint64
	User   addr.Address
	Shares abi.TokenAmount
}

func ConstructState(store adt.Store, owner addr.Address, epochPeriod, unbondPeriod uint64,
	feeConfig FeeConfig, validators []string, currTime abi.Timestamp) (*State, error) {
	emptyArray, err := adt.MakeEmptyArray(store).Root()
	if err != nil {
		return nil, xerrors.Errorf("failed to construct empty batches array: %w", err)
	}
	emptyMap, err := adt.MakeEmptyMap(store).Root()
	if err != nil {
		return nil, xerrors.Errorf("failed to construct empty requests map: %w", err)
	}

	return &State{
		Owner:        owner,
		StakeToken:   addr.Undef,
		EpochPeriod:  epochPeriod,
		UnbondPeriod: unbondPeriod,
		FeeConfig:    feeConfig,
		Validators:   validators,
		PendingBatch: PendingBatch{
			ID:                 1,
			UstakeToBurn:       big.Zero(),
			EstUnbondStartTime: currTime + abi.Timestamp(epochPeriod),
		},
		PreviousBatches:     emptyArray,
		UnreconciledBatches: bitfield.New(),
		UnbondRequests:      emptyMap,
		RequestsByUser:      emptyMap,
	}, nil
}

//
// Batches
//

func (st *State) GetBatch(store adt.Store, id uint64) (*Batch, bool, error) {
	batches, err := adt.AsArray(store, st.PreviousBatches)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load batches: %w", err)
	}
	var batch Batch
	found, err := batches.Get(id, &batch)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get batch %d: %w", id, err)
	}
	return &batch, found, nil
}

func (st *State) PutBatch(store adt.Store, batch *Batch) error {
	batches, err := adt.AsArray(store, st.PreviousBatches)
	if err != nil {
		return xerrors.Errorf("failed to load batches: %w", err)
	}
	if err := batches.Set(batch.ID, batch); err != nil {
		return xerrors.Errorf("failed to put batch %d: %w", batch.ID, err)
	}
	st.PreviousBatches, err = batches.Root()
	return err
}

func (st *State) DeleteBatch(store adt.Store, id uint64) error {
	batches, err := adt.AsArray(store, st.PreviousBatches)
	if err != nil {
		return xerrors.Errorf("failed to load batches: %w", err)
	}
	if err := batches.Delete(id); err != nil {
		return xerrors.Errorf("failed to delete batch %d: %w", id, err)
	}
	st.PreviousBatches, err = batches.Root()
	return err
}

// ForEachBatch iterates stored batches in ascending id order.
func (st *State) ForEachBatch(store adt.Store, f func(batch *Batch) error) error {
	batches, err := adt.AsArray(store, st.PreviousBatches)
	if err != nil {
		return xerrors.Errorf("failed to load batches: %w", err)
	}
	var batch Batch
	return batches.ForEach(&batch, func(int64) error {
		cpy := batch
		return f(&cpy)
	})
}

// UnreconciledBatchesMatured loads the unreconciled batches whose unbonding
// has finished by `now`, in ascending id order.
func (st *State) UnreconciledBatchesMatured(store adt.Store, now abi.Timestamp) ([]*Batch, error) {
	var matured []*Batch
	err := st.UnreconciledBatches.ForEach(func(id uint64) error {
		batch, found, err := st.GetBatch(store, id)
		if err != nil {
			return err
		}
		if !found {
			return xerrors.Errorf("unreconciled batch %d not stored", id)
		}
		if now > batch.EstUnbondEndTime {
			matured = append(matured, batch)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matured, nil
}

//
// Unbond requests
//

func (st *State) GetUnbondRequest(store adt.Store, id uint64, user addr.Address) (*UnbondRequest, bool, error) {
	outer, err := adt.AsMap(store, st.UnbondRequests)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load requests: %w", err)
	}
	var innerRoot cbg.CborCid
	found, err := outer.Get(adt.UIntKey(id), &innerRoot)
	if err != nil || !found {
		return nil, false, err
	}
	inner, err := adt.AsMap(store, cid.Cid(innerRoot))
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load requests for batch %d: %w", id, err)
	}
	var request UnbondRequest
	found, err = inner.Get(adt.AddrKey(user), &request)
	if err != nil || !found {
		return nil, false, err
	}
	return &request, true, nil
}

// PutUnbondRequest adds shares to a user's request against a batch, creating
// the request if absent, and maintains the per-user index.
func (st *State) PutUnbondRequest(store adt.Store, id uint64, user addr.Address, shares abi.TokenAmount) error {
	outer, err := adt.AsMap(store, st.UnbondRequests)
	if err != nil {
		return xerrors.Errorf("failed to load requests: %w", err)
	}

	var inner *adt.Map
	var innerRoot cbg.CborCid
	found, err := outer.Get(adt.UIntKey(id), &innerRoot)
	if err != nil {
		return err
	}
	if found {
		if inner, err = adt.AsMap(store, cid.Cid(innerRoot)); err != nil {
			return xerrors.Errorf("failed to load requests for batch %d: %w", id, err)
		}
	} else {
		inner = adt.MakeEmptyMap(store)
	}

	request := UnbondRequest{ID: id, User: user, Shares: big.Zero()}
	if _, err := inner.Get(adt.AddrKey(user), &request); err != nil {
		return err
	}
	request.Shares = big.Add(request.Shares, shares)
	if err := inner.Put(adt.AddrKey(user), &request); err != nil {
		return xerrors.Errorf("failed to put request (%d, %v): %w", id, user, err)
	}

	newInnerRoot, err := inner.Root()
	if err != nil {
		return err
	}
	rootCid := cbg.CborCid(newInnerRoot)
	if err := outer.Put(adt.UIntKey(id), &rootCid); err != nil {
		return err
	}
	if st.UnbondRequests, err = outer.Root(); err != nil {
		return err
	}

	users, err := adt.AsMap(store, st.RequestsByUser)
	if err != nil {
		return xerrors.Errorf("failed to load user index: %w", err)
	}
	ids := bitfield.New()
	if _, err := users.Get(adt.AddrKey(user), &ids); err != nil {
		return err
	}
	ids.Set(id)
	if err := users.Put(adt.AddrKey(user), &ids); err != nil {
		return err
	}
	st.RequestsByUser, err = users.Root()
	return err
}

// DeleteUnbondRequest removes a user's request against a batch and maintains
// the per-user index.
func (st *State) DeleteUnbondRequest(store adt.Store, id uint64, user addr.Address) error {
	outer, err := adt.AsMap(store, st.UnbondRequests)
	if err != nil {
		return xerrors.Errorf("failed to load requests: %w", err)
	}
	var innerRoot cbg.CborCid
	found, err := outer.Get(adt.UIntKey(id), &innerRoot)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.Errorf("no requests for batch %d", id)
	}
	inner, err := adt.AsMap(store, cid.Cid(innerRoot))
	if err != nil {
		return xerrors.Errorf("failed to load requests for batch %d: %w", id, err)
	}
	if err := inner.Delete(adt.AddrKey(user)); err != nil {
		return xerrors.Errorf("failed to delete request (%d, %v): %w", id, user, err)
	}

	empty, err := inner.IsEmpty()
	if err != nil {
		return err
	}
	if empty {
		if err := outer.Delete(adt.UIntKey(id)); err != nil {
			return err
		}
	} else {
		newInnerRoot, err := inner.Root()
		if err != nil {
			return err
		}
		rootCid := cbg.CborCid(newInnerRoot)
		if err := outer.Put(adt.UIntKey(id), &rootCid); err != nil {
			return err
		}
	}
	if st.UnbondRequests, err = outer.Root(); err != nil {
		return err
	}

	users, err := adt.AsMap(store, st.RequestsByUser)
	if err != nil {
		return xerrors.Errorf("failed to load user index: %w", err)
	}
	ids := bitfield.New()
	found, err = users.Get(adt.AddrKey(user), &ids)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.Errorf("user %v missing from request index", user)
	}
	ids, err = bitfield.SubtractBitField(ids, bitfield.NewFromSet([]uint64{id}))
	if err != nil {
		return err
	}
	emptyIDs, err := ids.IsEmpty()
	if err != nil {
		return err
	}
	if emptyIDs {
		if err := users.Delete(adt.AddrKey(user)); err != nil {
			return err
		}
	} else {
		if err := users.Put(adt.AddrKey(user), &ids); err != nil {
			return err
		}
	}
	st.RequestsByUser, err = users.Root()
	return err
}

// UserBatchIDs returns the ids of batches the user holds requests in,
// ascending.
func (st *State) UserBatchIDs(store adt.Store, user addr.Address) ([]uint64, error) {
	users, err := adt.AsMap(store, st.RequestsByUser)
	if err != nil {
		return nil, xerrors.Errorf("failed to load user index: %w", err)
	}
	ids := bitfield.New()
	found, err := users.Get(adt.AddrKey(user), &ids)
	if err != nil || !found {
		return nil, err
	}
	var out []uint64
	if err := ids.ForEach(func(id uint64) error {
		out = append(out, id)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// BatchRequests returns the requests recorded against one batch, ordered by
// user address.
func (st *State) BatchRequests(store adt.Store, id uint64) ([]*UnbondRequest, error) {
	outer, err := adt.AsMap(store, st.UnbondRequests)
	if err != nil {
		return nil, xerrors.Errorf("failed to load requests: %w", err)
	}
	var innerRoot cbg.CborCid
	found, err := outer.Get(adt.UIntKey(id), &innerRoot)
	if err != nil || !found {
		return nil, err
	}
	inner, err := adt.AsMap(store, cid.Cid(innerRoot))
	if err != nil {
		return nil, xerrors.Errorf("failed to load requests for batch %d: %w", id, err)
	}
	var requests []*UnbondRequest
	var request UnbondRequest
	err = inner.ForEach(&request, func(string) error {
		cpy := request
		requests = append(requests, &cpy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].User.String() < requests[j].User.String()
	})
	return requests, nil
}

//
// Unlocked coins
//

// AddUnlockedCoin merges a received coin into the unlocked ledger, keeping
// the ledger sorted by denom with a single entry per denom.
func (st *State) AddUnlockedCoin(coin abi.Coin) {
	if coin.Amount.IsZero() {
		return
	}
	for i, c := range st.UnlockedCoins {
		if c.Denom == coin.Denom {
			st.UnlockedCoins[i].Amount = big.Add(c.Amount, coin.Amount)
			return
		}
	}
	st.UnlockedCoins = append(st.UnlockedCoins, coin)
	sort.Slice(st.UnlockedCoins, func(i, j int) bool {
		return st.UnlockedCoins[i].Denom < st.UnlockedCoins[j].Denom
	})
}

// UnlockedAmount returns the unlocked amount of a denom, and whether the
// ledger holds an entry for it.
func (st *State) UnlockedAmount(denom string) (abi.TokenAmount, bool) {
	for _, c := range st.UnlockedCoins {
		if c.Denom == denom {
			return c.Amount, true
		}
	}
	return big.Zero(), false
}

// RemoveUnlockedCoin drops the ledger entry for a denom, if present.
func (st *State) RemoveUnlockedCoin(denom string) {
	kept := st.UnlockedCoins[:0]
	for _, c := range st.UnlockedCoins {
		if c.Denom != denom {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		st.UnlockedCoins = nil
	} else {
		st.UnlockedCoins = kept
	}
}

// HasValidator reports whether a validator is whitelisted.
func (st *State) HasValidator(validator string) bool {
	for _, v := range st.Validators {
		if v == validator {
			return true
		}
	}
	return false
}
