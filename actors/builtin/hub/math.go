package hub

import (
	"sort"

	abi "github.com/erisprotocol/hub-actors/actors/abi"
	big "github.com/erisprotocol/hub-actors/actors/abi/big"
	staking "github.com/erisprotocol/hub-actors/actors/builtin/staking"
	. "github.com/erisprotocol/hub-actors/actors/util"
)

type BigFrac struct {
	Numerator   big.Int
	Denominator big.Int
}

func NewBigFrac(numerator, denominator int64) BigFrac {
	return BigFrac{
		Numerator:   big.NewInt(numerator),
		Denominator: big.NewInt(denominator),
	}
}

// MulFloor multiplies an amount by the fraction, rounding down. The
// intermediate product is computed at full precision so the multiply cannot
// overflow.
func (f BigFrac) MulFloor(x abi.TokenAmount) abi.TokenAmount {
	Assert(f.Denominator.GreaterThan(big.Zero()))
	return big.Div(big.Mul(x, f.Numerator), f.Denominator)
}

func (f BigFrac) GreaterThan(other BigFrac) bool {
	Assert(f.Denominator.GreaterThan(big.Zero()))
	Assert(other.Denominator.GreaterThan(big.Zero()))
	return big.Mul(f.Numerator, other.Denominator).GreaterThan(big.Mul(other.Numerator, f.Denominator))
}

// A transfer of delegated tokens between two validators.
type Redelegation struct {
	SrcValidator string
	DstValidator string
	Amount       abi.TokenAmount
}

// TotalDelegated sums the delegated amounts of a delegation vector.
func TotalDelegated(delegations []staking.Delegation) abi.TokenAmount {
	total := big.Zero()
	for _, d := range delegations {
		total = big.Add(total, d.Amount)
	}
	return total
}

// PickSmallestDelegation returns the delegation with the smallest amount,
// breaking ties by position. A linear scan is cheaper than sorting for the
// whitelist sizes in play.
func PickSmallestDelegation(delegations []staking.Delegation) staking.Delegation {
	Assert(len(delegations) > 0)
	smallest := delegations[0]
	for _, d := range delegations[1:] {
		if d.Amount.LessThan(smallest.Amount) {
			smallest = d
		}
	}
	return smallest
}

// ComputeMintAmount returns the amount of stake token to mint for a deposit.
// At either a zero token supply or a zero bonded total the rate is 1:1.
func ComputeMintAmount(ustakeSupply abi.TokenAmount, utokenToBond abi.TokenAmount, delegations []staking.Delegation) abi.TokenAmount {
	utokenBonded := TotalDelegated(delegations)
	if ustakeSupply.IsZero() || utokenBonded.IsZero() {
		return utokenToBond
	}
	return big.Div(big.Mul(utokenToBond, ustakeSupply), utokenBonded)
}

// ComputeUnbondAmount returns the amount of bonded tokens backing a quantity
// of stake token about to be burned.
func ComputeUnbondAmount(ustakeSupply abi.TokenAmount, ustakeToBurn abi.TokenAmount, delegations []staking.Delegation) abi.TokenAmount {
	if ustakeSupply.IsZero() {
		return big.Zero()
	}
	utokenBonded := TotalDelegated(delegations)
	return big.Div(big.Mul(ustakeToBurn, utokenBonded), ustakeSupply)
}

// ComputeUndelegations splits a total unbond amount across validators.
// Validators are visited from the largest delegation down (ties keep input
// order); each draws an equal, rounded-up share of what is left, capped by
// its delegation, and a second sweep tops up from validators with capacity
// left. The split evens out the amounts drawn, not the delegations that
// remain. The returned amounts sum to exactly utokenToUnbond and no amount
// exceeds the validator's current delegation.
func ComputeUndelegations(utokenToUnbond abi.TokenAmount, delegations []staking.Delegation) []staking.Delegation {
	sorted := make([]staking.Delegation, len(delegations))
	copy(sorted, delegations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	amounts := make([]abi.TokenAmount, len(sorted))
	remaining := utokenToUnbond
	for i, d := range sorted {
		amounts[i] = big.Zero()
		if remaining.IsZero() {
			continue
		}
		validatorsLeft := int64(len(sorted) - i)
		share := big.Div(big.Add(remaining, big.NewInt(validatorsLeft-1)), big.NewInt(validatorsLeft))
		amounts[i] = big.Min(big.Min(d.Amount, share), remaining)
		remaining = big.Sub(remaining, amounts[i])
	}

	// A validator with a small delegation may not cover its share; top the
	// total up from validators with capacity left so it lands exactly on
	// utokenToUnbond.
	for i, d := range sorted {
		if remaining.IsZero() {
			break
		}
		capacity := big.Sub(d.Amount, amounts[i])
		if capacity.LessThanEqual(big.Zero()) {
			continue
		}
		amount := big.Min(capacity, remaining)
		amounts[i] = big.Add(amounts[i], amount)
		remaining = big.Sub(remaining, amount)
	}
	AssertMsg(remaining.IsZero(), "not enough delegated tokens to unbond")

	var undelegations []staking.Delegation
	for i, d := range sorted {
		if amounts[i].IsZero() {
			continue
		}
		undelegations = append(undelegations, staking.NewDelegation(d.Validator, amounts[i]))
	}
	return undelegations
}

// ComputeRedelegationsForRebalancing pairs over-delegated validators with
// under-delegated ones, in input order, so that every validator lands on its
// positional target: the average, with the first total mod n validators
// carrying one extra token. A set already within one token of the average
// still yields one-token moves when its extra tokens sit at other positions.
func ComputeRedelegationsForRebalancing(delegations []staking.Delegation) []Redelegation {
	if len(delegations) == 0 {
		return nil
	}
	targets := delegationTargets(TotalDelegated(delegations), len(delegations))

	type imbalance struct {
		validator string
		amount    abi.TokenAmount
	}
	var srcs, dsts []imbalance
	for i, d := range delegations {
		switch {
		case d.Amount.GreaterThan(targets[i]):
			srcs = append(srcs, imbalance{d.Validator, big.Sub(d.Amount, targets[i])})
		case d.Amount.LessThan(targets[i]):
			dsts = append(dsts, imbalance{d.Validator, big.Sub(targets[i], d.Amount)})
		}
	}

	var redelegations []Redelegation
	si, di := 0, 0
	for si < len(srcs) && di < len(dsts) {
		amount := big.Min(srcs[si].amount, dsts[di].amount)
		if !amount.IsZero() {
			redelegations = append(redelegations, Redelegation{
				SrcValidator: srcs[si].validator,
				DstValidator: dsts[di].validator,
				Amount:       amount,
			})
		}
		srcs[si].amount = big.Sub(srcs[si].amount, amount)
		dsts[di].amount = big.Sub(dsts[di].amount, amount)
		if srcs[si].amount.IsZero() {
			si++
		}
		if dsts[di].amount.IsZero() {
			di++
		}
	}
	return redelegations
}

// ComputeRedelegationsForRemoval distributes the delegation of a validator
// being removed across the remaining whitelist. Validators below their
// even-split target are filled up to that target in whitelist order until the
// removed amount is used up; they are not ordered by the size of their deficit.
func ComputeRedelegationsForRemoval(removed staking.Delegation, delegations []staking.Delegation) []Redelegation {
	if len(delegations) == 0 || removed.Amount.IsZero() {
		return nil
	}
	total := big.Add(TotalDelegated(delegations), removed.Amount)
	targets := delegationTargets(total, len(delegations))

	var redelegations []Redelegation
	toDistribute := removed.Amount
	for i, d := range delegations {
		if toDistribute.IsZero() {
			break
		}
		deficit := big.Sub(targets[i], d.Amount)
		if deficit.LessThanEqual(big.Zero()) {
			continue
		}
		amount := big.Min(deficit, toDistribute)
		redelegations = append(redelegations, Redelegation{
			SrcValidator: removed.Validator,
			DstValidator: d.Validator,
			Amount:       amount,
		})
		toDistribute = big.Sub(toDistribute, amount)
	}
	// The deficits below target always sum to at least the removed amount.
	AssertMsg(toDistribute.IsZero(), "failed to distribute removed delegation")
	return redelegations
}

// Per-validator target amounts for an even split of total: the first
// total mod n validators carry one extra token.
func delegationTargets(total abi.TokenAmount, n int) []abi.TokenAmount {
	avg := big.Div(total, big.NewInt(int64(n)))
	rem := big.Mod(total, big.NewInt(int64(n))).Int64()
	targets := make([]abi.TokenAmount, n)
	for i := range targets {
		if int64(i) < rem {
			targets[i] = big.Add(avg, big.NewInt(1))
		} else {
			targets[i] = avg.Copy()
		}
	}
	return targets
}

// ReconcileBatches deducts a shortfall from unreconciled batches pro rata to
// their unclaimed amounts, and flags every batch reconciled. Rounding
// remainders land on the last (highest-id) batch.
func ReconcileBatches(batches []*Batch, utokenToDeduct abi.TokenAmount) {
	Assert(len(batches) > 0)
	totalUnclaimed := big.Zero()
	for _, b := range batches {
		totalUnclaimed = big.Add(totalUnclaimed, b.UtokenUnclaimed)
	}

	remaining := utokenToDeduct
	for i, b := range batches {
		var deduct abi.TokenAmount
		if i == len(batches)-1 {
			deduct = remaining
		} else {
			deduct = big.Div(big.Mul(utokenToDeduct, b.UtokenUnclaimed), totalUnclaimed)
			remaining = big.Sub(remaining, deduct)
		}
		b.UtokenUnclaimed = big.Sub(b.UtokenUnclaimed, deduct)
		AssertMsg(b.UtokenUnclaimed.GreaterThanEqual(big.Zero()), "batch %d deducted below zero", b.ID)
		b.Reconciled = true
	}
}

// MarkReconciledBatches flags batches reconciled without deducting anything.
func MarkReconciledBatches(batches []*Batch) {
	for _, b := range batches {
		b.Reconciled = true
	}
}

// DedupeValidators drops duplicate entries, keeping first occurrences in order.
func DedupeValidators(validators []string) []string {
	seen := make(map[string]struct{}, len(validators))
	deduped := make([]string, 0, len(validators))
	for _, v := range validators {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		deduped = append(deduped, v)
	}
	return deduped
}
