package hub_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/golden"

	big "github.com/erisprotocol/hub-actors/actors/abi/big"
	"github.com/erisprotocol/hub-actors/actors/builtin/hub"
	"github.com/erisprotocol/hub-actors/actors/builtin/staking"
)

func delegations(amounts ...int64) []staking.Delegation {
	validators := []string{"alice", "bob", "charlie", "dave"}
	out := make([]staking.Delegation, len(amounts))
	for i, a := range amounts {
		out[i] = staking.NewDelegation(validators[i], big.NewInt(a))
	}
	return out
}

func TestComputeMintAmount(t *testing.T) {
	t.Run("bootstrap rate is one to one", func(t *testing.T) {
		minted := hub.ComputeMintAmount(big.Zero(), big.NewInt(1000000), delegations(0, 0, 0))
		assert.Equal(t, big.NewInt(1000000), minted)
	})

	t.Run("zero bonded total is one to one", func(t *testing.T) {
		minted := hub.ComputeMintAmount(big.NewInt(5), big.NewInt(1000), delegations(0, 0, 0))
		assert.Equal(t, big.NewInt(1000), minted)
	})

	t.Run("proportional to supply over bonded", func(t *testing.T) {
		// rate 1.05: 1_125_000 bonded backing 1_071_429 supply
		minted := hub.ComputeMintAmount(big.NewInt(1071429), big.NewInt(100000), delegations(375000, 375000, 375000))
		assert.Equal(t, big.NewInt(95238), minted) // floor(100000 * 1071429 / 1125000)
	})

	t.Run("round trip is within one token", func(t *testing.T) {
		supply := big.NewInt(1071429)
		dels := delegations(375000, 375000, 375000)
		deposit := big.NewInt(12345)
		minted := hub.ComputeMintAmount(supply, deposit, dels)

		// Burning the minted amount right back, against the post-deposit
		// totals, recovers the deposit to within one token of flooring.
		total := big.Add(hub.TotalDelegated(dels), deposit)
		back := big.Div(big.Mul(minted, total), big.Add(supply, minted))
		diff := big.Sub(deposit, back)
		assert.True(t, diff.GreaterThanEqual(big.Zero()))
		assert.True(t, diff.LessThanEqual(big.NewInt(1)))
	})
}

func TestComputeUnbondAmount(t *testing.T) {
	t.Run("zero supply unbonds nothing", func(t *testing.T) {
		amount := hub.ComputeUnbondAmount(big.Zero(), big.NewInt(100), delegations(100, 100))
		assert.Equal(t, big.Zero(), amount)
	})

	t.Run("proportional to bonded over supply", func(t *testing.T) {
		amount := hub.ComputeUnbondAmount(big.NewInt(1500), big.NewInt(150), delegations(500, 500, 500))
		assert.Equal(t, big.NewInt(150), amount)
	})

	t.Run("floors", func(t *testing.T) {
		amount := hub.ComputeUnbondAmount(big.NewInt(3), big.NewInt(1), delegations(100, 0, 0))
		assert.Equal(t, big.NewInt(33), amount) // floor(1 * 100 / 3)
	})
}

func TestPickSmallestDelegation(t *testing.T) {
	t.Run("smallest wins", func(t *testing.T) {
		d := hub.PickSmallestDelegation(delegations(300, 100, 200))
		assert.Equal(t, "bob", d.Validator)
	})

	t.Run("ties break by position", func(t *testing.T) {
		d := hub.PickSmallestDelegation(delegations(100, 100, 100))
		assert.Equal(t, "alice", d.Validator)
	})
}

func TestComputeUndelegations(t *testing.T) {
	t.Run("sums exactly and respects per-validator caps", func(t *testing.T) {
		cases := []struct {
			unbond int64
			dels   []staking.Delegation
		}{
			{300, delegations(600, 400, 100)},
			{1000, delegations(341667, 341667, 341666)},
			{50, delegations(10, 100)},
			{1100, delegations(600, 400, 100)},
			{1, delegations(1, 0, 0)},
			{7, delegations(5, 3, 2)},
		}
		for _, c := range cases {
			undelegations := hub.ComputeUndelegations(big.NewInt(c.unbond), c.dels)

			byValidator := make(map[string]big.Int)
			for _, d := range c.dels {
				byValidator[d.Validator] = d.Amount
			}
			total := big.Zero()
			for _, u := range undelegations {
				assert.True(t, u.Amount.GreaterThan(big.Zero()))
				assert.True(t, u.Amount.LessThanEqual(byValidator[u.Validator]))
				total = big.Add(total, u.Amount)
			}
			assert.Equal(t, big.NewInt(c.unbond), total)
		}
	})
}

func TestComputeUndelegationsGolden(t *testing.T) {
	cases := []struct {
		unbond int64
		dels   []staking.Delegation
	}{
		{300, delegations(600, 400, 100)},
		{1000, delegations(341667, 341667, 341666)},
		{50, delegations(10, 100)},
		{1100, delegations(600, 400, 100)},
	}
	var buf bytes.Buffer
	for _, c := range cases {
		fmt.Fprintf(&buf, "undelegate %d from", c.unbond)
		for _, d := range c.dels {
			fmt.Fprintf(&buf, " %s:%s", d.Validator, d.Amount)
		}
		buf.WriteString("\n")
		for _, u := range hub.ComputeUndelegations(big.NewInt(c.unbond), c.dels) {
			fmt.Fprintf(&buf, "  %s: %s\n", u.Validator, u.Amount)
		}
	}
	golden.Assert(t, buf.Bytes())
}

func TestComputeRedelegationsForRebalancing(t *testing.T) {
	t.Run("balanced within one moves nothing", func(t *testing.T) {
		redelegations := hub.ComputeRedelegationsForRebalancing(delegations(341667, 341667, 341666))
		assert.Empty(t, redelegations)
	})

	t.Run("single large delegation spreads out", func(t *testing.T) {
		redelegations := hub.ComputeRedelegationsForRebalancing(delegations(1000000, 0, 0))
		require.Len(t, redelegations, 2)
		assert.Equal(t, hub.Redelegation{SrcValidator: "alice", DstValidator: "bob", Amount: big.NewInt(333333)}, redelegations[0])
		assert.Equal(t, hub.Redelegation{SrcValidator: "alice", DstValidator: "charlie", Amount: big.NewInt(333333)}, redelegations[1])
	})

	t.Run("results differ by at most one", func(t *testing.T) {
		cases := [][]staking.Delegation{
			delegations(100, 300, 302),
			delegations(7, 0, 0, 1),
			delegations(0, 0, 1000001),
		}
		for _, dels := range cases {
			amounts := make(map[string]big.Int)
			for _, d := range dels {
				amounts[d.Validator] = d.Amount
			}
			for _, rd := range hub.ComputeRedelegationsForRebalancing(dels) {
				amounts[rd.SrcValidator] = big.Sub(amounts[rd.SrcValidator], rd.Amount)
				amounts[rd.DstValidator] = big.Add(amounts[rd.DstValidator], rd.Amount)
			}
			min, max := big.NewInt(1 << 62), big.Zero()
			for _, a := range amounts {
				min = big.Min(min, a)
				max = big.Max(max, a)
			}
			assert.True(t, big.Sub(max, min).LessThanEqual(big.NewInt(1)), "spread too wide for %v", dels)
		}
	})

	t.Run("empty delegations", func(t *testing.T) {
		assert.Empty(t, hub.ComputeRedelegationsForRebalancing(nil))
	})
}

func TestComputeRedelegationsForRemoval(t *testing.T) {
	t.Run("distributes the removed amount exactly", func(t *testing.T) {
		removed := staking.NewDelegation("dave", big.NewInt(400))
		remaining := delegations(400, 400)

		redelegations := hub.ComputeRedelegationsForRemoval(removed, remaining)
		require.Len(t, redelegations, 2)
		assert.Equal(t, hub.Redelegation{SrcValidator: "dave", DstValidator: "alice", Amount: big.NewInt(200)}, redelegations[0])
		assert.Equal(t, hub.Redelegation{SrcValidator: "dave", DstValidator: "bob", Amount: big.NewInt(200)}, redelegations[1])
	})

	t.Run("only validators below target receive", func(t *testing.T) {
		removed := staking.NewDelegation("dave", big.NewInt(90))
		remaining := delegations(100, 10)

		// total 200 over two validators: targets 100, 100
		redelegations := hub.ComputeRedelegationsForRemoval(removed, remaining)
		require.Len(t, redelegations, 1)
		assert.Equal(t, hub.Redelegation{SrcValidator: "dave", DstValidator: "bob", Amount: big.NewInt(90)}, redelegations[0])
	})

	t.Run("zero removed amount moves nothing", func(t *testing.T) {
		removed := staking.NewDelegation("dave", big.Zero())
		assert.Empty(t, hub.ComputeRedelegationsForRemoval(removed, delegations(1, 2)))
	})
}

func TestReconcileBatches(t *testing.T) {
	mkBatches := func(unclaimed ...int64) []*hub.Batch {
		out := make([]*hub.Batch, len(unclaimed))
		for i, u := range unclaimed {
			out[i] = &hub.Batch{
				ID:              uint64(i + 1),
				TotalShares:     big.NewInt(u),
				UtokenUnclaimed: big.NewInt(u),
			}
		}
		return out
	}

	t.Run("pro-rata deduction", func(t *testing.T) {
		batches := mkBatches(600, 400)
		hub.ReconcileBatches(batches, big.NewInt(20))
		assert.Equal(t, big.NewInt(588), batches[0].UtokenUnclaimed)
		assert.Equal(t, big.NewInt(392), batches[1].UtokenUnclaimed)
		assert.True(t, batches[0].Reconciled)
		assert.True(t, batches[1].Reconciled)
	})

	t.Run("rounding remainder lands on the last batch", func(t *testing.T) {
		batches := mkBatches(600, 400)
		hub.ReconcileBatches(batches, big.NewInt(19))
		// floor(19*600/1000) = 11 from the first; the remaining 8 from the last
		assert.Equal(t, big.NewInt(589), batches[0].UtokenUnclaimed)
		assert.Equal(t, big.NewInt(392), batches[1].UtokenUnclaimed)
	})

	t.Run("deduction conserves the total", func(t *testing.T) {
		batches := mkBatches(123, 456, 789)
		before := big.Zero()
		for _, b := range batches {
			before = big.Add(before, b.UtokenUnclaimed)
		}
		hub.ReconcileBatches(batches, big.NewInt(100))
		after := big.Zero()
		for _, b := range batches {
			after = big.Add(after, b.UtokenUnclaimed)
		}
		assert.Equal(t, big.NewInt(100), big.Sub(before, after))
	})
}

func TestMarkReconciledBatches(t *testing.T) {
	batches := []*hub.Batch{
		{ID: 1, UtokenUnclaimed: big.NewInt(600)},
		{ID: 2, UtokenUnclaimed: big.NewInt(400)},
	}
	hub.MarkReconciledBatches(batches)
	for _, b := range batches {
		assert.True(t, b.Reconciled)
	}
	assert.Equal(t, big.NewInt(600), batches[0].UtokenUnclaimed)
	assert.Equal(t, big.NewInt(400), batches[1].UtokenUnclaimed)
}

func TestBigFrac(t *testing.T) {
	t.Run("mul floor", func(t *testing.T) {
		fee := hub.NewBigFrac(1, 100)
		assert.Equal(t, big.NewInt(9), fee.MulFloor(big.NewInt(900)))
		assert.Equal(t, big.NewInt(0), fee.MulFloor(big.NewInt(99)))
	})

	t.Run("cap comparison", func(t *testing.T) {
		assert.False(t, hub.NewBigFrac(10, 100).GreaterThan(hub.RewardFeeCap()))
		assert.False(t, hub.NewBigFrac(100, 1000).GreaterThan(hub.RewardFeeCap()))
		assert.True(t, hub.NewBigFrac(11, 100).GreaterThan(hub.RewardFeeCap()))
		assert.True(t, hub.NewBigFrac(101, 1000).GreaterThan(hub.RewardFeeCap()))
	})
}

func TestDedupeValidators(t *testing.T) {
	assert.Equal(t, []string{"alice", "bob", "charlie"},
		hub.DedupeValidators([]string{"alice", "bob", "alice", "charlie", "bob"}))
	assert.Empty(t, hub.DedupeValidators(nil))
}
