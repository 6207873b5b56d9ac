package hub

// The single native denomination that may be bonded through the hub.
const BondDenom = "ujuno"

// RewardFeeCap is the hard cap on the protocol reward fee: 10%.
func RewardFeeCap() BigFrac {
	return NewBigFrac(10, 100)
}

// Pagination bounds for the batch and request queries.
const (
	DefaultBatchQueryLimit = uint64(10)
	MaxBatchQueryLimit     = uint64(30)
)
