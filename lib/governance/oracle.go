package governance

import (
	"github.com/anunayjoshi29/ethvault/lib/common"
)

// WeightOracle is the staking-token collaborator. The engine only ever asks
// it for the live voting weight of an address; weight is read fresh at
// creation and at vote time, never cached and never snapshotted.
type WeightOracle interface {
	WeightOf(address string) (common.Weight, error)
}

// Executor performs the target invocation of a succeeded proposal. The
// engine has no knowledge of target semantics; a non-nil error means the
// whole execution is rolled back.
type Executor interface {
	Invoke(target string, callData []byte) error
}
