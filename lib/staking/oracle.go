package staking

import (
	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

// Oracle answers the governance engine's live weight queries from the
// staking accounts. Every call reads storage fresh; weights are never
// cached across calls.
type Oracle struct {
	st *storage.LevelDBBackend
}

func NewOracle(st *storage.LevelDBBackend) *Oracle {
	return &Oracle{st: st}
}

func (o *Oracle) WeightOf(address string) (common.Weight, error) {
	exists, err := ExistsStakingAccount(o.st, address)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	a, err := GetStakingAccount(o.st, address)
	if err != nil {
		return 0, err
	}

	return a.Staked, nil
}
