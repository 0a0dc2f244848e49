package governance

import (
	"time"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

// Parameters is the single global tunable record. It is not versioned and
// not copied into proposals: updating it changes the derived state of every
// proposal, past and future, on the next query.
//
// models
//  * 'params'
// 	- 'gp-params': `Parameters`

const ParametersKey string = "gp-params"

type Parameters struct {
	VotingPeriod   time.Duration
	ExecutionDelay time.Duration
	Quorum         common.Weight
}

func NewParameters(votingPeriod, executionDelay time.Duration, quorum common.Weight) *Parameters {
	return &Parameters{
		VotingPeriod:   votingPeriod,
		ExecutionDelay: executionDelay,
		Quorum:         quorum,
	}
}

func (p *Parameters) Validate() error {
	return common.ValidateParameters(p.VotingPeriod, p.ExecutionDelay, p.Quorum)
}

func (p *Parameters) Save(st *storage.LevelDBBackend) (err error) {
	var exists bool
	if exists, err = st.Has(ParametersKey); err != nil {
		return
	}

	if exists {
		err = st.Set(ParametersKey, p)
	} else {
		err = st.New(ParametersKey, p)
	}

	return
}

func ExistsParameters(st *storage.LevelDBBackend) (bool, error) {
	return st.Has(ParametersKey)
}

func GetParameters(st *storage.LevelDBBackend) (p *Parameters, err error) {
	if err = st.Get(ParametersKey, &p); err != nil {
		return
	}

	return
}
