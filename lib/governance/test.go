// Provides utilities to use in test code
package governance

import (
	"time"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/common/keypair"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

// SetClock overrides the engine's clock; only test code should call this.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// TestOracle is a map-backed WeightOracle.
type TestOracle struct {
	Weights map[string]common.Weight
}

func NewTestOracle() *TestOracle {
	return &TestOracle{Weights: map[string]common.Weight{}}
}

func (o *TestOracle) WeightOf(address string) (common.Weight, error) {
	return o.Weights[address], nil
}

// TestExecutor records invocations and fails on demand.
type TestExecutor struct {
	Invoked []string
	Err     error
}

func (x *TestExecutor) Invoke(target string, callData []byte) error {
	if x.Err != nil {
		return x.Err
	}

	x.Invoked = append(x.Invoked, target)
	return nil
}

func TestMakeConfig() common.Config {
	admin := keypair.Random()
	governance := keypair.Random()

	return common.NewConfig(admin.Address(), governance.Address())
}

func TestMakeEngine(st *storage.LevelDBBackend) (*Engine, *TestOracle, *TestExecutor) {
	conf := TestMakeConfig()
	oracle := NewTestOracle()
	executor := &TestExecutor{}

	e, err := NewEngine(st, conf, oracle, executor)
	if err != nil {
		panic(err)
	}

	return e, oracle, executor
}
