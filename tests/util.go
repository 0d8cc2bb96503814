package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const challengePath = "../contracts/challenge"

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployChallengeContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, challengePath,
		path.Join(challengePath, "config.yml"))

	e.DeployContract(t, c, nil)
	return c.Hash
}

func newChallengeInvoker(t *testing.T) (*neotest.Executor, *neotest.ContractInvoker) {
	e := newExecutor(t)
	h := deployChallengeContract(t, e)
	return e, e.CommitteeInvoker(h)
}

// fundContract replenishes the GAS account of the contract that backs
// challenge reward pools.
func fundContract(t *testing.T, e *neotest.Executor, to util.Uint160, amount int64) {
	gasHash := e.NativeHash(t, nativenames.Gas)
	e.ValidatorInvoker(gasHash).Invoke(t, true, "transfer",
		e.Validator.ScriptHash(), to, amount, nil)
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}
