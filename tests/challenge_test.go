package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/challenge-contract/common"
	cst "github.com/nspcc-dev/challenge-contract/contracts/challenge/challengeconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func challengeItem(id int64, owner util.Uint160, name, description string, maxWinners, reward int64, active bool) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(id),
		stackitem.Make(owner.BytesBE()),
		stackitem.Make(name),
		stackitem.Make(description),
		stackitem.Make(maxWinners),
		stackitem.Make(reward),
		stackitem.Make(active),
	})
}

func TestVersion(t *testing.T) {
	_, c := newChallengeInvoker(t)

	c.Invoke(t, stackitem.Make(common.Version), "version")
}

func TestCreateChallenge(t *testing.T) {
	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	cOwner := c.WithSigners(owner)

	h := cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "spring cleanup", "close the oldest issues", int64(3), int64(100))
	e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "ChallengeCreated",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(0),
			stackitem.Make(owner.ScriptHash().BytesBE()),
			stackitem.Make(100),
		}),
	})

	t.Run("ids are sequential", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Make(1), "createChallenge",
			owner.ScriptHash(), "second", "", int64(1), int64(10))
		cOwner.Invoke(t, stackitem.Make(2), "createChallenge",
			owner.ScriptHash(), "third", "", int64(1), int64(10))
		c.Invoke(t, stackitem.Make(3), "challengeCount")
	})

	t.Run("new challenge is active", func(t *testing.T) {
		c.Invoke(t, challengeItem(0, owner.ScriptHash(), "spring cleanup",
			"close the oldest issues", 3, 100, true), "get", int64(0))
	})

	t.Run("invalid owner", func(t *testing.T) {
		cOwner.InvokeFail(t, cst.ErrInvalidOwner, "createChallenge",
			[]byte{1, 2, 3}, "bad", "", int64(1), int64(10))
	})

	t.Run("invalid winner limit", func(t *testing.T) {
		cOwner.InvokeFail(t, cst.ErrInvalidWinnerLimit, "createChallenge",
			owner.ScriptHash(), "bad", "", int64(0), int64(10))
	})

	t.Run("invalid reward", func(t *testing.T) {
		cOwner.InvokeFail(t, cst.ErrInvalidReward, "createChallenge",
			owner.ScriptHash(), "bad", "", int64(1), int64(-1))
	})

	t.Run("missing owner witness", func(t *testing.T) {
		c.InvokeFail(t, common.ErrOwnerWitnessFailed, "createChallenge",
			owner.ScriptHash(), "spoofed", "", int64(1), int64(10))
	})
}

func TestSetActive(t *testing.T) {
	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	user := e.NewAccount(t)
	cOwner := c.WithSigners(owner)
	cUser := c.WithSigners(user)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "race", "", int64(2), int64(10))

	t.Run("unknown challenge", func(t *testing.T) {
		cOwner.InvokeFail(t, cst.NotFoundError, "setActive", int64(1), false)
	})

	t.Run("not an owner", func(t *testing.T) {
		cUser.InvokeFail(t, common.ErrOwnerWitnessFailed, "setActive", int64(0), false)
	})

	h := cOwner.Invoke(t, stackitem.Null{}, "setActive", int64(0), false)
	e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "ChallengeStateUpdated",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(0),
			stackitem.Make(false),
		}),
	})
	c.Invoke(t, challengeItem(0, owner.ScriptHash(), "race", "", 2, 10, false),
		"get", int64(0))

	cUser.InvokeFail(t, cst.InactiveError, "participate", int64(0), user.ScriptHash())

	cOwner.Invoke(t, stackitem.Null{}, "setActive", int64(0), true)
	c.Invoke(t, challengeItem(0, owner.ScriptHash(), "race", "", 2, 10, true),
		"get", int64(0))
	cUser.Invoke(t, stackitem.Null{}, "participate", int64(0), user.ScriptHash())
}

func TestParticipate(t *testing.T) {
	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	user1 := e.NewAccount(t)
	user2 := e.NewAccount(t)
	cOwner := c.WithSigners(owner)
	cUser1 := c.WithSigners(user1)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "race", "", int64(3), int64(100))

	h := cUser1.Invoke(t, stackitem.Null{}, "participate", int64(0), user1.ScriptHash())
	e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "Participated",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(0),
			stackitem.Make(user1.ScriptHash().BytesBE()),
		}),
	})
	c.Invoke(t, stackitem.Make(true), "isParticipant", int64(0), user1.ScriptHash())
	c.Invoke(t, stackitem.Make(false), "isParticipant", int64(0), user2.ScriptHash())

	t.Run("repeated participation", func(t *testing.T) {
		cUser1.InvokeFail(t, cst.AlreadyParticipatedError, "participate",
			int64(0), user1.ScriptHash())
	})

	t.Run("repeated participation after reactivation", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "setActive", int64(0), false)
		cOwner.Invoke(t, stackitem.Null{}, "setActive", int64(0), true)
		cUser1.InvokeFail(t, cst.AlreadyParticipatedError, "participate",
			int64(0), user1.ScriptHash())
	})

	t.Run("missing participant witness", func(t *testing.T) {
		cUser1.InvokeFail(t, common.ErrWitnessFailed, "participate",
			int64(0), user2.ScriptHash())
	})

	t.Run("unknown challenge is inactive", func(t *testing.T) {
		cUser1.InvokeFail(t, cst.InactiveError, "participate",
			int64(42), user1.ScriptHash())
	})

	t.Run("owner may participate", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "participate", int64(0), owner.ScriptHash())
	})
}

func TestSelectWinner(t *testing.T) {
	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	user1 := e.NewAccount(t)
	user2 := e.NewAccount(t)
	user3 := e.NewAccount(t)
	cOwner := c.WithSigners(owner)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "race", "", int64(2), int64(100))

	t.Run("unknown challenge", func(t *testing.T) {
		cOwner.InvokeFail(t, cst.NotFoundError, "selectWinner", int64(1), user1.ScriptHash())
	})

	t.Run("not an owner", func(t *testing.T) {
		c.WithSigners(user1).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"selectWinner", int64(0), user1.ScriptHash())
	})

	// Winner is not required to participate first, selection is a pure
	// owner decision.
	h := cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), user1.ScriptHash())
	e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "WinnerSelected",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(0),
			stackitem.Make(user1.ScriptHash().BytesBE()),
		}),
	})
	c.Invoke(t, stackitem.Make(true), "isWinner", int64(0), user1.ScriptHash())
	c.Invoke(t, stackitem.Make(1), "winnersCount", int64(0))

	t.Run("repeated selection is a no-op", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), user1.ScriptHash())
		c.Invoke(t, stackitem.Make(1), "winnersCount", int64(0))
	})

	cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), user2.ScriptHash())
	c.Invoke(t, stackitem.Make(2), "winnersCount", int64(0))

	t.Run("winner limit", func(t *testing.T) {
		cOwner.InvokeFail(t, cst.WinnerLimitError, "selectWinner",
			int64(0), user3.ScriptHash())
		c.Invoke(t, stackitem.Make(2), "winnersCount", int64(0))
	})

	t.Run("repeated selection at the limit", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), user1.ScriptHash())
		c.Invoke(t, stackitem.Make(2), "winnersCount", int64(0))
	})
}

func TestClaimReward(t *testing.T) {
	const fund = 1000

	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	winner := e.NewAccount(t)
	loser := e.NewAccount(t)
	cOwner := c.WithSigners(owner)
	cWinner := c.WithSigners(winner)

	fundContract(t, e, c.Hash, fund)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "race", "", int64(2), int64(10))
	c.WithSigners(winner).Invoke(t, stackitem.Null{}, "participate",
		int64(0), winner.ScriptHash())
	cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), winner.ScriptHash())

	t.Run("not a winner", func(t *testing.T) {
		c.WithSigners(loser).InvokeFail(t, cst.NotWinnerError, "claimReward",
			int64(0), loser.ScriptHash())
	})

	t.Run("missing winner witness", func(t *testing.T) {
		cWinner.InvokeFail(t, common.ErrWitnessFailed, "claimReward",
			int64(0), loser.ScriptHash())
	})

	t.Run("unknown challenge", func(t *testing.T) {
		cWinner.InvokeFail(t, cst.NotWinnerError, "claimReward",
			int64(42), winner.ScriptHash())
	})

	// The sole winner takes the whole reward.
	h := cWinner.Invoke(t, stackitem.Null{}, "claimReward", int64(0), winner.ScriptHash())
	e.CheckTxNotificationEvent(t, h, 1, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "RewardClaimed",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(0),
			stackitem.Make(winner.ScriptHash().BytesBE()),
			stackitem.Make(10),
		}),
	})
	e.CheckGASBalance(t, c.Hash, big.NewInt(fund-10))

	t.Run("repeated claim", func(t *testing.T) {
		cWinner.InvokeFail(t, cst.AlreadyClaimedError, "claimReward",
			int64(0), winner.ScriptHash())
		e.CheckGASBalance(t, c.Hash, big.NewInt(fund-10))
	})
}

func TestClaimRewardSplit(t *testing.T) {
	const fund = 1000

	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	cOwner := c.WithSigners(owner)

	fundContract(t, e, c.Hash, fund)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "race", "", int64(3), int64(100))

	winners := []neotest.Signer{e.NewAccount(t), e.NewAccount(t), e.NewAccount(t)}
	for _, w := range winners {
		cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), w.ScriptHash())
	}

	// 100 / 3 = 33 for everyone, the remaining unit is never distributed
	// and stays on the contract account.
	for _, w := range winners {
		h := c.WithSigners(w).Invoke(t, stackitem.Null{}, "claimReward",
			int64(0), w.ScriptHash())
		e.CheckTxNotificationEvent(t, h, 1, state.NotificationEvent{
			ScriptHash: c.Hash,
			Name:       "RewardClaimed",
			Item: stackitem.NewArray([]stackitem.Item{
				stackitem.Make(0),
				stackitem.Make(w.ScriptHash().BytesBE()),
				stackitem.Make(33),
			}),
		})
	}
	e.CheckGASBalance(t, c.Hash, big.NewInt(fund-3*33))
}

func TestClaimRewardTransferFailure(t *testing.T) {
	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	winner := e.NewAccount(t)
	cOwner := c.WithSigners(owner)
	cWinner := c.WithSigners(winner)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "race", "", int64(1), int64(10))
	cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), winner.ScriptHash())

	// Nothing on the contract account yet, so the GAS contract refuses the
	// transfer and the claim marker must not persist.
	cWinner.InvokeFail(t, cst.TransferFailedError, "claimReward",
		int64(0), winner.ScriptHash())

	fundContract(t, e, c.Hash, 1000)
	cWinner.Invoke(t, stackitem.Null{}, "claimReward", int64(0), winner.ScriptHash())
	e.CheckGASBalance(t, c.Hash, big.NewInt(1000-10))
}

func TestReadsUnchangedAfterFailures(t *testing.T) {
	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	user := e.NewAccount(t)
	cOwner := c.WithSigners(owner)
	cUser := c.WithSigners(user)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "race", "desc", int64(1), int64(7))
	cUser.Invoke(t, stackitem.Null{}, "participate", int64(0), user.ScriptHash())

	expected := challengeItem(0, owner.ScriptHash(), "race", "desc", 1, 7, true)
	c.Invoke(t, expected, "get", int64(0))

	cUser.InvokeFail(t, cst.AlreadyParticipatedError, "participate",
		int64(0), user.ScriptHash())
	cUser.InvokeFail(t, common.ErrOwnerWitnessFailed, "selectWinner",
		int64(0), user.ScriptHash())
	cUser.InvokeFail(t, cst.NotWinnerError, "claimReward",
		int64(0), user.ScriptHash())

	c.Invoke(t, expected, "get", int64(0))
	c.Invoke(t, stackitem.Make(0), "winnersCount", int64(0))
}

func TestListParticipantsAndWinners(t *testing.T) {
	e, c := newChallengeInvoker(t)

	owner := e.NewAccount(t)
	user1 := e.NewAccount(t)
	user2 := e.NewAccount(t)
	user3 := e.NewAccount(t)
	cOwner := c.WithSigners(owner)

	cOwner.Invoke(t, stackitem.Make(0), "createChallenge",
		owner.ScriptHash(), "first", "", int64(2), int64(10))
	cOwner.Invoke(t, stackitem.Make(1), "createChallenge",
		owner.ScriptHash(), "second", "", int64(2), int64(10))

	c.WithSigners(user1).Invoke(t, stackitem.Null{}, "participate", int64(0), user1.ScriptHash())
	c.WithSigners(user2).Invoke(t, stackitem.Null{}, "participate", int64(0), user2.ScriptHash())
	c.WithSigners(user2).Invoke(t, stackitem.Null{}, "participate", int64(1), user2.ScriptHash())
	c.WithSigners(user3).Invoke(t, stackitem.Null{}, "participate", int64(1), user3.ScriptHash())

	cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(0), user1.ScriptHash())
	cOwner.Invoke(t, stackitem.Null{}, "selectWinner", int64(1), user3.ScriptHash())

	requireIdentities(t, c, "listParticipants", 0,
		[][]byte{user1.ScriptHash().BytesBE(), user2.ScriptHash().BytesBE()})
	requireIdentities(t, c, "listParticipants", 1,
		[][]byte{user2.ScriptHash().BytesBE(), user3.ScriptHash().BytesBE()})
	requireIdentities(t, c, "listWinners", 0,
		[][]byte{user1.ScriptHash().BytesBE()})
	requireIdentities(t, c, "listWinners", 1,
		[][]byte{user3.ScriptHash().BytesBE()})

	t.Run("unknown challenge", func(t *testing.T) {
		_, err := c.TestInvoke(t, "listParticipants", int64(2))
		require.Error(t, err)
		require.Contains(t, err.Error(), cst.NotFoundError)
	})
}

func requireIdentities(t *testing.T, c *neotest.ContractInvoker, method string, id int64, expected [][]byte) {
	s, err := c.TestInvoke(t, method, id)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)

	var actual [][]byte
	for _, item := range iteratorToArray(iter) {
		b, err := item.TryBytes()
		require.NoError(t, err)
		actual = append(actual, b)
	}
	require.ElementsMatch(t, expected, actual)
}
