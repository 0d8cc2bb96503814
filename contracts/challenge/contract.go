package challenge

import (
	"github.com/nspcc-dev/challenge-contract/common"
	cst "github.com/nspcc-dev/challenge-contract/contracts/challenge/challengeconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Challenge is a unit of work with an owner, a fixed GAS reward pool,
// a winner limit and an activity flag. Everything except Active is
// immutable after creation.
type Challenge struct {
	ID          int
	Owner       interop.Hash160
	Name        string
	Description string
	MaxWinners  int
	Reward      int
	Active      bool
}

const (
	counterKey = "challengeCounter"

	challengeKeyPrefix   = 'x'
	participantKeyPrefix = 'p'
	winnerKeyPrefix      = 'w'
	winnerCountKeyPrefix = 'n'
	claimKeyPrefix       = 'd'

	idKeySize = 8
)

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Reward pools are backed by the GAS held on the contract account, so
// anyone may replenish it; any other asset is rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("challenge contract accepts GAS only")
	}
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)

		return
	}

	runtime.Log("challenge contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("challenge contract updated")
}

// CreateChallenge registers a new challenge owned by the specified identity
// and returns its id. Ids are sequential, start from 0 and are never reused.
// The reward amount is fixed forever; the pool it draws from is the GAS
// held on the contract account. A new challenge is active right away.
// Must be invoked with the owner witness.
//
// Produces ChallengeCreated notification.
func CreateChallenge(owner interop.Hash160, name string, description string, maxWinners int, reward int) int {
	if len(owner) != interop.Hash160Len {
		panic(cst.ErrInvalidOwner)
	}
	if maxWinners <= 0 {
		panic(cst.ErrInvalidWinnerLimit)
	}
	if reward < 0 {
		panic(cst.ErrInvalidReward)
	}

	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	id := counter(ctx)

	ch := Challenge{
		ID:          id,
		Owner:       owner,
		Name:        name,
		Description: description,
		MaxWinners:  maxWinners,
		Reward:      reward,
		Active:      true,
	}

	common.SetSerialized(ctx, challengeKey(id), ch)
	storage.Put(ctx, counterKey, id+1)

	runtime.Notify("ChallengeCreated", id, owner, reward)

	return id
}

// SetActive opens or closes the challenge for participation. It can be
// invoked only by the challenge owner. The record itself is never deleted,
// only toggled.
//
// Produces ChallengeStateUpdated notification.
func SetActive(id int, active bool) {
	ctx := storage.GetContext()
	ch := getChallenge(ctx, id)

	common.CheckOwnerWitness(ch.Owner)

	ch.Active = active
	common.SetSerialized(ctx, challengeKey(id), ch)

	runtime.Notify("ChallengeStateUpdated", id, active)
}

// Participate registers the identity as a participant of the challenge.
// A challenge that has been deactivated or has never been created can't be
// joined. Each identity can join a given challenge at most once and the
// record is permanent; deactivating and reactivating the challenge does not
// reset it. The challenge owner may participate like anyone else. Must be
// invoked with the participant witness.
//
// Produces Participated notification.
func Participate(id int, participant interop.Hash160) {
	if len(participant) != interop.Hash160Len {
		panic(cst.ErrInvalidParticipant)
	}

	common.CheckWitness(participant)

	ctx := storage.GetContext()

	data := storage.Get(ctx, challengeKey(id))
	if data == nil {
		panic(cst.InactiveError)
	}

	ch := std.Deserialize(data.([]byte)).(Challenge)
	if !ch.Active {
		panic(cst.InactiveError)
	}

	key := participantKey(id, participant)
	if storage.Get(ctx, key) != nil {
		panic(cst.AlreadyParticipatedError)
	}

	storage.Put(ctx, key, []byte{1})

	runtime.Notify("Participated", id, participant)
}

// SelectWinner designates the identity as a winner of the challenge. It can
// be invoked only by the challenge owner and only while the number of winners
// is below the limit fixed at creation. The winner is not required to be a
// participant. Selecting an identity that is already a winner is a no-op:
// the winner count is not incremented twice.
//
// Produces WinnerSelected notification.
func SelectWinner(id int, winner interop.Hash160) {
	if len(winner) != interop.Hash160Len {
		panic(cst.ErrInvalidWinner)
	}

	ctx := storage.GetContext()
	ch := getChallenge(ctx, id)

	common.CheckOwnerWitness(ch.Owner)

	key := winnerKey(id, winner)
	if storage.Get(ctx, key) != nil {
		return
	}

	cnt := winnersCount(ctx, id)
	if cnt >= ch.MaxWinners {
		panic(cst.WinnerLimitError)
	}

	storage.Put(ctx, key, []byte{1})
	storage.Put(ctx, winnerCountKey(id), cnt+1)

	runtime.Notify("WinnerSelected", id, winner)
}

// ClaimReward transfers the winner's share of the challenge reward from the
// contract account to the winner. The share is the reward divided by the
// current number of winners, truncated; the division remainder is never
// distributed. Each winner can claim exactly once. The claim marker is
// written before the GAS call, so reentry during the transfer can't pay
// twice, and a refused transfer faults the whole transaction leaving no
// state change. Must be invoked with the winner witness.
//
// Produces RewardClaimed notification.
func ClaimReward(id int, winner interop.Hash160) {
	if len(winner) != interop.Hash160Len {
		panic(cst.ErrInvalidWinner)
	}

	common.CheckWitness(winner)

	ctx := storage.GetContext()

	if storage.Get(ctx, winnerKey(id, winner)) == nil {
		panic(cst.NotWinnerError)
	}

	mark := claimKey(id, winner)
	if storage.Get(ctx, mark) != nil {
		panic(cst.AlreadyClaimedError)
	}

	ch := getChallenge(ctx, id)
	share := ch.Reward / winnersCount(ctx, id)

	storage.Put(ctx, mark, []byte{1})

	if !gas.Transfer(runtime.GetExecutingScriptHash(), winner, share, nil) {
		panic(cst.TransferFailedError)
	}

	runtime.Notify("RewardClaimed", id, winner, share)
}

// Get returns the challenge with the specified id.
func Get(id int) Challenge {
	ctx := storage.GetReadOnlyContext()
	return getChallenge(ctx, id)
}

// ChallengeCount returns the number of challenges created so far. Existing
// challenge ids are 0 up to and not including this number.
func ChallengeCount() int {
	ctx := storage.GetReadOnlyContext()
	return counter(ctx)
}

// IsParticipant checks if the identity participates in the specified
// challenge.
func IsParticipant(id int, identity interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	requireChallenge(ctx, id)

	return storage.Get(ctx, participantKey(id, identity)) != nil
}

// IsWinner checks if the identity has been selected as a winner of the
// specified challenge.
func IsWinner(id int, identity interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	requireChallenge(ctx, id)

	return storage.Get(ctx, winnerKey(id, identity)) != nil
}

// WinnersCount returns the number of winners selected for the specified
// challenge so far.
func WinnersCount(id int) int {
	ctx := storage.GetReadOnlyContext()
	requireChallenge(ctx, id)

	return winnersCount(ctx, id)
}

// ListParticipants returns an iterator over identities participating in the
// specified challenge.
func ListParticipants(id int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	requireChallenge(ctx, id)

	return storage.Find(ctx, append([]byte{participantKeyPrefix}, idBytes(id)...), storage.KeysOnly|storage.RemovePrefix)
}

// ListWinners returns an iterator over identities selected as winners of the
// specified challenge.
func ListWinners(id int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	requireChallenge(ctx, id)

	return storage.Find(ctx, append([]byte{winnerKeyPrefix}, idBytes(id)...), storage.KeysOnly|storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func counter(ctx storage.Context) int {
	data := storage.Get(ctx, counterKey)
	if data != nil {
		return data.(int)
	}

	return 0
}

func getChallenge(ctx storage.Context, id int) Challenge {
	data := storage.Get(ctx, challengeKey(id))
	if data == nil {
		panic(cst.NotFoundError)
	}

	return std.Deserialize(data.([]byte)).(Challenge)
}

func requireChallenge(ctx storage.Context, id int) {
	if storage.Get(ctx, challengeKey(id)) == nil {
		panic(cst.NotFoundError)
	}
}

func winnersCount(ctx storage.Context, id int) int {
	data := storage.Get(ctx, winnerCountKey(id))
	if data != nil {
		return data.(int)
	}

	return 0
}

// idBytes encodes the challenge id into a fixed-width key part so that
// per-challenge prefix searches never match records of another challenge.
func idBytes(id int) []byte {
	b := convert.ToBytes(id)
	for len(b) < idKeySize {
		b = append(b, 0)
	}

	return b
}

func challengeKey(id int) []byte {
	return append([]byte{challengeKeyPrefix}, idBytes(id)...)
}

func participantKey(id int, identity interop.Hash160) []byte {
	return append(append([]byte{participantKeyPrefix}, idBytes(id)...), identity...)
}

func winnerKey(id int, identity interop.Hash160) []byte {
	return append(append([]byte{winnerKeyPrefix}, idBytes(id)...), identity...)
}

func winnerCountKey(id int) []byte {
	return append([]byte{winnerCountKeyPrefix}, idBytes(id)...)
}

func claimKey(id int, identity interop.Hash160) []byte {
	return append(append([]byte{claimKeyPrefix}, idBytes(id)...), identity...)
}
