// Package challenge contains RPC wrappers for Challenge contract.
package challenge

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// ChallengeChallenge is a contract-specific challenge.Challenge type used by its methods.
type ChallengeChallenge struct {
	ID *big.Int
	Owner util.Uint160
	Name string
	Description string
	MaxWinners *big.Int
	Reward *big.Int
	Active bool
}

// ChallengeCreatedEvent represents "ChallengeCreated" event emitted by the contract.
type ChallengeCreatedEvent struct {
	ID *big.Int
	Owner util.Uint160
	Reward *big.Int
}

// ChallengeStateUpdatedEvent represents "ChallengeStateUpdated" event emitted by the contract.
type ChallengeStateUpdatedEvent struct {
	ID *big.Int
	Active bool
}

// ParticipatedEvent represents "Participated" event emitted by the contract.
type ParticipatedEvent struct {
	ID *big.Int
	Participant util.Uint160
}

// WinnerSelectedEvent represents "WinnerSelected" event emitted by the contract.
type WinnerSelectedEvent struct {
	ID *big.Int
	Winner util.Uint160
}

// RewardClaimedEvent represents "RewardClaimed" event emitted by the contract.
type RewardClaimedEvent struct {
	ID *big.Int
	Winner util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// ChallengeCount invokes `challengeCount` method of contract.
func (c *ContractReader) ChallengeCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "challengeCount"))
}

// Get invokes `get` method of contract.
func (c *ContractReader) Get(id *big.Int) (*ChallengeChallenge, error) {
	return itemToChallengeChallenge(unwrap.Item(c.invoker.Call(c.hash, "get", id)))
}

// IsParticipant invokes `isParticipant` method of contract.
func (c *ContractReader) IsParticipant(id *big.Int, identity util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isParticipant", id, identity))
}

// IsWinner invokes `isWinner` method of contract.
func (c *ContractReader) IsWinner(id *big.Int, identity util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isWinner", id, identity))
}

// ListParticipants invokes `listParticipants` method of contract.
func (c *ContractReader) ListParticipants(id *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listParticipants", id))
}

// ListParticipantsExpanded is similar to ListParticipants (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListParticipantsExpanded(id *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listParticipants", _numOfIteratorItems, id))
}

// ListWinners invokes `listWinners` method of contract.
func (c *ContractReader) ListWinners(id *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listWinners", id))
}

// ListWinnersExpanded is similar to ListWinners (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListWinnersExpanded(id *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listWinners", _numOfIteratorItems, id))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// WinnersCount invokes `winnersCount` method of contract.
func (c *ContractReader) WinnersCount(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "winnersCount", id))
}

// ClaimReward creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimReward(id *big.Int, winner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimReward", id, winner)
}

// ClaimRewardTransaction creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRewardTransaction(id *big.Int, winner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimReward", id, winner)
}

// ClaimRewardUnsigned creates a transaction invoking `claimReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRewardUnsigned(id *big.Int, winner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimReward", nil, id, winner)
}

// CreateChallenge creates a transaction invoking `createChallenge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateChallenge(owner util.Uint160, name string, description string, maxWinners *big.Int, reward *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createChallenge", owner, name, description, maxWinners, reward)
}

// CreateChallengeTransaction creates a transaction invoking `createChallenge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateChallengeTransaction(owner util.Uint160, name string, description string, maxWinners *big.Int, reward *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createChallenge", owner, name, description, maxWinners, reward)
}

// CreateChallengeUnsigned creates a transaction invoking `createChallenge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateChallengeUnsigned(owner util.Uint160, name string, description string, maxWinners *big.Int, reward *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createChallenge", nil, owner, name, description, maxWinners, reward)
}

// OnNEP17Payment creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP17Payment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentTransaction creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP17PaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentUnsigned creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP17PaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP17Payment", nil, from, amount, data)
}

// Participate creates a transaction invoking `participate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Participate(id *big.Int, participant util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "participate", id, participant)
}

// ParticipateTransaction creates a transaction invoking `participate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ParticipateTransaction(id *big.Int, participant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "participate", id, participant)
}

// ParticipateUnsigned creates a transaction invoking `participate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ParticipateUnsigned(id *big.Int, participant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "participate", nil, id, participant)
}

// SelectWinner creates a transaction invoking `selectWinner` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SelectWinner(id *big.Int, winner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "selectWinner", id, winner)
}

// SelectWinnerTransaction creates a transaction invoking `selectWinner` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SelectWinnerTransaction(id *big.Int, winner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "selectWinner", id, winner)
}

// SelectWinnerUnsigned creates a transaction invoking `selectWinner` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SelectWinnerUnsigned(id *big.Int, winner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "selectWinner", nil, id, winner)
}

// SetActive creates a transaction invoking `setActive` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetActive(id *big.Int, active bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setActive", id, active)
}

// SetActiveTransaction creates a transaction invoking `setActive` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetActiveTransaction(id *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setActive", id, active)
}

// SetActiveUnsigned creates a transaction invoking `setActive` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetActiveUnsigned(id *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setActive", nil, id, active)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToChallengeChallenge converts stack item into *ChallengeChallenge.
func itemToChallengeChallenge(item stackitem.Item, err error) (*ChallengeChallenge, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ChallengeChallenge)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ChallengeChallenge from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ChallengeChallenge) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.MaxWinners, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxWinners: %w", err)
	}

	index++
	res.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// ChallengeCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ChallengeCreated" name from the provided [result.ApplicationLog].
func ChallengeCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ChallengeCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ChallengeCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ChallengeCreated" {
				continue
			}
			event := new(ChallengeCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ChallengeCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ChallengeCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ChallengeCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	return nil
}

// ChallengeStateUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ChallengeStateUpdated" name from the provided [result.ApplicationLog].
func ChallengeStateUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ChallengeStateUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ChallengeStateUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ChallengeStateUpdated" {
				continue
			}
			event := new(ChallengeStateUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ChallengeStateUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ChallengeStateUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ChallengeStateUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// ParticipatedEventsFromApplicationLog retrieves a set of all emitted events
// with "Participated" name from the provided [result.ApplicationLog].
func ParticipatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ParticipatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ParticipatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Participated" {
				continue
			}
			event := new(ParticipatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ParticipatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ParticipatedEvent or
// returns an error if it's not possible to do to so.
func (e *ParticipatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	return nil
}

// WinnerSelectedEventsFromApplicationLog retrieves a set of all emitted events
// with "WinnerSelected" name from the provided [result.ApplicationLog].
func WinnerSelectedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WinnerSelectedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WinnerSelectedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WinnerSelected" {
				continue
			}
			event := new(WinnerSelectedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WinnerSelectedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WinnerSelectedEvent or
// returns an error if it's not possible to do to so.
func (e *WinnerSelectedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Winner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Winner: %w", err)
	}

	return nil
}

// RewardClaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardClaimed" name from the provided [result.ApplicationLog].
func RewardClaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardClaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardClaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardClaimed" {
				continue
			}
			event := new(RewardClaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardClaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardClaimedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardClaimedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Winner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Winner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
